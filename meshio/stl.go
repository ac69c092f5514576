package meshio

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/gomesh/topology/mesh"
)

const (
	headerSize       = 80
	binaryFacetBytes = 50 // 12 (normal) + 3*12 (vertices) + 2 (attribute count)
)

// Read loads a Mesh from r, detecting binary vs. ASCII STL by trying
// the binary layout first and falling back to ASCII when the declared
// facet count doesn't account for the stream's length.
func Read(r io.Reader) (*mesh.Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("meshio: read: %w", err)
	}

	if looksBinary(data) {
		return readBinary(data)
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("solid")) {
		return readASCII(data)
	}
	return nil, ErrNotSTL
}

func looksBinary(data []byte) bool {
	if len(data) < headerSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[headerSize : headerSize+4])
	return int64(headerSize+4)+int64(count)*binaryFacetBytes == int64(len(data))
}

func readBinary(data []byte) (*mesh.Mesh, error) {
	count := binary.LittleEndian.Uint32(data[headerSize : headerSize+4])
	facets := make([]mesh.Facet, 0, count)

	offset := headerSize + 4
	for i := uint32(0); i < count; i++ {
		if offset+binaryFacetBytes > len(data) {
			return nil, ErrTruncated
		}
		chunk := data[offset : offset+binaryFacetBytes]

		var f mesh.Facet
		f.Normal = readVec(chunk[0:12])
		f.Vertex[0] = readVec(chunk[12:24])
		f.Vertex[1] = readVec(chunk[24:36])
		f.Vertex[2] = readVec(chunk[36:48])
		facets = append(facets, f)

		offset += binaryFacetBytes
	}

	return buildMesh(facets)
}

func readVec(b []byte) mesh.Vertex {
	return mesh.Vertex{
		math.Float32frombits(binary.LittleEndian.Uint32(b[0:4])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[4:8])),
		math.Float32frombits(binary.LittleEndian.Uint32(b[8:12])),
	}
}

func readASCII(data []byte) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var facets []mesh.Facet
	var cur mesh.Facet
	vertexIdx := 0
	inFacet := false

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "facet":
			inFacet = true
			vertexIdx = 0
			if len(fields) == 5 && fields[1] == "normal" {
				cur.Normal = parseVec(fields[2:5])
			}
		case "vertex":
			if !inFacet || vertexIdx >= 3 || len(fields) != 4 {
				continue
			}
			cur.Vertex[vertexIdx] = parseVec(fields[1:4])
			vertexIdx++
		case "endfacet":
			facets = append(facets, cur)
			cur = mesh.Facet{}
			inFacet = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meshio: scan ASCII STL: %w", err)
	}

	return buildMesh(facets)
}

func parseVec(fields []string) mesh.Vertex {
	var v mesh.Vertex
	for i := 0; i < 3 && i < len(fields); i++ {
		var f float64
		fmt.Sscanf(fields[i], "%g", &f)
		v[i] = float32(f)
	}
	return v
}

func buildMesh(facets []mesh.Facet) (*mesh.Mesh, error) {
	if len(facets) == 0 {
		return mesh.New(facets, mesh.Vertex{}, mesh.Vertex{}), nil
	}
	min, max := boundingBox(facets)
	return mesh.New(facets, min, max), nil
}

// WriteBinary serializes m in binary STL format with an 80-byte zeroed
// header and a zero attribute byte count per facet.
func WriteBinary(w io.Writer, m *mesh.Mesh) error {
	if m.NumFacets() == 0 {
		return ErrEmptyMesh
	}

	bw := bufio.NewWriter(w)
	header := make([]byte, headerSize)
	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("meshio: write header: %w", err)
	}

	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(m.NumFacets()))
	if _, err := bw.Write(countBuf[:]); err != nil {
		return fmt.Errorf("meshio: write facet count: %w", err)
	}

	var buf [binaryFacetBytes]byte
	for _, f := range m.Facets {
		writeVec(buf[0:12], f.Normal)
		writeVec(buf[12:24], f.Vertex[0])
		writeVec(buf[24:36], f.Vertex[1])
		writeVec(buf[36:48], f.Vertex[2])
		buf[48], buf[49] = 0, 0
		if _, err := bw.Write(buf[:]); err != nil {
			return fmt.Errorf("meshio: write facet: %w", err)
		}
	}
	return bw.Flush()
}

func writeVec(dst []byte, v mesh.Vertex) {
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(dst[8:12], math.Float32bits(v[2]))
}

// WriteASCII serializes m in ASCII STL format under the given solid name.
func WriteASCII(w io.Writer, m *mesh.Mesh, name string) error {
	if m.NumFacets() == 0 {
		return ErrEmptyMesh
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", name)
	for _, f := range m.Facets {
		fmt.Fprintf(bw, "facet normal %g %g %g\n", f.Normal[0], f.Normal[1], f.Normal[2])
		fmt.Fprintln(bw, "outer loop")
		for _, v := range f.Vertex {
			fmt.Fprintf(bw, "vertex %g %g %g\n", v[0], v[1], v[2])
		}
		fmt.Fprintln(bw, "endloop")
		fmt.Fprintln(bw, "endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}
