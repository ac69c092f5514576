package meshio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomesh/topology/mesh"
)

func sampleFacets() []mesh.Facet {
	return []mesh.Facet{
		{
			Normal: mesh.Vertex{0, 0, 1},
			Vertex: [3]mesh.Vertex{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		},
		{
			Normal: mesh.Vertex{0, 0, -1},
			Vertex: [3]mesh.Vertex{{1, 1, 0}, {0, 1, 0}, {1, 0, 0}},
		},
	}
}

func TestWriteReadBinaryRoundTrip(t *testing.T) {
	m := mesh.New(sampleFacets(), mesh.Vertex{0, 0, 0}, mesh.Vertex{1, 1, 0})

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, m))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, m.NumFacets(), got.NumFacets())
	for i, f := range m.Facets {
		require.Equalf(t, f.Vertex, got.Facets[i].Vertex, "facet %d vertices", i)
	}
}

func TestWriteReadASCIIRoundTrip(t *testing.T) {
	m := mesh.New(sampleFacets(), mesh.Vertex{0, 0, 0}, mesh.Vertex{1, 1, 0})

	var buf bytes.Buffer
	require.NoError(t, WriteASCII(&buf, m, "testsolid"))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, m.NumFacets(), got.NumFacets())
}

func TestWriteEmptyMeshFails(t *testing.T) {
	m := mesh.New(nil, mesh.Vertex{}, mesh.Vertex{})
	var buf bytes.Buffer
	if err := WriteBinary(&buf, m); err != ErrEmptyMesh {
		t.Fatalf("WriteBinary err = %v, want ErrEmptyMesh", err)
	}
	if err := WriteASCII(&buf, m, "x"); err != ErrEmptyMesh {
		t.Fatalf("WriteASCII err = %v, want ErrEmptyMesh", err)
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not an stl file at all")))
	if err != ErrNotSTL {
		t.Fatalf("err = %v, want ErrNotSTL", err)
	}
}
