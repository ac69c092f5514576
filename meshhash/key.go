package meshhash

import (
	"encoding/binary"
	"math"

	"github.com/gomesh/topology/mesh"
)

// HashEdge is the canonical, direction-independent representation of one
// triangle edge plus bookkeeping for the pass that produced it.
//
// Key packs two 12-byte endpoint payloads: raw vertex bytes in exact
// mode, or three quantized uint32 grid coordinates in nearby mode.
// Endpoints are ordered so that edge (a,b) and (b,a) always produce the
// same Key; WhichEdge records both the local edge index (0..2) and
// whether that canonical order reversed the natural a->b traversal
// (value += 3 when it did).
type HashEdge struct {
	Key         [24]byte
	FacetNumber int32
	WhichEdge   uint8
}

func putVertex(dst []byte, v mesh.Vertex) {
	binary.LittleEndian.PutUint32(dst[0:4], math.Float32bits(v[0]))
	binary.LittleEndian.PutUint32(dst[4:8], math.Float32bits(v[1]))
	binary.LittleEndian.PutUint32(dst[8:12], math.Float32bits(v[2]))
}

func putQuantized(dst []byte, q [3]uint32) {
	binary.LittleEndian.PutUint32(dst[0:4], q[0])
	binary.LittleEndian.PutUint32(dst[4:8], q[1])
	binary.LittleEndian.PutUint32(dst[8:12], q[2])
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// axisOfMaxVariation returns 0/1/2 for x/y/z, the axis along which a and
// b differ most, with ties broken x > y > z, plus the three per-axis
// diffs and the largest of them.
func axisOfMaxVariation(a, b mesh.Vertex) (axis int, diffs [3]float32, max float32) {
	diffs = [3]float32{absf(a[0] - b[0]), absf(a[1] - b[1]), absf(a[2] - b[2])}
	max = diffs[0]
	if diffs[1] > max {
		max = diffs[1]
	}
	if diffs[2] > max {
		max = diffs[2]
	}
	switch {
	case diffs[0] == max:
		axis = 0
	case diffs[1] == max:
		axis = 1
	default:
		axis = 2
	}
	return
}

// CanonicalizeExact builds the exact-mode HashEdge for local edge e of
// facet, running from vertex a to vertex b (b = facet's next vertex).
// It also lowers stats.ShortestEdge when this edge's span is smaller
// than any seen so far.
func CanonicalizeExact(stats *mesh.Stats, facet int32, e uint8, a, b mesh.Vertex) HashEdge {
	_, _, max := axisOfMaxVariation(a, b)
	if max < stats.ShortestEdge {
		stats.ShortestEdge = max
	}

	edge := HashEdge{FacetNumber: facet, WhichEdge: e}
	first, second, flipped := canonicalOrder(a, b)
	putVertex(edge.Key[0:12], first)
	putVertex(edge.Key[12:24], second)
	if flipped {
		edge.WhichEdge += 3
	}
	return edge
}

// CanonicalizeNearby builds the nearby-mode HashEdge for local edge e,
// quantizing each endpoint to an integer grid cell of the given
// tolerance relative to min. It returns ok=false when both endpoints
// quantize to the same cell, since inserting such an edge would pair
// a vertex with itself.
func CanonicalizeNearby(min mesh.Vertex, tolerance float32, facet int32, e uint8, a, b mesh.Vertex) (edge HashEdge, ok bool) {
	qa := quantize(a, min, tolerance)
	qb := quantize(b, min, tolerance)
	if qa == qb {
		return HashEdge{}, false
	}

	edge = HashEdge{FacetNumber: facet, WhichEdge: e}
	axis, _, _ := axisOfMaxVariation(a, b)
	flipped := !axisGreater(a, b, axis)
	if flipped {
		putQuantized(edge.Key[0:12], qb)
		putQuantized(edge.Key[12:24], qa)
		edge.WhichEdge += 3
	} else {
		putQuantized(edge.Key[0:12], qa)
		putQuantized(edge.Key[12:24], qb)
	}
	return edge, true
}

func quantize(v, min mesh.Vertex, tolerance float32) [3]uint32 {
	return [3]uint32{
		uint32((v[0] - min[0]) / tolerance),
		uint32((v[1] - min[1]) / tolerance),
		uint32((v[2] - min[2]) / tolerance),
	}
}

func axisGreater(a, b mesh.Vertex, axis int) bool {
	return a[axis] > b[axis]
}

// canonicalOrder returns (first, second, flipped) where first is a or b
// depending on which one leads along the axis of maximum variation;
// flipped reports whether the natural a->b traversal was reversed to
// get there.
func canonicalOrder(a, b mesh.Vertex) (first, second mesh.Vertex, flipped bool) {
	axis, _, _ := axisOfMaxVariation(a, b)
	if axisGreater(a, b, axis) {
		return a, b, false
	}
	return b, a, true
}
