package meshbuilder

import "github.com/gomesh/topology/mesh"

// Tetrahedron returns a regular tetrahedron's four facets, consistently
// wound so every edge is shared by exactly two facets and bit-equal on
// both sides. This is the canonical "already clean" fixture: an exact
// pass alone should leave it fully connected.
func Tetrahedron() []mesh.Facet {
	a := mesh.Vertex{0, 0, 0}
	b := mesh.Vertex{1, 0, 0}
	c := mesh.Vertex{0, 1, 0}
	d := mesh.Vertex{0, 0, 1}

	return []mesh.Facet{
		{Vertex: [3]mesh.Vertex{a, c, b}},
		{Vertex: [3]mesh.Vertex{a, b, d}},
		{Vertex: [3]mesh.Vertex{b, c, d}},
		{Vertex: [3]mesh.Vertex{c, a, d}},
	}
}

// SplitTetrahedron returns a tetrahedron where each facet's copy of one
// shared vertex carries its own small offset, as an STL exporter that
// re-quantizes coordinates per-triangle would produce. The surface is
// geometrically closed but no two facets agree on that vertex
// bit-for-bit, so only a tolerance ("nearby") pass can close it.
func SplitTetrahedron(offset float32) []mesh.Facet {
	facets := Tetrahedron()
	shared := facets[0].Vertex[1]

	scale := []float32{0, 1, -0.7, 0.4}
	for i := range facets {
		for v := 0; v < 3; v++ {
			if facets[i].Vertex[v] == shared {
				facets[i].Vertex[v] = mesh.Vertex{shared[0] + offset*scale[i], shared[1], shared[2]}
			}
		}
	}
	return facets
}

// DegenerateTrio returns a clean tetrahedron with one extra zero-area
// facet appended (two bit-equal vertices), exercising degenerate
// detection and swap-removal independent of any matching pass.
func DegenerateTrio() []mesh.Facet {
	facets := Tetrahedron()
	a := facets[0].Vertex[0]
	b := facets[0].Vertex[1]
	facets = append(facets, mesh.Facet{Vertex: [3]mesh.Vertex{a, a, b}})
	return facets
}

// IsolatedTriangle returns a clean tetrahedron plus one triangle placed
// far away, sharing none of its vertices — a facet with zero matched
// neighbors after both matching passes, for exercising
// RemoveUnconnectedFacets.
func IsolatedTriangle() []mesh.Facet {
	facets := Tetrahedron()
	facets = append(facets, mesh.Facet{Vertex: [3]mesh.Vertex{
		{10, 10, 10}, {11, 10, 10}, {10, 11, 10},
	}})
	return facets
}

// PuncturedTetrahedron returns a tetrahedron with one facet removed,
// leaving a single triangular hole for FillHoles to close.
func PuncturedTetrahedron() []mesh.Facet {
	return Tetrahedron()[1:]
}
