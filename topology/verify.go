package topology

import "github.com/gomesh/topology/mesh"

// Diagnostic reports one edge whose endpoints, reconstructed from the
// neighbor's side via WhichVertexNot, don't bit-match the facet's own
// copy of that edge. This is a report, not a fatal condition: it
// surfaces drift CheckFacetsNearby's stitching should already have
// closed, or a genuine topology bug, without aborting the caller.
type Diagnostic struct {
	Facet    int32
	Edge     uint8
	Neighbor int32
	VNot     uint8
}

// VerifyNeighbors walks every facet's three edges and, for each matched
// neighbor, reconstructs how that neighbor traverses the shared edge
// from WhichVertexNot and compares the two endpoint pairs bit-for-bit.
// A WhichVertexNot value of 3 or more means the neighbor traverses the
// edge in the same direction as this facet (an orientation mismatch),
// counted in Stats.BackwardsEdges. It never mutates the mesh beyond
// that counter, and never aborts: mismatches are collected and
// returned for the caller to act on.
func VerifyNeighbors(m *mesh.Mesh) []Diagnostic {
	m.Stats.BackwardsEdges = 0
	var diags []Diagnostic

	for i := 0; i < m.NumFacets(); i++ {
		facet := int32(i)
		facetVerts := m.Facets[facet].Vertex
		nb := m.Neighbors[facet]

		for e := 0; e < 3; e++ {
			neighbor := nb.Neighbor[e]
			if neighbor == -1 {
				continue
			}
			vnot := nb.WhichVertexNot[e]

			a1 := facetVerts[e]
			a2 := facetVerts[(e+1)%3]

			nv := m.Facets[neighbor].Vertex
			var b1, b2 mesh.Vertex
			if vnot < 3 {
				b1 = nv[(vnot+2)%3]
				b2 = nv[(vnot+1)%3]
			} else {
				m.Stats.BackwardsEdges++
				b1 = nv[(vnot+1)%3]
				b2 = nv[(vnot+2)%3]
			}

			if a1 != b1 || a2 != b2 {
				diags = append(diags, Diagnostic{
					Facet:    facet,
					Edge:     uint8(e),
					Neighbor: neighbor,
					VNot:     vnot,
				})
			}
		}
	}
	return diags
}
