package topology

import (
	"github.com/gomesh/topology/mesh"
	"github.com/gomesh/topology/meshhash"
)

// CheckFacetsExact builds the neighbor graph from scratch: it resets the
// connectivity counters, marks every facet's neighbor slots unmatched,
// then walks every facet inserting its three edges into a scratch hash
// table. Two edges match only when all twelve bytes of each endpoint are
// bit-equal. Facets found degenerate (two bit-equal vertices) at scan
// time are swap-removed before their edges are ever inserted.
func CheckFacetsExact(m *mesh.Mesh) error {
	m.Stats.ConnectedEdges = 0
	m.Stats.ConnectedFacets1Edge = 0
	m.Stats.ConnectedFacets2Edge = 0
	m.Stats.ConnectedFacets3Edge = 0

	for i := range m.Neighbors {
		m.Neighbors[i] = mesh.NeighborRecord{Neighbor: [3]int32{-1, -1, -1}}
	}

	table := meshhash.NewTable(&m.Stats)
	onMatch := func(a, b meshhash.HashEdge) { recordNeighbors(m, a, b) }

	for i := 0; i < m.NumFacets(); i++ {
		fi := int32(i)
		if m.IsDegenerate(fi) {
			m.Stats.DegenerateFacets++
			if err := m.RemoveFacet(fi); err != nil {
				table.Free()
				return &FatalError{Op: "CheckFacetsExact", Facet: fi, Err: err}
			}
			i--
			continue
		}

		facet := m.Facets[i]
		for j := uint8(0); j < 3; j++ {
			edge := meshhash.CanonicalizeExact(&m.Stats, fi, j, facet.Vertex[j], facet.Vertex[(j+1)%3])
			table.Insert(edge, onMatch)
		}
	}

	table.Free()
	return nil
}
