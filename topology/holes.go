package topology

import (
	"github.com/gomesh/topology/mesh"
	"github.com/gomesh/topology/meshhash"
	"github.com/gomesh/topology/meshnormal"
)

// FillHoles closes every remaining hole boundary. It first loads every
// currently unmatched edge into a scratch exact-mode hash table, then
// for each unmatched edge walks the one-ring around that edge's first
// endpoint, starting from the vertex not on the edge (reusing the
// pivotStep state machine changeVertices drives, but without mutating
// any vertex), until it reaches a facet whose next edge is unmatched.
// The new triangle spanning the original edge and the far endpoint of
// that unmatched edge is appended and its own three edges are fed back into
// the same table, so later ears in a non-triangular hole match directly
// against triangles this pass has already fabricated.
func FillHoles(m *mesh.Mesh) error {
	table := meshhash.NewTable(&m.Stats)

	var opErr error
	onMatch := func(a, b meshhash.HashEdge) {
		if opErr != nil {
			return
		}
		recordNeighbors(m, a, b)
	}

	for i := 0; i < m.NumFacets(); i++ {
		facet := m.Facets[i]
		for j := uint8(0); j < 3; j++ {
			if m.Neighbors[i].Neighbor[j] != -1 {
				continue
			}
			edge := meshhash.CanonicalizeExact(&m.Stats, int32(i), j, facet.Vertex[j], facet.Vertex[(j+1)%3])
			table.Insert(edge, onMatch)
		}
	}

	// NumFacets() grows as ears are fabricated; re-reading it each
	// iteration lets the loop also close holes formed entirely from
	// newly added facets.
	for i := 0; i < m.NumFacets() && opErr == nil; i++ {
		firstFacet := int32(i)
		for j := uint8(0); j < 3 && opErr == nil; j++ {
			if m.Neighbors[i].Neighbor[j] != -1 {
				continue
			}
			opErr = fillOneEar(m, table, onMatch, firstFacet, j)
		}
	}

	table.Free()
	return opErr
}

// fillOneEar walks the one-ring around the first endpoint of edge
// (facet, edgeIdx) through already-matched neighbors until it reaches an
// unmatched edge on the far side, then fabricates the triangle spanning
// the original edge's two endpoints and that far facet's vertex at vnot
// (the unmatched edge's endpoint other than the pivot).
func fillOneEar(m *mesh.Mesh, table *meshhash.Table, onMatch meshhash.MatchFunc, firstFacet int32, edgeIdx uint8) error {
	v0 := m.Facets[firstFacet].Vertex[edgeIdx]
	v1 := m.Facets[firstFacet].Vertex[(edgeIdx+1)%3]

	facetNum := firstFacet
	vnot := (int(edgeIdx) + 2) % 3
	direction := 0

	for {
		_, nextEdge, nextDirection := pivotStep(vnot, direction)
		direction = nextDirection

		next := m.Neighbors[facetNum].Neighbor[nextEdge]
		if next == -1 {
			v2 := m.Facets[facetNum].Vertex[vnot%3]
			newFacet := mesh.Facet{Vertex: [3]mesh.Vertex{v0, v1, v2}}
			meshnormal.Fix(&newFacet)
			fi := m.AddFacet(newFacet)

			for k := uint8(0); k < 3; k++ {
				edge := meshhash.CanonicalizeExact(&m.Stats, fi, k, newFacet.Vertex[k], newFacet.Vertex[(k+1)%3])
				table.Insert(edge, onMatch)
			}
			return nil
		}

		vnot = int(m.Neighbors[facetNum].WhichVertexNot[nextEdge])
		facetNum = next
		if facetNum == firstFacet {
			return &FatalError{Op: "FillHoles", Facet: firstFacet, Err: ErrMobiusWalk}
		}
	}
}
