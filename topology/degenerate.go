package topology

import "github.com/gomesh/topology/mesh"

// removeDegenerate removes facetNum, which has already been determined
// degenerate, and splices its two remaining neighbors together so the
// hole it leaves behind does not appear as two new unmatched edges.
//
// Exactly one of the facet's three edges connects the pair of bit-equal
// vertices; that edge has collapsed to zero length and its neighbor (if
// any) simply loses this side of the connection. The other two edges
// are now geometrically identical, so their neighbors are spliced
// directly together across the seam.
//
// Deviation: an edge whose neighbor slot is -1 simply has no back
// pointer to fix; it is decremented out of the connectivity count the
// same as a matched neighbor would be, and the corresponding slot on
// the surviving neighbor is cleared to -1 rather than left pointing at
// a dangling value. All three neighbors are resolved before facetNum is
// swap-removed, so none of the indices captured here can be invalidated
// by the swap.
func removeDegenerate(m *mesh.Mesh, facetNum int32) error {
	v := m.Facets[facetNum].Vertex

	degenerateEdge := 0
	switch {
	case v[1] == v[2]:
		degenerateEdge = 1
	case v[2] == v[0]:
		degenerateEdge = 2
	}
	splice1, splice2 := (degenerateEdge+1)%3, (degenerateEdge+2)%3

	nb := m.Neighbors[facetNum]
	n1, w1 := nb.Neighbor[splice1], nb.WhichVertexNot[splice1]
	n2, w2 := nb.Neighbor[splice2], nb.WhichVertexNot[splice2]
	n3, w3 := nb.Neighbor[degenerateEdge], nb.WhichVertexNot[degenerateEdge]

	switch {
	case n1 != -1 && n2 != -1:
		edge1 := (int(w1) + 1) % 3
		edge2 := (int(w2) + 1) % 3
		m.Neighbors[n1].Neighbor[edge1] = n2
		m.Neighbors[n1].WhichVertexNot[edge1] = w2
		m.Neighbors[n2].Neighbor[edge2] = n1
		m.Neighbors[n2].WhichVertexNot[edge2] = w1
	case n1 != -1:
		edge1 := (int(w1) + 1) % 3
		m.Neighbors[n1].Neighbor[edge1] = -1
		m.UpdateConnectsRemove1(n1)
	case n2 != -1:
		edge2 := (int(w2) + 1) % 3
		m.Neighbors[n2].Neighbor[edge2] = -1
		m.UpdateConnectsRemove1(n2)
	}

	if n3 != -1 {
		m.UpdateConnectsRemove1(n3)
		m.Neighbors[n3].Neighbor[(int(w3)+1)%3] = -1
	}

	if err := m.RemoveFacet(facetNum); err != nil {
		return &FatalError{Op: "removeDegenerate", Facet: facetNum, Err: err}
	}
	return nil
}

// RemoveUnconnectedFacets first sweeps for facets that became degenerate
// as a side effect of CheckFacetsNearby's vertex stitching (the exact
// pass already removed every degenerate facet present at load time), then
// deletes every facet with zero matched neighbors. An isolated facet
// contributes nothing to a closed surface and cannot be stitched to
// anything by any further pass.
func RemoveUnconnectedFacets(m *mesh.Mesh) error {
	for i := 0; i < m.NumFacets(); {
		fi := int32(i)
		if !m.IsDegenerate(fi) {
			i++
			continue
		}
		m.Stats.DegenerateFacets++
		if err := removeDegenerate(m, fi); err != nil {
			return err
		}
	}

	for i := 0; i < m.NumFacets(); {
		fi := int32(i)
		nb := m.Neighbors[fi]
		if nb.Neighbor[0] == -1 && nb.Neighbor[1] == -1 && nb.Neighbor[2] == -1 {
			if err := m.RemoveFacet(fi); err != nil {
				return &FatalError{Op: "RemoveUnconnectedFacets", Facet: fi, Err: err}
			}
			continue
		}
		i++
	}
	return nil
}
