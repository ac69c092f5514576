package topology

import (
	"github.com/gomesh/topology/mesh"
	"github.com/gomesh/topology/meshhash"
)

// CheckFacetsNearby runs a second matching pass over edges the exact
// pass left unmatched, quantizing vertices to a tolerance grid so that
// floating-point drift no longer prevents a match. Every match also
// stitches the two facets' near-coincident vertices to a single
// coordinate value across their one-rings. Precondition: CheckFacetsExact
// has already run.
func CheckFacetsNearby(m *mesh.Mesh, tolerance float32) error {
	n := m.NumFacets()
	if m.Stats.ConnectedFacets1Edge == n && m.Stats.ConnectedFacets2Edge == n && m.Stats.ConnectedFacets3Edge == n {
		// Already fully connected; nothing for a tolerance pass to fix.
		return nil
	}

	table := meshhash.NewTable(&m.Stats)

	var opErr error
	onMatch := func(a, b meshhash.HashEdge) {
		if opErr != nil {
			return
		}
		opErr = matchNearby(m, a, b)
	}

	for i := 0; i < m.NumFacets() && opErr == nil; i++ {
		facet := m.Facets[i]
		for j := uint8(0); j < 3 && opErr == nil; j++ {
			if m.Neighbors[i].Neighbor[j] != -1 {
				continue
			}
			edge, ok := meshhash.CanonicalizeNearby(m.Min, tolerance, int32(i), j, facet.Vertex[j], facet.Vertex[(j+1)%3])
			if !ok {
				continue
			}
			table.Insert(edge, onMatch)
		}
	}

	table.Free()
	return opErr
}

// matchNearby records the new adjacency for a tolerance-matched pair and
// then stitches whichever endpoint of each side needs to move to make
// the shared edge bit-equal on both facets.
func matchNearby(m *mesh.Mesh, a, b meshhash.HashEdge) error {
	recordNeighbors(m, a, b)

	facet1, vertex1, newVertex1, facet2, vertex2, newVertex2 := whichVerticesToChange(m, a, b)

	if facet1 != -1 {
		vnot1 := vnotForChange(a, b, facet1, vertex1)
		if err := changeVertices(m, facet1, vnot1, newVertex1); err != nil {
			return err
		}
	}
	if facet2 != -1 {
		vnot2 := vnotForChange(a, b, facet2, vertex2)
		if err := changeVertices(m, facet2, vnot2, newVertex2); err != nil {
			return err
		}
	}

	m.Stats.EdgesFixed += 2
	return nil
}

// edgeEndpoints returns (v1, v2), the local vertex indices of the edge
// endpoints in canonical key order (v1 is the endpoint stored first in
// the HashEdge key), given a which_edge value in 0..5. For a flipped
// edge (which_edge >= 3) this is the reverse of the traversal order.
func edgeEndpoints(whichEdge uint8) (v1, v2 int) {
	if whichEdge < 3 {
		v1 = int(whichEdge)
		v2 = (v1 + 1) % 3
	} else {
		v2 = int(whichEdge) % 3
		v1 = (v2 + 1) % 3
	}
	return
}

// whichVerticesToChange decides, for each of the two endpoint pairs of
// the matched edge, whether the two facets already agree bit-for-bit
// and, if not, which facet's vertex should move to the other's value.
// facetN == -1 means that pair needs no change. Facet A's vertex moves
// only when both of A's edges incident to it are unmatched; because
// recordNeighbors has already linked the matched edge, which is incident
// to both endpoints, that test does not hold here and facet B's vertex
// is the one that moves.
func whichVerticesToChange(m *mesh.Mesh, a, b meshhash.HashEdge) (facet1 int32, vertex1 int, newVertex1 mesh.Vertex, facet2 int32, vertex2 int, newVertex2 mesh.Vertex) {
	v1a, v2a := edgeEndpoints(a.WhichEdge)
	v1b, v2b := edgeEndpoints(b.WhichEdge)

	facetA, facetB := a.FacetNumber, b.FacetNumber

	facet1, vertex1, newVertex1 = pickVertexToChange(m, facetA, v1a, facetB, v1b)
	facet2, vertex2, newVertex2 = pickVertexToChange(m, facetA, v2a, facetB, v2b)
	return
}

func pickVertexToChange(m *mesh.Mesh, facetA int32, va int, facetB int32, vb int) (facet int32, vertex int, newVertex mesh.Vertex) {
	pa := m.Facets[facetA].Vertex[va]
	pb := m.Facets[facetB].Vertex[vb]
	if pa == pb {
		return -1, 0, mesh.Vertex{}
	}

	na := &m.Neighbors[facetA]
	if na.Neighbor[va] == -1 && na.Neighbor[(va+2)%3] == -1 {
		// Facet A's vertex has no other adjacency; safe to move it.
		return facetA, va, pb
	}
	return facetB, vb, pa
}

// vnotForChange recomputes the vnot encoding (local vertex not on the
// edge, with the orientation flag folded back in if applicable) for the
// facet/vertex pair chosen by whichVerticesToChange.
func vnotForChange(a, b meshhash.HashEdge, facet int32, vertex int) int {
	var vnot int
	if facet == a.FacetNumber {
		vnot = (int(a.WhichEdge) + 2) % 3
	} else {
		vnot = (int(b.WhichEdge) + 2) % 3
	}
	if (vnot+2)%3 == vertex {
		vnot += 3
	}
	return vnot
}
