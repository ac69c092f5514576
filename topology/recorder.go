package topology

import (
	"github.com/gomesh/topology/mesh"
	"github.com/gomesh/topology/meshhash"
)

// recordNeighbors writes mutual adjacency for a matched pair of edges
// and updates the connection statistics. Both edges name distinct
// facets (meshhash.Table never matches an edge against itself).
func recordNeighbors(m *mesh.Mesh, a, b meshhash.HashEdge) {
	ea := a.WhichEdge % 3
	eb := b.WhichEdge % 3

	m.Neighbors[a.FacetNumber].Neighbor[ea] = b.FacetNumber
	m.Neighbors[a.FacetNumber].WhichVertexNot[ea] = (b.WhichEdge + 2) % 3

	m.Neighbors[b.FacetNumber].Neighbor[eb] = a.FacetNumber
	m.Neighbors[b.FacetNumber].WhichVertexNot[eb] = (a.WhichEdge + 2) % 3

	// Same "side" (both < 3 or both >= 3) means both facets traverse the
	// shared edge in the same direction: an orientation mismatch.
	if (a.WhichEdge < 3) == (b.WhichEdge < 3) {
		m.Neighbors[a.FacetNumber].WhichVertexNot[ea] += 3
		m.Neighbors[b.FacetNumber].WhichVertexNot[eb] += 3
	}

	m.Stats.ConnectedEdges += 2
	bumpConnectedBucket(m, a.FacetNumber)
	bumpConnectedBucket(m, b.FacetNumber)
}

// bumpConnectedBucket increments the connected_facets_k_edge counter
// that matches facet's current count of unmatched neighbor slots. This
// reproduces the source's cumulative, order-dependent bucketing
// verbatim — see mesh.Stats doc for why it isn't authoritative ground
// truth for connectivity.
func bumpConnectedBucket(m *mesh.Mesh, facet int32) {
	switch m.UnconnectedCount(facet) {
	case 2:
		m.Stats.ConnectedFacets1Edge++
	case 1:
		m.Stats.ConnectedFacets2Edge++
	default:
		m.Stats.ConnectedFacets3Edge++
	}
}
