package mesh

import "github.com/go-gl/mathgl/mgl32"

// Vertex is a point in 3D space. Equality between two Vertex values is
// bitwise — mgl32.Vec3 is backed by [3]float32, so Go's == already gives
// us the bit-equal comparison the topology engine relies on (no NaN
// normalization, no epsilon).
type Vertex = mgl32.Vec3

// Facet is one oriented triangle: a nominal normal plus three vertices.
type Facet struct {
	Normal Vertex
	Vertex [3]Vertex
}

// unmatched marks a neighbor slot with no connected facet.
const unmatched int32 = -1

// NeighborRecord is parallel to a Mesh's facet slice, same index.
//
// Neighbor[e] == -1 means local edge e (running from Facet.Vertex[e] to
// Facet.Vertex[(e+1)%3]) is unmatched; otherwise it names the facet on
// the far side of that edge.
//
// WhichVertexNot[e] is in 0..5: (value % 3) is the local vertex index in
// the neighbor that is NOT on the shared edge; value >= 3 additionally
// flags that the two facets traverse the shared edge in the same
// direction (an orientation mismatch — a "backwards" pairing).
type NeighborRecord struct {
	Neighbor       [3]int32
	WhichVertexNot [3]uint8
}

// Stats holds the running counters the topology engine maintains
// alongside every mutation. The connected_facets_k_edge counters use the
// source's cumulative bucketing convention (see UpdateConnectsRemove1
// and RemoveFacet) — they
// are not authoritative for topology verification; reconstruct
// connectivity from NeighborRecord when in doubt.
type Stats struct {
	ConnectedEdges       int
	ConnectedFacets1Edge int
	ConnectedFacets2Edge int
	ConnectedFacets3Edge int
	DegenerateFacets     int
	FacetsRemoved        int
	FacetsAdded          int
	EdgesFixed           int
	BackwardsEdges       int
	Malloced             int
	Freed                int
	Collisions           int
	ShortestEdge         float32
}

// Mesh owns the facet sequence and its parallel neighbor sequence, plus
// the bounding box and running Stats. It is the single mutable value the
// topology engine operates on; all of its mutators are exclusive
// (single-threaded, per spec).
type Mesh struct {
	Facets    []Facet
	Neighbors []NeighborRecord
	Min       Vertex
	Max       Vertex
	Stats     Stats
}

// New builds a Mesh from a facet slice already populated by a loader,
// with the given bounding box. Neighbor records are allocated empty
// (zero value); callers run CheckFacetsExact before relying on them.
func New(facets []Facet, min, max Vertex) *Mesh {
	return &Mesh{
		Facets:    facets,
		Neighbors: make([]NeighborRecord, len(facets)),
		Min:       min,
		Max:       max,
		Stats:     Stats{ShortestEdge: maxFloat32},
	}
}

// maxFloat32 seeds Stats.ShortestEdge high so the exact pass can only
// lower it.
const maxFloat32 = 3.402823466e+38

// NumFacets returns the current number of live facets.
func (m *Mesh) NumFacets() int {
	return len(m.Facets)
}

// UnconnectedCount returns how many of facet f's three neighbor slots
// are still unmatched (-1).
func (m *Mesh) UnconnectedCount(f int32) int {
	n := &m.Neighbors[f]
	count := 0
	for _, v := range n.Neighbor {
		if v == unmatched {
			count++
		}
	}
	return count
}

// UpdateConnectsRemove1 drops facetNum's contribution to the
// connected_facets_k_edge buckets by one level, matching
// stl_update_connects_remove_1: inspect the facet's CURRENT neighbor
// count and decrement the single bucket that count maps to.
func (m *Mesh) UpdateConnectsRemove1(facetNum int32) {
	switch m.UnconnectedCount(facetNum) {
	case 0:
		m.Stats.ConnectedFacets3Edge--
	case 1:
		m.Stats.ConnectedFacets2Edge--
	case 2:
		m.Stats.ConnectedFacets1Edge--
	}
}

// RemoveFacet deletes facet f by swap-remove: the last facet in the
// sequence migrates into slot f, and every neighbor that referenced the
// old last index is rewritten to point at f instead. This is the single
// primitive responsible for keeping NeighborRecord free of dangling
// indices across a removal — every other mutator that destroys a facet
// goes through this.
//
// Before the swap, f's own contribution to the connected_facets_k_edge
// buckets is removed (stl_remove_facet's accounting), and
// Stats.FacetsRemoved is incremented.
func (m *Mesh) RemoveFacet(f int32) error {
	if f < 0 || int(f) >= len(m.Facets) {
		return ErrFacetIndexOutOfRange
	}

	m.Stats.FacetsRemoved++
	switch m.UnconnectedCount(f) {
	case 2:
		m.Stats.ConnectedFacets1Edge--
	case 1:
		m.Stats.ConnectedFacets2Edge--
		m.Stats.ConnectedFacets1Edge--
	case 0:
		m.Stats.ConnectedFacets3Edge--
		m.Stats.ConnectedFacets2Edge--
		m.Stats.ConnectedFacets1Edge--
	}

	last := int32(len(m.Facets) - 1)
	m.Facets[f] = m.Facets[last]
	m.Neighbors[f] = m.Neighbors[last]
	m.Facets = m.Facets[:last]
	m.Neighbors = m.Neighbors[:last]

	if f == last {
		// The removed facet was the last one; nothing points back at it.
		return nil
	}

	moved := m.Neighbors[f]
	for e := 0; e < 3; e++ {
		g := moved.Neighbor[e]
		if g == unmatched {
			continue
		}
		back := (int(moved.WhichVertexNot[e])%3 + 1) % 3
		if m.Neighbors[g].Neighbor[back] != last {
			return ErrBrokenInvariant
		}
		m.Neighbors[g].Neighbor[back] = f
	}
	return nil
}

// AddFacet appends a new facet with all-unmatched neighbor slots and
// increments Stats.FacetsAdded. Unlike the original's chunked realloc,
// Go's append already amortizes growth; we keep facets_added as an
// observable counter only.
func (m *Mesh) AddFacet(facet Facet) int32 {
	m.Facets = append(m.Facets, facet)
	m.Neighbors = append(m.Neighbors, NeighborRecord{Neighbor: [3]int32{unmatched, unmatched, unmatched}})
	m.Stats.FacetsAdded++
	return int32(len(m.Facets) - 1)
}

// IsDegenerate reports whether facet f has two bit-equal vertices.
func (m *Mesh) IsDegenerate(f int32) bool {
	v := &m.Facets[f].Vertex
	return v[0] == v[1] || v[1] == v[2] || v[0] == v[2]
}
