package topology

import "github.com/gomesh/topology/mesh"

// pivotStep computes, for the current vnot encoding (possibly carrying
// the +3 orientation flag) and direction bit, which local vertex is the
// pivot being rewritten and which local edge to cross next. direction
// flips only when vnot carries the orientation flag, which is how the
// walk compensates for crossing an edge whose two facets disagreed on
// traversal direction.
func pivotStep(vnot, direction int) (pivot, nextEdge, nextDirection int) {
	if vnot > 2 {
		if direction == 0 {
			pivot = (vnot + 2) % 3
			nextEdge = pivot
			nextDirection = 1
		} else {
			pivot = (vnot + 1) % 3
			nextEdge = vnot % 3
			nextDirection = 0
		}
		return
	}
	if direction == 0 {
		pivot = (vnot + 1) % 3
		nextEdge = vnot
	} else {
		pivot = (vnot + 2) % 3
		nextEdge = pivot
	}
	nextDirection = direction
	return
}

// changeVertices walks the one-ring of facetNum starting from vnot (the
// local vertex not on the edge that was just matched), overwriting the
// pivot vertex that pivotStep derives from vnot with newVertex on every
// facet in the ring, until it crosses an unmatched edge. Returning to facetNum before reaching an unmatched
// edge means the ring cannot be oriented consistently (Möbius-like) and
// the operation aborts rather than loop forever or keep mutating.
func changeVertices(m *mesh.Mesh, facetNum int32, vnot int, newVertex mesh.Vertex) error {
	firstFacet := facetNum
	direction := 0

	for {
		var pivot, nextEdge int
		pivot, nextEdge, direction = pivotStep(vnot, direction)

		m.Facets[facetNum].Vertex[pivot] = newVertex

		vnot = int(m.Neighbors[facetNum].WhichVertexNot[nextEdge])
		next := m.Neighbors[facetNum].Neighbor[nextEdge]
		if next == -1 {
			return nil
		}
		facetNum = next
		if facetNum == firstFacet {
			return &FatalError{Op: "changeVertices", Facet: facetNum, Err: ErrMobiusWalk}
		}
	}
}
