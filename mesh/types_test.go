package mesh

import "testing"

func tri(a, b, c Vertex) Facet {
	return Facet{Vertex: [3]Vertex{a, b, c}}
}

func TestIsDegenerate(t *testing.T) {
	m := New([]Facet{
		tri(Vertex{0, 0, 0}, Vertex{1, 0, 0}, Vertex{0, 1, 0}),
		tri(Vertex{0, 0, 0}, Vertex{0, 0, 0}, Vertex{0, 1, 0}),
	}, Vertex{0, 0, 0}, Vertex{1, 1, 0})

	if m.IsDegenerate(0) {
		t.Error("facet 0 should not be degenerate")
	}
	if !m.IsDegenerate(1) {
		t.Error("facet 1 should be degenerate (v0 == v1)")
	}
}

func TestRemoveFacetRewritesBackPointers(t *testing.T) {
	// Three facets: facet 0 is unconnected; facets 1 and 2 are neighbors
	// across local edge 0 of each. Removing facet 0 migrates facet 2 (the
	// last index) into slot 0, so facet 1's back-pointer must be rewritten
	// from 2 to 0.
	m := New([]Facet{
		tri(Vertex{5, 5, 5}, Vertex{6, 5, 5}, Vertex{5, 6, 5}),
		tri(Vertex{0, 0, 0}, Vertex{1, 0, 0}, Vertex{0, 1, 0}),
		tri(Vertex{1, 0, 0}, Vertex{0, 0, 0}, Vertex{1, 1, 0}),
	}, Vertex{0, 0, 0}, Vertex{6, 6, 6})

	for i := range m.Neighbors {
		m.Neighbors[i].Neighbor = [3]int32{-1, -1, -1}
	}
	m.Neighbors[1].Neighbor[0] = 2
	m.Neighbors[1].WhichVertexNot[0] = 2
	m.Neighbors[2].Neighbor[0] = 1
	m.Neighbors[2].WhichVertexNot[0] = 2

	if err := m.RemoveFacet(0); err != nil {
		t.Fatalf("RemoveFacet(0): %v", err)
	}
	if m.NumFacets() != 2 {
		t.Fatalf("expected 2 facets, got %d", m.NumFacets())
	}
	if m.Facets[0].Vertex[0] != (Vertex{1, 0, 0}) {
		t.Errorf("facet 2 did not migrate into slot 0: got %v", m.Facets[0].Vertex)
	}
	if m.Neighbors[0].Neighbor[0] != 1 || m.Neighbors[1].Neighbor[0] != 0 {
		t.Errorf("facet 1's back-pointer must follow the migrated facet to slot 0")
	}

	// Facets 0 and 1 now point at each other. Removing facet 0 while
	// facet 1 (the last index) still references it leaves the migrating
	// facet's back-pointer aimed at slot 0 rather than at the old last
	// index, which RemoveFacet reports as a broken invariant.
	if err := m.RemoveFacet(0); err != ErrBrokenInvariant {
		t.Fatalf("RemoveFacet(0) on a still-referenced facet: err = %v, want ErrBrokenInvariant", err)
	}
}

func TestRemoveFacetOutOfRange(t *testing.T) {
	m := New(nil, Vertex{}, Vertex{})
	if err := m.RemoveFacet(0); err != ErrFacetIndexOutOfRange {
		t.Errorf("expected ErrFacetIndexOutOfRange, got %v", err)
	}
}

func TestAddFacetInitializesUnmatched(t *testing.T) {
	m := New(nil, Vertex{}, Vertex{})
	idx := m.AddFacet(tri(Vertex{0, 0, 0}, Vertex{1, 0, 0}, Vertex{0, 1, 0}))
	if idx != 0 {
		t.Fatalf("expected index 0, got %d", idx)
	}
	if m.Stats.FacetsAdded != 1 {
		t.Errorf("FacetsAdded = %d, want 1", m.Stats.FacetsAdded)
	}
	for e, n := range m.Neighbors[0].Neighbor {
		if n != -1 {
			t.Errorf("neighbor slot %d = %d, want -1", e, n)
		}
	}
}
