package meshhash

import (
	"testing"

	"github.com/gomesh/topology/mesh"
)

func TestInsertMatchesAndFrees(t *testing.T) {
	stats := &mesh.Stats{}
	table := NewTable(stats)

	a := mesh.Vertex{0, 0, 0}
	b := mesh.Vertex{1, 0, 0}

	e1 := CanonicalizeExact(stats, 0, 0, a, b)
	e2 := CanonicalizeExact(stats, 1, 0, b, a)

	matched := false
	table.Insert(e1, func(x, y HashEdge) { t.Fatal("unexpected match on first insert") })
	table.Insert(e2, func(x, y HashEdge) { matched = true })

	if !matched {
		t.Error("expected e1 and e2 to match (same undirected edge, different facets)")
	}
	if stats.Malloced != 1 {
		t.Errorf("Malloced = %d, want 1 (e2 deleted e1's node without allocating)", stats.Malloced)
	}
	if stats.Freed != 1 {
		t.Errorf("Freed = %d, want 1", stats.Freed)
	}

	table.Free()
	if stats.Malloced != stats.Freed {
		t.Errorf("after Free: Malloced=%d Freed=%d, want equal", stats.Malloced, stats.Freed)
	}
}

func TestInsertLeavesUnmatchedEdgesForFree(t *testing.T) {
	stats := &mesh.Stats{}
	table := NewTable(stats)

	e := CanonicalizeExact(stats, 0, 0, mesh.Vertex{0, 0, 0}, mesh.Vertex{1, 0, 0})
	table.Insert(e, func(a, b HashEdge) { t.Fatal("no match expected") })

	if stats.Malloced != 1 || stats.Freed != 0 {
		t.Fatalf("Malloced=%d Freed=%d before Free, want 1,0", stats.Malloced, stats.Freed)
	}

	table.Free()
	if stats.Malloced != stats.Freed {
		t.Errorf("Malloced=%d Freed=%d after Free, want equal", stats.Malloced, stats.Freed)
	}
}

func TestSameFacetEdgesNeverMatch(t *testing.T) {
	stats := &mesh.Stats{}
	table := NewTable(stats)

	a := mesh.Vertex{0, 0, 0}
	b := mesh.Vertex{1, 0, 0}
	e1 := CanonicalizeExact(stats, 7, 0, a, b)
	e2 := CanonicalizeExact(stats, 7, 1, b, a)

	table.Insert(e1, func(x, y HashEdge) { t.Fatal("unexpected match") })
	table.Insert(e2, func(x, y HashEdge) { t.Fatal("same-facet edges must never match") })

	table.Free()
	if stats.Malloced != stats.Freed {
		t.Errorf("Malloced=%d Freed=%d, want equal", stats.Malloced, stats.Freed)
	}
}
