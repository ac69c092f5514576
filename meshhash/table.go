package meshhash

import "github.com/gomesh/topology/mesh"

// TableSize (M) is the fixed prime bucket count. The table is never
// resized; a better hash is a fine substitute, but changing the number
// of buckets changes the observable Stats.Collisions count.
const TableSize = 81397

type node struct {
	edge HashEdge
	next *node
}

// MatchFunc is invoked when two edges with a bit-equal Key and distinct
// FacetNumber are found. The matched existing node is removed from the
// table immediately afterward.
type MatchFunc func(a, b HashEdge)

// Table is an open-chained hash table keyed on HashEdge.Key, scoped to a
// single matching pass. It mutates the Stats it was built with
// (Malloced, Freed, Collisions) exactly as each insert/match/free
// happens, so the pass's bookkeeping stays in lockstep with the table's
// lifetime.
type Table struct {
	heads []*node
	tail  *node
	stats *mesh.Stats
}

// NewTable allocates an empty table of TableSize buckets, each pointing
// at a shared tail sentinel, and resets the pass-scoped counters on
// stats.
func NewTable(stats *mesh.Stats) *Table {
	tail := &node{}
	tail.next = tail

	heads := make([]*node, TableSize)
	for i := range heads {
		heads[i] = tail
	}

	stats.Malloced = 0
	stats.Freed = 0
	stats.Collisions = 0

	return &Table{heads: heads, tail: tail, stats: stats}
}

func bucketFor(key [24]byte) int {
	h := int(key[0])/23 + int(key[1])/19 + int(key[2])/17 +
		int(key[3])/13 + int(key[4])/11 + int(key[5])/7
	return h % TableSize
}

func matches(a, b HashEdge) bool {
	return a.FacetNumber != b.FacetNumber && a.Key == b.Key
}

// Insert walks edge's bucket chain. If it finds an existing edge that
// matches (bit-equal key, different facet), onMatch is called with
// (edge, existing) and the existing node is deleted from the chain.
// Otherwise edge is appended as a new node at the head (empty bucket) or
// tail (non-empty) of the chain, and Stats.Collisions counts every
// non-matching step taken beyond the first.
func (t *Table) Insert(edge HashEdge, onMatch MatchFunc) {
	bucket := bucketFor(edge.Key)
	link := t.heads[bucket]

	if link == t.tail {
		t.heads[bucket] = &node{edge: edge, next: t.tail}
		t.stats.Malloced++
		return
	}

	if matches(edge, link.edge) {
		onMatch(edge, link.edge)
		t.heads[bucket] = link.next
		t.stats.Freed++
		return
	}

	for {
		if link.next == t.tail {
			link.next = &node{edge: edge, next: t.tail}
			t.stats.Malloced++
			t.stats.Collisions++
			return
		}
		if matches(edge, link.next.edge) {
			onMatch(edge, link.next.edge)
			link.next = link.next.next
			t.stats.Freed++
			return
		}
		link = link.next
		t.stats.Collisions++
	}
}

// Free tears down the table, accounting every still-linked node (the
// edges that never found a match during the pass) as freed. After Free
// returns, Stats.Malloced == Stats.Freed.
func (t *Table) Free() {
	for i, head := range t.heads {
		for head != t.tail {
			head = head.next
			t.stats.Freed++
		}
		t.heads[i] = t.tail
	}
}
