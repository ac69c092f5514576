// Package mesh defines the core data model shared by the topology engine:
// Vertex, Facet, NeighborRecord, Stats and the Mesh container that owns
// them.
//
// Mesh is a mutable indexed graph: facets are stored in a dense slice and
// removed with swap-remove, so facet indices are NOT stable across a
// removal. NeighborRecord is parallel to the facet slice and must never
// be allowed to dangle — RemoveFacet is the single primitive responsible
// for rewriting back-pointers when the last facet migrates into a freed
// slot.
package mesh
