package mesh

import "errors"

// ErrFacetIndexOutOfRange indicates a facet index outside [0, NumFacets).
var ErrFacetIndexOutOfRange = errors.New("mesh: facet index out of range")

// ErrBrokenInvariant indicates RemoveFacet found a neighbor back-pointer
// that did not point at the facet it expected to. This means the
// neighbor graph was already corrupt before the removal — a bug in the
// caller, not a recoverable condition.
var ErrBrokenInvariant = errors.New("mesh: neighbor back-pointer invariant violated")
