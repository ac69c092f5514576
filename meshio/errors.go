package meshio

import "errors"

// ErrEmptyMesh indicates a write was attempted on a mesh with zero facets.
var ErrEmptyMesh = errors.New("meshio: mesh has no facets")

// ErrTruncated indicates a binary STL file ended before its declared
// facet count was satisfied.
var ErrTruncated = errors.New("meshio: file truncated before declared facet count")

// ErrNotSTL indicates the input did not look like either STL variant.
var ErrNotSTL = errors.New("meshio: input is not a recognizable STL stream")
