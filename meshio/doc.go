// Package meshio loads and saves mesh.Mesh values in the STL format
// (binary and ASCII) and applies the affine transforms — translate,
// scale, axis rotation, and mirror — that a repair pipeline commonly
// runs before or after topology work.
//
// None of this package touches connectivity; it only reads, writes, and
// geometrically transforms facet vertices and recomputes the bounding
// box those transforms invalidate.
package meshio
