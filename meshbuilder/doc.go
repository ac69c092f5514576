// Package meshbuilder constructs small, deterministic test meshes:
// closed solids and the specific malformed variants (split vertices,
// degenerate triangles, isolated facets, punctured shells) exercised by
// the topology engine's scenario tests.
//
// Every constructor here is pure and deterministic, in the spirit of
// lvlath/builder's named Platonic-solid constructors: same name, same
// mesh, every call.
package meshbuilder
