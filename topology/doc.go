// Package topology implements the mesh repair pipeline: reconstructing
// facet adjacency from raw triangle soup, matching edges exactly and
// then within a tolerance, stitching near-coincident vertices, removing
// degenerate and unconnected facets, and closing holes by walking
// triangle fans.
//
// The documented call order is:
//
//	CheckFacetsExact -> CheckFacetsNearby (optional) -> VerifyNeighbors ->
//	RemoveUnconnectedFacets -> FillHoles (optional)
//
// Each exported function operates on a *mesh.Mesh in place and is safe
// to call independently; Pipeline.Run is a convenience that drives the
// documented order for callers who don't need to interleave stages with
// their own logic.
package topology
