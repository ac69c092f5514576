// Package meshnormal computes and corrects facet normal vectors.
//
// It is the external collaborator the topology engine calls out to
// whenever it fabricates a new facet (hole filling): the engine knows
// vertex positions but has no opinion on which way a triangle should
// face, so normal computation and consistency fixing live here,
// decoupled from mesh.Mesh's pure connectivity bookkeeping.
package meshnormal
