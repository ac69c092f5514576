package meshnormal

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gomesh/topology/mesh"
)

// Fix recomputes f's normal from its vertex winding via the cross
// product (v1-v0) x (v2-v0), normalized. A degenerate triangle (zero
// cross product) is left with a zero vector rather than dividing by
// zero; callers that care should check mesh.Mesh.IsDegenerate first.
func Fix(f *mesh.Facet) {
	e1 := f.Vertex[1].Sub(f.Vertex[0])
	e2 := f.Vertex[2].Sub(f.Vertex[0])
	n := e1.Cross(e2)

	length := n.Len()
	if length == 0 {
		f.Normal = mgl32.Vec3{0, 0, 0}
		return
	}
	f.Normal = n.Mul(1 / length)
}

// Agrees reports whether candidate points into the same half-space as
// reference (positive dot product). It is a standalone check: Fix does
// not call it, and FillHoles only calls Fix.
func Agrees(reference, candidate mesh.Vertex) bool {
	return reference.Dot(candidate) > 0
}
