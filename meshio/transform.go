package meshio

import (
	"math"

	"github.com/gomesh/topology/mesh"
)

// boundingBox recomputes min/max over every vertex of facets.
func boundingBox(facets []mesh.Facet) (min, max mesh.Vertex) {
	min = facets[0].Vertex[0]
	max = facets[0].Vertex[0]
	for _, f := range facets {
		for _, v := range f.Vertex {
			for i := 0; i < 3; i++ {
				if v[i] < min[i] {
					min[i] = v[i]
				}
				if v[i] > max[i] {
					max[i] = v[i]
				}
			}
		}
	}
	return
}

// Recompute refreshes m.Min/m.Max from its current facets. Callers run
// this after any transform that doesn't maintain the bounding box
// incrementally (rotation has no closed form for a moved bbox corner).
func Recompute(m *mesh.Mesh) {
	if m.NumFacets() == 0 {
		return
	}
	m.Min, m.Max = boundingBox(m.Facets)
}

// Translate shifts every vertex so the mesh's minimum corner lands at
// (x, y, z), carrying the bounding box along incrementally.
func Translate(m *mesh.Mesh, x, y, z float32) {
	dx, dy, dz := x-m.Min[0], y-m.Min[1], z-m.Min[2]
	for i := range m.Facets {
		for j := range m.Facets[i].Vertex {
			v := &m.Facets[i].Vertex[j]
			v[0] += dx
			v[1] += dy
			v[2] += dz
		}
	}
	m.Max[0] += dx
	m.Max[1] += dy
	m.Max[2] += dz
	m.Min = mesh.Vertex{x, y, z}
}

// Scale multiplies every coordinate, bounding box included, by factor.
func Scale(m *mesh.Mesh, factor float32) {
	for i := range m.Facets {
		for j := range m.Facets[i].Vertex {
			m.Facets[i].Vertex[j] = m.Facets[i].Vertex[j].Mul(factor)
		}
	}
	m.Min = m.Min.Mul(factor)
	m.Max = m.Max.Mul(factor)
}

func rotate2D(x, y, angleDegrees float32) (float32, float32) {
	radians := float64(angleDegrees) / 180.0 * math.Pi
	r := math.Hypot(float64(x), float64(y))
	theta := math.Atan2(float64(y), float64(x))
	return float32(r * math.Cos(theta+radians)), float32(r * math.Sin(theta+radians))
}

// RotateX rotates every vertex angleDegrees about the X axis (in the
// Y-Z plane) and recomputes the bounding box, since rotation has no
// incremental update for an axis-aligned box.
func RotateX(m *mesh.Mesh, angleDegrees float32) {
	for i := range m.Facets {
		for j := range m.Facets[i].Vertex {
			v := &m.Facets[i].Vertex[j]
			v[1], v[2] = rotate2D(v[1], v[2], angleDegrees)
		}
	}
	Recompute(m)
}

// RotateY rotates every vertex angleDegrees about the Y axis (in the
// Z-X plane).
func RotateY(m *mesh.Mesh, angleDegrees float32) {
	for i := range m.Facets {
		for j := range m.Facets[i].Vertex {
			v := &m.Facets[i].Vertex[j]
			v[2], v[0] = rotate2D(v[2], v[0], angleDegrees)
		}
	}
	Recompute(m)
}

// RotateZ rotates every vertex angleDegrees about the Z axis (in the
// X-Y plane).
func RotateZ(m *mesh.Mesh, angleDegrees float32) {
	for i := range m.Facets {
		for j := range m.Facets[i].Vertex {
			v := &m.Facets[i].Vertex[j]
			v[0], v[1] = rotate2D(v[0], v[1], angleDegrees)
		}
	}
	Recompute(m)
}

// MirrorXY flips every vertex's Z coordinate, reflecting the mesh
// across the X-Y plane, and swaps+negates the Z bounding box corners to
// match.
func MirrorXY(m *mesh.Mesh) {
	for i := range m.Facets {
		for j := range m.Facets[i].Vertex {
			m.Facets[i].Vertex[j][2] *= -1
		}
	}
	m.Min[2], m.Max[2] = -m.Max[2], -m.Min[2]
}

// MirrorYZ flips every vertex's X coordinate.
func MirrorYZ(m *mesh.Mesh) {
	for i := range m.Facets {
		for j := range m.Facets[i].Vertex {
			m.Facets[i].Vertex[j][0] *= -1
		}
	}
	m.Min[0], m.Max[0] = -m.Max[0], -m.Min[0]
}

// MirrorXZ flips every vertex's Y coordinate.
func MirrorXZ(m *mesh.Mesh) {
	for i := range m.Facets {
		for j := range m.Facets[i].Vertex {
			m.Facets[i].Vertex[j][1] *= -1
		}
	}
	m.Min[1], m.Max[1] = -m.Max[1], -m.Min[1]
}
