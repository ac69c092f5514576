package meshnormal

import (
	"math"
	"testing"

	"github.com/gomesh/topology/mesh"
)

func TestFixComputesUnitNormalForRightTriangle(t *testing.T) {
	f := mesh.Facet{Vertex: [3]mesh.Vertex{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}}
	Fix(&f)

	want := mesh.Vertex{0, 0, 1}
	for i := 0; i < 3; i++ {
		if math.Abs(float64(f.Normal[i]-want[i])) > 1e-6 {
			t.Fatalf("Normal = %v, want %v", f.Normal, want)
		}
	}
}

func TestFixZeroesNormalForDegenerateTriangle(t *testing.T) {
	f := mesh.Facet{Vertex: [3]mesh.Vertex{
		{0, 0, 0},
		{1, 0, 0},
		{1, 0, 0},
	}}
	Fix(&f)

	if f.Normal != (mesh.Vertex{0, 0, 0}) {
		t.Fatalf("Normal = %v, want zero vector for a degenerate triangle", f.Normal)
	}
}

func TestAgreesSignMatchesDotProduct(t *testing.T) {
	if !Agrees(mesh.Vertex{0, 0, 1}, mesh.Vertex{0, 0, 0.5}) {
		t.Fatalf("expected aligned normals to agree")
	}
	if Agrees(mesh.Vertex{0, 0, 1}, mesh.Vertex{0, 0, -0.5}) {
		t.Fatalf("expected opposed normals to disagree")
	}
}
