package topology

import (
	"github.com/gomesh/topology/mesh"
	"github.com/gomesh/topology/meshbuilder"
)

func tetrahedron() []mesh.Facet {
	return meshbuilder.Tetrahedron()
}

func splitTetrahedron() []mesh.Facet {
	return meshbuilder.SplitTetrahedron(1e-5)
}

func facetOf(a, b, c mesh.Vertex) mesh.Facet {
	return mesh.Facet{Vertex: [3]mesh.Vertex{a, b, c}}
}

func boundsOf(facets []mesh.Facet) (min, max mesh.Vertex) {
	min = mesh.Vertex{1e30, 1e30, 1e30}
	max = mesh.Vertex{-1e30, -1e30, -1e30}
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

func newMesh(facets []mesh.Facet) *mesh.Mesh {
	min, max := boundsOf(facets)
	return mesh.New(facets, min, max)
}
