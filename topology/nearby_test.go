package topology

import "testing"

func TestCheckFacetsNearbyClosesDriftedSurface(t *testing.T) {
	m := newMesh(splitTetrahedron())

	if err := CheckFacetsExact(m); err != nil {
		t.Fatalf("CheckFacetsExact: %v", err)
	}
	if m.Stats.ConnectedFacets3Edge == m.NumFacets() {
		t.Fatalf("fixture should not be fully connected before the nearby pass")
	}

	if err := CheckFacetsNearby(m, 1e-4); err != nil {
		t.Fatalf("CheckFacetsNearby: %v", err)
	}

	if err := CheckFacetsExact(m); err != nil {
		t.Fatalf("CheckFacetsExact after stitch: %v", err)
	}
	if m.Stats.ConnectedFacets3Edge != m.NumFacets() {
		t.Fatalf("mesh not fully connected after nearby matching and re-check: %+v", m.Stats)
	}
}

func TestCheckFacetsNearbyNoOpWhenAlreadyConnected(t *testing.T) {
	m := newMesh(tetrahedron())
	if err := CheckFacetsExact(m); err != nil {
		t.Fatalf("CheckFacetsExact: %v", err)
	}
	before := m.Stats.EdgesFixed

	if err := CheckFacetsNearby(m, 1e-4); err != nil {
		t.Fatalf("CheckFacetsNearby: %v", err)
	}
	if m.Stats.EdgesFixed != before {
		t.Fatalf("EdgesFixed changed on an already fully-connected mesh")
	}
}
