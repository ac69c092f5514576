package topology

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPipelineRunClosesDriftedPuncturedMesh(t *testing.T) {
	facets := splitTetrahedron()
	facets = facets[1:] // also punch a hole, so both passes and fill all fire

	m := newMesh(facets)
	p := NewPipeline(Config{
		Tolerance: 1e-4,
		FillHoles: true,
		Verify:    true,
	})

	report, err := p.Run(m)
	require.NoError(t, err)
	require.Emptyf(t, report.Diagnostics, "Run left verify diagnostics: %+v", report.Diagnostics)

	for i := 0; i < m.NumFacets(); i++ {
		for e := 0; e < 3; e++ {
			require.NotEqualf(t, int32(-1), m.Neighbors[i].Neighbor[e],
				"facet %d edge %d unmatched after full pipeline run", i, e)
		}
	}
}

func TestPipelineRunSkipsNearbyPassWhenToleranceZero(t *testing.T) {
	m := newMesh(tetrahedron())
	p := NewPipeline(Config{})

	_, err := p.Run(m)
	require.NoError(t, err)
	require.Equal(t, 0, m.Stats.EdgesFixed, "EdgesFixed should stay 0 with Tolerance disabled")
}
