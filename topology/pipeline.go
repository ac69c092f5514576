package topology

import (
	"log/slog"

	"github.com/gomesh/topology/mesh"
)

// Config controls one Pipeline.Run pass.
type Config struct {
	// Tolerance is the quantization cell size CheckFacetsNearby uses to
	// match edges exact matching left unmatched. Zero disables the
	// nearby pass entirely.
	Tolerance float32

	// FillHoles, when true, fans new triangles across any boundary left
	// after both matching passes.
	FillHoles bool

	// Verify, when true, runs VerifyNeighbors after repair and reports
	// any diagnostic found in Report.Diagnostics without failing the
	// pass — the caller decides what a non-empty diagnostic set means.
	Verify bool

	Logger *slog.Logger
}

// Report summarizes one Pipeline.Run pass.
type Report struct {
	Stats       mesh.Stats
	Diagnostics []Diagnostic
}

// Pipeline runs the repair passes over a single Mesh in a fixed order:
// exact matching (which also removes degenerate facets found at scan
// time), tolerance matching when Tolerance > 0, verification when Verify
// is set, removal of degenerate and unconnected facets, then hole filling
// when FillHoles is set.
type Pipeline struct {
	Config
}

// NewPipeline builds a Pipeline with cfg, defaulting a nil Logger to
// slog.Default().
func NewPipeline(cfg Config) *Pipeline {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Pipeline{Config: cfg}
}

// Run executes the repair pipeline against m and returns a Report. A
// FatalError from any stage aborts the remaining stages immediately.
func (p *Pipeline) Run(m *mesh.Mesh) (Report, error) {
	log := p.Logger
	log.Info("repair pass starting", "facets", m.NumFacets())

	if err := CheckFacetsExact(m); err != nil {
		log.Error("exact matching failed", "err", err)
		return Report{Stats: m.Stats}, err
	}
	log.Info("exact matching done",
		"degenerate_removed", m.Stats.DegenerateFacets,
		"connected_edges", m.Stats.ConnectedEdges)

	if p.Tolerance > 0 {
		if err := CheckFacetsNearby(m, p.Tolerance); err != nil {
			log.Error("nearby matching failed", "err", err)
			return Report{Stats: m.Stats}, err
		}
		log.Info("nearby matching done", "edges_fixed", m.Stats.EdgesFixed)
	}

	var diagnostics []Diagnostic
	if p.Verify {
		diagnostics = VerifyNeighbors(m)
		if len(diagnostics) > 0 {
			log.Warn("verification found inconsistent back-references", "count", len(diagnostics))
		}
	}

	if err := RemoveUnconnectedFacets(m); err != nil {
		log.Error("unconnected removal failed", "err", err)
		return Report{Stats: m.Stats}, err
	}

	if p.FillHoles {
		if err := FillHoles(m); err != nil {
			log.Error("hole filling failed", "err", err)
			return Report{Stats: m.Stats}, err
		}
		log.Info("hole filling done", "facets_added", m.Stats.FacetsAdded)
	}

	log.Info("repair pass complete", "facets", m.NumFacets())
	return Report{Stats: m.Stats, Diagnostics: diagnostics}, nil
}
