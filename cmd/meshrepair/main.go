// Command meshrepair reads an STL file, runs the topology repair
// pipeline over it, and writes the repaired mesh back out.
//
// Usage:
//
//	meshrepair -in part.stl -out part-fixed.stl -tolerance 1e-4 -fill
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gomesh/topology/meshio"
	"github.com/gomesh/topology/topology"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "meshrepair:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("meshrepair", flag.ContinueOnError)
	in := fs.String("in", "", "path to the input STL file (binary or ASCII)")
	out := fs.String("out", "", "path to write the repaired STL file (defaults to -in, overwriting it)")
	ascii := fs.Bool("ascii", false, "write the output in ASCII STL instead of binary")
	tolerance := fs.Float64("tolerance", 0, "nearby-match tolerance; 0 disables the tolerance pass")
	fill := fs.Bool("fill", false, "fan-fill any holes left after matching")
	verify := fs.Bool("verify", true, "run neighbor verification and log any diagnostics found")
	verbose := fs.Bool("v", false, "log at debug level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("-in is required")
	}
	if *out == "" {
		*out = *in
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	f, err := os.Open(*in)
	if err != nil {
		return fmt.Errorf("open %s: %w", *in, err)
	}
	m, err := meshio.Read(f)
	closeErr := f.Close()
	if err != nil {
		return fmt.Errorf("read %s: %w", *in, err)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", *in, closeErr)
	}

	pipeline := topology.NewPipeline(topology.Config{
		Tolerance: float32(*tolerance),
		FillHoles: *fill,
		Verify:    *verify,
		Logger:    logger,
	})

	report, err := pipeline.Run(m)
	if err != nil {
		return fmt.Errorf("repair %s: %w", *in, err)
	}

	w, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	if *ascii {
		err = meshio.WriteASCII(w, m, "meshrepair")
	} else {
		err = meshio.WriteBinary(w, m)
	}
	closeErr = w.Close()
	if err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	if closeErr != nil {
		return fmt.Errorf("close %s: %w", *out, closeErr)
	}

	fmt.Printf("facets: %d  degenerate removed: %d  facets removed: %d  facets added: %d  edges fixed: %d  diagnostics: %d\n",
		m.NumFacets(), report.Stats.DegenerateFacets, report.Stats.FacetsRemoved,
		report.Stats.FacetsAdded, report.Stats.EdgesFixed, len(report.Diagnostics))
	return nil
}
