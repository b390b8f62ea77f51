// Command snapline snaps line geometries from one GeoJSON file onto the
// nearest edges of linear features from another, writing the corrected
// lines to a third.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	snapline "github.com/Harsh17uconn/Geospatial-Line-Snapping-Tool/pkg/v1"
)

type cliOptions struct {
	linesPath    string
	featuresPath string
	outputPath   string

	linesCRS    string
	featuresCRS string

	maxSegmentLength float64
	maxSnapDistance  float64
	candidates       int

	workers int
	serial  bool
	verbose bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{}
	defaults := snapline.DefaultSnapOptions()

	cmd := &cobra.Command{
		Use:   "snapline",
		Short: "Snap line geometries onto nearby reference feature edges",
		Long: `snapline aligns line geometries onto the nearest edges of a reference
feature set, within a distance tolerance. It is used for geospatial data
cleaning, e.g. aligning road centerlines to parcel boundaries.

Lines that cannot be snapped keep their original geometry and are flagged
in the output; only an empty reference set aborts the run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.linesPath, "lines", "", "input line GeoJSON file (required)")
	flags.StringVar(&opts.featuresPath, "features", "", "reference feature GeoJSON file (required)")
	flags.StringVar(&opts.outputPath, "output", "", "output GeoJSON file (required)")
	flags.StringVar(&opts.linesCRS, "lines-crs", "", "PROJ.4 definition of the input line CRS")
	flags.StringVar(&opts.featuresCRS, "features-crs", "", "PROJ.4 definition of the reference feature CRS")
	flags.Float64Var(&opts.maxSegmentLength, "max-segment-length", defaults.MaxSegmentLength,
		"maximum segment length before vertices are inserted, in CRS units")
	flags.Float64Var(&opts.maxSnapDistance, "max-snap-distance", defaults.MaxSnapDistance,
		"maximum snapping distance, in CRS units")
	flags.IntVar(&opts.candidates, "candidates", defaults.NearestCandidates,
		"bounding-box-nearest edges examined per vertex")
	flags.IntVar(&opts.workers, "workers", 0, "worker goroutines (0 = number of CPUs)")
	flags.BoolVar(&opts.serial, "serial", false, "process lines one at a time")
	flags.BoolVar(&opts.verbose, "verbose", false, "debug logging")

	for _, required := range []string{"lines", "features", "output"} {
		cobra.CheckErr(cmd.MarkFlagRequired(required))
	}

	return cmd
}

func run(opts *cliOptions) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	lines, err := snapline.LoadLines(opts.linesPath)
	if err != nil {
		logger.Error("loading input lines failed", "error", err)
		return err
	}

	edges, err := snapline.LoadEdges(opts.featuresPath)
	if err != nil {
		logger.Error("loading reference features failed", "error", err)
		return err
	}
	logger.Info("inputs loaded", "lines", len(lines), "edges", len(edges))

	// Reconcile coordinate reference systems: all distance arithmetic
	// assumes the input lines' CRS.
	if opts.featuresCRS != opts.linesCRS {
		if opts.featuresCRS == "" || opts.linesCRS == "" {
			err := fmt.Errorf("CRS mismatch: both --lines-crs and --features-crs must be set to reproject")
			logger.Error("CRS reconciliation failed", "error", err)
			return err
		}
		tf, err := snapline.NewTransform(opts.featuresCRS, opts.linesCRS)
		if err != nil {
			logger.Error("CRS reconciliation failed", "error", err)
			return err
		}
		if edges, err = snapline.ReprojectLines(edges, tf); err != nil {
			logger.Error("reprojecting reference features failed", "error", err)
			return err
		}
		logger.Info("reference features reprojected", "target", opts.linesCRS)
	}

	snapper, err := snapline.NewSnapper(edges, snapline.SnapOptions{
		MaxSegmentLength:  opts.maxSegmentLength,
		MaxSnapDistance:   opts.maxSnapDistance,
		NearestCandidates: opts.candidates,
	})
	if err != nil {
		logger.Error("building spatial index failed", "error", err)
		return err
	}

	batch := snapline.BatchOptions{
		Parallel: !opts.serial,
		Workers:  opts.workers,
	}

	results := snapper.SnapLines(lines, batch)
	snapped := logResults(logger, results)

	if err := snapline.SaveResults(opts.outputPath, results); err != nil {
		logger.Error("writing output failed", "error", err)
		return err
	}

	logger.Info("snapping complete",
		"lines", len(results),
		"snapped", snapped,
		"fallbacks", len(results)-snapped,
		"output", opts.outputPath,
	)
	return nil
}

// logResults warns about every line that kept its original geometry and
// returns the number snapped.
func logResults(logger *slog.Logger, results []snapline.Result) int {
	snapped := 0
	for i, r := range results {
		if r.Snapped {
			snapped++
			continue
		}
		logger.Warn("line kept original geometry", "line", i, "reason", r.Err)
	}
	return snapped
}
