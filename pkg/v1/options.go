package snapline

import (
	"io"
	"runtime"
)

// SnapOptions holds the snapping thresholds.
//
// Distances are in the units of the shared coordinate reference system.
type SnapOptions struct {
	// MaxSegmentLength is the densification threshold: segments longer than
	// this gain evenly spaced intermediate vertices before snapping, so long
	// segments get multiple candidate snap points.
	// Default: 10 distance units.
	MaxSegmentLength float64

	// MaxSnapDistance is the farthest a vertex may move onto a reference
	// edge. Vertices with no edge within this distance are kept as-is,
	// which prevents snapping to unrelated features that merely happen to
	// be closest.
	// Default: 15 distance units.
	MaxSnapDistance float64

	// NearestCandidates is how many bounding-box-nearest reference edges are
	// examined per vertex; the true-distance minimum among them wins.
	// The default of 1 bounds cost to near-constant per vertex but can pick
	// a farther true-nearest point than a lower-ranked bounding-box
	// candidate would; widen it when precision matters more than speed.
	// Default: 1.
	NearestCandidates int
}

// DefaultSnapOptions returns snapping options with the documented defaults.
func DefaultSnapOptions() SnapOptions {
	return SnapOptions{
		MaxSegmentLength:  10,
		MaxSnapDistance:   15,
		NearestCandidates: 1,
	}
}

// BatchOptions controls batch snapping behavior and error reporting.
type BatchOptions struct {
	// Parallel enables concurrent snapping.
	// When true, lines are distributed over multiple worker goroutines.
	Parallel bool

	// Workers specifies the number of worker goroutines.
	// If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// Progress is an optional callback for tracking batch progress.
	// Called after each line is processed (snapped or fallen back).
	// Parameters: (done, total) where done counts lines processed so far.
	Progress func(done, total int)

	// ErrorLog is an optional writer for per-line fallback reporting.
	// Each fallback is written here with the line ordinal and reason.
	ErrorLog io.Writer
}

// DefaultBatchOptions returns batch options with sensible defaults.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		Parallel: true,
		Workers:  runtime.NumCPU(),
	}
}
