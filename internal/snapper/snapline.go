package snapper

import (
	"github.com/paulmach/orb"
)

// Config holds the snapping thresholds for one batch.
type Config struct {
	// MaxSegmentLength is the densification threshold: no segment of a
	// processed line is longer than this before snapping.
	MaxSegmentLength float64

	// MaxSnapDistance is the farthest a vertex may move onto a reference
	// edge. Vertices with no edge within this distance stay put.
	MaxSnapDistance float64

	// NearestCandidates is how many bounding-box-nearest edges are examined
	// per vertex. Values below 1 are treated as 1.
	NearestCandidates int
}

// Result is the outcome of snapping one line.
//
// Line is always usable: the snapped candidate when Snapped is true, the
// exact unmodified input otherwise. Err carries the fallback reason and is
// nil on success.
type Result struct {
	Line    orb.LineString
	Snapped bool
	Err     error
}

// SnapLine densifies line, snaps every vertex against the index, and returns
// the reassembled line when it passes the validity check.
//
// Any failure (a degenerate input, a computational fault, or output that
// stays invalid after the repair step) is absorbed into a fallback Result
// carrying the original line, never an error return. A faulty line must not
// abort or corrupt the rest of the batch.
func SnapLine(line orb.LineString, index *EdgeIndex, cfg Config) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Line: line, Err: &ErrSnapFault{Cause: r}}
		}
	}()

	if len(line) < 2 {
		// Nothing to densify; pass the original through.
		return Result{Line: line, Err: &ErrDegenerateLine{Points: len(line)}}
	}

	k := cfg.NearestCandidates
	if k < 1 {
		k = 1
	}

	densified := Densify(line, cfg.MaxSegmentLength)

	snapped := make(orb.LineString, len(densified))
	for i, p := range densified {
		snapped[i] = SnapVertex(p, index, cfg.MaxSnapDistance, k)
	}

	if err := validateLine(snapped); err != nil {
		return Result{Line: line, Err: err}
	}

	if selfIntersects(snapped) {
		// Snapping artifacts: duplicate vertices sitting on the line and
		// collinear backtracking both register as self-contact.
		repaired := removeSpikes(dedupeConsecutive(snapped))
		if validateLine(repaired) != nil || selfIntersects(repaired) {
			return Result{Line: line, Err: &ErrInvalidSnappedLine{
				Reason: "self-intersecting after repair",
			}}
		}
		snapped = repaired
	}

	return Result{Line: snapped, Snapped: true}
}
