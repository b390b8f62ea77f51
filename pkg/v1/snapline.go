package snapline

import (
	"github.com/paulmach/orb"

	"github.com/Harsh17uconn/Geospatial-Line-Snapping-Tool/internal/snapper"
)

// ErrEmptyEdgeSet is returned by NewSnapper when there are no reference
// edges to snap to. This is the only batch-fatal condition: per-line
// failures degrade to fallback results instead.
var ErrEmptyEdgeSet = snapper.ErrEmptyEdgeSet

// Result is the outcome of snapping one line.
//
// Line is always usable: the snapped geometry when Snapped is true, the
// exact unmodified input line otherwise. Err carries the fallback reason
// (degenerate input, computational fault, or unrepairable output geometry)
// and is nil on success.
type Result = snapper.Result

// Snapper aligns input lines onto the nearest reference feature edges.
//
// A Snapper owns an R-tree index over the reference edges for the duration
// of a batch. The index is built once by NewSnapper and is read-only
// afterwards, so a single Snapper may serve many goroutines concurrently.
//
// Example:
//
//	snapper, err := snapline.NewSnapper(edges, snapline.SnapOptions{
//	    MaxSegmentLength: 10,
//	    MaxSnapDistance:  15,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := snapper.SnapLine(line)
//	if !result.Snapped {
//	    log.Printf("kept original: %v", result.Err)
//	}
type Snapper struct {
	index *snapper.EdgeIndex
	cfg   snapper.Config
}

// NewSnapper builds the spatial index over the reference edges and returns
// a Snapper ready for per-line or batch snapping.
//
// The reference edges must be line geometries; reduce polygon features to
// their boundaries first (LoadEdges and BoundaryEdges do this). Returns
// ErrEmptyEdgeSet when edges is empty: no line can be meaningfully snapped
// without a reference index, so this surfaces before any per-line work.
func NewSnapper(edges []orb.LineString, opts SnapOptions) (*Snapper, error) {
	index, err := snapper.BuildIndex(snapper.NewEdgeSet(edges))
	if err != nil {
		return nil, err
	}

	return &Snapper{
		index: index,
		cfg: snapper.Config{
			MaxSegmentLength:  opts.MaxSegmentLength,
			MaxSnapDistance:   opts.MaxSnapDistance,
			NearestCandidates: opts.NearestCandidates,
		},
	}, nil
}

// SnapLine snaps a single line against the reference edges.
//
// The line is densified, each vertex is snapped independently in order, and
// the reassembled line is validity-checked. On any per-line failure the
// returned Result carries the original line with Snapped=false and the
// reason in Err; SnapLine itself never fails.
func (s *Snapper) SnapLine(line orb.LineString) Result {
	return snapper.SnapLine(line, s.index, s.cfg)
}

// EdgeCount returns the number of reference edges in the index.
func (s *Snapper) EdgeCount() int {
	return s.index.EdgeSet().Len()
}
