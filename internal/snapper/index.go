package snapper

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// EdgeSet is an ordered, immutable collection of reference feature edges.
//
// Each edge carries a precomputed axis-aligned bounding box. Edge ordinals
// are stable for the lifetime of the set, so identifiers stored in an
// EdgeIndex always resolve to the same edge.
type EdgeSet struct {
	edges  []orb.LineString
	bounds []orb.Bound
}

// NewEdgeSet wraps the given lines as reference edges, computing a bounding
// box per edge. The slice is not copied; callers must not mutate it after
// an index has been built.
func NewEdgeSet(lines []orb.LineString) *EdgeSet {
	set := &EdgeSet{
		edges:  lines,
		bounds: make([]orb.Bound, len(lines)),
	}
	for i, line := range lines {
		set.bounds[i] = line.Bound()
	}
	return set
}

// Len returns the number of edges in the set.
func (s *EdgeSet) Len() int {
	return len(s.edges)
}

// Edge returns the edge at the given ordinal.
func (s *EdgeSet) Edge(i int) orb.LineString {
	return s.edges[i]
}

// Bound returns the precomputed bounding box of the edge at the given ordinal.
func (s *EdgeSet) Bound(i int) orb.Bound {
	return s.bounds[i]
}

// indexedEdge wraps an edge ordinal for R-tree storage.
type indexedEdge struct {
	ordinal int
	bound   orb.Bound
}

// Bounds implements rtreego.Spatial.
func (e *indexedEdge) Bounds() rtreego.Rect {
	point := rtreego.Point{e.bound.Min[0], e.bound.Min[1]}

	xLength := e.bound.Max[0] - e.bound.Min[0]
	yLength := e.bound.Max[1] - e.bound.Min[1]

	// R-tree rects need non-zero extent; pad degenerate boxes
	// (axis-aligned edges and single-point edges have zero width or height).
	const epsilon = 1e-9
	if xLength < epsilon {
		xLength = epsilon
	}
	if yLength < epsilon {
		yLength = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{xLength, yLength})
	return rect
}

// EdgeIndex answers nearest-candidate queries over an EdgeSet.
//
// The index is built once per batch and is read-only afterwards, so it may
// be queried from many goroutines concurrently.
type EdgeIndex struct {
	tree  *rtreego.Rtree
	edges *EdgeSet
}

// BuildIndex builds an R-tree over the bounding boxes of the edge set.
//
// Returns ErrEmptyEdgeSet when there are no edges to index; callers must
// treat that as fatal before any per-line work begins.
func BuildIndex(edges *EdgeSet) (*EdgeIndex, error) {
	if edges == nil || edges.Len() == 0 {
		return nil, ErrEmptyEdgeSet
	}

	tree := rtreego.NewTree(2, 25, 50)
	for i := 0; i < edges.Len(); i++ {
		tree.Insert(&indexedEdge{ordinal: i, bound: edges.Bound(i)})
	}

	return &EdgeIndex{tree: tree, edges: edges}, nil
}

// EdgeSet returns the edge set the index was built over.
func (idx *EdgeIndex) EdgeSet() *EdgeSet {
	return idx.edges
}

// NearestCandidates returns up to k edge ordinals ordered by bounding-box
// proximity to p. Proximity is the R-tree heuristic, not true geometric
// distance; callers resolve true distance against the edge geometry.
func (idx *EdgeIndex) NearestCandidates(p orb.Point, k int) []int {
	if k < 1 {
		k = 1
	}
	if k > idx.edges.Len() {
		k = idx.edges.Len()
	}

	spatials := idx.tree.NearestNeighbors(k, rtreego.Point{p[0], p[1]})

	ordinals := make([]int, 0, len(spatials))
	for _, s := range spatials {
		if s == nil {
			continue
		}
		ordinals = append(ordinals, s.(*indexedEdge).ordinal)
	}
	return ordinals
}
