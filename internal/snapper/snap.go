package snapper

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// SnapVertex returns the nearest point on a nearby reference edge when that
// point lies within maxSnapDistance of p, and p unchanged otherwise.
//
// The index supplies the k bounding-box-nearest candidate edges; the exact
// nearest point on each candidate is computed by projection onto the
// polyline, and the candidate minimizing true Euclidean distance wins.
// Ties keep the first candidate in index-return order. The distance gate
// prevents snapping to unrelated features that merely happen to be closest.
//
// SnapVertex is pure: it never mutates the index or the edges behind it.
func SnapVertex(p orb.Point, index *EdgeIndex, maxSnapDistance float64, k int) orb.Point {
	best := p
	bestDist := math.Inf(1)

	for _, ordinal := range index.NearestCandidates(p, k) {
		nearest, dist := NearestPointOnEdge(index.edges.Edge(ordinal), p)
		if dist < bestDist && dist <= maxSnapDistance {
			best = nearest
			bestDist = dist
		}
	}

	return best
}

// NearestPointOnEdge returns the point on edge closest to p and its Euclidean
// distance from p. The perpendicular foot is clamped to segment endpoints
// where it falls outside a segment.
func NearestPointOnEdge(edge orb.LineString, p orb.Point) (orb.Point, float64) {
	switch len(edge) {
	case 0:
		return p, math.Inf(1)
	case 1:
		return edge[0], planar.Distance(edge[0], p)
	}

	best := edge[0]
	bestDist := math.Inf(1)

	for i := 1; i < len(edge); i++ {
		candidate := nearestPointOnSegment(edge[i-1], edge[i], p)
		if d := planar.Distance(candidate, p); d < bestDist {
			best = candidate
			bestDist = d
		}
	}

	return best, bestDist
}

// nearestPointOnSegment projects p onto segment ab, clamped to [a, b].
func nearestPointOnSegment(a, b, p orb.Point) orb.Point {
	dx := b[0] - a[0]
	dy := b[1] - a[1]

	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return a // zero-length segment
	}

	t := ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / lengthSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return orb.Point{a[0] + t*dx, a[1] + t*dy}
}
