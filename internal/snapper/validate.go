package snapper

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// validateLine checks that a line is usable output: at least two points,
// all coordinates finite, and at least two distinct vertices.
func validateLine(line orb.LineString) error {
	if len(line) < 2 {
		return &ErrInvalidSnappedLine{
			Reason: fmt.Sprintf("%d point(s), need at least 2", len(line)),
		}
	}

	for i, p := range line {
		if !finite(p) {
			return &ErrInvalidSnappedLine{
				Reason: fmt.Sprintf("coordinate %d is not finite", i),
			}
		}
	}

	for i := 1; i < len(line); i++ {
		if line[i] != line[0] {
			return nil
		}
	}
	return &ErrInvalidSnappedLine{Reason: "all points coincide"}
}

func finite(p orb.Point) bool {
	return !math.IsNaN(p[0]) && !math.IsInf(p[0], 0) &&
		!math.IsNaN(p[1]) && !math.IsInf(p[1], 0)
}

// dedupeConsecutive collapses runs of identical consecutive vertices.
// Snapping several densified vertices onto the same edge point is the usual
// way output lines pick up zero-length segments.
func dedupeConsecutive(line orb.LineString) orb.LineString {
	if len(line) < 2 {
		return line
	}

	out := make(orb.LineString, 0, len(line))
	out = append(out, line[0])
	for i := 1; i < len(line); i++ {
		if line[i] != out[len(out)-1] {
			out = append(out, line[i])
		}
	}
	return out
}

// removeSpikes drops interior vertices where the path reverses onto itself,
// the usual artifact of neighboring vertices snapping past each other along
// one edge.
func removeSpikes(line orb.LineString) orb.LineString {
	if len(line) < 3 {
		return line
	}

	out := make(orb.LineString, 0, len(line))
	out = append(out, line[0])
	for i := 1; i < len(line)-1; i++ {
		a := out[len(out)-1]
		b := line[i]
		c := line[i+1]
		if cross(a, b, c) == 0 && dot(a, b, c) < 0 {
			continue
		}
		out = append(out, b)
	}
	out = append(out, line[len(line)-1])
	return out
}

// selfIntersects reports whether any two non-adjacent segments of the line
// share a point. A simple open polyline never revisits a point, so any
// contact counts, including touching at a vertex; the only exemption is the
// start vertex a closed ring legitimately passes through twice.
func selfIntersects(line orb.LineString) bool {
	segments := len(line) - 1
	for i := 0; i < segments; i++ {
		for j := i + 2; j < segments; j++ {
			a, b := line[i], line[i+1]
			c, d := line[j], line[j+1]

			// first and last segment of a closed ring meet at the
			// shared vertex a == d; only contact beyond it counts
			if i == 0 && j == segments-1 && line[0] == line[len(line)-1] {
				if segmentsCross(a, b, c, d) {
					return true
				}
				if b != d && cross(c, d, b) == 0 && onSegment(c, d, b) {
					return true
				}
				if c != a && cross(a, b, c) == 0 && onSegment(a, b, c) {
					return true
				}
				continue
			}

			if segmentsIntersect(a, b, c, d) {
				return true
			}
		}
	}
	return false
}

// segmentsIntersect reports whether segments ab and cd share any point,
// endpoints included.
func segmentsIntersect(a, b, c, d orb.Point) bool {
	if segmentsCross(a, b, c, d) {
		return true
	}
	return (cross(c, d, a) == 0 && onSegment(c, d, a)) ||
		(cross(c, d, b) == 0 && onSegment(c, d, b)) ||
		(cross(a, b, c) == 0 && onSegment(a, b, c)) ||
		(cross(a, b, d) == 0 && onSegment(a, b, d))
}

// segmentsCross reports proper intersection of segments ab and cd.
func segmentsCross(a, b, c, d orb.Point) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)

	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// onSegment reports whether p, already known collinear with ab, lies within
// the segment's bounding box.
func onSegment(a, b, p orb.Point) bool {
	return math.Min(a[0], b[0]) <= p[0] && p[0] <= math.Max(a[0], b[0]) &&
		math.Min(a[1], b[1]) <= p[1] && p[1] <= math.Max(a[1], b[1])
}

// cross is the z component of (b-a) × (p-a).
func cross(a, b, p orb.Point) float64 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

// dot is (b-a) · (c-b): negative when the path doubles back at b.
func dot(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[0]-b[0]) + (b[1]-a[1])*(c[1]-b[1])
}
