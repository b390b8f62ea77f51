package snapper

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Densify inserts evenly spaced vertices along line so that no segment of the
// result is longer than maxSegmentLength. Points are interpolated linearly
// between the original segment endpoints and emitted in traversal order; no
// original point is ever dropped or moved. When every segment already fits,
// the input is returned unchanged in content (point for point).
//
// Per segment the insert count is ceil(length/maxSegmentLength)-1, the
// minimal evenly spaced set: a 100-unit segment at maxSegmentLength=10 gains
// 9 vertices, yielding 11 points exactly 10 units apart.
func Densify(line orb.LineString, maxSegmentLength float64) orb.LineString {
	if len(line) < 2 || maxSegmentLength <= 0 {
		return line
	}

	out := make(orb.LineString, 0, len(line))
	out = append(out, line[0])

	for i := 1; i < len(line); i++ {
		start, end := line[i-1], line[i]
		length := planar.Distance(start, end)

		if length > maxSegmentLength {
			inserts := int(math.Ceil(length/maxSegmentLength)) - 1
			for j := 1; j <= inserts; j++ {
				t := float64(j) / float64(inserts+1)
				out = append(out, orb.Point{
					start[0] + (end[0]-start[0])*t,
					start[1] + (end[1]-start[1])*t,
				})
			}
		}

		out = append(out, end)
	}

	return out
}
