package snapline

import (
	"fmt"

	"github.com/ctessum/geom/proj"
	"github.com/paulmach/orb"
)

// Transform converts a point from one coordinate reference system to another.
type Transform func(orb.Point) (orb.Point, error)

// NewTransform builds a coordinate transform between two PROJ.4 definitions.
//
// Input lines and reference features must share a planar CRS before any
// distance arithmetic happens; when the two collections declare different
// systems, reproject one into the other with ReprojectLines before calling
// NewSnapper.
//
// Example:
//
//	tf, err := snapline.NewTransform(
//	    "+proj=longlat +datum=WGS84 +no_defs",
//	    "+proj=utm +zone=18 +datum=WGS84 +units=m +no_defs",
//	)
func NewTransform(srcDef, dstDef string) (Transform, error) {
	src, err := proj.Parse(srcDef)
	if err != nil {
		return nil, fmt.Errorf("parse source CRS: %w", err)
	}
	dst, err := proj.Parse(dstDef)
	if err != nil {
		return nil, fmt.Errorf("parse target CRS: %w", err)
	}

	transformer, err := src.NewTransform(dst)
	if err != nil {
		return nil, fmt.Errorf("build transform: %w", err)
	}
	if transformer == nil {
		// proj returns no transformer when the two definitions describe
		// the same system; coordinates pass through unchanged.
		return func(p orb.Point) (orb.Point, error) {
			return p, nil
		}, nil
	}

	return func(p orb.Point) (orb.Point, error) {
		x, y, err := transformer(p[0], p[1])
		if err != nil {
			return orb.Point{}, err
		}
		return orb.Point{x, y}, nil
	}, nil
}

// ReprojectLines maps every vertex of every line through tf.
//
// The input lines are never mutated; fresh lines are returned.
func ReprojectLines(lines []orb.LineString, tf Transform) ([]orb.LineString, error) {
	out := make([]orb.LineString, len(lines))

	for i, line := range lines {
		projected := make(orb.LineString, len(line))
		for j, p := range line {
			q, err := tf(p)
			if err != nil {
				return nil, fmt.Errorf("line %d vertex %d: %w", i, j, err)
			}
			projected[j] = q
		}
		out[i] = projected
	}

	return out, nil
}
