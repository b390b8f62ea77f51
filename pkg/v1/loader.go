package snapline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadLines reads the input line collection from a GeoJSON file.
//
// LineString features contribute one line each; MultiLineString features
// contribute one line per part. Any other geometry type is an error: the
// snapping engine only ever operates on lines.
func LoadLines(path string) ([]orb.LineString, error) {
	fc, err := readFeatureCollection(path)
	if err != nil {
		return nil, err
	}

	var lines []orb.LineString
	for i, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.LineString:
			lines = append(lines, g)
		case orb.MultiLineString:
			for _, part := range g {
				lines = append(lines, part)
			}
		default:
			return nil, fmt.Errorf("feature %d: unsupported input geometry %s",
				i, g.GeoJSONType())
		}
	}

	return lines, nil
}

// LoadEdges reads the reference feature collection from a GeoJSON file.
//
// Polygonal features are reduced to their boundary rings, matching the
// expectation that reference features reach the snapping engine as lines.
func LoadEdges(path string) ([]orb.LineString, error) {
	fc, err := readFeatureCollection(path)
	if err != nil {
		return nil, err
	}

	var edges []orb.LineString
	for i, f := range fc.Features {
		reduced, err := BoundaryEdges(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		edges = append(edges, reduced...)
	}

	return edges, nil
}

// BoundaryEdges reduces a geometry to the line geometries the snapping
// engine operates on. Lines pass through; polygons contribute one edge per
// ring (exterior and holes alike).
func BoundaryEdges(g orb.Geometry) ([]orb.LineString, error) {
	switch g := g.(type) {
	case orb.LineString:
		return []orb.LineString{g}, nil
	case orb.MultiLineString:
		edges := make([]orb.LineString, 0, len(g))
		for _, part := range g {
			edges = append(edges, part)
		}
		return edges, nil
	case orb.Ring:
		return []orb.LineString{orb.LineString(g)}, nil
	case orb.Polygon:
		edges := make([]orb.LineString, 0, len(g))
		for _, ring := range g {
			edges = append(edges, orb.LineString(ring))
		}
		return edges, nil
	case orb.MultiPolygon:
		var edges []orb.LineString
		for _, polygon := range g {
			for _, ring := range polygon {
				edges = append(edges, orb.LineString(ring))
			}
		}
		return edges, nil
	default:
		return nil, fmt.Errorf("unsupported reference geometry %s", g.GeoJSONType())
	}
}

// SaveResults writes the snapped lines to a GeoJSON file, one feature per
// result in batch order.
//
// Each feature carries a "snapped" property for auditing; fallback features
// additionally carry the reason under "fallback_reason".
func SaveResults(path string, results []Result) error {
	fc := geojson.NewFeatureCollection()

	for _, r := range results {
		f := geojson.NewFeature(r.Line)
		f.Properties["snapped"] = r.Snapped
		if r.Err != nil {
			f.Properties["fallback_reason"] = r.Err.Error()
		}
		fc.Append(f)
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readFeatureCollection(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}
