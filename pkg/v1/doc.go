// Package snapline aligns line geometries onto the nearest edges of a set of
// reference linear features, within a distance tolerance.
//
// The package is built for geospatial data cleaning: aligning digitized road
// centerlines to parcel boundaries, survey features, or any other reference
// line work. Input lines are densified (intermediate vertices inserted so
// long segments get multiple candidate snap points), each vertex is matched
// against an R-tree index of reference edges, and vertices within the snap
// distance are replaced by the exact nearest point on the matched edge.
//
// Basic usage:
//
//	edges, err := snapline.LoadEdges("parcels.geojson")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	snapper, err := snapline.NewSnapper(edges, snapline.DefaultSnapOptions())
//	if err != nil {
//	    log.Fatal(err) // empty reference set is fatal
//	}
//
//	lines, err := snapline.LoadLines("roads.geojson")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results := snapper.SnapLines(lines, snapline.DefaultBatchOptions())
//	if err := snapline.SaveResults("roads_snapped.geojson", results); err != nil {
//	    log.Fatal(err)
//	}
//
// Every result carries a usable line: the snapped geometry on success, the
// exact original input when snapping failed for that line. A single faulty
// line never aborts the batch; only an empty reference edge set does, and
// that surfaces from NewSnapper before any per-line work starts.
//
// All geometry is planar: inputs and reference features must share one
// coordinate reference system in which Euclidean distance is meaningful.
// Use NewTransform and ReprojectLines to reconcile differing systems before
// building the Snapper.
package snapline
