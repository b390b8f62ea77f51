package snapline

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/paulmach/orb"
)

var testEdges = []orb.LineString{
	{{0, 0}, {100, 0}},
	{{0, 50}, {100, 50}},
}

// TestNewSnapperEmptyEdges tests that an empty reference set aborts before
// any per-line work.
func TestNewSnapperEmptyEdges(t *testing.T) {
	tests := []struct {
		name  string
		edges []orb.LineString
	}{
		{name: "nil", edges: nil},
		{name: "empty", edges: []orb.LineString{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSnapper(tt.edges, DefaultSnapOptions())
			if !errors.Is(err, ErrEmptyEdgeSet) {
				t.Errorf("Expected ErrEmptyEdgeSet, got %v", err)
			}
		})
	}
}

// TestSnapLineSingle tests the single-line API against both thresholds.
func TestSnapLineSingle(t *testing.T) {
	snapper, err := NewSnapper(testEdges, DefaultSnapOptions())
	if err != nil {
		t.Fatalf("NewSnapper failed: %v", err)
	}

	result := snapper.SnapLine(orb.LineString{{0, 5}, {100, 5}})
	if !result.Snapped {
		t.Fatalf("Expected snapped result, got fallback: %v", result.Err)
	}
	for i, p := range result.Line {
		if p[1] != 0 {
			t.Errorf("Vertex %d not on reference edge: %v", i, p)
		}
	}
}

// TestSnapLinesOrderAndIsolation tests that output order matches input order
// and that a faulty line does not disturb its neighbors.
func TestSnapLinesOrderAndIsolation(t *testing.T) {
	snapper, err := NewSnapper(testEdges, DefaultSnapOptions())
	if err != nil {
		t.Fatalf("NewSnapper failed: %v", err)
	}

	lines := []orb.LineString{
		{{0, 5}, {100, 5}},   // snaps to y=0
		{{7, 7}},             // degenerate, falls back
		{{0, 45}, {100, 45}}, // snaps to y=50
	}

	for _, parallel := range []bool{false, true} {
		name := "serial"
		if parallel {
			name = "parallel"
		}
		t.Run(name, func(t *testing.T) {
			results := snapper.SnapLines(lines, BatchOptions{Parallel: parallel, Workers: 4})

			if len(results) != len(lines) {
				t.Fatalf("Expected %d results, got %d", len(lines), len(results))
			}

			if !results[0].Snapped || results[0].Line[0][1] != 0 {
				t.Errorf("Line 0: expected snap to y=0, got %+v", results[0])
			}
			if results[1].Snapped || !results[1].Line.Equal(lines[1]) {
				t.Errorf("Line 1: expected fallback to original, got %+v", results[1])
			}
			if !results[2].Snapped || results[2].Line[0][1] != 50 {
				t.Errorf("Line 2: expected snap to y=50, got %+v", results[2])
			}
		})
	}
}

// TestSnapLinesParallelMatchesSerial tests that scheduling never changes
// results.
func TestSnapLinesParallelMatchesSerial(t *testing.T) {
	snapper, err := NewSnapper(testEdges, DefaultSnapOptions())
	if err != nil {
		t.Fatalf("NewSnapper failed: %v", err)
	}

	var lines []orb.LineString
	for i := 0; i < 40; i++ {
		y := float64(i)
		lines = append(lines, orb.LineString{{0, y}, {100, y}})
	}

	serial := snapper.SnapLines(lines, BatchOptions{Parallel: false})
	parallel := snapper.SnapLines(lines, BatchOptions{Parallel: true, Workers: 8})

	for i := range lines {
		if serial[i].Snapped != parallel[i].Snapped {
			t.Errorf("Line %d: snapped flag differs between serial and parallel", i)
		}
		if !serial[i].Line.Equal(parallel[i].Line) {
			t.Errorf("Line %d: geometry differs between serial and parallel", i)
		}
	}
}

// TestSnapLinesProgress tests that the progress callback sees every line.
func TestSnapLinesProgress(t *testing.T) {
	snapper, err := NewSnapper(testEdges, DefaultSnapOptions())
	if err != nil {
		t.Fatalf("NewSnapper failed: %v", err)
	}

	lines := make([]orb.LineString, 10)
	for i := range lines {
		lines[i] = orb.LineString{{0, float64(i)}, {10, float64(i)}}
	}

	var mu sync.Mutex
	calls := 0
	last := 0

	snapper.SnapLines(lines, BatchOptions{
		Parallel: true,
		Workers:  4,
		Progress: func(done, total int) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			last = done
			if total != len(lines) {
				t.Errorf("Expected total %d, got %d", len(lines), total)
			}
		},
	})

	if calls != len(lines) {
		t.Errorf("Expected %d progress calls, got %d", len(lines), calls)
	}
	if last != len(lines) {
		t.Errorf("Expected final done=%d, got %d", len(lines), last)
	}
}

// TestSnapLinesErrorLog tests fallback reporting.
func TestSnapLinesErrorLog(t *testing.T) {
	snapper, err := NewSnapper(testEdges, DefaultSnapOptions())
	if err != nil {
		t.Fatalf("NewSnapper failed: %v", err)
	}

	var buf bytes.Buffer
	snapper.SnapLines([]orb.LineString{{{1, 1}}}, BatchOptions{ErrorLog: &buf})

	if !strings.Contains(buf.String(), "kept original") {
		t.Errorf("Expected fallback report, got %q", buf.String())
	}
}

// TestSnapLinesEmptyBatch tests that an empty batch is a no-op.
func TestSnapLinesEmptyBatch(t *testing.T) {
	snapper, err := NewSnapper(testEdges, DefaultSnapOptions())
	if err != nil {
		t.Fatalf("NewSnapper failed: %v", err)
	}

	results := snapper.SnapLines(nil, DefaultBatchOptions())
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

// TestEdgeCount tests index size reporting.
func TestEdgeCount(t *testing.T) {
	snapper, err := NewSnapper(testEdges, DefaultSnapOptions())
	if err != nil {
		t.Fatalf("NewSnapper failed: %v", err)
	}
	if snapper.EdgeCount() != 2 {
		t.Errorf("Expected 2 edges, got %d", snapper.EdgeCount())
	}
}
