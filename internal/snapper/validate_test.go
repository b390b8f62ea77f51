package snapper

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

// TestValidateLine tests the output validity rules.
func TestValidateLine(t *testing.T) {
	tests := []struct {
		name    string
		line    orb.LineString
		wantErr bool
	}{
		{
			name:    "valid two point line",
			line:    orb.LineString{{0, 0}, {1, 1}},
			wantErr: false,
		},
		{
			name:    "empty line",
			line:    orb.LineString{},
			wantErr: true,
		},
		{
			name:    "single point",
			line:    orb.LineString{{0, 0}},
			wantErr: true,
		},
		{
			name:    "all points coincide",
			line:    orb.LineString{{2, 2}, {2, 2}, {2, 2}},
			wantErr: true,
		},
		{
			name:    "NaN coordinate",
			line:    orb.LineString{{0, 0}, {math.NaN(), 1}},
			wantErr: true,
		},
		{
			name:    "infinite coordinate",
			line:    orb.LineString{{0, 0}, {math.Inf(1), 1}},
			wantErr: true,
		},
		{
			name:    "duplicate vertices but distinct overall",
			line:    orb.LineString{{0, 0}, {0, 0}, {5, 5}},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLine(tt.line)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestSelfIntersects tests the self-contact scan: proper crossings and
// touches at revisited points both count.
func TestSelfIntersects(t *testing.T) {
	tests := []struct {
		name string
		line orb.LineString
		want bool
	}{
		{
			name: "straight line",
			line: orb.LineString{{0, 0}, {10, 0}, {20, 0}},
			want: false,
		},
		{
			name: "bowtie crossing",
			line: orb.LineString{{0, 0}, {10, 10}, {10, 0}, {0, 10}},
			want: true,
		},
		{
			// the bowtie crossing point promoted to a vertex of both
			// diagonals, the shape a crossing takes after densification
			name: "bowtie crossing at shared vertex",
			line: orb.LineString{{0, 0}, {5, 5}, {10, 10}, {10, 0}, {5, 5}, {0, 10}},
			want: true,
		},
		{
			name: "vertex touching an earlier segment",
			line: orb.LineString{{0, 0}, {10, 0}, {10, 5}, {5, 0}},
			want: true,
		},
		{
			name: "closed ring does not cross itself",
			line: orb.LineString{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
			want: false,
		},
		{
			name: "closed ring folded through its start vertex",
			line: orb.LineString{{0, 0}, {10, 0}, {10, 10}, {-5, -5}, {0, 0}},
			want: true,
		},
		{
			name: "zigzag without crossing",
			line: orb.LineString{{0, 0}, {10, 5}, {0, 10}, {10, 15}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selfIntersects(tt.line); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestDedupeConsecutive tests the repair step.
func TestDedupeConsecutive(t *testing.T) {
	tests := []struct {
		name string
		line orb.LineString
		want orb.LineString
	}{
		{
			name: "no duplicates",
			line: orb.LineString{{0, 0}, {1, 1}},
			want: orb.LineString{{0, 0}, {1, 1}},
		},
		{
			name: "run of duplicates collapsed",
			line: orb.LineString{{0, 0}, {1, 1}, {1, 1}, {1, 1}, {2, 2}},
			want: orb.LineString{{0, 0}, {1, 1}, {2, 2}},
		},
		{
			name: "non-consecutive repeats kept",
			line: orb.LineString{{0, 0}, {1, 1}, {0, 0}},
			want: orb.LineString{{0, 0}, {1, 1}, {0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedupeConsecutive(tt.line)
			if !got.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestRemoveSpikes tests removal of collinear backtracking vertices.
func TestRemoveSpikes(t *testing.T) {
	tests := []struct {
		name string
		line orb.LineString
		want orb.LineString
	}{
		{
			name: "no spike",
			line: orb.LineString{{0, 0}, {5, 5}, {10, 0}},
			want: orb.LineString{{0, 0}, {5, 5}, {10, 0}},
		},
		{
			name: "backtracking vertex removed",
			line: orb.LineString{{0, 0}, {10, 0}, {4, 0}, {4, 8}},
			want: orb.LineString{{0, 0}, {4, 0}, {4, 8}},
		},
		{
			name: "collinear continuation kept",
			line: orb.LineString{{0, 0}, {5, 0}, {10, 0}},
			want: orb.LineString{{0, 0}, {5, 0}, {10, 0}},
		},
		{
			name: "two point passthrough",
			line: orb.LineString{{0, 0}, {1, 1}},
			want: orb.LineString{{0, 0}, {1, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := removeSpikes(tt.line)
			if !got.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
