package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-anim/anim/keyframe"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireTrackEqual fails t unless got and want hold the same keyframes:
// equal times and flags, values within eps.
func RequireTrackEqual(t *testing.T, got, want keyframe.Track, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("track length mismatch: got %d, want %d\ngot:  %v\nwant: %v", len(got), len(want), got.Encode(), want.Encode())
	}
	for i := range got {
		g, w := got[i], want[i]
		if g.Time != w.Time || !g.SameFlags(w) || g.HSVLerp != w.HSVLerp {
			t.Fatalf("keyframe %d: got %v, want %v", i, g.Encode(), w.Encode())
		}
		d, err := MaxAbsDiff(g.Values, w.Values)
		if err != nil || d > eps {
			t.Fatalf("keyframe %d values: got %v, want %v", i, g.Values, w.Values)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
