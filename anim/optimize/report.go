package optimize

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-anim/anim/core"
	"github.com/cwbudde/algo-anim/anim/keyframe"
	"github.com/cwbudde/algo-anim/anim/sample"
)

// Report summarizes how far an optimized track strays from its source.
type Report struct {
	Before       int
	After        int
	Samples      int
	MaxDeviation float64
	// At is the time of the largest deviation.
	At float64
}

// Removed returns the number of dropped keyframes.
func (r Report) Removed() int {
	return r.Before - r.After
}

// Ratio returns After/Before, or 1 for an empty source.
func (r Report) Ratio() float64 {
	if r.Before == 0 {
		return 1
	}
	return float64(r.After) / float64(r.Before)
}

// Compare samples before and after at n evenly spaced times across the
// span of before and records the largest absolute component difference.
func Compare(kind sample.Kind, before, after keyframe.Track, n int) (Report, error) {
	if n < 2 {
		return Report{}, sample.ErrInvalidSampleCount
	}
	before = before.Sorted()
	after = after.Sorted()

	eb, err := sample.NewEvaluator(kind, before)
	if err != nil {
		return Report{}, fmt.Errorf("before: %w", err)
	}
	ea, err := sample.NewEvaluator(kind, after)
	if err != nil {
		return Report{}, fmt.Errorf("after: %w", err)
	}

	rep := Report{Before: len(before), After: len(after), Samples: n}
	var vb, va, diff []float64
	start, end := before.Span()
	for i := range n {
		t := start + (end-start)*float64(i)/float64(n-1)
		if vb, err = eb.Evaluate(vb, t); err != nil {
			return Report{}, fmt.Errorf("before: %w", err)
		}
		if va, err = ea.Evaluate(va, t); err != nil {
			return Report{}, fmt.Errorf("after: %w", err)
		}
		if len(va) != len(vb) {
			return Report{}, fmt.Errorf("%w: %d vs %d values", keyframe.ErrShapeMismatch, len(vb), len(va))
		}
		diff = core.EnsureLen(diff, len(vb))
		vecmath.ScaleBlock(diff, vb, -1)
		vecmath.AddBlockInPlace(diff, va)
		if d := vecmath.MaxAbs(diff); d > rep.MaxDeviation {
			rep.MaxDeviation = d
			rep.At = t
		}
	}
	return rep, nil
}
