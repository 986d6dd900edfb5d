package sample

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-anim/anim/core"
	"github.com/cwbudde/algo-anim/anim/easing"
	"github.com/cwbudde/algo-anim/anim/interp"
	"github.com/cwbudde/algo-anim/anim/keyframe"
)

var (
	// ErrInvalidTime is returned when sampling at NaN.
	ErrInvalidTime = errors.New("sample: time is NaN")
	// ErrInvalidSampleCount is returned when baking fewer than two samples.
	ErrInvalidSampleCount = errors.New("sample: sample count must be >= 2")
)

// Evaluator samples one track repeatedly. It keeps no buffers of its own:
// [Evaluator.At] returns a new slice per call and [Evaluator.Evaluate] writes
// into the caller's buffer. An Evaluator may be shared between goroutines
// as long as the track is not modified.
type Evaluator struct {
	kind  Kind
	track keyframe.Track
}

// NewEvaluator returns an evaluator over track, which must be sorted by time.
func NewEvaluator(kind Kind, track keyframe.Track) (*Evaluator, error) {
	if len(track) == 0 {
		return nil, keyframe.ErrEmptyTrack
	}
	return &Evaluator{kind: kind, track: track}, nil
}

// At returns the track's value at time t in a new slice.
func (e *Evaluator) At(t float64) ([]float64, error) {
	return e.Evaluate(nil, t)
}

// Evaluate writes the track's value at time t into dst, reusing its capacity,
// and returns the result. dst must not alias keyframe values.
func (e *Evaluator) Evaluate(dst []float64, t float64) ([]float64, error) {
	if math.IsNaN(t) {
		return nil, ErrInvalidTime
	}

	tr := e.track
	n := len(tr)
	if t <= tr[0].Time {
		return copyValues(dst, tr[0].Values), nil
	}
	if t >= tr[n-1].Time {
		return copyValues(dst, tr[n-1].Values), nil
	}

	ri := sort.Search(n, func(i int) bool { return tr[i].Time >= t })
	li := ri - 1
	l, r := tr[li], tr[ri]
	if l.Arity() != r.Arity() {
		return nil, fmt.Errorf("%w: keyframes %d and %d have %d and %d values",
			keyframe.ErrShapeMismatch, li, ri, l.Arity(), r.Arity())
	}

	u := (t - l.Time) / (r.Time - l.Time)
	u = easing.Apply(r.Easing, u)
	dst = core.EnsureLen(dst, l.Arity())

	switch {
	case e.kind.IsRotation():
		if l.Arity() != 3 {
			return nil, fmt.Errorf("%w: rotation needs 3 values, got %d", keyframe.ErrShapeMismatch, l.Arity())
		}
		interp.SlerpEulerInto(dst, l.Values, r.Values, u)
	case e.kind == KindColor && r.HSVLerp:
		if l.Arity() < 3 {
			return nil, fmt.Errorf("%w: colour needs at least 3 values, got %d", keyframe.ErrShapeMismatch, l.Arity())
		}
		interp.LerpHSVInto(dst, l.Values, r.Values, u)
	case r.Spline == keyframe.CatmullRom:
		p0, p3 := l, r
		if li > 0 {
			p0 = tr[li-1]
		}
		if ri < n-1 {
			p3 = tr[ri+1]
		}
		if p0.Arity() != l.Arity() || p3.Arity() != l.Arity() {
			return nil, fmt.Errorf("%w: spline neighbours of keyframes %d and %d", keyframe.ErrShapeMismatch, li, ri)
		}
		interp.CatmullRomInto(dst, p0.Values, l.Values, r.Values, p3.Values, u)
	default:
		interp.LinearInto(dst, l.Values, r.Values, u)
	}
	return dst, nil
}

// At samples a sorted track at time t.
func At(kind Kind, track keyframe.Track, t float64) ([]float64, error) {
	e, err := NewEvaluator(kind, track)
	if err != nil {
		return nil, err
	}
	return e.At(t)
}

// AtRaw decodes a raw simple or complex track and samples it at time t.
// The decoded keyframes must already be in ascending time order.
func AtRaw(kind Kind, raw any, t float64) ([]float64, error) {
	track, err := keyframe.DecodeTrack(raw)
	if err != nil {
		return nil, err
	}
	return At(kind, track, t)
}

// Bake samples n evenly spaced times across the track's span and returns
// them as a linear track.
func Bake(kind Kind, track keyframe.Track, n int) (keyframe.Track, error) {
	if n < 2 {
		return nil, ErrInvalidSampleCount
	}
	e, err := NewEvaluator(kind, track)
	if err != nil {
		return nil, err
	}

	start, end := track.Span()
	out := make(keyframe.Track, n)
	for i := range out {
		t := start + (end-start)*float64(i)/float64(n-1)
		vals, err := e.At(t)
		if err != nil {
			return nil, err
		}
		out[i] = keyframe.New(t, vals...)
	}
	return out, nil
}

func copyValues(dst, src []float64) []float64 {
	dst = core.EnsureLen(dst, len(src))
	core.CopyInto(dst, src)
	return dst
}
