package optimize

import (
	"math"

	"github.com/cwbudde/algo-anim/anim/keyframe"
)

// SlopeSimilarity drops the middle keyframe of a window when it lies on the
// line from A to C. For each component, time is treated as a linear
// function of value; B is redundant when the A->B and A->C lines agree in
// slope and time-intercept.
type SlopeSimilarity struct {
	cfg  SlopeSettings
	diff []float64
}

// NewSlopeSimilarity returns a slope reducer with its own scratch buffer.
func NewSlopeSimilarity(cfg SlopeSettings) *SlopeSimilarity {
	return &SlopeSimilarity{cfg: cfg}
}

// Name implements Reducer.
func (*SlopeSimilarity) Name() string { return NameSlopeSimilarity }

// Reduce only judges three-keyframe windows.
func (r *SlopeSimilarity) Reduce(w Window) Verdict {
	if w.C == nil {
		return Keep
	}
	a, b, c := w.A, w.B, w.C

	th := r.cfg.TimeDifferenceThreshold
	if math.Abs(a.Time-b.Time) <= th || math.Abs(b.Time-c.Time) <= th || math.Abs(a.Time-c.Time) <= th {
		return Keep
	}
	if !b.SameFlags(*c) {
		return Keep
	}

	// B..C is a hold: removing B would turn it into a ramp.
	var hold bool
	r.diff, hold = valuesWithin(r.diff, b.Values, c.Values, r.cfg.DifferenceThreshold)
	if hold && math.Abs(c.Time-b.Time) > r.cfg.DifferenceThreshold {
		return Keep
	}

	for i := range a.Values {
		s1, i1 := line(a, b, i)
		s2, i2 := line(a, c, i)
		if math.Abs(s1-s2) >= r.cfg.DifferenceThreshold {
			return Keep
		}
		if math.Abs(i1-i2) >= r.cfg.YInterceptDifferenceThreshold {
			return Keep
		}
	}
	return RemoveB
}

// line returns slope and time-intercept of time as a function of component
// i between p and q. The slope is 0 when either delta is 0.
func line(p, q *keyframe.Keyframe, i int) (slope, intercept float64) {
	dv := q.Values[i] - p.Values[i]
	dt := q.Time - p.Time
	if dv != 0 && dt != 0 {
		slope = dt / dv
	}
	return slope, p.Time - slope*p.Values[i]
}
