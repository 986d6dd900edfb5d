package optimize

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-anim/anim/core"
	"github.com/cwbudde/algo-anim/anim/keyframe"
)

// SimilarPoint drops keyframes that sit within tolerance of their
// neighbours in both value and time.
type SimilarPoint struct {
	cfg  SimilarPointSettings
	diff []float64
}

// NewSimilarPoint returns a similar-point reducer with its own scratch buffer.
func NewSimilarPoint(cfg SimilarPointSettings) *SimilarPoint {
	return &SimilarPoint{cfg: cfg}
}

// Name implements Reducer.
func (*SimilarPoint) Name() string { return NameSimilarPoint }

// Reduce removes A when the pair is similar, or B when both A,B and B,C are.
func (r *SimilarPoint) Reduce(w Window) Verdict {
	if !r.similar(w.A, w.B) {
		return Keep
	}
	if w.C == nil {
		return RemoveA
	}
	if r.similar(w.B, w.C) {
		return RemoveB
	}
	return Keep
}

// similar: flags equal, every value differs by < DifferenceThreshold and
// the times by <= TimeDifferenceThreshold.
func (r *SimilarPoint) similar(a, b *keyframe.Keyframe) bool {
	if !a.SameFlags(*b) {
		return false
	}
	if math.Abs(a.Time-b.Time) > r.cfg.TimeDifferenceThreshold {
		return false
	}
	var within bool
	r.diff, within = valuesWithin(r.diff, a.Values, b.Values, r.cfg.DifferenceThreshold)
	return within
}

// valuesWithin reports whether max|a-b| < threshold, using scratch for the
// difference vector. It returns the possibly grown scratch buffer.
func valuesWithin(scratch, a, b []float64, threshold float64) ([]float64, bool) {
	if len(a) == 0 {
		return scratch, threshold > 0
	}
	scratch = core.EnsureLen(scratch, len(a))
	vecmath.ScaleBlock(scratch, a, -1)
	vecmath.AddBlockInPlace(scratch, b)
	return scratch, vecmath.MaxAbs(scratch) < threshold
}
