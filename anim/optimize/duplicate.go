package optimize

import "github.com/cwbudde/algo-anim/anim/core"

// Duplicate drops keyframes whose values repeat exactly. Times and flags
// are ignored.
type Duplicate struct{}

// NewDuplicate returns the duplicate reducer.
func NewDuplicate() *Duplicate {
	return &Duplicate{}
}

// Name implements Reducer.
func (*Duplicate) Name() string { return NameDuplicate }

// Reduce removes A when a pair repeats, or B when all three repeat.
func (*Duplicate) Reduce(w Window) Verdict {
	if !core.Equal(w.A.Values, w.B.Values) {
		return Keep
	}
	if w.C == nil {
		return RemoveA
	}
	if core.Equal(w.B.Values, w.C.Values) {
		return RemoveB
	}
	return Keep
}
