package keyframe

import (
	"cmp"
	"fmt"
	"slices"
)

// Track is the decoded complex form of a track.
type Track []Keyframe

// IsSimple reports whether raw is a bare value tuple rather than a list of keyframes.
func IsSimple(raw []any) bool {
	if len(raw) == 0 {
		return false
	}
	_, isArray := asSlice(raw[0])
	return !isArray
}

// Complexify wraps a simple track into a single keyframe at time 0.
// Complex tracks are returned unchanged.
func Complexify(raw []any) []any {
	if !IsSimple(raw) {
		return raw
	}
	kf := make([]any, len(raw)+1)
	copy(kf, raw)
	kf[len(raw)] = 0.0
	return []any{kf}
}

// Simplify collapses a track holding one keyframe at time exactly 0 into its
// bare values. Any other track is returned unchanged: a nonzero time cannot
// be represented implicitly.
func Simplify(raw []any) []any {
	if len(raw) != 1 || IsSimple(raw) {
		return raw
	}
	kf, ok := asSlice(raw[0])
	if !ok {
		return raw
	}
	k, err := Decode(kf)
	if err != nil || k.Time != 0 || len(k.Values) == 0 {
		return raw
	}
	out := make([]any, len(k.Values))
	for i, v := range k.Values {
		out[i] = v
	}
	return out
}

// DecodeTrack decodes a raw track in simple or complex form. A string is an
// unresolved point-definition name and is rejected.
func DecodeTrack(raw any) (Track, error) {
	var arr []any
	switch v := raw.(type) {
	case nil:
		return nil, ErrEmptyTrack
	case string:
		return nil, fmt.Errorf("%w: %q", ErrPointDefinition, v)
	case Track:
		if len(v) == 0 {
			return nil, ErrEmptyTrack
		}
		return v.Clone(), nil
	case []any:
		arr = v
	case []float64:
		arr, _ = asSlice(v)
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidTrack, raw)
	}
	if len(arr) == 0 {
		return nil, ErrEmptyTrack
	}

	arr = Complexify(arr)
	out := make(Track, len(arr))
	for i, e := range arr {
		kf, ok := asSlice(e)
		if !ok {
			return nil, fmt.Errorf("%w: keyframe %d is %T", ErrInvalidTrack, i, e)
		}
		k, err := Decode(kf)
		if err != nil {
			return nil, fmt.Errorf("keyframe %d: %w", i, err)
		}
		out[i] = k
	}
	return out, nil
}

// Encode returns the complex raw form of t.
func (t Track) Encode() []any {
	out := make([]any, len(t))
	for i, k := range t {
		out[i] = k.Encode()
	}
	return out
}

// Simplified returns the raw form of t, collapsed when possible.
func (t Track) Simplified() []any {
	return Simplify(t.Encode())
}

// Clone returns a deep copy of t.
func (t Track) Clone() Track {
	if t == nil {
		return nil
	}
	out := make(Track, len(t))
	for i, k := range t {
		out[i] = k.Clone()
	}
	return out
}

// Sorted returns a copy of t stably sorted by ascending time.
// Keyframes are shallow-copied; values are shared with t.
func (t Track) Sorted() Track {
	out := slices.Clone(t)
	slices.SortStableFunc(out, func(a, b Keyframe) int {
		return cmp.Compare(a.Time, b.Time)
	})
	return out
}

// IsSorted reports whether t is in ascending time order.
func (t Track) IsSorted() bool {
	return slices.IsSortedFunc(t, func(a, b Keyframe) int {
		return cmp.Compare(a.Time, b.Time)
	})
}

// Arity returns the shared value arity of every keyframe in t.
func (t Track) Arity() (int, error) {
	if len(t) == 0 {
		return 0, ErrEmptyTrack
	}
	n := t[0].Arity()
	for i, k := range t[1:] {
		if k.Arity() != n {
			return 0, fmt.Errorf("%w: keyframe %d has %d values, want %d", ErrShapeMismatch, i+1, k.Arity(), n)
		}
	}
	return n, nil
}

// Span returns the first and last keyframe times.
func (t Track) Span() (start, end float64) {
	if len(t) == 0 {
		return 0, 0
	}
	return t[0].Time, t[len(t)-1].Time
}

func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []float64:
		out := make([]any, len(s))
		for i, f := range s {
			out[i] = f
		}
		return out, true
	default:
		return nil, false
	}
}
