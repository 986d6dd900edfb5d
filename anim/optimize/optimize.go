package optimize

import (
	"github.com/cwbudde/algo-anim/anim/keyframe"
)

// Optimize reduces a raw track and returns it in simplified raw form.
// Inactive settings and tracks of at most two keyframes are only normalized.
// raw is not modified.
func Optimize(raw []any, s Settings) ([]any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return raw, nil
	}
	track, err := keyframe.DecodeTrack(raw)
	if err != nil {
		return nil, err
	}
	if !s.Active || len(track) <= 2 {
		return keyframe.Simplify(raw), nil
	}

	out, err := run(track, s)
	if err != nil {
		return nil, err
	}
	return out.Simplified(), nil
}

// Track reduces a decoded track and returns a new, time-sorted track.
// Inactive settings and tracks of at most two keyframes are returned as a copy.
func Track(track keyframe.Track, s Settings) (keyframe.Track, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if !s.Active || len(track) <= 2 {
		return track.Clone(), nil
	}
	return run(track, s)
}

func run(track keyframe.Track, s Settings) (keyframe.Track, error) {
	if _, err := track.Arity(); err != nil {
		return nil, err
	}

	reducers := s.reducers()
	cur := track.Clone()
	var remove []bool
	for range s.Passes {
		cur = cur.Sorted()
		remove = markRedundant(remove, cur, reducers)
		cur = sweep(cur, remove)
	}
	return cur, nil
}

// markRedundant runs every reducer over every interior window of cur and
// returns the union of the flagged indices.
func markRedundant(remove []bool, cur keyframe.Track, reducers []Reducer) []bool {
	if cap(remove) < len(cur) {
		remove = make([]bool, len(cur))
	}
	remove = remove[:len(cur)]
	clear(remove)

	for i := 1; i < len(cur)-1; i++ {
		w := Window{A: &cur[i-1], B: &cur[i], C: &cur[i+1]}
		for _, r := range reducers {
			switch r.Reduce(w) {
			case RemoveA:
				remove[i-1] = true
			case RemoveB:
				remove[i] = true
			case RemoveC:
				remove[i+1] = true
			}
		}
	}
	return remove
}

func sweep(cur keyframe.Track, remove []bool) keyframe.Track {
	next := make(keyframe.Track, 0, len(cur))
	for i, k := range cur {
		if !remove[i] {
			next = append(next, k)
		}
	}
	return next
}
