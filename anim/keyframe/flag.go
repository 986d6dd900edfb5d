package keyframe

import (
	"strings"

	"github.com/cwbudde/algo-anim/anim/easing"
)

// Spline identifies an alternative interpolation basis.
type Spline string

const (
	// CatmullRom interpolates through four neighbouring keyframes.
	CatmullRom Spline = "splineCatmullRom"
	// SplineFamily is the substring shared by every spline flag.
	SplineFamily = "spline"
	// HSVLerp marks a colour keyframe for interpolation in HSV space.
	HSVLerp = "hsvLerp"
)

// Match selects how an existing flag slot is found.
type Match int

const (
	// MatchExact finds the slot holding exactly the given flag.
	MatchExact Match = iota
	// MatchFamily finds the slot holding any flag of the same family,
	// so a new easing replaces the old easing.
	MatchFamily
)

func family(flag string) string {
	switch {
	case easing.InFamily(flag):
		return easing.Family
	case strings.Contains(flag, SplineFamily):
		return SplineFamily
	default:
		return flag
	}
}

func (m Match) matches(slot, flag string) bool {
	if m == MatchFamily {
		return strings.Contains(slot, family(flag))
	}
	return slot == flag
}

// FlagIndex returns the index of the trailing flag slot in raw matching flag,
// or -1 when there is none.
func FlagIndex(raw []any, flag string, match Match) int {
	for i := len(raw) - 1; i >= 0; i-- {
		s, ok := raw[i].(string)
		if !ok {
			break
		}
		if match.matches(s, flag) {
			return i
		}
	}
	return -1
}

// SetFlag overwrites the flag slot matching flag, or appends flag when no slot
// matches. The returned slice may share storage with raw.
func SetFlag(raw []any, flag string, match Match) []any {
	if i := FlagIndex(raw, flag, match); i >= 0 {
		raw[i] = flag
		return raw
	}
	return append(raw, flag)
}

// RemoveFlag drops the flag slot matching flag, if present.
func RemoveFlag(raw []any, flag string, match Match) []any {
	i := FlagIndex(raw, flag, match)
	if i < 0 {
		return raw
	}
	return append(raw[:i], raw[i+1:]...)
}
