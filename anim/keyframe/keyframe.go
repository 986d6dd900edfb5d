package keyframe

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/algo-anim/anim/easing"
)

// Keyframe is one decoded sample of an animated property.
type Keyframe struct {
	Values  []float64
	Time    float64
	Easing  easing.Name
	Spline  Spline
	HSVLerp bool
}

// New returns a keyframe without flags. values is not copied.
func New(time float64, values ...float64) Keyframe {
	return Keyframe{Values: values, Time: time}
}

// Decode parses one raw keyframe. The time is the last element that is not a
// string; values are every element before it.
func Decode(raw []any) (Keyframe, error) {
	ti := len(raw) - 1
	for ti >= 0 {
		if _, ok := raw[ti].(string); !ok {
			break
		}
		ti--
	}
	if ti < 0 {
		return Keyframe{}, ErrNoTime
	}

	var k Keyframe
	time, ok := toFloat(raw[ti])
	if !ok {
		return Keyframe{}, fmt.Errorf("%w: time %v (%T)", ErrNotNumeric, raw[ti], raw[ti])
	}
	k.Time = time

	k.Values = make([]float64, ti)
	for i := range ti {
		v, ok := toFloat(raw[i])
		if !ok {
			return Keyframe{}, fmt.Errorf("%w: index %d: %v (%T)", ErrNotNumeric, i, raw[i], raw[i])
		}
		k.Values[i] = v
	}

	for _, f := range raw[ti+1:] {
		if err := k.SetFlag(f.(string)); err != nil {
			return Keyframe{}, err
		}
	}
	return k, nil
}

// MustDecode is like Decode but panics on error.
func MustDecode(raw []any) Keyframe {
	k, err := Decode(raw)
	if err != nil {
		panic(err)
	}
	return k
}

// SetFlag applies one flag from the vocabulary, replacing any flag of the same family.
func (k *Keyframe) SetFlag(flag string) error {
	switch {
	case flag == HSVLerp:
		k.HSVLerp = true
	case flag == string(CatmullRom):
		k.Spline = CatmullRom
	case easing.IsEasing(flag):
		k.Easing = easing.Name(flag)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFlag, flag)
	}
	return nil
}

// Flags returns the keyframe's flags in encoding order.
func (k Keyframe) Flags() []string {
	var flags []string
	if k.Easing != "" {
		flags = append(flags, string(k.Easing))
	}
	if k.Spline != "" {
		flags = append(flags, string(k.Spline))
	}
	if k.HSVLerp {
		flags = append(flags, HSVLerp)
	}
	return flags
}

// Encode returns the raw array form [values..., time, flags...].
func (k Keyframe) Encode() []any {
	flags := k.Flags()
	out := make([]any, 0, len(k.Values)+1+len(flags))
	for _, v := range k.Values {
		out = append(out, v)
	}
	out = append(out, k.Time)
	for _, f := range flags {
		out = append(out, f)
	}
	return out
}

// Clone returns a deep copy of k.
func (k Keyframe) Clone() Keyframe {
	k.Values = append([]float64(nil), k.Values...)
	return k
}

// Arity returns the number of values.
func (k Keyframe) Arity() int {
	return len(k.Values)
}

// SameFlags reports whether k and o share easing and spline.
func (k Keyframe) SameFlags(o Keyframe) bool {
	return k.Easing == o.Easing && k.Spline == o.Spline
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
