package keyframe

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/cwbudde/algo-anim/anim/easing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  []any
		want Keyframe
	}{
		{
			name: "values and time",
			raw:  []any{1.0, 2.0, 3.0, 0.5},
			want: Keyframe{Values: []float64{1, 2, 3}, Time: 0.5},
		},
		{
			name: "time only",
			raw:  []any{0.25},
			want: Keyframe{Values: []float64{}, Time: 0.25},
		},
		{
			name: "all flags",
			raw:  []any{1.0, 0.0, 0.0, 1.0, 1.0, "easeInOutQuad", "splineCatmullRom", "hsvLerp"},
			want: Keyframe{
				Values:  []float64{1, 0, 0, 1},
				Time:    1,
				Easing:  easing.InOutQuad,
				Spline:  CatmullRom,
				HSVLerp: true,
			},
		},
		{
			name: "mixed numeric types",
			raw:  []any{1, int64(2), float32(0.5), json.Number("0.75")},
			want: Keyframe{Values: []float64{1, 2, 0.5}, Time: 0.75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Decode() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  []any
		want error
	}{
		{name: "empty", raw: nil, want: ErrNoTime},
		{name: "flags only", raw: []any{"easeInQuad"}, want: ErrNoTime},
		{name: "non numeric time", raw: []any{1.0, true}, want: ErrNotNumeric},
		{name: "string among values", raw: []any{1.0, "easeInQuad", 0.5}, want: ErrNotNumeric},
		{name: "unknown flag", raw: []any{1.0, 0.5, "wobble"}, want: ErrUnknownFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMustDecodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for keyframe without time")
		}
	}()
	MustDecode([]any{"easeInQuad"})
}

func TestEncodeRoundTrip(t *testing.T) {
	raw := []any{0.0, 1.0, 2.0, 0.5, "easeOutCubic", "splineCatmullRom"}
	k := MustDecode(raw)
	if got := k.Encode(); !reflect.DeepEqual(got, raw) {
		t.Fatalf("Encode() = %#v, want %#v", got, raw)
	}
}

func TestEncodeCanonicalFlagOrder(t *testing.T) {
	k := MustDecode([]any{1.0, 0.0, "hsvLerp", "splineCatmullRom", "easeInSine"})
	want := []any{1.0, 0.0, "easeInSine", "splineCatmullRom", "hsvLerp"}
	if got := k.Encode(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Encode() = %#v, want %#v", got, want)
	}
}

func TestKeyframeSetFlagReplacesFamily(t *testing.T) {
	k := New(0, 1)
	if err := k.SetFlag("easeInQuad"); err != nil {
		t.Fatal(err)
	}
	if err := k.SetFlag("easeOutQuad"); err != nil {
		t.Fatal(err)
	}
	if k.Easing != easing.OutQuad {
		t.Fatalf("Easing = %q, want %q", k.Easing, easing.OutQuad)
	}
	if err := k.SetFlag("splineLinear"); !errors.Is(err, ErrUnknownFlag) {
		t.Fatalf("SetFlag(splineLinear) error = %v, want ErrUnknownFlag", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	k := New(0.5, 1, 2)
	c := k.Clone()
	c.Values[0] = 9
	if k.Values[0] != 1 {
		t.Fatal("Clone shares value storage")
	}
}

func TestSameFlags(t *testing.T) {
	a := Keyframe{Easing: easing.InQuad}
	b := Keyframe{Easing: easing.InQuad, HSVLerp: true}
	if !a.SameFlags(b) {
		t.Fatal("hsvLerp must not affect SameFlags")
	}
	b.Spline = CatmullRom
	if a.SameFlags(b) {
		t.Fatal("differing spline must break SameFlags")
	}
}
