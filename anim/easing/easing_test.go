package easing

import (
	"math"
	"testing"
)

func TestEndpoints(t *testing.T) {
	for _, name := range Names() {
		fn, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed for listed name", name)
		}
		if got := fn(0); math.Abs(got) > 1e-9 {
			t.Fatalf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-9 {
			t.Fatalf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestSymmetricMidpoints(t *testing.T) {
	for _, name := range []Name{
		Linear, InOutSine, InOutQuad, InOutCubic, InOutQuart, InOutQuint,
		InOutExpo, InOutCirc, InOutBack, InOutElastic, InOutBounce,
	} {
		if got := Apply(name, 0.5); math.Abs(got-0.5) > 1e-9 {
			t.Fatalf("%s(0.5) = %v, want 0.5", name, got)
		}
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		name Name
		x    float64
		want float64
	}{
		{InQuad, 0.5, 0.25},
		{OutQuad, 0.5, 0.75},
		{InOutQuad, 0.25, 0.125},
		{InCubic, 0.5, 0.125},
		{InOutCubic, 0.25, 0.0625},
		{InQuart, 0.5, 0.0625},
		{InQuint, 0.5, 0.03125},
		{OutCubic, 0.5, 0.875},
		{Step, 0.999, 0},
		{InExpo, 0.5, 0.03125},
		{OutSine, 1.0 / 3, 0.5},
	}
	for _, tt := range tests {
		if got := Apply(tt.name, tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("%s(%v) = %v, want %v", tt.name, tt.x, got, tt.want)
		}
	}
}

func TestMonotonicCurves(t *testing.T) {
	for _, name := range []Name{Linear, InQuad, OutQuad, InOutQuad, InCubic, OutQuint, InSine, OutExpo, InOutCirc} {
		prev := Apply(name, 0)
		for i := 1; i <= 100; i++ {
			cur := Apply(name, float64(i)/100)
			if cur < prev {
				t.Fatalf("%s not monotonic at %d: %v < %v", name, i, cur, prev)
			}
			prev = cur
		}
	}
}

func TestOvershootingCurves(t *testing.T) {
	if got := Apply(InBack, 0.2); got >= 0 {
		t.Fatalf("easeInBack(0.2) = %v, want negative overshoot", got)
	}
	if got := Apply(OutBack, 0.8); got <= 1 {
		t.Fatalf("easeOutBack(0.8) = %v, want overshoot above 1", got)
	}
}

func TestApplyUnknownIsIdentity(t *testing.T) {
	if got := Apply("", 0.3); got != 0.3 {
		t.Fatalf("Apply(\"\", 0.3) = %v, want 0.3", got)
	}
	if got := Apply("easeSideways", 0.7); got != 0.7 {
		t.Fatalf("Apply(unknown, 0.7) = %v, want 0.7", got)
	}
}

func TestFamilyMembership(t *testing.T) {
	if !IsEasing("easeInOutQuad") {
		t.Fatal("easeInOutQuad should be known")
	}
	if IsEasing("splineCatmullRom") {
		t.Fatal("spline flag must not be an easing")
	}
	if !InFamily("easeSideways") {
		t.Fatal("family match is by substring")
	}
	if InFamily("hsvLerp") {
		t.Fatal("hsvLerp is not in the easing family")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 32 {
		t.Fatalf("len(Names()) = %d, want 32", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
