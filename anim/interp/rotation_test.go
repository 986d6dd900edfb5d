package interp

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-anim/internal/testutil"
)

func TestEulerRoundTrip(t *testing.T) {
	for _, e := range [][3]float64{
		{0, 0, 0},
		{30, 45, 60},
		{-20, 170, -90},
		{89, -45, 10},
	} {
		x, y, z := FromEuler(e[0], e[1], e[2]).Euler()
		testutil.RequireSliceNearlyEqual(t, []float64{x, y, z}, e[:], 1e-9)
	}
}

func TestSlerpEulerMidpoint(t *testing.T) {
	dst := make([]float64, 3)
	SlerpEulerInto(dst, []float64{0, 0, 0}, []float64{0, 90, 0}, 0.5)
	testutil.RequireSliceNearlyEqual(t, dst, []float64{0, 45, 0}, 1e-9)
}

func TestSlerpTakesShortestArc(t *testing.T) {
	dst := make([]float64, 3)
	SlerpEulerInto(dst, []float64{0, -170, 0}, []float64{0, 170, 0}, 0.5)
	if math.Abs(math.Abs(dst[1])-180) > 1e-9 {
		t.Fatalf("yaw = %v, want ±180 (short way round)", dst[1])
	}
	if math.Abs(dst[0]) > 1e-9 || math.Abs(dst[2]) > 1e-9 {
		t.Fatalf("pitch/roll = %v, %v, want 0", dst[0], dst[2])
	}
}

func TestSlerpEndpoints(t *testing.T) {
	a := FromEuler(10, 20, 30)
	b := FromEuler(-40, 50, 60)
	if Slerp(a, b, 0) != a || Slerp(a, b, 1) != b {
		t.Fatal("Slerp must return exact endpoints at u=0 and u=1")
	}
	mid := Slerp(a, b, 0.5)
	if l := math.Sqrt(mid.Dot(mid)); math.Abs(l-1) > 1e-12 {
		t.Fatalf("|mid| = %v, want 1", l)
	}
}

func TestSlerpIdenticalRotations(t *testing.T) {
	q := FromEuler(15, 25, 35)
	got := Slerp(q, q, 0.3)
	if math.Abs(got.Dot(q)-1) > 1e-12 {
		t.Fatalf("Slerp(q, q) drifted: %+v vs %+v", got, q)
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Quat{}).Normalize(); got != (Quat{W: 1}) {
		t.Fatalf("Normalize(zero) = %+v, want identity", got)
	}
}
