package interp

import (
	"github.com/cwbudde/algo-vecmath"
)

// LinearInto writes a + u*(b-a) into dst.
func LinearInto(dst, a, b []float64, u float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("interp: LinearInto length mismatch")
	}
	if u == 1 {
		copy(dst, b)
		return
	}
	vecmath.ScaleBlock(dst, a, -1)
	vecmath.AddBlockInPlace(dst, b)
	vecmath.ScaleBlockInPlace(dst, u)
	vecmath.AddBlockInPlace(dst, a)
}

// CatmullRomInto interpolates from p1 to p2 using neighbours p0 and p3.
// All slices must share the length of dst.
func CatmullRomInto(dst, p0, p1, p2, p3 []float64, u float64) {
	n := len(dst)
	if len(p0) != n || len(p1) != n || len(p2) != n || len(p3) != n {
		panic("interp: CatmullRomInto length mismatch")
	}
	for i := range dst {
		dst[i] = Hermite4(u, p0[i], p1[i], p2[i], p3[i])
	}
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
// With tangents 0.5*(x1-xm1) and 0.5*(x2-x0) this is the uniform Catmull-Rom basis.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}
