package core

import "math"

// Clamp limits x to the inclusive range between lo and hi, in either order.
func Clamp(x, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Min(math.Max(x, lo), hi)
}

// Lerp returns a + u*(b-a). It returns a exactly when a == b.
func Lerp(a, b, u float64) float64 {
	return a + u*(b-a)
}

// WrapUnit maps x into [0, 1).
func WrapUnit(x float64) float64 {
	x = math.Mod(x, 1)
	if x < 0 {
		x++
	}
	if x >= 1 {
		return 0
	}

	return x
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
