package interp

import (
	"math"

	"github.com/cwbudde/algo-anim/anim/core"
)

// RGBToHSV converts an RGB colour to hue, saturation and value. Hue is in [0,1).
// Components above 1 (HDR colours) keep their magnitude in value.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	d := maxC - minC

	v = maxC
	if maxC != 0 {
		s = d / maxC
	}
	if d == 0 {
		return 0, s, v
	}

	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6, s, v
}

// HSVToRGB converts hue (wrapped into [0,1)), saturation and value to RGB.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	h = core.WrapUnit(h)
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// LerpHue interpolates between two hues in [0,1) along the shorter way round.
func LerpHue(from, to, u float64) float64 {
	if math.Abs(to-from) < 0.5 {
		return core.Lerp(from, to, u)
	}
	if to > from {
		from++
	} else {
		from--
	}
	return core.WrapUnit(core.Lerp(from, to, u))
}

// LerpHSVInto blends two colours of at least three components in HSV space.
// Components past RGB (alpha) are interpolated linearly.
func LerpHSVInto(dst, a, b []float64, u float64) {
	if len(a) < 3 || len(a) != len(b) || len(dst) != len(a) {
		panic("interp: LerpHSVInto needs matching colours of 3+ components")
	}

	h1, s1, v1 := RGBToHSV(a[0], a[1], a[2])
	h2, s2, v2 := RGBToHSV(b[0], b[1], b[2])

	dst[0], dst[1], dst[2] = HSVToRGB(
		LerpHue(h1, h2, u),
		core.Lerp(s1, s2, u),
		core.Lerp(v1, v2, u),
	)
	for i := 3; i < len(dst); i++ {
		dst[i] = core.Lerp(a[i], b[i], u)
	}
}
