package easing

import (
	"math"
	"slices"
	"strings"
)

// Name identifies an easing curve, e.g. "easeInOutQuad".
type Name string

// Func remaps normalized time x in [0,1].
type Func func(x float64) float64

// Family is the substring shared by every easing name.
const Family = "ease"

// Easing curves known to [Lookup].
const (
	Linear       Name = "easeLinear"
	Step         Name = "easeStep"
	InSine       Name = "easeInSine"
	OutSine      Name = "easeOutSine"
	InOutSine    Name = "easeInOutSine"
	InQuad       Name = "easeInQuad"
	OutQuad      Name = "easeOutQuad"
	InOutQuad    Name = "easeInOutQuad"
	InCubic      Name = "easeInCubic"
	OutCubic     Name = "easeOutCubic"
	InOutCubic   Name = "easeInOutCubic"
	InQuart      Name = "easeInQuart"
	OutQuart     Name = "easeOutQuart"
	InOutQuart   Name = "easeInOutQuart"
	InQuint      Name = "easeInQuint"
	OutQuint     Name = "easeOutQuint"
	InOutQuint   Name = "easeInOutQuint"
	InExpo       Name = "easeInExpo"
	OutExpo      Name = "easeOutExpo"
	InOutExpo    Name = "easeInOutExpo"
	InCirc       Name = "easeInCirc"
	OutCirc      Name = "easeOutCirc"
	InOutCirc    Name = "easeInOutCirc"
	InBack       Name = "easeInBack"
	OutBack      Name = "easeOutBack"
	InOutBack    Name = "easeInOutBack"
	InElastic    Name = "easeInElastic"
	OutElastic   Name = "easeOutElastic"
	InOutElastic Name = "easeInOutElastic"
	InBounce     Name = "easeInBounce"
	OutBounce    Name = "easeOutBounce"
	InOutBounce  Name = "easeInOutBounce"
)

const (
	backC1    = 1.70158
	backC2    = backC1 * 1.525
	backC3    = backC1 + 1
	elasticC4 = 2 * math.Pi / 3
	elasticC5 = 2 * math.Pi / 4.5
)

var curves = map[Name]Func{
	Linear: func(x float64) float64 { return x },
	Step:   math.Floor,

	InSine:    func(x float64) float64 { return 1 - math.Cos(x*math.Pi/2) },
	OutSine:   func(x float64) float64 { return math.Sin(x * math.Pi / 2) },
	InOutSine: func(x float64) float64 { return -(math.Cos(math.Pi*x) - 1) / 2 },

	InQuad:    inPow(2),
	OutQuad:   outPow(2),
	InOutQuad: inOutPow(2),

	InCubic:    inPow(3),
	OutCubic:   outPow(3),
	InOutCubic: inOutPow(3),

	InQuart:    inPow(4),
	OutQuart:   outPow(4),
	InOutQuart: inOutPow(4),

	InQuint:    inPow(5),
	OutQuint:   outPow(5),
	InOutQuint: inOutPow(5),

	InExpo:    inExpo,
	OutExpo:   outExpo,
	InOutExpo: inOutExpo,

	InCirc:    func(x float64) float64 { return 1 - math.Sqrt(1-x*x) },
	OutCirc:   func(x float64) float64 { return math.Sqrt(1 - (x-1)*(x-1)) },
	InOutCirc: inOutCirc,

	InBack:    func(x float64) float64 { return backC3*x*x*x - backC1*x*x },
	OutBack:   outBack,
	InOutBack: inOutBack,

	InElastic:    inElastic,
	OutElastic:   outElastic,
	InOutElastic: inOutElastic,

	InBounce:    func(x float64) float64 { return 1 - outBounce(1-x) },
	OutBounce:   outBounce,
	InOutBounce: inOutBounce,
}

// Lookup returns the curve registered under name.
func Lookup(name Name) (Func, bool) {
	fn, ok := curves[name]
	return fn, ok
}

// Apply remaps x through the named curve. An empty or unknown name leaves x unchanged.
func Apply(name Name, x float64) float64 {
	if fn, ok := curves[name]; ok {
		return fn(x)
	}
	return x
}

// IsEasing reports whether s names a known easing curve.
func IsEasing(s string) bool {
	_, ok := curves[Name(s)]
	return ok
}

// InFamily reports whether s belongs to the easing flag family.
func InFamily(s string) bool {
	return strings.Contains(s, Family)
}

// Names returns every known easing name in lexical order.
func Names() []Name {
	out := make([]Name, 0, len(curves))
	for name := range curves {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

func inPow(n int) Func {
	return func(x float64) float64 { return powi(x, n) }
}

func outPow(n int) Func {
	return func(x float64) float64 { return 1 - powi(1-x, n) }
}

func inOutPow(n int) Func {
	// 2^(n-1) * x^n on the first half, mirrored on the second.
	k := powi(2, n-1)
	return func(x float64) float64 {
		if x < 0.5 {
			return k * powi(x, n)
		}
		return 1 - powi(-2*x+2, n)/2
	}
}

func powi(x float64, n int) float64 {
	r := 1.0
	for range n {
		r *= x
	}
	return r
}

func inExpo(x float64) float64 {
	if x == 0 {
		return 0
	}
	return math.Pow(2, 10*x-10)
}

func outExpo(x float64) float64 {
	if x == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*x)
}

func inOutExpo(x float64) float64 {
	switch {
	case x == 0:
		return 0
	case x == 1:
		return 1
	case x < 0.5:
		return math.Pow(2, 20*x-10) / 2
	default:
		return (2 - math.Pow(2, -20*x+10)) / 2
	}
}

func inOutCirc(x float64) float64 {
	if x < 0.5 {
		return (1 - math.Sqrt(1-4*x*x)) / 2
	}
	y := -2*x + 2
	return (math.Sqrt(1-y*y) + 1) / 2
}

func outBack(x float64) float64 {
	y := x - 1
	return 1 + backC3*y*y*y + backC1*y*y
}

func inOutBack(x float64) float64 {
	if x < 0.5 {
		y := 2 * x
		return y * y * ((backC2+1)*y - backC2) / 2
	}
	y := 2*x - 2
	return (y*y*((backC2+1)*y+backC2) + 2) / 2
}

func inElastic(x float64) float64 {
	if x == 0 || x == 1 {
		return x
	}
	return -math.Pow(2, 10*x-10) * math.Sin((x*10-10.75)*elasticC4)
}

func outElastic(x float64) float64 {
	if x == 0 || x == 1 {
		return x
	}
	return math.Pow(2, -10*x)*math.Sin((x*10-0.75)*elasticC4) + 1
}

func inOutElastic(x float64) float64 {
	switch {
	case x == 0 || x == 1:
		return x
	case x < 0.5:
		return -(math.Pow(2, 20*x-10) * math.Sin((20*x-11.125)*elasticC5)) / 2
	default:
		return math.Pow(2, -20*x+10)*math.Sin((20*x-11.125)*elasticC5)/2 + 1
	}
}

func outBounce(x float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case x < 1/d1:
		return n1 * x * x
	case x < 2/d1:
		x -= 1.5 / d1
		return n1*x*x + 0.75
	case x < 2.5/d1:
		x -= 2.25 / d1
		return n1*x*x + 0.9375
	default:
		x -= 2.625 / d1
		return n1*x*x + 0.984375
	}
}

func inOutBounce(x float64) float64 {
	if x < 0.5 {
		return (1 - outBounce(1-2*x)) / 2
	}
	return (1 + outBounce(2*x-1)) / 2
}
