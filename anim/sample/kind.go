package sample

// Kind tags the animated property so the evaluator can pick an interpolation.
type Kind int

// Property kinds.
const (
	// KindGeneric is interpolated per component, linearly or by spline.
	KindGeneric Kind = iota
	// KindPosition is a point in space; it samples like KindGeneric.
	KindPosition
	// KindRotation holds Euler angles in degrees and is slerped.
	KindRotation
	// KindColor holds RGB(A) and may be lerped in HSV.
	KindColor
)

var propertyKinds = map[string]Kind{
	"position":            KindPosition,
	"offsetPosition":      KindPosition,
	"localPosition":       KindPosition,
	"definitePosition":    KindPosition,
	"rotation":            KindRotation,
	"localRotation":       KindRotation,
	"offsetWorldRotation": KindRotation,
	"worldRotation":       KindRotation,
	"color":               KindColor,
}

// ParseKind maps an animation property name to its kind.
// Unknown properties (scale, dissolve, time, ...) are generic.
func ParseKind(property string) Kind {
	return propertyKinds[property]
}

// IsRotation reports whether k holds Euler angles.
func (k Kind) IsRotation() bool {
	return k == KindRotation
}

func (k Kind) String() string {
	switch k {
	case KindPosition:
		return "position"
	case KindRotation:
		return "rotation"
	case KindColor:
		return "color"
	default:
		return "generic"
	}
}
