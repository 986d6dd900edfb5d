package interp

import (
	"math"

	"github.com/cwbudde/algo-anim/anim/core"
)

// Quat is a unit quaternion.
type Quat struct {
	X, Y, Z, W float64
}

// FromEuler builds a rotation from Euler angles in degrees applied in
// Y, X, Z order (yaw, then pitch, then roll).
func FromEuler(x, y, z float64) Quat {
	c1, s1 := math.Cos(core.DegToRad(x)/2), math.Sin(core.DegToRad(x)/2)
	c2, s2 := math.Cos(core.DegToRad(y)/2), math.Sin(core.DegToRad(y)/2)
	c3, s3 := math.Cos(core.DegToRad(z)/2), math.Sin(core.DegToRad(z)/2)

	return Quat{
		X: s1*c2*c3 + c1*s2*s3,
		Y: c1*s2*c3 - s1*c2*s3,
		Z: c1*c2*s3 - s1*s2*c3,
		W: c1*c2*c3 + s1*s2*s3,
	}
}

// Euler returns the Y, X, Z ordered Euler angles of q in degrees.
func (q Quat) Euler() (x, y, z float64) {
	m11 := 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	m13 := 2 * (q.X*q.Z + q.W*q.Y)
	m21 := 2 * (q.X*q.Y + q.W*q.Z)
	m22 := 1 - 2*(q.X*q.X+q.Z*q.Z)
	m23 := 2 * (q.Y*q.Z - q.W*q.X)
	m31 := 2 * (q.X*q.Z - q.W*q.Y)
	m33 := 1 - 2*(q.X*q.X+q.Y*q.Y)

	rx := math.Asin(-core.Clamp(m23, -1, 1))
	var ry, rz float64
	if math.Abs(m23) < 0.9999999 {
		ry = math.Atan2(m13, m33)
		rz = math.Atan2(m21, m22)
	} else {
		// Gimbal lock: roll folds into yaw.
		ry = math.Atan2(-m31, m11)
	}
	return core.RadToDeg(rx), core.RadToDeg(ry), core.RadToDeg(rz)
}

// Dot returns the 4D dot product of q and o.
func (q Quat) Dot(o Quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Normalize returns q scaled to unit length.
func (q Quat) Normalize() Quat {
	l := math.Sqrt(q.Dot(q))
	if l == 0 {
		return Quat{W: 1}
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Slerp interpolates from a to b along the shorter arc.
func Slerp(a, b Quat, u float64) Quat {
	if u == 0 {
		return a
	}
	if u == 1 {
		return b
	}

	cosHalf := a.Dot(b)
	if cosHalf < 0 {
		b = Quat{-b.X, -b.Y, -b.Z, -b.W}
		cosHalf = -cosHalf
	}
	if cosHalf >= 1 {
		return a
	}

	sqrSinHalf := 1 - cosHalf*cosHalf
	if sqrSinHalf <= 1e-15 {
		s := 1 - u
		return Quat{
			s*a.X + u*b.X,
			s*a.Y + u*b.Y,
			s*a.Z + u*b.Z,
			s*a.W + u*b.W,
		}.Normalize()
	}

	sinHalf := math.Sqrt(sqrSinHalf)
	half := math.Atan2(sinHalf, cosHalf)
	ra := math.Sin((1-u)*half) / sinHalf
	rb := math.Sin(u*half) / sinHalf
	return Quat{
		a.X*ra + b.X*rb,
		a.Y*ra + b.Y*rb,
		a.Z*ra + b.Z*rb,
		a.W*ra + b.W*rb,
	}
}

// SlerpEulerInto interpolates two Euler triples (degrees) through quaternion
// slerp and writes the resulting triple into dst.
func SlerpEulerInto(dst, a, b []float64, u float64) {
	if len(dst) != 3 || len(a) != 3 || len(b) != 3 {
		panic("interp: SlerpEulerInto needs 3-component rotations")
	}
	q := Slerp(FromEuler(a[0], a[1], a[2]), FromEuler(b[0], b[1], b[2]), u)
	dst[0], dst[1], dst[2] = q.Euler()
}
