// Package sample evaluates keyframe tracks at arbitrary times.
//
// [At] clamps outside the track's span and otherwise binary-searches the
// bracketing keyframes l, r with l.Time < t <= r.Time. The segment position
// is remapped by r's easing and interpolated with the first matching strategy:
//
//   - rotation kinds:           quaternion slerp of Euler triples
//   - [KindColor] + r.HSVLerp:  HSV blend with hue wrap
//   - r.Spline == CatmullRom:   Catmull-Rom through the neighbouring keyframes
//   - otherwise:                per-component linear interpolation
//
// Tracks must already be sorted by ascending time; sampling never sorts.
package sample
