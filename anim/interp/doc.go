// Package interp provides the interpolation strategies used to evaluate a
// keyframe segment at a normalized position u in [0,1].
//
// Available methods:
//
//   - [LinearInto]:     per-component linear interpolation
//   - [CatmullRomInto]: 4-point Catmull-Rom spline built on [Hermite4]
//   - [SlerpEulerInto]: shortest-arc quaternion slerp between Euler triples
//   - [LerpHSVInto]:    RGB(A) colours blended in HSV space with hue wrap
//
// All Into functions write into dst, which must have the length of the
// endpoint slices and must not alias them. They panic on length mismatch;
// callers validate arity first.
package interp
