// Package easing provides the named easing curves that remap normalized
// interpolation time before a keyframe segment is interpolated.
//
// Every curve maps [0,1] onto a range that starts at 0 and ends at 1:
//
//   - easeLinear, easeStep
//   - easeIn/easeOut/easeInOut × Sine, Quad, Cubic, Quart, Quint, Expo, Circ
//   - easeIn/easeOut/easeInOut × Back, Elastic (overshooting)
//   - easeIn/easeOut/easeInOut × Bounce
//
// Curves are looked up by name with [Lookup] or applied directly with [Apply].
package easing
