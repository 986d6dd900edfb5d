// Package optimize removes redundant keyframes from a track within numeric
// tolerances.
//
// [Optimize] runs a bounded number of passes. Each pass sorts the track by
// time and slides a three-keyframe window over every interior keyframe;
// every enabled [Reducer] judges the window and may mark one keyframe as
// redundant. Marked keyframes are dropped together at the end of the pass.
//
// Built-in reducers:
//
//   - duplicate:       exactly equal values
//   - similarPoint:    values and times within tolerance, flags equal
//   - slopeSimilarity: the middle keyframe lies on the line from its
//     predecessor to its successor
//
// Further reducers are registered with [WithReducer] or a [Registry]. Every
// run builds its own reducer instances, so settings can be shared across
// goroutines.
package optimize
