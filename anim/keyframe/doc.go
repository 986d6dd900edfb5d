// Package keyframe decodes and encodes animation keyframes and tracks.
//
// At the boundary a keyframe is a heterogeneous array
//
//	[v0, ..., vk, time, flag0?, flag1?, flag2?]
//
// holding numeric values, one numeric time and trailing string flags drawn
// from the easing, spline and "hsvLerp" vocabulary. A track is either simple
// (a bare value tuple with an implicit keyframe at time 0) or complex (a list
// of keyframes). [Decode] and [DecodeTrack] turn these arrays into the typed
// [Keyframe] and [Track] once; internal algorithms never see the raw form.
package keyframe
