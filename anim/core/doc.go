// Package core holds small numeric and buffer helpers shared by the
// keyframe, interpolation and optimization packages.
package core
