package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-anim/anim/keyframe"
)

// Ramp returns n evenly timed keyframes on [0,1] moving linearly from 'from' to 'to'.
func Ramp(n int, from, to []float64) keyframe.Track {
	out := make(keyframe.Track, n)
	for i := range out {
		u := 0.0
		if n > 1 {
			u = float64(i) / float64(n-1)
		}
		vals := make([]float64, len(from))
		for j := range vals {
			vals[j] = from[j] + u*(to[j]-from[j])
		}
		out[i] = keyframe.New(u, vals...)
	}
	return out
}

// Sine returns n evenly timed single-value keyframes of one sine cycle on [0,1].
func Sine(n int, amplitude float64) keyframe.Track {
	out := make(keyframe.Track, n)
	for i := range out {
		u := float64(i) / float64(n-1)
		out[i] = keyframe.New(u, amplitude*math.Sin(2*math.Pi*u))
	}
	return out
}

// Noise returns n keyframes with a fixed seed: random values in
// [-amplitude, amplitude] at sorted random times in [0,1].
func Noise(seed int64, n, arity int, amplitude float64) keyframe.Track {
	rng := rand.New(rand.NewSource(seed))
	out := make(keyframe.Track, n)
	for i := range out {
		vals := make([]float64, arity)
		for j := range vals {
			vals[j] = (rng.Float64()*2 - 1) * amplitude
		}
		out[i] = keyframe.New(rng.Float64(), vals...)
	}
	return out.Sorted()
}

// Constant returns n evenly timed keyframes that all hold values.
func Constant(n int, values ...float64) keyframe.Track {
	return Ramp(n, values, values)
}
