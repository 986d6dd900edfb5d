package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}

// Equal reports whether a and b hold exactly the same values.
func Equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
