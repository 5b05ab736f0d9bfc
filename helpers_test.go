package glidescore

import "github.com/gonum/floats"

// floatsEqual mirrors the teacher's vectorsEqual test helper
// (dynamics/helper_test.go), generalized to this package's name.
func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floats.EqualWithinAbs(a[i], b[i], 1e-9) {
			return false
		}
	}
	return true
}

func pathsEqual(a, b Path) bool {
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

func nondecreasing(p Path) bool {
	for i := 1; i < len(p); i++ {
		if p[i] < p[i-1] {
			return false
		}
	}
	return true
}

func withinRange(p Path, n int) bool {
	for _, idx := range p {
		if idx < 0 || idx >= n {
			return false
		}
	}
	return true
}
