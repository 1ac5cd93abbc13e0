// Package kernels holds reference implementations of the elementwise
// operators the dla target lowers to. They serve as golden values for tests
// and for interpreting scheduled graphs; dst and src slices must have equal
// length.
package kernels

import "math"

// Sigmoid writes the logistic function of each element of src into dst.
func Sigmoid(dst, src []float32) {
	checkLen(len(dst), len(src))
	for i, x := range src {
		dst[i] = 1.0 / (1.0 + float32(math.Exp(float64(-x))))
	}
}

// ReLU writes max(0, x) of each element of src into dst.
func ReLU(dst, src []float32) {
	checkLen(len(dst), len(src))
	for i, x := range src {
		if x > 0 {
			dst[i] = x
		} else {
			dst[i] = 0
		}
	}
}

// Add writes the elementwise sum of a and b into dst.
func Add(dst, a, b []float32) {
	checkLen(len(dst), len(a))
	checkLen(len(dst), len(b))
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func checkLen(a, b int) {
	if a != b {
		panic("kernels: mismatched operand lengths")
	}
}
