package kernels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSigmoid(t *testing.T) {
	src := []float32{0, 2, -2}
	dst := make([]float32, len(src))
	Sigmoid(dst, src)

	assert.InDelta(t, 0.5, dst[0], 1e-6)
	assert.InDelta(t, 0.880797, dst[1], 1e-5)
	assert.InDelta(t, 0.119203, dst[2], 1e-5)
}

func TestReLU(t *testing.T) {
	src := []float32{-1.5, 0, 3.25}
	dst := make([]float32, len(src))
	ReLU(dst, src)

	assert.Equal(t, []float32{0, 0, 3.25}, dst)
}

func TestAdd(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{10, 20, 30}
	dst := make([]float32, len(a))
	Add(dst, a, b)

	assert.Equal(t, []float32{11, 22, 33}, dst)
}

func TestMismatchedLengthsPanic(t *testing.T) {
	assert.Panics(t, func() { ReLU(make([]float32, 2), make([]float32, 3)) })
	assert.Panics(t, func() { Add(make([]float32, 2), make([]float32, 2), make([]float32, 1)) })
}
