package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1))
	assert.True(t, Equal(1, 1+Epsilon/2))
	assert.False(t, Equal(1, 1+Epsilon*2))
	assert.True(t, Equal(-0.0, 0.0))
}

func TestAngReduce(t *testing.T) {
	assert.InDelta(t, 0, angReduce(0), Epsilon)
	assert.InDelta(t, math.Pi, angReduce(-math.Pi), Epsilon)
	assert.InDelta(t, math.Pi/2, angReduce(math.Pi/2+4*math.Pi), Epsilon)
	assert.InDelta(t, 3*math.Pi/2, angReduce(-math.Pi/2), Epsilon)
	// The reduced angle always lands in [0, 2pi).
	assert.InDelta(t, 0, angReduce(2*math.Pi), Epsilon)
}

func TestLinspace(t *testing.T) {
	vals := linspace(0, 4, 5)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, vals)

	vals = linspace(-1, 1, 3)
	assert.InDelta(t, -1, vals[0], Epsilon)
	assert.InDelta(t, 0, vals[1], Epsilon)
	assert.InDelta(t, 1, vals[2], Epsilon)

	// The endpoint is hit exactly, no accumulated step error.
	vals = linspace(0, 1, 7)
	assert.Equal(t, 1.0, vals[6])

	assert.Panics(t, func() { linspace(0, 1, 1) })
}
