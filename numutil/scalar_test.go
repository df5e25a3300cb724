package numutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareCube(t *testing.T) {
	for _, x := range []float64{0, 1, -3, 2.5, 1e-3, 12345.678} {
		requireValue(t, x*x, Square(x))
		requireValue(t, x*x*x, Cube(x))
	}
	requireValue(t, 9, Square(3))

	f, ok := Square(math.Inf(-1)).Float()
	assert.True(t, ok)
	assert.True(t, math.IsInf(f, 1))
	f, ok = Cube(math.Inf(-1)).Float()
	assert.True(t, ok)
	assert.True(t, math.IsInf(f, -1))
	f, ok = Square(math.NaN()).Float()
	assert.True(t, ok)
	assert.True(t, math.IsNaN(f))

	for _, bad := range []any{"3", nil, true, []int{2}} {
		assert.True(t, Square(bad).IsInvalid(), "Square(%#v)", bad)
		assert.True(t, Cube(bad).IsInvalid(), "Cube(%#v)", bad)
	}
}

func TestBound(t *testing.T) {
	assert.Equal(t, 10.0, Bound(0, 10, 15))
	assert.Equal(t, 0.0, Bound(0, 10, -5))
	assert.Equal(t, 5.0, Bound(0, 10, 5))
	// Inverted bounds: the lower bound wins.
	assert.Equal(t, 10.0, Bound(10, 0, 5))
	assert.Equal(t, 10.0, Bound(10, 0, -20))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 100.0, PercentOfTotal(50, 200))
	assert.Equal(t, 25.0, PercentWhatOf(50, 200))
	assert.Equal(t, 50.0, PercentChange(100, 150))
	assert.Equal(t, -50.0, PercentChange(100, 50))

	assert.True(t, math.IsInf(PercentWhatOf(1, 0), 1))
	assert.True(t, math.IsNaN(PercentWhatOf(0, 0)))
	assert.True(t, math.IsInf(PercentChange(0, 5), 1))
}
