package numutil

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrNotNumeric is returned by RandomFloat for non-numeric bounds.
var ErrNotNumeric = errors.New("numutil: RandomFloat accepts only numbers")

// uniform is the process-wide source of values in [0, 1).
var uniform = rand.Float64

// RandomInt with no arguments returns a value in [0, 1). With two numeric
// arguments it returns an integer in [min, max], both ends included.
// Any other call is invalid.
func RandomInt(args ...any) Result {
	switch len(args) {
	case 0:
		return Value(uniform())
	case 2:
		lo, okLo := toFloat(args[0])
		hi, okHi := toFloat(args[1])
		if !okLo || !okHi {
			return Invalid()
		}
		return Value(math.Floor(uniform()*(hi+1-lo)) + lo)
	}
	return Invalid()
}

// RandomFloat with no arguments returns a value in [0, 1), with one argument m
// a value in [0, m), and with two a value in [min, max).
//
// Unlike the other helpers it reports bad input as an error.
func RandomFloat(args ...any) (float64, error) {
	if len(args) > 2 {
		return 0, fmt.Errorf("%w: got %d arguments", ErrNotNumeric, len(args))
	}
	bounds := make([]float64, len(args))
	for i, arg := range args {
		f, ok := toFloat(arg)
		if !ok {
			return 0, fmt.Errorf("%w: %v (%T)", ErrNotNumeric, arg, arg)
		}
		bounds[i] = f
	}

	switch len(bounds) {
	case 1:
		return uniform() * bounds[0], nil
	case 2:
		return uniform()*(bounds[1]-bounds[0]) + bounds[0], nil
	}
	return uniform(), nil
}
