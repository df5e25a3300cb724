// Package numutil holds small numeric and statistical helpers: powers, clamping,
// percentages, aggregates over a working set of values, polyline lengths and
// random numbers.
//
// Aggregates accept a Values working set. Build one from bare numbers with Nums
// or from mixed input with FromSlice; non-numeric entries are dropped.
package numutil

import (
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// Values is the ordered working set an aggregate operates on. NaN and
// infinities are kept and propagate through the arithmetic.
type Values []float64

// Nums builds a working set from bare numbers.
func Nums(xs ...float64) Values {
	vals := make(Values, len(xs))
	copy(vals, xs)
	return vals
}

// FromSlice builds a working set from mixed input, keeping numeric elements in
// order and silently dropping everything else. Numeric-looking strings are
// dropped too; use IsNumber when string input should count.
func FromSlice(xs []any) Values {
	vals := make(Values, 0, len(xs))
	for _, x := range xs {
		if f, ok := toFloat(x); ok {
			vals = append(vals, f)
		}
	}
	return vals
}

// FromArgs dispatches on the first argument: a number means every argument is
// an element, a slice means its elements are. Anything else is invalid.
func FromArgs(args ...any) (Values, bool) {
	if len(args) == 0 {
		return nil, false
	}
	if isNumericKind(args[0]) {
		return FromSlice(args), true
	}
	if xs, ok := asSlice(args[0]); ok {
		return FromSlice(xs), true
	}
	logrus.Debugf("numutil: rejecting first argument of type %T", args[0])
	return nil, false
}

// Floats returns a copy of the working set.
func (v Values) Floats() []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// Any converts the working set back to mixed form.
func (v Values) Any() []any {
	out := make([]any, len(v))
	for i, f := range v {
		out[i] = f
	}
	return out
}

// IsNumber reports whether x is a finite number, either as a Go numeric value
// or as a string that parses as one.
func IsNumber(x any) bool {
	if s, ok := x.(string); ok {
		f, err := cast.ToFloat64E(strings.TrimSpace(s))
		return err == nil && finite(f)
	}
	f, ok := toFloat(x)
	return ok && finite(f)
}

func toFloat(x any) (float64, bool) {
	if !isNumericKind(x) {
		return 0, false
	}
	f, err := cast.ToFloat64E(x)
	if err != nil {
		return 0, false
	}
	return f, true
}

func isNumericKind(x any) bool {
	switch x.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

func asSlice(x any) ([]any, bool) {
	switch xs := x.(type) {
	case []any:
		return xs, true
	case Values:
		return xs.Any(), true
	case []float64:
		return Values(xs).Any(), true
	case []int:
		out := make([]any, len(xs))
		for i, n := range xs {
			out[i] = n
		}
		return out, true
	}
	return nil, false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
