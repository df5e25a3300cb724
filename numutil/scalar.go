package numutil

import "math"

// Square returns x² for numeric x.
func Square(x any) Result {
	f, ok := toFloat(x)
	if !ok {
		return Invalid()
	}
	return Value(f * f)
}

// Cube returns x³ for numeric x.
func Cube(x any) Result {
	f, ok := toFloat(x)
	if !ok {
		return Invalid()
	}
	return Value(f * f * f)
}

// Bound clamps val into [lower, upper] as max(lower, min(val, upper)).
// Callers keep lower <= upper; with lower > upper the result is always lower,
// not upper as min(max(lower, val), upper) would give.
func Bound(lower, upper, val float64) float64 {
	return math.Max(lower, math.Min(val, upper))
}

// PercentOfTotal answers "what is x percent of y".
func PercentOfTotal(x, y float64) float64 {
	return x / 100 * y
}

// PercentWhatOf answers "x is what percent of y". y == 0 gives ±Inf or NaN.
func PercentWhatOf(x, y float64) float64 {
	return x / y * 100
}

// PercentChange is the change from x to y as a percentage of x.
func PercentChange(x, y float64) float64 {
	return (y - x) / x * 100
}
