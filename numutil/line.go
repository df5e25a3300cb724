package numutil

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
	"github.com/sirupsen/logrus"
)

// EarthRadius is the mean earth radius in metres.
const EarthRadius = 6371000

// LineLength returns the length of the polyline x1,y1,x2,y2,...,xn,yn.
// An odd number of coordinates is invalid.
func LineLength(v Values) Result {
	if len(v)%2 != 0 {
		logrus.Debugf("numutil: odd coordinate count %d", len(v))
		return Invalid()
	}
	var sum float64
	for i := 0; i+3 < len(v); i += 2 {
		a := r2.Point{X: v[i], Y: v[i+1]}
		b := r2.Point{X: v[i+2], Y: v[i+3]}
		sum += b.Sub(a).Norm()
	}
	return Value(sum)
}

// PairLength returns the length of a polyline given as coordinate pairs.
// A segment only counts when both of its endpoints hold exactly two numbers;
// other segments are skipped.
func PairLength(pairs [][]any) Result {
	var sum float64
	for i := 0; i+1 < len(pairs); i++ {
		a, okA := pointOf(pairs[i])
		b, okB := pointOf(pairs[i+1])
		if okA && okB {
			sum += b.Sub(a).Norm()
		}
	}
	return Value(sum)
}

// LineLengthOf accepts either flat coordinates (variadic or a single slice) or
// a single slice of coordinate pairs.
func LineLengthOf(args ...any) Result {
	if len(args) == 0 {
		return Invalid()
	}
	if isNumericKind(args[0]) {
		return LineLength(FromSlice(args))
	}
	xs, ok := asSlice(args[0])
	if !ok || len(xs) == 0 {
		return Invalid()
	}
	if isNumericKind(xs[0]) {
		return LineLength(FromSlice(xs))
	}
	if _, ok := asSlice(xs[0]); !ok {
		return Invalid()
	}
	var pairs [][]any
	for _, x := range xs {
		if pair, ok := asSlice(x); ok {
			pairs = append(pairs, pair)
		}
	}
	return PairLength(pairs)
}

// SphericalLength returns the great-circle length in metres of a polyline of
// lat/lng pairs given in degrees.
func SphericalLength(latLngs [][2]float64) float64 {
	lls := make([]s2.LatLng, len(latLngs))
	for i, ll := range latLngs {
		lls[i] = s2.LatLngFromDegrees(ll[0], ll[1])
	}
	line := s2.PolylineFromLatLngs(lls)
	return line.Length().Radians() * EarthRadius
}

func pointOf(pair []any) (r2.Point, bool) {
	v := FromSlice(pair)
	if len(v) != 2 {
		return r2.Point{}, false
	}
	return r2.Point{X: v[0], Y: v[1]}, true
}
