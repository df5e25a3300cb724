package numutil

import (
	"math"
	"sort"

	"github.com/elliotchance/orderedmap/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Aggregator reduces a working set to a single Result.
type Aggregator func(Values) Result

// Aggregators maps the names accepted on the command line to their functions.
var Aggregators = map[string]Aggregator{
	"mean":    Mean,
	"avg":     Average,
	"average": Average,
	"median":  Median,
	"mode":    Mode,
	"range":   Range,
	"rms":     RootMeanSquare,
	"sum":     Sum,
	"min":     Min,
	"max":     Max,
}

// AggregatorNames lists the canonical aggregator names in display order.
var AggregatorNames = []string{"mean", "median", "mode", "range", "rms", "sum", "min", "max"}

// Mean returns the arithmetic mean, or 0 for an empty set.
func Mean(v Values) Result {
	if len(v) == 0 {
		return Value(0)
	}
	return Value(stat.Mean(v, nil))
}

// Average is Mean.
func Average(v Values) Result {
	return Mean(v)
}

func Sum(v Values) Result {
	return Value(floats.Sum(v))
}

func Min(v Values) Result {
	if len(v) == 0 {
		return Invalid()
	}
	return Value(floats.Min(v))
}

func Max(v Values) Result {
	if len(v) == 0 {
		return Invalid()
	}
	return Value(floats.Max(v))
}

// Median returns the middle value of the sorted set, averaging the two middle
// values when the count is even.
func Median(v Values) Result {
	n := len(v)
	if n == 0 {
		return Invalid()
	}
	sorted := v.Floats()
	sort.Float64s(sorted)
	if n%2 == 0 {
		return Value((sorted[n/2-1] + sorted[n/2]) / 2)
	}
	return Value(sorted[n/2])
}

// Mode returns the most frequent value. Ties go to the value seen first. A set
// where nothing repeats has no mode and yields None.
func Mode(v Values) Result {
	if len(v) == 0 {
		return Invalid()
	}
	bins := orderedmap.NewOrderedMap[float64, int]()
	for _, x := range v {
		count, _ := bins.Get(x)
		bins.Set(x, count+1)
	}

	mode, best := v[0], 0
	for _, key := range bins.Keys() {
		count, _ := bins.Get(key)
		if count > best {
			mode, best = key, count
		}
	}
	if best < 2 {
		return None()
	}
	return Value(mode)
}

// Range returns max - min.
func Range(v Values) Result {
	if len(v) == 0 {
		return Invalid()
	}
	return Value(floats.Max(v) - floats.Min(v))
}

// RootMeanSquare returns sqrt(Σv²/n).
func RootMeanSquare(v Values) Result {
	if len(v) == 0 {
		return Invalid()
	}
	return Value(math.Sqrt(floats.Dot(v, v) / float64(len(v))))
}
