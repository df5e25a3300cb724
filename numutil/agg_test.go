package numutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValue(t *testing.T, want float64, got Result) {
	t.Helper()
	f, ok := got.Float()
	require.True(t, ok, "expected a value, got %v", got)
	assert.InDelta(t, want, f, 1e-12)
}

func TestMean(t *testing.T) {
	requireValue(t, 4, Mean(Nums(2, 4, 6)))
	requireValue(t, 4, Mean(FromSlice([]any{2, 4, 6})))
	requireValue(t, 0, Mean(Nums()))
	requireValue(t, 0, Mean(FromSlice([]any{"a", nil, true})))
	assert.Equal(t, Mean(Nums(1, 2, 10)), Average(Nums(1, 2, 10)))
}

func TestAggregatesPropagateNonFinite(t *testing.T) {
	f, ok := Mean(Nums(1, math.Inf(1))).Float()
	assert.True(t, ok)
	assert.True(t, math.IsInf(f, 1))

	f, ok = Mean(Nums(1, math.NaN())).Float()
	assert.True(t, ok)
	assert.True(t, math.IsNaN(f))

	f, ok = RootMeanSquare(Nums(3, math.Inf(-1))).Float()
	assert.True(t, ok)
	assert.True(t, math.IsInf(f, 1))

	f, ok = Range(Nums(0, math.Inf(1))).Float()
	assert.True(t, ok)
	assert.True(t, math.IsInf(f, 1))
}

func TestMedian(t *testing.T) {
	requireValue(t, 2.5, Median(Nums(1, 2, 3, 4)))
	requireValue(t, 3, Median(Nums(1, 3, 5)))
	requireValue(t, 3, Median(Nums(5, 1, 3)))
	requireValue(t, 7, Median(Nums(7)))
	assert.True(t, Median(Nums()).IsInvalid())
}

func TestMedianLeavesInputUnsorted(t *testing.T) {
	v := Nums(3, 1, 2)
	Median(v)
	assert.Equal(t, Values{3, 1, 2}, v)
}

func TestMode(t *testing.T) {
	requireValue(t, 1, Mode(Nums(1, 1, 2, 3)))
	requireValue(t, 3, Mode(Nums(1, 3, 2, 3)))

	none := Mode(Nums(1, 2, 3))
	assert.True(t, none.IsNone())
	assert.True(t, none.OK())

	invalid := Mode(Nums())
	assert.True(t, invalid.IsInvalid())
	assert.NotEqual(t, none.Kind(), invalid.Kind())
}

func TestModeTieGoesToFirstSeen(t *testing.T) {
	requireValue(t, 5, Mode(Nums(5, 2, 2, 5)))
	requireValue(t, 2, Mode(Nums(2, 5, 5, 2)))
	requireValue(t, 2, Mode(Nums(3, 2, 2, 1, 1)))
}

func TestRange(t *testing.T) {
	requireValue(t, 4, Range(Nums(5, 1, 3)))
	requireValue(t, 0, Range(Nums(9)))
	assert.True(t, Range(Nums()).IsInvalid())
}

func TestRootMeanSquare(t *testing.T) {
	requireValue(t, math.Sqrt(12.5), RootMeanSquare(Nums(3, 4)))
	assert.True(t, RootMeanSquare(Nums()).IsInvalid())
}

func TestSumMinMax(t *testing.T) {
	requireValue(t, 6, Sum(Nums(1, 2, 3)))
	requireValue(t, 0, Sum(Nums()))
	requireValue(t, -2, Min(Nums(4, -2, 8)))
	requireValue(t, 8, Max(Nums(4, -2, 8)))
	assert.True(t, Min(Nums()).IsInvalid())
	assert.True(t, Max(Nums()).IsInvalid())
}

func TestAggregatorsAreRegistered(t *testing.T) {
	for _, name := range AggregatorNames {
		assert.Contains(t, Aggregators, name)
	}
	for _, alias := range []string{"avg", "average"} {
		requireValue(t, 2, Aggregators[alias](Nums(1, 3)))
	}
}

func TestFilteringIsIdempotent(t *testing.T) {
	mixed := []any{4, "x", 1.5, nil, 4, []int{1}, int8(-3), "NaN"}
	once := FromSlice(mixed)
	twice := FromSlice(once.Any())
	require.Equal(t, once, twice)

	for name, agg := range Aggregators {
		assert.Equal(t, agg(once), agg(twice), name)
	}
}
