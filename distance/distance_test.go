package distance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Simple", []float64{1, 2, 3}, []float64{4, 5, 6}, 27},
		{"Zero", []float64{0, 0, 0}, []float64{0, 0, 0}, 0},
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Mixed", []float64{1, -1}, []float64{-1, 1}, 8},
		{"Empty", []float64{}, []float64{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SquaredL2(tt.a, tt.b), 1e-12)
		})
	}
}

func TestL2AndManhattan(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{3, 4}

	assert.InDelta(t, 5.0, L2(a, b), 1e-12)
	assert.InDelta(t, 7.0, Manhattan(a, b), 1e-12)
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"Identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"Scaled", []float64{1, 2, 3}, []float64{2, 4, 6}, 0},
		{"Orthogonal", []float64{1, 0}, []float64{0, 1}, 1},
		{"Opposite", []float64{1, 0}, []float64{-1, 0}, 2},
		{"ZeroVector", []float64{0, 0}, []float64{1, 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Cosine(tt.a, tt.b), 1e-12)
		})
	}
}

func TestMetric_String(t *testing.T) {
	assert.Equal(t, "SquaredL2", MetricSquaredL2.String())
	assert.Equal(t, "L2", MetricL2.String())
	assert.Equal(t, "Cosine", MetricCosine.String())
	assert.Equal(t, "Manhattan", MetricManhattan.String())
	assert.Equal(t, "Unknown(99)", Metric(99).String())
}

func TestProvider(t *testing.T) {
	for _, m := range []Metric{MetricSquaredL2, MetricL2, MetricCosine, MetricManhattan} {
		fn, err := Provider(m)
		require.NoError(t, err, m.String())
		assert.InDelta(t, 0.0, fn([]float64{1, 2}, []float64{1, 2}), 1e-12)
	}

	_, err := Provider(Metric(99))
	assert.Error(t, err)
}

func TestMean(t *testing.T) {
	mean, err := Mean([][]float64{{0, 0}, {2, 4}, {4, 8}})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, mean)

	_, err = Mean(nil)
	assert.ErrorIs(t, err, ErrNoVectors)

	_, err = Mean([][]float64{{1, 2}, {1}})
	var dm *DimensionMismatchError
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 1, dm.Actual)
}

func TestMean_DoesNotAliasInput(t *testing.T) {
	in := [][]float64{{1, 1}}
	mean, err := Mean(in)
	require.NoError(t, err)

	mean[0] = math.NaN()
	assert.Equal(t, 1.0, in[0][0])
}
