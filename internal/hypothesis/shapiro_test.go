package hypothesis

import (
	"errors"
	"math"
	"testing"

	"goabtest/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapiroWilk_ThreePoints(t *testing.T) {
	w, p, err := ShapiroWilk([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, w, 1e-9)
	assert.InDelta(t, 1.0, p, 1e-6)

	w, p, err = ShapiroWilk([]float64{4, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 27.0/28.0, w, 1e-9)
	expectedP := 6 / math.Pi * (math.Asin(math.Sqrt(27.0/28.0)) - math.Pi/3)
	assert.InDelta(t, expectedP, p, 1e-6)
}

func TestShapiroWilk_ReferenceSample(t *testing.T) {
	w, p, err := ShapiroWilk([]float64{148, 154, 158, 160, 161, 162, 166, 170, 182, 195, 236})
	require.NoError(t, err)
	assert.InDelta(t, 0.788815, w, 1e-6)
	assert.InDelta(t, 0.006704, p, 1e-6)
}

func TestShapiroCoefficients_MatchPublishedTable(t *testing.T) {
	// Shapiro & Wilk (1965) table values
	cases := map[int][]float64{
		3:  {0.7071},
		5:  {0.6646, 0.2413},
		10: {0.5739, 0.3291, 0.2141, 0.1224, 0.0399},
	}
	for n, want := range cases {
		got := shapiroCoefficients(n)
		require.Len(t, got, len(want))
		for i := range want {
			assert.InDelta(t, want[i], got[i], 0.002, "n=%d a[%d]", n, i)
		}
	}
}

func TestShapiroCoefficients_UnitNorm(t *testing.T) {
	for _, n := range []int{4, 5, 6, 11, 40, 200} {
		sum := 0.0
		for _, a := range shapiroCoefficients(n) {
			sum += 2 * a * a
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "n=%d", n)
	}
}

func TestShapiroWilk_AffineInvariant(t *testing.T) {
	sample := []float64{
		2.1, 3.4, 1.9, 5.6, 4.4, 3.3, 2.8, 4.9, 3.1, 3.7,
		2.6, 4.1, 3.9, 2.2, 3.0, 5.1, 4.6, 3.5, 2.9, 3.8,
	}
	shifted := make([]float64, len(sample))
	for i, v := range sample {
		shifted[i] = 1000 + 37*v
	}

	w1, p1, err := ShapiroWilk(sample)
	require.NoError(t, err)
	w2, p2, err := ShapiroWilk(shifted)
	require.NoError(t, err)
	assert.InDelta(t, w1, w2, 1e-9)
	assert.InDelta(t, p1, p2, 1e-6)
}

func TestShapiroWilk_NormalSampleNotRejected(t *testing.T) {
	w, p, err := ShapiroWilk(normalScores(40, 550.89, 134.1))
	require.NoError(t, err)
	assert.Greater(t, w, 0.97)
	assert.Greater(t, p, 0.5)
}

func TestShapiroWilk_SkewedSampleRejected(t *testing.T) {
	_, p, err := ShapiroWilk(logNormalScores(40, 100, 1.5))
	require.NoError(t, err)
	assert.Less(t, p, 0.001)

	// small-n branch
	_, p, err = ShapiroWilk([]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 50})
	require.NoError(t, err)
	assert.Less(t, p, 0.001)
}

func TestShapiroWilk_Errors(t *testing.T) {
	_, _, err := ShapiroWilk([]float64{1, 2})
	assert.True(t, errors.Is(err, core.ErrInsufficientData))

	_, _, err = ShapiroWilk([]float64{3, 3, 3, 3})
	assert.True(t, errors.Is(err, core.ErrConstantSample))
}

func TestShapiroWilk_DoesNotMutateInput(t *testing.T) {
	sample := []float64{3, 1, 2, 5, 4}
	_, _, err := ShapiroWilk(sample)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2, 5, 4}, sample)
}
