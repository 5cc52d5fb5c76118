package preprocessing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linml/pkg/errors"
)

func TestStandardScalerFitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 10,
		3, 10,
		4, 10,
	})

	scaler := NewStandardScalerDefault()
	out, err := scaler.FitTransform(X)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{2.5, 10}, scaler.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(1.25), scaler.Scale[0], 1e-12)
	assert.Equal(t, 1.0, scaler.Scale[1]) // 定数列

	var sum, sumSq float64
	for i := 0; i < 4; i++ {
		v := out.At(i, 0)
		sum += v
		sumSq += v * v
		assert.Equal(t, 0.0, out.At(i, 1))
	}
	assert.InDelta(t, 0.0, sum/4, 1e-12)
	assert.InDelta(t, 1.0, sumSq/4, 1e-12)
}

func TestStandardScalerInverseTransform(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1, -5,
		4, 0,
		7, 11,
	})
	scaler := NewStandardScalerDefault()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)

	back, err := scaler.InverseTransform(scaled)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(back, X, 1e-12))
}

func TestStandardScalerWithoutMean(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{2, 4})
	scaler := NewStandardScaler(false, true)
	out, err := scaler.FitTransform(X)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, scaler.Mean)
	assert.InDelta(t, 2.0, out.At(0, 0), 1e-12)
	assert.InDelta(t, 4.0, out.At(1, 0), 1e-12)
}

func TestStandardScalerErrors(t *testing.T) {
	scaler := NewStandardScalerDefault()
	assert.Contains(t, scaler.String(), "with_mean=true")

	_, err := scaler.Transform(mat.NewDense(1, 1, nil))
	var nfErr *errors.NotFittedError
	assert.True(t, errors.As(err, &nfErr))

	require.NoError(t, scaler.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})))
	assert.Contains(t, scaler.String(), "n_features=2")

	_, err = scaler.Transform(mat.NewDense(1, 3, nil))
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	assert.True(t, errors.Is(NewStandardScalerDefault().Fit(&mat.Dense{}), errors.ErrEmptyData))
}
