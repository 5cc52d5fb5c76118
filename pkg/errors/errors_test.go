package errors

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		kind    string
		err     error
		wantMsg string
	}{
		{
			name:    "with original error",
			op:      "LinearRegression.Train",
			kind:    "singular matrix",
			err:     ErrSingularMatrix,
			wantMsg: "linml: LinearRegression.Train: singular matrix: singular matrix",
		},
		{
			name:    "without original error",
			op:      "Ridge.Train",
			kind:    "empty data",
			err:     nil,
			wantMsg: "linml: Ridge.Train: empty data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)
			assert.Equal(t, tt.wantMsg, err.Error())

			// スタックトレースの存在確認
			formatted := fmt.Sprintf("%+v", err)
			assert.Contains(t, formatted, "errors_test.go")

			var modelErr *ModelError
			assert.True(t, As(err, &modelErr))
			if tt.err != nil {
				assert.True(t, Is(err, tt.err))
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("LinearRegression.Predict", 3, 2, 1)
	assert.Equal(t, "linml: LinearRegression.Predict: dimension mismatch on axis 1 (features). Expected 3, got 2", err.Error())

	var dimErr *DimensionError
	require.True(t, As(err, &dimErr))
	assert.Equal(t, 3, dimErr.Expected)
	assert.Equal(t, 2, dimErr.Got)

	rows := NewDimensionError("MAE", 4, 5, 0)
	assert.Contains(t, rows.Error(), "(rows)")
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("Ridge", "Predict")

	var nfErr *NotFittedError
	require.True(t, As(err, &nfErr))
	assert.Equal(t, "Ridge", nfErr.ModelName)
	assert.Equal(t, "Predict", nfErr.Method)
	assert.Contains(t, err.Error(), "not trained yet")
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("MSLE", "Negative values are not allowed.")
	assert.Equal(t, "linml: MSLE: Negative values are not allowed.", err.Error())

	var valErr *ValueError
	assert.True(t, As(err, &valErr))
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("lambda", "must be non-negative", -1.0)
	assert.Equal(t, "linml: validation failed for parameter 'lambda': must be non-negative (got: -1)", err.Error())
}

func TestConvergenceWarning(t *testing.T) {
	w := NewConvergenceWarning("LogisticRegression", 100, "")
	assert.Contains(t, w.Error(), "failed to converge after 100 iterations")

	w = NewConvergenceWarning("LogisticRegression", 7, "loss increased")
	assert.Equal(t, "LogisticRegression failed to converge after 7 iterations: loss increased", w.Error())
}

func TestWarnRouting(t *testing.T) {
	var got []error
	SetWarningHandler(func(w error) { got = append(got, w) })
	defer SetWarningHandler(nil)

	Warn(NewConvergenceWarning("LogisticRegression", 3, ""))
	require.Len(t, got, 1)

	// zerolog関数が設定されている場合はそちらが優先される
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	SetZerologWarnFunc(func(w error) {
		if m, ok := w.(zerolog.LogObjectMarshaler); ok {
			zl.Warn().EmbedObject(m).Msg(w.Error())
			return
		}
		zl.Warn().Err(w).Msg("warning")
	})
	defer SetZerologWarnFunc(nil)

	Warn(NewConvergenceWarning("LogisticRegression", 5, "budget exhausted"))
	assert.Len(t, got, 1)
	assert.True(t, strings.Contains(buf.String(), `"type":"ConvergenceWarning"`))
	assert.True(t, strings.Contains(buf.String(), `"iterations":5`))
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrap(ErrEmptyData, "loading dataset")
	assert.True(t, Is(wrapped, ErrEmptyData))
	assert.Equal(t, "loading dataset: empty data", wrapped.Error())

	wrappedf := Wrapf(ErrSingularMatrix, "ridge with lambda=%v", 0.0)
	assert.True(t, Is(wrappedf, ErrSingularMatrix))
	assert.False(t, Is(wrappedf, ErrEmptyData))
}

func TestCheckScalar(t *testing.T) {
	assert.NoError(t, CheckScalar("loss", 0.5, 1))

	nan := math.NaN()
	err := CheckScalar("loss", nan, 4)
	var numErr *NumericalInstabilityError
	require.True(t, As(err, &numErr))
	assert.Equal(t, 4, numErr.Iteration)

	inf := math.Inf(1)
	assert.Error(t, CheckScalar("loss", inf, 1))
	assert.NoError(t, CheckNaN("loss", inf, 1))
	assert.Error(t, CheckNaN("loss", nan, 1))
}

func TestCheckNumericalStability(t *testing.T) {
	assert.NoError(t, CheckNumericalStability("weights", []float64{1, 2, 3}, 0))

	err := CheckNumericalStability("weights", []float64{1, math.Inf(-1), 3}, 9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weights at iteration 9")
}
