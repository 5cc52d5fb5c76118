package linear

import (
	"math"

	"github.com/YuminosukeSato/linml/core/parallel"
	"github.com/YuminosukeSato/linml/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// augment は Train と Predict の両方から呼ばれる唯一のバイアス付加処理。
// fitBias が真なら先頭に 1 の列を持つ N×(K+1) のコピーを、偽なら N×K のコピーを返す
func augment(X mat.Matrix, fitBias bool) *mat.Dense {
	r, c := X.Dims()
	offset := 0
	if fitBias {
		offset = 1
	}
	out := mat.NewDense(r, c+offset, nil)

	parallel.Rows(r, func(i int) {
		if fitBias {
			out.Set(i, 0, 1.0)
		}
		for j := 0; j < c; j++ {
			out.Set(i, j+offset, X.At(i, j))
		}
	})
	return out
}

// targetVector は N×1 の y を VecDense に変換する
func targetVector(op string, y mat.Matrix, nSamples int) (*mat.VecDense, error) {
	ry, cy := y.Dims()
	if ry != nSamples {
		return nil, errors.NewDimensionError(op, nSamples, ry, 0)
	}
	if cy != 1 {
		return nil, errors.NewValueError(op, "y must be a column vector")
	}
	if v, ok := y.(*mat.VecDense); ok {
		return mat.VecDenseCopyOf(v), nil
	}
	yVec := mat.NewVecDense(ry, nil)
	for i := 0; i < ry; i++ {
		yVec.SetVec(i, y.At(i, 0))
	}
	return yVec, nil
}

// checkDesign は空データを拒否する
func checkDesign(op string, X mat.Matrix) (int, int, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return 0, 0, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	return r, c, nil
}

func column(v *mat.VecDense) *mat.Dense {
	n := v.Len()
	out := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		out.Set(i, 0, v.AtVec(i))
	}
	return out
}

func vecToSlice(v *mat.VecDense) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
