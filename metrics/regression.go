// Package metrics provides regression scores over gonum matrices.
//
// All functions accept any mat.Matrix (including *mat.VecDense, which acts as
// an N×1 column) and require yTrue and yPred to have identical shapes.
package metrics

import (
	"math"

	"github.com/YuminosukeSato/linml/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// checkPair は yTrue と yPred の形状が一致することを検証する
func checkPair(op string, yTrue, yPred mat.Matrix) (int, int, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 {
		return 0, 0, errors.NewValueError(op, "empty input")
	}
	if rPred != rTrue {
		return 0, 0, errors.NewDimensionError(op, rTrue, rPred, 0)
	}
	if cPred != cTrue {
		return 0, 0, errors.NewDimensionError(op, cTrue, cPred, 1)
	}
	return rTrue, cTrue, nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を全要素について計算する
func MAE(yTrue, yPred mat.Matrix) (float64, error) {
	r, c, err := checkPair("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	// MAE = (1/n) * Σ|yPred - yTrue|
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum += math.Abs(yPred.At(i, j) - yTrue.At(i, j))
		}
	}
	return sum / float64(r*c), nil
}

type mseConfig struct {
	root bool
}

// MSEOption は MSE の計算方法を変更する
type MSEOption func(*mseConfig)

// Root は平均二乗誤差の平方根（RMSE）を返すようにする
func Root() MSEOption {
	return func(c *mseConfig) {
		c.root = true
	}
}

// MSE は平均二乗誤差（Mean Squared Error）を全要素について計算する。
// Root() を指定すると平方根を返す
func MSE(yTrue, yPred mat.Matrix, opts ...MSEOption) (float64, error) {
	var cfg mseConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	mse, err := meanSquared("MSE", yTrue, yPred, func(v float64) float64 { return v })
	if err != nil {
		return 0, err
	}
	if cfg.root {
		return math.Sqrt(mse), nil
	}
	return mse, nil
}

// RMSE は MSE(yTrue, yPred, Root()) の省略形
func RMSE(yTrue, yPred mat.Matrix) (float64, error) {
	return MSE(yTrue, yPred, Root())
}

// ErrNegativeValues は MSLE に負の値が渡された場合のメッセージ
const ErrNegativeValues = "Negative values are not allowed."

// MSLE は平均二乗対数誤差を計算する: MSE(log1p(yTrue), log1p(yPred))。
// どちらかに負の値が含まれる場合は結果を返さず ValueError を返す
func MSLE(yTrue, yPred mat.Matrix) (float64, error) {
	r, c, err := checkPair("MSLE", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if yTrue.At(i, j) < 0 || yPred.At(i, j) < 0 {
				return 0, errors.NewValueError("MSLE", ErrNegativeValues)
			}
		}
	}
	return meanSquared("MSLE", yTrue, yPred, math.Log1p)
}

// meanSquared は f を適用した後の平均二乗誤差を計算する
func meanSquared(op string, yTrue, yPred mat.Matrix, f func(float64) float64) (float64, error) {
	r, c, err := checkPair(op, yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			diff := f(yPred.At(i, j)) - f(yTrue.At(i, j))
			sum += diff * diff
		}
	}
	return sum / float64(r*c), nil
}

// R2Columns は列ごとの決定係数を返す。
// 各列で numerator = Σ(yTrue - yPred)², denominator = Σ(yTrue - mean(yTrue))² とし、
//   - denominator ≠ 0 なら 1 - numerator/denominator
//   - numerator ≠ 0 かつ denominator == 0 なら 0
//   - 両方 0 なら 1（定数の目的変数を完全に予測）
func R2Columns(yTrue, yPred mat.Matrix) ([]float64, error) {
	r, c, err := checkPair("R2", yTrue, yPred)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, c)
	for j := 0; j < c; j++ {
		var mean float64
		for i := 0; i < r; i++ {
			mean += yTrue.At(i, j)
		}
		mean /= float64(r)

		var numerator, denominator float64
		for i := 0; i < r; i++ {
			t := yTrue.At(i, j)
			d := t - yPred.At(i, j)
			numerator += d * d
			m := t - mean
			denominator += m * m
		}

		switch {
		case denominator != 0:
			scores[j] = 1 - numerator/denominator
		case numerator != 0:
			scores[j] = 0
		default:
			scores[j] = 1
		}
	}
	return scores, nil
}

// R2 は列ごとの決定係数の平均を返す
func R2(yTrue, yPred mat.Matrix) (float64, error) {
	scores, err := R2Columns(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores)), nil
}
