package linear

import (
	"gonum.org/v1/gonum/mat"
)

// LinearRegression は通常最小二乗法（OLS）による線形回帰モデル
type LinearRegression struct {
	leastSquares
}

// NewLinearRegression は新しい線形回帰モデルを作成する。
// WithLambda は無視される
//
// 使用例:
//
//	lr := linear.NewLinearRegression(linear.WithFitBias(false))
//	err := lr.Train(X, y)
//	yPred, err := lr.Predict(X)
func NewLinearRegression(opts ...Option) *LinearRegression {
	return &LinearRegression{leastSquares: newLeastSquares("LinearRegression", opts)}
}

// Train はモデルを訓練データで学習させる。
// 擬似逆行列 w = inv(XᵀX)·Xᵀ·y を使用する。XᵀX が特異なら
// ErrSingularMatrix をチェーンに持つ ModelError を返し、重みは更新しない
func (lr *LinearRegression) Train(X, y mat.Matrix) error {
	return lr.train(X, y, 0)
}

// Predict は入力データに対する予測 X·w を N×1 の行列で返す
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	return lr.predict(X)
}

// Score はモデルの決定係数（R²）を計算する
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	return lr.score(X, y)
}
