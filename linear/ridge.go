package linear

import (
	"math"

	"github.com/YuminosukeSato/linml/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Ridge は L2 正則化付きの線形回帰モデル
type Ridge struct {
	leastSquares
}

// NewRidge は新しいリッジ回帰モデルを作成する。λ の既定値は 1
func NewRidge(opts ...Option) *Ridge {
	return &Ridge{leastSquares: newLeastSquares("Ridge", opts)}
}

// Lambda は正則化係数を返す
func (r *Ridge) Lambda() float64 {
	return r.cfg.lambda
}

// Train は w = inv(XᵀX + λI)·Xᵀ·y を解く。I はバイアス列を含む列数の単位行列で、
// 切片も正則化の対象になる
func (r *Ridge) Train(X, y mat.Matrix) error {
	lambda := r.cfg.lambda
	if lambda < 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return errors.NewValidationError("lambda", "must be a finite non-negative number", lambda)
	}
	return r.train(X, y, lambda)
}

// Predict は入力データに対する予測 X·w を N×1 の行列で返す
func (r *Ridge) Predict(X mat.Matrix) (mat.Matrix, error) {
	return r.predict(X)
}

// Score はモデルの決定係数（R²）を計算する
func (r *Ridge) Score(X, y mat.Matrix) (float64, error) {
	return r.score(X, y)
}
