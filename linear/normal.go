package linear

import (
	"math"

	"github.com/YuminosukeSato/linml/pkg/errors"
	"github.com/YuminosukeSato/linml/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// solveNormal は正規方程式 w = inv(XᵀX + λI)·Xᵀ·y を解く。
// λ = 0 で通常の最小二乗（擬似逆行列 inv(XᵀX)·Xᵀ）になる。
// I はバイアス列を含む列数に合わせるため、切片も正則化される
func solveNormal(op string, Xa *mat.Dense, y *mat.VecDense, lambda float64, logger log.Logger) (*mat.VecDense, error) {
	_, cols := Xa.Dims()

	var XTX mat.Dense
	XTX.Mul(Xa.T(), Xa)

	if lambda != 0 {
		for i := 0; i < cols; i++ {
			XTX.Set(i, i, XTX.At(i, i)+lambda)
		}
	}

	var XTXInv mat.Dense
	if err := XTXInv.Inverse(&XTX); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, errors.NewModelError(op, "singular matrix", errors.Mark(err, errors.ErrSingularMatrix))
		}
		// 有限の条件数なら逆行列は計算済み。数値精度の劣化だけを記録する
		logger.Warn("normal equations are ill-conditioned",
			"condition", float64(cond),
			log.OperationKey, log.OperationTrain,
		)
	}

	// 擬似逆行列 (K×N) を経由してから y を掛ける
	var pinv mat.Dense
	pinv.Mul(&XTXInv, Xa.T())

	w := mat.NewVecDense(cols, nil)
	w.MulVec(&pinv, y)

	if err := errors.CheckNumericalStability("normal_equations", w.RawVector().Data, 0); err != nil {
		return nil, errors.NewModelError(op, "non-finite weights", errors.Mark(err, errors.ErrSingularMatrix))
	}
	return w, nil
}
