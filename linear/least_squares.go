package linear

import (
	"time"

	"github.com/YuminosukeSato/linml/core/model"
	"github.com/YuminosukeSato/linml/metrics"
	"github.com/YuminosukeSato/linml/pkg/errors"
	"github.com/YuminosukeSato/linml/pkg/log"
	"gonum.org/v1/gonum/mat"
)

var (
	_ model.LinearModel = (*LinearRegression)(nil)
	_ model.LinearModel = (*Ridge)(nil)
	_ model.LinearModel = (*LogisticRegression)(nil)
)

// leastSquares は LinearRegression と Ridge が共有する閉形式ソルバーの状態
type leastSquares struct {
	name    string
	state   *model.StateManager
	cfg     regressionConfig
	weights *mat.VecDense
}

func newLeastSquares(name string, opts []Option) leastSquares {
	cfg := defaultRegressionConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLogger()
	}
	cfg.logger = cfg.logger.With(log.ModelNameKey, name, log.ComponentKey, "linear")
	return leastSquares{
		name:  name,
		state: model.NewStateManager(),
		cfg:   cfg,
	}
}

// train は失敗時に既存の重みと状態を変更しない
func (ls *leastSquares) train(X, y mat.Matrix, lambda float64) (err error) {
	op := ls.name + ".Train"
	defer errors.Recover(&err, op)

	r, c, err := checkDesign(op, X)
	if err != nil {
		return err
	}
	yVec, err := targetVector(op, y, r)
	if err != nil {
		return err
	}

	start := time.Now()
	ls.cfg.logger.Debug("training started",
		log.OperationKey, log.OperationTrain,
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.FitBiasKey, ls.cfg.fitBias,
		log.RegularizationKey, lambda,
	)

	Xa := augment(X, ls.cfg.fitBias)
	w, err := solveNormal(op, Xa, yVec, lambda, ls.cfg.logger)
	if err != nil {
		ls.cfg.logger.Error("training failed", err, log.OperationKey, log.OperationTrain)
		return err
	}

	ls.weights = w
	ls.state.Commit(c, r)

	ls.cfg.logger.Debug("training finished",
		log.OperationKey, log.OperationTrain,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

func (ls *leastSquares) predict(X mat.Matrix) (_ mat.Matrix, err error) {
	op := ls.name + ".Predict"
	defer errors.Recover(&err, op)

	if err := ls.state.RequireFitted(ls.name, "Predict"); err != nil {
		return nil, err
	}
	_, c := X.Dims()
	if err := ls.state.RequireFeatures(op, c); err != nil {
		return nil, err
	}

	Xa := augment(X, ls.cfg.fitBias)
	r, _ := Xa.Dims()
	out := mat.NewVecDense(r, nil)
	out.MulVec(Xa, ls.weights)
	return column(out), nil
}

func (ls *leastSquares) score(X, y mat.Matrix) (float64, error) {
	yPred, err := ls.predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2(y, yPred)
}

// Weights は学習された重みのコピーを返す。fitBias が真なら先頭が切片。未学習なら nil
func (ls *leastSquares) Weights() []float64 {
	if !ls.state.IsFitted() {
		return nil
	}
	return vecToSlice(ls.weights)
}

// FitBias はバイアス列を付加するかどうかを返す
func (ls *leastSquares) FitBias() bool {
	return ls.cfg.fitBias
}

// IsFitted はモデルが学習済みかどうかを返す
func (ls *leastSquares) IsFitted() bool {
	return ls.state.IsFitted()
}
