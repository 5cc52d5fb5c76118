package linear

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/YuminosukeSato/linml/core/model"
	"github.com/YuminosukeSato/linml/pkg/errors"
	"github.com/YuminosukeSato/linml/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// LogisticRegression is a binary logistic regression classifier trained by
// full-batch gradient descent on the negative log-likelihood.
type LogisticRegression struct {
	state *model.StateManager

	// Hyperparameters
	fitBias      bool
	learningRate float64
	threshold    float64
	maxIter      int
	seed         *uint64
	logger       log.Logger

	// Model parameters
	weights   *mat.VecDense
	nIter     int
	loss      float64
	converged bool

	rand *rand.Rand
}

// LogisticOption is a functional option for LogisticRegression.
type LogisticOption func(*LogisticRegression)

// NewLogisticRegression creates a new LogisticRegression with lr=0.01,
// threshold=1e-7, max_iter=1e7 and a bias column.
func NewLogisticRegression(opts ...LogisticOption) *LogisticRegression {
	lr := &LogisticRegression{
		state:        model.NewStateManager(),
		fitBias:      true,
		learningRate: 0.01,
		threshold:    1e-7,
		maxIter:      10_000_000,
	}

	for _, opt := range opts {
		opt(lr)
	}

	if lr.rand == nil {
		lr.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if lr.logger == nil {
		lr.logger = log.GetLogger()
	}
	lr.logger = lr.logger.With(log.ModelNameKey, "LogisticRegression", log.ComponentKey, "linear")
	return lr
}

// WithLogisticFitBias sets whether a leading column of ones is prepended to X.
func WithLogisticFitBias(fit bool) LogisticOption {
	return func(lr *LogisticRegression) {
		lr.fitBias = fit
	}
}

// WithLearningRate sets the gradient descent step size.
func WithLearningRate(rate float64) LogisticOption {
	return func(lr *LogisticRegression) {
		lr.learningRate = rate
	}
}

// WithThreshold sets the minimum loss improvement between iterations below
// which training stops.
func WithThreshold(threshold float64) LogisticOption {
	return func(lr *LogisticRegression) {
		lr.threshold = threshold
	}
}

// WithMaxIter sets the maximum number of iterations.
func WithMaxIter(maxIter int) LogisticOption {
	return func(lr *LogisticRegression) {
		lr.maxIter = maxIter
	}
}

// WithSeed makes weight initialization reproducible.
func WithSeed(seed uint64) LogisticOption {
	return func(lr *LogisticRegression) {
		lr.seed = &seed
		lr.rand = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRandomSource draws initial weights from src.
func WithRandomSource(src rand.Source) LogisticOption {
	return func(lr *LogisticRegression) {
		lr.rand = rand.New(src)
	}
}

// WithLogisticLogger sets the logger used for training diagnostics.
func WithLogisticLogger(logger log.Logger) LogisticOption {
	return func(lr *LogisticRegression) {
		lr.logger = logger
	}
}

func (lr *LogisticRegression) validate() error {
	if !(lr.learningRate > 0) || math.IsInf(lr.learningRate, 0) {
		return errors.NewValidationError("learning_rate", "must be a finite positive number", lr.learningRate)
	}
	if math.IsNaN(lr.threshold) {
		return errors.NewValidationError("threshold", "must not be NaN", lr.threshold)
	}
	if lr.maxIter < 0 {
		return errors.NewValidationError("max_iter", "must be non-negative", lr.maxIter)
	}
	return nil
}

// Train fits the weights. Initial weights are uniform in [0, 1). Each
// iteration computes p = sigmoid(X·w) and the mean negative log-likelihood;
// training stops as soon as the loss drops by less than the threshold, which
// includes any iteration where the loss went up, or after max_iter iterations.
// Both a loss increase and an exhausted budget are reported through
// errors.Warn as a ConvergenceWarning but are not errors.
func (lr *LogisticRegression) Train(X, y mat.Matrix) (err error) {
	const op = "LogisticRegression.Train"
	defer errors.Recover(&err, op)

	if err := lr.validate(); err != nil {
		return err
	}
	nSamples, nFeatures, err := checkDesign(op, X)
	if err != nil {
		return err
	}
	yVec, err := targetVector(op, y, nSamples)
	if err != nil {
		return err
	}
	for i := 0; i < nSamples; i++ {
		if v := yVec.AtVec(i); v != 0 && v != 1 {
			return errors.NewValueError(op, fmt.Sprintf("labels must be 0 or 1, got %v at row %d", v, i))
		}
	}

	start := time.Now()
	fields := []any{
		log.OperationKey, log.OperationTrain,
		log.SamplesKey, nSamples,
		log.FeaturesKey, nFeatures,
		log.LearningRateKey, lr.learningRate,
		log.ThresholdKey, lr.threshold,
		log.MaxIterKey, lr.maxIter,
	}
	if lr.seed != nil {
		fields = append(fields, log.RandomSeedKey, *lr.seed)
	}
	lr.logger.Debug("training started", fields...)

	Xa := augment(X, lr.fitBias)
	_, k := Xa.Dims()

	w := mat.NewVecDense(k, nil)
	for j := 0; j < k; j++ {
		w.SetVec(j, lr.rand.Float64())
	}

	n := float64(nSamples)
	z := mat.NewVecDense(nSamples, nil)
	p := mat.NewVecDense(nSamples, nil)
	resid := mat.NewVecDense(nSamples, nil)
	grad := mat.NewVecDense(k, nil)

	prevLoss := math.Inf(1)
	loss := math.Inf(1)
	iter := 0
	converged := false
	increased := false

	for iter < lr.maxIter {
		z.MulVec(Xa, w)
		for i := 0; i < nSamples; i++ {
			p.SetVec(i, sigmoid(z.AtVec(i)))
		}
		loss = negativeLogLikelihood(yVec, p)
		iter++

		if err := errors.CheckNaN("loss_calculation", loss, iter); err != nil {
			return errors.NewModelError(op, "numerical instability", err)
		}

		if prevLoss-loss < lr.threshold {
			converged = true
			increased = loss > prevLoss
			break
		}
		prevLoss = loss

		// w -= lr · (-(y - p)ᵀX) / N
		resid.SubVec(yVec, p)
		grad.MulVec(Xa.T(), resid)
		w.AddScaledVec(w, lr.learningRate/n, grad)

		if err := errors.CheckNumericalStability("gradient_update", w.RawVector().Data, iter); err != nil {
			return errors.NewModelError(op, "numerical instability", err)
		}
	}

	lr.weights = w
	lr.nIter = iter
	lr.loss = loss
	lr.converged = converged
	lr.state.Commit(nFeatures, nSamples)

	switch {
	case increased:
		errors.Warn(errors.NewConvergenceWarning("LogisticRegression", iter,
			fmt.Sprintf("loss increased from %.6g to %.6g; the learning rate may be too large", prevLoss, loss)))
	case !converged:
		errors.Warn(errors.NewConvergenceWarning("LogisticRegression", iter, ""))
	}

	lr.logger.Debug("training finished",
		log.OperationKey, log.OperationTrain,
		log.IterationKey, iter,
		log.LossKey, loss,
		log.ConvergedKey, converged && !increased,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// negativeLogLikelihood returns -(Σ_{y=1} log p + Σ_{y=0} log(1-p)) / N.
func negativeLogLikelihood(y, p *mat.VecDense) float64 {
	n := y.Len()
	var nll float64
	for i := 0; i < n; i++ {
		if y.AtVec(i) == 1 {
			nll -= math.Log(p.AtVec(i))
		} else {
			nll -= math.Log(1 - p.AtVec(i))
		}
	}
	return nll / float64(n)
}

// Predict returns sigmoid(X·w) as an N×1 matrix of positive-class
// probabilities. No decision threshold is applied.
func (lr *LogisticRegression) Predict(X mat.Matrix) (_ mat.Matrix, err error) {
	const op = "LogisticRegression.Predict"
	defer errors.Recover(&err, op)

	if err := lr.state.RequireFitted("LogisticRegression", "Predict"); err != nil {
		return nil, err
	}
	_, c := X.Dims()
	if err := lr.state.RequireFeatures(op, c); err != nil {
		return nil, err
	}

	Xa := augment(X, lr.fitBias)
	r, _ := Xa.Dims()
	z := mat.NewVecDense(r, nil)
	z.MulVec(Xa, lr.weights)
	out := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		out.Set(i, 0, sigmoid(z.AtVec(i)))
	}
	return out, nil
}

// Weights returns a copy of the fitted weights, intercept first when a bias
// column is fit. Nil before training.
func (lr *LogisticRegression) Weights() []float64 {
	if !lr.state.IsFitted() {
		return nil
	}
	return vecToSlice(lr.weights)
}

// FitBias reports whether a bias column is prepended.
func (lr *LogisticRegression) FitBias() bool {
	return lr.fitBias
}

// NIter returns the number of loss evaluations performed by the last Train.
func (lr *LogisticRegression) NIter() int {
	return lr.nIter
}

// Loss returns the negative log-likelihood at the last iteration of Train.
func (lr *LogisticRegression) Loss() float64 {
	return lr.loss
}

// Converged reports whether the last Train stopped on the threshold test
// rather than on max_iter. A stop caused by a loss increase counts as
// converged, matching the stopping rule.
func (lr *LogisticRegression) Converged() bool {
	return lr.converged
}
