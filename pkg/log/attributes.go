// Package log defines standard attribute keys for estimator operations.
//
// Keys follow a hierarchical naming convention (e.g. "model.name",
// "data.samples") so that training and evaluation logs can be filtered
// uniformly, whichever estimator emitted them.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "LinearRegression", "Ridge", "LogisticRegression"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "train", "predict", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of model lifecycle.
	PhaseKey = "ml.phase"
)

// Data shape.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of raw features (columns), before any
	// bias column is prepended.
	FeaturesKey = "data.features"

	// TargetsKey indicates the number of target columns.
	TargetsKey = "data.targets"
)

// Performance and training progress.
const (
	DurationMsKey = "perf.duration_ms"

	// LossKey records the training loss (negative log-likelihood for
	// logistic regression).
	LossKey = "metrics.loss"

	R2ScoreKey = "metrics.r2_score"

	// IterationKey records the iteration count of iterative solvers.
	IterationKey = "training.iteration"

	// ConvergedKey records whether an iterative solver met its threshold.
	ConvergedKey = "training.converged"
)

// Hyperparameters.
const (
	LearningRateKey   = "hyperparams.learning_rate"
	RegularizationKey = "hyperparams.regularization"
	ThresholdKey      = "hyperparams.threshold"
	MaxIterKey        = "hyperparams.max_iter"
	FitBiasKey        = "hyperparams.fit_bias"
	RandomSeedKey     = "config.random_seed"
)

// Error context.
const (
	// ErrorTypeKey carries the concrete type of the innermost error.
	// Populated automatically by ErrFmtHandler.
	ErrorTypeKey = "error.type"
)

// Standard attribute values.
const (
	OperationTrain   = "train"
	OperationPredict = "predict"
	OperationScore   = "score"

	PhaseTraining   = "training"
	PhaseInference  = "inference"
	PhaseEvaluation = "evaluation"
)
