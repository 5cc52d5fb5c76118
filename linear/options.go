package linear

import (
	"github.com/YuminosukeSato/linml/pkg/log"
)

// regressionConfig は最小二乗系推定器の設定
type regressionConfig struct {
	fitBias bool
	lambda  float64
	logger  log.Logger
}

func defaultRegressionConfig() regressionConfig {
	return regressionConfig{
		fitBias: true,
		lambda:  1.0,
	}
}

// Option configures LinearRegression and Ridge.
type Option func(*regressionConfig)

// WithFitBias sets whether a leading column of ones is prepended to X so that
// the first weight is the intercept. Default true.
func WithFitBias(fit bool) Option {
	return func(c *regressionConfig) {
		c.fitBias = fit
	}
}

// WithLambda sets the L2 regularization coefficient of Ridge. Default 1.
// LinearRegression ignores it.
func WithLambda(lambda float64) Option {
	return func(c *regressionConfig) {
		c.lambda = lambda
	}
}

// WithLogger sets the logger used for training diagnostics.
// Default is log.GetLogger() at construction time.
func WithLogger(logger log.Logger) Option {
	return func(c *regressionConfig) {
		c.logger = logger
	}
}
