// Package linml provides linear estimators and regression metrics for Go,
// built on gonum matrices.
//
// linml offers three models behind one Train/Predict protocol: ordinary least
// squares, ridge regression and binary logistic regression. Regression metrics
// (MAE, MSE, RMSE, MSLE and R²) share the same column-matrix conventions as
// the models, so predictions can be scored directly.
//
// # Installation
//
//	go get github.com/YuminosukeSato/linml
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/linml/linear"
//	    "github.com/YuminosukeSato/linml/metrics"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewDense(4, 1, []float64{3, 5, 7, 9})
//
//	    model := linear.NewLinearRegression()
//	    if err := model.Train(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, err := model.Predict(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    r2, _ := metrics.R2(y, pred)
//	    fmt.Println("weights:", model.Weights(), "r2:", r2)
//	}
//
// # Packages
//
//   - linear: LinearRegression, Ridge and LogisticRegression
//   - metrics: MAE, MSE, RMSE, MSLE, R2
//   - preprocessing: StandardScaler
//   - core/model: Train/Predict interfaces and fitted-state tracking
//   - core/parallel: row-parallel helpers
//   - pkg/errors: structured errors and warnings
//   - pkg/log: slog based structured logging
//   - pkg/dataset: CSV loading
//   - pkg/viz: predicted-vs-true plots
//
// The linml command (cmd/linml) trains any of the models on a CSV file and
// prints in-sample metrics.
//
// # Error Handling
//
// Every failure is returned as an error value from pkg/errors. Predicting
// with an untrained model yields a NotFittedError, a feature-count mismatch a
// DimensionError, and a singular normal-equation matrix a ModelError for which
// errors.Is(err, errors.ErrSingularMatrix) holds. Non-fatal conditions such as
// a logistic regression that ran out of iterations are reported through
// errors.Warn.
package linml
