package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linml/core/model"
	"github.com/YuminosukeSato/linml/linear"
	"github.com/YuminosukeSato/linml/metrics"
	"github.com/YuminosukeSato/linml/pkg/dataset"
	"github.com/YuminosukeSato/linml/pkg/errors"
	"github.com/YuminosukeSato/linml/pkg/log"
	"github.com/YuminosukeSato/linml/pkg/viz"
	"github.com/YuminosukeSato/linml/preprocessing"
)

type fitOptions struct {
	data        string
	header      bool
	target      int
	model       string
	lambda      float64
	lr          float64
	threshold   float64
	maxIter     int
	seed        uint64
	noBias      bool
	standardize bool
	plot        string
}

func newFitCmd() *cobra.Command {
	opts := &fitOptions{}

	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Train a model on a CSV file and print in-sample metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.data, "data", "", "path to a numeric CSV file")
	f.BoolVar(&opts.header, "header", false, "treat the first row as column names")
	f.IntVar(&opts.target, "target", -1, "target column index; negative counts from the end")
	f.StringVar(&opts.model, "model", "ols", "model to train: ols, ridge or logistic")
	f.Float64Var(&opts.lambda, "lambda", 1.0, "ridge regularization strength")
	f.Float64Var(&opts.lr, "lr", 0.01, "logistic regression learning rate")
	f.Float64Var(&opts.threshold, "threshold", 1e-7, "logistic regression loss improvement threshold")
	f.IntVar(&opts.maxIter, "max-iter", 10_000_000, "logistic regression iteration budget")
	f.Uint64Var(&opts.seed, "seed", 0, "seed for logistic regression weight initialization")
	f.BoolVar(&opts.noBias, "no-bias", false, "do not fit an intercept")
	f.BoolVar(&opts.standardize, "standardize", false, "standardize features before training")
	f.StringVar(&opts.plot, "plot", "", "write a predicted-vs-true plot to this file")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func buildModel(cmd *cobra.Command, opts *fitOptions) (model.LinearModel, error) {
	switch opts.model {
	case "ols":
		return linear.NewLinearRegression(linear.WithFitBias(!opts.noBias)), nil
	case "ridge":
		return linear.NewRidge(linear.WithFitBias(!opts.noBias), linear.WithLambda(opts.lambda)), nil
	case "logistic":
		lopts := []linear.LogisticOption{
			linear.WithLogisticFitBias(!opts.noBias),
			linear.WithLearningRate(opts.lr),
			linear.WithThreshold(opts.threshold),
			linear.WithMaxIter(opts.maxIter),
		}
		if cmd.Flags().Changed("seed") {
			lopts = append(lopts, linear.WithSeed(opts.seed))
		}
		return linear.NewLogisticRegression(lopts...), nil
	default:
		return nil, errors.NewValidationError("model", "must be one of ols, ridge, logistic", opts.model)
	}
}

func runFit(cmd *cobra.Command, opts *fitOptions) error {
	logger := log.GetLogger().With(log.ComponentKey, "cli")

	ds, err := dataset.Load(opts.data, dataset.WithHeader(opts.header), dataset.WithTarget(opts.target))
	if err != nil {
		return err
	}

	m, err := buildModel(cmd, opts)
	if err != nil {
		return err
	}

	var X mat.Matrix = ds.X
	if opts.standardize {
		X, err = preprocessing.NewStandardScalerDefault().FitTransform(ds.X)
		if err != nil {
			return err
		}
	}

	logger.Info("training",
		log.ModelNameKey, opts.model,
		log.SamplesKey, ds.Samples(),
		log.FeaturesKey, ds.Features(),
	)
	if err := m.Train(X, ds.Y); err != nil {
		logger.Error("training failed", err)
		return err
	}
	pred, err := m.Predict(X)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "model: %s\nsamples: %d\nfeatures: %d\n\n", opts.model, ds.Samples(), ds.Features())
	printWeights(out, m, ds.FeatureNames)
	fmt.Fprintln(out)

	if lr, ok := m.(*linear.LogisticRegression); ok {
		err = printClassification(out, lr, ds.Y, pred)
	} else {
		err = printRegression(out, ds.Y, pred)
	}
	if err != nil {
		return err
	}

	if opts.plot != "" {
		if err := viz.SaveScatter(opts.plot, ds.Y, pred, viz.DefaultScatterConfig()); err != nil {
			return err
		}
		logger.Info("plot written", "path", opts.plot)
	}
	return nil
}

func printWeights(out io.Writer, m model.LinearModel, names []string) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "weight\tvalue")
	w := m.Weights()
	if m.FitBias() {
		fmt.Fprintf(tw, "bias\t%.6f\n", w[0])
		w = w[1:]
	}
	for j, v := range w {
		fmt.Fprintf(tw, "%s\t%.6f\n", names[j], v)
	}
}

func printRegression(out io.Writer, yTrue, yPred mat.Matrix) error {
	mae, err := metrics.MAE(yTrue, yPred)
	if err != nil {
		return err
	}
	mse, err := metrics.MSE(yTrue, yPred)
	if err != nil {
		return err
	}
	rmse, err := metrics.RMSE(yTrue, yPred)
	if err != nil {
		return err
	}
	r2, err := metrics.R2(yTrue, yPred)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()
	fmt.Fprintf(tw, "MAE\t%.6f\n", mae)
	fmt.Fprintf(tw, "MSE\t%.6f\n", mse)
	fmt.Fprintf(tw, "RMSE\t%.6f\n", rmse)
	if nonNegative(yTrue) && nonNegative(yPred) {
		msle, err := metrics.MSLE(yTrue, yPred)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "MSLE\t%.6f\n", msle)
	}
	fmt.Fprintf(tw, "R2\t%.6f\n", r2)
	return nil
}

func printClassification(out io.Writer, lr *linear.LogisticRegression, yTrue, proba mat.Matrix) error {
	n, _ := yTrue.Dims()
	correct := 0
	for i := 0; i < n; i++ {
		label := 0.0
		if proba.At(i, 0) >= 0.5 {
			label = 1
		}
		if label == yTrue.At(i, 0) {
			correct++
		}
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()
	fmt.Fprintf(tw, "NLL\t%.6f\n", lr.Loss())
	fmt.Fprintf(tw, "iterations\t%d\n", lr.NIter())
	fmt.Fprintf(tw, "converged\t%t\n", lr.Converged())
	fmt.Fprintf(tw, "accuracy\t%.6f\n", float64(correct)/float64(n))
	return nil
}

func nonNegative(m mat.Matrix) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) < 0 {
				return false
			}
		}
	}
	return true
}
