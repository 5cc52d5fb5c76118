// Package dataset loads numeric CSV files into gonum matrices for training.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/linml/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Dataset holds a design matrix and its target column.
type Dataset struct {
	// X is the N×D feature matrix.
	X *mat.Dense
	// Y is the N×1 target column.
	Y *mat.Dense
	// FeatureNames are taken from the header row, or generated as x0, x1, ...
	FeatureNames []string
	// TargetName is the header of the target column, or "y".
	TargetName string
}

// Samples returns the number of rows.
func (d *Dataset) Samples() int {
	r, _ := d.X.Dims()
	return r
}

// Features returns the number of feature columns.
func (d *Dataset) Features() int {
	_, c := d.X.Dims()
	return c
}

type config struct {
	header    bool
	target    int
	comma     rune
	trimSpace bool
}

// Option configures CSV parsing.
type Option func(*config)

// WithHeader treats the first record as column names.
func WithHeader(header bool) Option {
	return func(c *config) {
		c.header = header
	}
}

// WithTarget selects the target column. Negative indexes count from the end,
// so -1 is the last column.
func WithTarget(index int) Option {
	return func(c *config) {
		c.target = index
	}
}

// WithComma sets the field delimiter.
func WithComma(comma rune) Option {
	return func(c *config) {
		c.comma = comma
	}
}

// Load opens path and parses it with Read.
func Load(path string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	ds, err := Read(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: load %s", path)
	}
	return ds, nil
}

// Read parses numeric CSV records from r. Every record must have the same
// number of fields and at least two columns; blank fields are rejected.
func Read(r io.Reader, opts ...Option) (*Dataset, error) {
	cfg := config{target: -1, comma: ',', trimSpace: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.comma
	reader.TrimLeadingSpace = cfg.trimSpace
	reader.ReuseRecord = true

	var (
		names   []string
		data    []float64
		targets []float64
		width   int
		target  int
		line    int
	)

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "dataset: read csv")
		}
		line++

		if width == 0 {
			width = len(rec)
			if width < 2 {
				return nil, errors.NewValueError("dataset.Read",
					fmt.Sprintf("need at least 2 columns, got %d", width))
			}
			target = cfg.target
			if target < 0 {
				target += width
			}
			if target < 0 || target >= width {
				return nil, errors.NewValidationError("target", "column index out of range", cfg.target)
			}
			if cfg.header {
				names = make([]string, width)
				for j, s := range rec {
					names[j] = strings.TrimSpace(s)
				}
				continue
			}
		}

		for j, s := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, errors.NewValueError("dataset.Read",
					fmt.Sprintf("line %d, column %d: %q is not a number", line, j+1, s))
			}
			if j == target {
				targets = append(targets, v)
			} else {
				data = append(data, v)
			}
		}
	}

	if len(targets) == 0 {
		return nil, errors.NewModelError("dataset.Read", "no data rows", errors.ErrEmptyData)
	}

	n := len(targets)
	ds := &Dataset{
		X:          mat.NewDense(n, width-1, data),
		Y:          mat.NewDense(n, 1, targets),
		TargetName: "y",
	}
	for j := 0; j < width; j++ {
		name := fmt.Sprintf("x%d", len(ds.FeatureNames))
		if names != nil {
			name = names[j]
		}
		if j == target {
			if names != nil {
				ds.TargetName = name
			}
			continue
		}
		ds.FeatureNames = append(ds.FeatureNames, name)
	}
	return ds, nil
}
