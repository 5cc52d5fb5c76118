// Package viz renders diagnostic plots for trained models.
package viz

import (
	"image/color"
	"math"

	"github.com/YuminosukeSato/linml/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ScatterConfig controls the predicted-vs-true plot.
type ScatterConfig struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// DefaultScatterConfig returns a 5x5 inch plot titled "Predicted vs True".
func DefaultScatterConfig() ScatterConfig {
	return ScatterConfig{
		Title:  "Predicted vs True",
		Width:  5 * vg.Inch,
		Height: 5 * vg.Inch,
	}
}

// NewScatter builds a plot of predictions against true values with the
// identity line y = x drawn across the data range.
func NewScatter(yTrue, yPred mat.Matrix, cfg ScatterConfig) (*plot.Plot, error) {
	tr, tc := yTrue.Dims()
	pr, pc := yPred.Dims()
	if tr == 0 {
		return nil, errors.NewValueError("viz.NewScatter", "empty input")
	}
	if tr != pr {
		return nil, errors.NewDimensionError("viz.NewScatter", tr, pr, 0)
	}
	if tc != 1 || pc != 1 {
		return nil, errors.NewDimensionError("viz.NewScatter", 1, max(tc, pc), 1)
	}

	pts := make(plotter.XYs, tr)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < tr; i++ {
		pts[i].X = yTrue.At(i, 0)
		pts[i].Y = yPred.At(i, 0)
		lo = math.Min(lo, math.Min(pts[i].X, pts[i].Y))
		hi = math.Max(hi, math.Max(pts[i].X, pts[i].Y))
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "True"
	p.Y.Label.Text = "Predicted"

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "viz: scatter")
	}
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	s.GlyphStyle.Radius = vg.Points(2)
	s.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	p.Add(s)

	identity, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return nil, errors.Wrap(err, "viz: identity line")
	}
	identity.Color = color.RGBA{R: 255, A: 255}
	identity.LineStyle.Width = vg.Points(1)
	identity.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(identity)
	p.Legend.Add("samples", s)
	p.Legend.Add("y = x", identity)
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// SaveScatter writes the predicted-vs-true plot to filename. The image format
// follows the file extension (.png, .svg, .pdf, ...).
func SaveScatter(filename string, yTrue, yPred mat.Matrix, cfg ScatterConfig) error {
	p, err := NewScatter(yTrue, yPred, cfg)
	if err != nil {
		return err
	}
	if err := p.Save(cfg.Width, cfg.Height, filename); err != nil {
		return errors.Wrapf(err, "viz: save %s", filename)
	}
	return nil
}
