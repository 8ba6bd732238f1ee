// Package plot renders sweep results as PNG line charts, one line per
// greek, using gonum/plot. Vega is plotted per 1% of volatility and
// theta per day so the four curves share a readable scale.
package plot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/contactkeval/option-greeks/internal/pricing"
	"github.com/contactkeval/option-greeks/internal/sweep"
)

// SweepPNG draws delta, gamma, vega (per 1%) and theta/day against the
// sweep variable and writes the chart to path. The format is inferred
// from the file extension by gonum/plot; callers use .png.
func SweepPNG(v sweep.Variable, pts []sweep.Point, base pricing.OptionSpec, path string) error {
	if len(pts) == 0 {
		return fmt.Errorf("cannot plot an empty sweep")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s greeks vs %s (K=%g, sigma=%g, r=%g)",
		base.Kind, v.Label(), base.Strike, base.Sigma, base.Rate)
	p.X.Label.Text = v.Label()
	p.Y.Label.Text = "Greek Value"
	p.Add(plotter.NewGrid())

	deltas := make(plotter.XYs, len(pts))
	gammas := make(plotter.XYs, len(pts))
	vegas := make(plotter.XYs, len(pts))
	thetas := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		deltas[i] = plotter.XY{X: pt.X, Y: pt.Greeks.Delta}
		gammas[i] = plotter.XY{X: pt.X, Y: pt.Greeks.Gamma}
		vegas[i] = plotter.XY{X: pt.X, Y: pt.Greeks.Vega / 100}
		thetas[i] = plotter.XY{X: pt.X, Y: pt.Greeks.Theta / 365}
	}

	err := plotutil.AddLines(p,
		"Delta", deltas,
		"Gamma", gammas,
		"Vega (per 1%)", vegas,
		"Theta/day", thetas,
	)
	if err != nil {
		return fmt.Errorf("failed to add sweep lines: %v", err)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot to %s: %v", path, err)
	}
	return nil
}
