// Package report renders pricing results for humans: a single-point
// report table, sweep tables, summary statistics and JSON/CSV output
// files.
//
// Display conventions live here, not in the pricing core: vega is
// additionally shown per 1% of volatility (vega/100) and theta per
// calendar day (theta/365), which is how traders quote both.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"

	"github.com/contactkeval/option-greeks/internal/pricing"
	"github.com/contactkeval/option-greeks/internal/sweep"
)

// Render returns the single-point report for one evaluated option.
func Render(spec pricing.OptionSpec, g pricing.Greeks) string {
	var display strings.Builder
	display.WriteString("=== Black-Scholes ===\n")

	table := tablewriter.NewWriter(&display)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator(":")

	table.Append([]string{"Type", string(spec.Kind)})
	table.Append([]string{"S, K", fmt.Sprintf("%.6f, %.6f", spec.Spot, spec.Strike)})
	table.Append([]string{"T (years)", fmt.Sprintf("%.6f", spec.Expiry)})
	table.Append([]string{"sigma, r", fmt.Sprintf("%.6f, %.6f", spec.Sigma, spec.Rate)})
	table.Append([]string{"Price", fmt.Sprintf("%.6f", g.Price)})
	table.Append([]string{"Delta", fmt.Sprintf("%.6f", g.Delta)})
	table.Append([]string{"Gamma", fmt.Sprintf("%.6f", g.Gamma)})
	table.Append([]string{"Vega", fmt.Sprintf("%.6f (per 1%% = %.6f)", g.Vega, g.Vega/100)})
	table.Append([]string{"Theta (yr)", fmt.Sprintf("%.6f", g.Theta)})
	table.Append([]string{"Theta/day", fmt.Sprintf("%.6f", g.Theta/365)})

	table.Render()
	return display.String()
}

// SweepTable renders one row per sweep point.
func SweepTable(v sweep.Variable, pts []sweep.Point) string {
	var display strings.Builder

	table := tablewriter.NewWriter(&display)
	table.SetHeader([]string{string(v), "price", "delta", "gamma", "vega", "theta"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, pt := range pts {
		table.Append([]string{
			fmt.Sprintf("%.4f", pt.X),
			fmt.Sprintf("%.6f", pt.Greeks.Price),
			fmt.Sprintf("%.6f", pt.Greeks.Delta),
			fmt.Sprintf("%.6f", pt.Greeks.Gamma),
			fmt.Sprintf("%.6f", pt.Greeks.Vega),
			fmt.Sprintf("%.6f", pt.Greeks.Theta),
		})
	}

	table.Render()
	return display.String()
}

// Stat holds the range of one greek across a sweep.
type Stat struct {
	Min  float64 `json:"min"`
	Mean float64 `json:"mean"`
	Max  float64 `json:"max"`
}

// Summary aggregates each greek over a full sweep.
type Summary struct {
	Price Stat `json:"price"`
	Delta Stat `json:"delta"`
	Gamma Stat `json:"gamma"`
	Vega  Stat `json:"vega"`
	Theta Stat `json:"theta"`
}

// Summarize computes min/mean/max of every greek across the sweep.
func Summarize(pts []sweep.Point) (Summary, error) {
	if len(pts) == 0 {
		return Summary{}, fmt.Errorf("cannot summarize an empty sweep")
	}

	series := map[string][]float64{
		"price": make([]float64, 0, len(pts)),
		"delta": make([]float64, 0, len(pts)),
		"gamma": make([]float64, 0, len(pts)),
		"vega":  make([]float64, 0, len(pts)),
		"theta": make([]float64, 0, len(pts)),
	}
	for _, pt := range pts {
		series["price"] = append(series["price"], pt.Greeks.Price)
		series["delta"] = append(series["delta"], pt.Greeks.Delta)
		series["gamma"] = append(series["gamma"], pt.Greeks.Gamma)
		series["vega"] = append(series["vega"], pt.Greeks.Vega)
		series["theta"] = append(series["theta"], pt.Greeks.Theta)
	}

	var out Summary
	for name, vals := range series {
		min, err := stats.Min(vals)
		if err != nil {
			return Summary{}, fmt.Errorf("failed to compute min of %s: %v", name, err)
		}
		mean, err := stats.Mean(vals)
		if err != nil {
			return Summary{}, fmt.Errorf("failed to compute mean of %s: %v", name, err)
		}
		max, err := stats.Max(vals)
		if err != nil {
			return Summary{}, fmt.Errorf("failed to compute max of %s: %v", name, err)
		}

		st := Stat{Min: min, Mean: mean, Max: max}
		switch name {
		case "price":
			out.Price = st
		case "delta":
			out.Delta = st
		case "gamma":
			out.Gamma = st
		case "vega":
			out.Vega = st
		case "theta":
			out.Theta = st
		}
	}
	return out, nil
}

// WriteJSON writes the sweep points as indented JSON to
// <outdir>/greeks.json.
func WriteJSON(pts []sweep.Point, outdir string) error {
	b, err := json.MarshalIndent(pts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "greeks.json"), b, 0644)
}

// WriteCSV writes one row per sweep point to <outdir>/greeks.csv.
func WriteCSV(v sweep.Variable, pts []sweep.Point, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, "greeks.csv"))
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	headers := []string{string(v), "price", "delta", "gamma", "vega", "theta"}
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, pt := range pts {
		row := []string{
			fmt.Sprintf("%g", pt.X),
			fmt.Sprintf("%g", pt.Greeks.Price),
			fmt.Sprintf("%g", pt.Greeks.Delta),
			fmt.Sprintf("%g", pt.Greeks.Gamma),
			fmt.Sprintf("%g", pt.Greeks.Vega),
			fmt.Sprintf("%g", pt.Greeks.Theta),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
