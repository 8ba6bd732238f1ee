package main

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/contactkeval/option-greeks/internal/logger"
	"github.com/contactkeval/option-greeks/internal/plot"
	"github.com/contactkeval/option-greeks/internal/pricing"
	"github.com/contactkeval/option-greeks/internal/report"
	"github.com/contactkeval/option-greeks/internal/scenario"
	"github.com/contactkeval/option-greeks/internal/sweep"
)

var rootCmd = &cobra.Command{
	Use:   "option-greeks",
	Short: "Black-Scholes price and Greeks calculator",
	Long: `Computes closed-form European option prices and risk sensitivities
(delta, gamma, vega, theta) under the Black-Scholes model, and renders
tabular reports and sweep plots.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		v, _ := cmd.Flags().GetInt("verbosity")
		logger.SetVerbosity(v)
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a single-point price and Greeks report",
	Run: func(cmd *cobra.Command, args []string) {
		spec, _, err := buildSpec(cmd)
		if err != nil {
			log.Fatalf("invalid inputs: %v", err)
		}
		g := pricing.Evaluate(spec)
		fmt.Print(report.Render(spec, g))
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Evaluate the Greeks across a range of S or T",
	Run: func(cmd *cobra.Command, args []string) {
		spec, cfg, err := buildSpec(cmd)
		if err != nil {
			log.Fatalf("invalid inputs: %v", err)
		}
		v, xs, err := buildRange(cmd, cfg)
		if err != nil {
			log.Fatalf("invalid sweep range: %v", err)
		}

		pts, err := sweep.Run(spec, v, xs)
		if err != nil {
			log.Fatalf("sweep failed: %v", err)
		}
		fmt.Print(report.SweepTable(v, pts))

		summary, err := report.Summarize(pts)
		if err != nil {
			log.Fatalf("summary failed: %v", err)
		}
		logger.Infof("price range [%.6f, %.6f], mean %.6f",
			summary.Price.Min, summary.Price.Max, summary.Price.Mean)

		outdir, _ := cmd.Flags().GetString("outdir")
		if outdir == "" {
			// scenario output_dir is the fallback; it is empty unless
			// a config file was loaded
			outdir = cfg.OutputDir
		}
		if outdir == "" {
			return
		}
		if err := os.MkdirAll(outdir, 0755); err != nil {
			log.Fatalf("could not create output dir %s: %v", outdir, err)
		}
		if err := report.WriteJSON(pts, outdir); err != nil {
			log.Fatalf("writing JSON: %v", err)
		}
		if err := report.WriteCSV(v, pts, outdir); err != nil {
			log.Fatalf("writing CSV: %v", err)
		}
		logger.Infof("wrote %d points to %s", len(pts), outdir)
	},
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render a PNG chart of the Greeks across a range of S or T",
	Run: func(cmd *cobra.Command, args []string) {
		spec, cfg, err := buildSpec(cmd)
		if err != nil {
			log.Fatalf("invalid inputs: %v", err)
		}
		v, xs, err := buildRange(cmd, cfg)
		if err != nil {
			log.Fatalf("invalid sweep range: %v", err)
		}

		pts, err := sweep.Run(spec, v, xs)
		if err != nil {
			log.Fatalf("sweep failed: %v", err)
		}

		out, _ := cmd.Flags().GetString("out")
		if !cmd.Flags().Changed("out") && cfg.OutputDir != "" {
			out = filepath.Join(cfg.OutputDir, "greeks.png")
		}
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				log.Fatalf("could not create output dir %s: %v", dir, err)
			}
		}
		if err := plot.SweepPNG(v, pts, spec, out); err != nil {
			log.Fatalf("plot failed: %v", err)
		}
		logger.Infof("wrote %s", out)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the preset example (S=100 K=100 T=0.5 sigma=0.2 r=0.03 call)",
	Run: func(cmd *cobra.Command, args []string) {
		spec := pricing.OptionSpec{
			Spot:   100,
			Strike: 100,
			Expiry: 0.5,
			Sigma:  0.2,
			Rate:   0.03,
			Kind:   pricing.Call,
		}
		fmt.Print(report.Render(spec, pricing.Evaluate(spec)))
	},
}

// buildSpec assembles the OptionSpec from the scenario file (if any)
// overlaid with whichever flags were set explicitly. It returns the
// loaded scenario too so sweep commands can reuse its sweep section.
func buildSpec(cmd *cobra.Command) (pricing.OptionSpec, *scenario.Config, error) {
	var cfg *scenario.Config

	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		loaded, err := scenario.Load(configPath)
		if err != nil {
			return pricing.OptionSpec{}, nil, err
		}
		cfg = loaded
		if !cmd.Flags().Changed("verbosity") {
			logger.SetVerbosity(cfg.Verbosity)
		}
		logger.Debugf("loaded scenario %s", configPath)
	} else {
		cfg = &scenario.Config{Kind: string(pricing.Call)}
	}

	if cmd.Flags().Changed("spot") {
		cfg.Spot, _ = cmd.Flags().GetFloat64("spot")
	}
	if cmd.Flags().Changed("strike") {
		cfg.Strike, _ = cmd.Flags().GetFloat64("strike")
	}
	if cmd.Flags().Changed("expiry") {
		cfg.Expiry, _ = cmd.Flags().GetFloat64("expiry")
	}
	if cmd.Flags().Changed("sigma") {
		cfg.Sigma, _ = cmd.Flags().GetFloat64("sigma")
	}
	if cmd.Flags().Changed("rate") {
		cfg.Rate, _ = cmd.Flags().GetFloat64("rate")
	}
	if cmd.Flags().Changed("kind") {
		cfg.Kind, _ = cmd.Flags().GetString("kind")
	}

	spec, err := cfg.OptionSpec()
	if err != nil {
		return pricing.OptionSpec{}, nil, err
	}
	if spec.Spot <= 0 || spec.Strike <= 0 {
		return pricing.OptionSpec{}, nil, fmt.Errorf("spot and strike must be positive (got S=%g K=%g)", spec.Spot, spec.Strike)
	}
	return spec, cfg, nil
}

// buildRange resolves the sweep variable and sample values from flags,
// falling back to the scenario's sweep section, then to the stock
// ranges 50..150 for S and 0.01..1 for T.
func buildRange(cmd *cobra.Command, cfg *scenario.Config) (sweep.Variable, []float64, error) {
	vs, _ := cmd.Flags().GetString("vs")
	if vs == "" && cfg.Sweep != nil {
		return cfg.Range()
	}
	if vs == "" {
		vs = "S"
	}

	v, err := sweep.ParseVariable(vs)
	if err != nil {
		return "", nil, err
	}

	min, _ := cmd.Flags().GetFloat64("min")
	max, _ := cmd.Flags().GetFloat64("max")
	points, _ := cmd.Flags().GetInt("points")
	min, max = rangeBounds(v, min, max, cmd.Flags().Changed("min"), cmd.Flags().Changed("max"))

	xs, err := sweep.Linspace(min, max, points)
	if err != nil {
		return "", nil, err
	}
	return v, xs, nil
}

// rangeBounds fills whichever sweep bound was not set explicitly with
// the stock range for the variable: 50..150 for S, 0.01..1 for T. The
// two bounds default independently, so giving only one flag never
// leaves the other at zero.
func rangeBounds(v sweep.Variable, min, max float64, minSet, maxSet bool) (float64, float64) {
	defMin, defMax := 50.0, 150.0
	if v == sweep.Expiry {
		defMin, defMax = 0.01, 1.0
	}
	if !minSet {
		min = defMin
	}
	if !maxSet {
		max = defMax
	}
	return min, max
}

func init() {
	rootCmd.PersistentFlags().Float64("spot", 100, "underlying price S")
	rootCmd.PersistentFlags().Float64("strike", 100, "strike price K")
	rootCmd.PersistentFlags().Float64("expiry", 0.5, "time to expiry in years")
	rootCmd.PersistentFlags().Float64("sigma", 0.2, "annualized volatility (decimal)")
	rootCmd.PersistentFlags().Float64("rate", 0.0, "risk-free rate (annual, decimal)")
	rootCmd.PersistentFlags().String("kind", "call", "option kind: call or put")
	rootCmd.PersistentFlags().String("config", "", "path to JSON scenario file")
	rootCmd.PersistentFlags().IntP("verbosity", "v", 1, "0=errors,1=info,2=debug,3=trace")

	for _, c := range []*cobra.Command{sweepCmd, plotCmd} {
		c.Flags().String("vs", "", "sweep variable: S or T")
		c.Flags().Float64("min", 0, "sweep range start")
		c.Flags().Float64("max", 0, "sweep range end")
		c.Flags().Int("points", 100, "number of sweep samples")
	}
	sweepCmd.Flags().String("outdir", "", "write greeks.json and greeks.csv here")
	plotCmd.Flags().String("out", "greeks.png", "output PNG path")

	rootCmd.AddCommand(reportCmd, sweepCmd, plotCmd, demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
