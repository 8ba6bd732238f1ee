// Package scenario loads JSON scenario files describing one option and
// an optional sweep. A scenario bundles everything the CLI would take
// as flags, so repeatable runs can live in version control.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/contactkeval/option-greeks/internal/pricing"
	"github.com/contactkeval/option-greeks/internal/sweep"
)

// Config struct
type Config struct {
	Kind      string       `json:"kind,omitempty"`       // "call" or "put", defaults to "call"
	Spot      float64      `json:"spot"`                 // underlying price S
	Strike    float64      `json:"strike"`               // strike price K
	Expiry    float64      `json:"expiry"`               // time to expiry in years
	Sigma     float64      `json:"sigma"`                // annualized volatility
	Rate      float64      `json:"rate,omitempty"`       // risk-free rate, defaults to 0
	Sweep     *SweepConfig `json:"sweep,omitempty"`      // optional sweep section
	OutputDir string       `json:"output_dir,omitempty"` // output directory
	Verbosity int          `json:"verbosity,omitempty"`  // 0=errors,1=info,2=debug; 0 is a valid explicit choice
}

// SweepConfig describes the range of the independent variable.
type SweepConfig struct {
	Variable string  `json:"variable"`         // "S" or "T"
	Min      float64 `json:"min"`              // range start
	Max      float64 `json:"max"`              // range end
	Points   int     `json:"points,omitempty"` // sample count, defaults to 100
}

// Load reads and parses a scenario file and fills defaults.
//
// Verbosity defaults to 0 (errors only) when omitted, unlike the CLI
// flag default of 1: a scenario run is expected to be quiet unless it
// asks for more. Only out-of-range values are reset to 1.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %v", err)
	}

	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("invalid scenario: %v", err)
	}

	// fill defaults
	if cfg.Kind == "" {
		cfg.Kind = string(pricing.Call)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./out"
	}
	if cfg.Verbosity < 0 || cfg.Verbosity > 3 {
		cfg.Verbosity = 1
	}
	if cfg.Sweep != nil && cfg.Sweep.Points == 0 {
		cfg.Sweep.Points = 100
	}
	return &cfg, nil
}

// OptionSpec converts the scenario into a pricing spec.
func (c *Config) OptionSpec() (pricing.OptionSpec, error) {
	kind, err := pricing.ParseKind(c.Kind)
	if err != nil {
		return pricing.OptionSpec{}, err
	}
	return pricing.OptionSpec{
		Spot:   c.Spot,
		Strike: c.Strike,
		Expiry: c.Expiry,
		Sigma:  c.Sigma,
		Rate:   c.Rate,
		Kind:   kind,
	}, nil
}

// Range expands the sweep section into variable and sample values.
func (c *Config) Range() (sweep.Variable, []float64, error) {
	if c.Sweep == nil {
		return "", nil, fmt.Errorf("scenario has no sweep section")
	}
	v, err := sweep.ParseVariable(c.Sweep.Variable)
	if err != nil {
		return "", nil, err
	}
	xs, err := sweep.Linspace(c.Sweep.Min, c.Sweep.Max, c.Sweep.Points)
	if err != nil {
		return "", nil, err
	}
	return v, xs, nil
}
