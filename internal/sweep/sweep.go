// Package sweep evaluates the pricing engine across a range of one
// independent variable, holding every other parameter fixed. The
// output feeds the report and plot layers.
package sweep

import (
	"fmt"

	"github.com/contactkeval/option-greeks/internal/pricing"
)

// Variable names the parameter varied across a sweep.
type Variable string

const (
	Spot   Variable = "S" // vary the underlying price
	Expiry Variable = "T" // vary the time to expiry (years)
)

// ParseVariable maps a CLI/config string onto a Variable.
func ParseVariable(s string) (Variable, error) {
	switch s {
	case "S", "s", "spot":
		return Spot, nil
	case "T", "t", "expiry":
		return Expiry, nil
	}
	return "", fmt.Errorf("unknown sweep variable %q (want S or T)", s)
}

// Label returns the axis label used by the report and plot layers.
func (v Variable) Label() string {
	if v == Expiry {
		return "Time to Expiry T (years)"
	}
	return "Underlying Price S"
}

// Point pairs one value of the independent variable with the Greeks
// evaluated there.
type Point struct {
	X      float64        `json:"x"`
	Greeks pricing.Greeks `json:"greeks"`
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n must be at least 2 so both endpoints are representable.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("linspace needs at least 2 points, got %d", n)
	}
	step := (hi - lo) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	// pin the last point so it does not drift from accumulated rounding
	out[n-1] = hi
	return out, nil
}

// Run substitutes each value of xs into base at the position named by v
// and evaluates the pricing engine there. The result has exactly one
// Point per input value, in input order; evaluations are independent,
// so identical inputs always produce identical output.
func Run(base pricing.OptionSpec, v Variable, xs []float64) ([]Point, error) {
	if v != Spot && v != Expiry {
		return nil, fmt.Errorf("unknown sweep variable %q", v)
	}

	out := make([]Point, 0, len(xs))
	for _, x := range xs {
		spec := base
		switch v {
		case Spot:
			spec.Spot = x
		case Expiry:
			spec.Expiry = x
		}
		out = append(out, Point{X: x, Greeks: pricing.Evaluate(spec)})
	}
	return out, nil
}
