// Package pricing implements the closed-form Black-Scholes model for
// European options: theoretical price plus the first-order risk
// sensitivities (delta, gamma, vega, theta).
//
// All functions are pure and deterministic. The standard normal CDF is
// evaluated through math.Erf, which is accurate to double precision;
// no further numerical machinery is needed for the closed-form case.
package pricing

import (
	"fmt"
	"math"
)

const sqrt2Pi = 2.5066282746310002

// Epsilon is the floor applied to time-to-expiry and volatility before
// they enter any formula. Both appear in the denominator of d1/d2 via
// sigma*sqrt(T), so zero or negative inputs are silently clamped here
// instead of being rejected. At the floor the price converges to the
// intrinsic value max(S-K, 0) for calls and max(K-S, 0) for puts.
const Epsilon = 1e-6

// Kind selects between the two European option payoffs.
type Kind string

const (
	Call Kind = "call"
	Put  Kind = "put"
)

// ParseKind maps a CLI/config string onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "call", "Call", "CALL", "c", "C":
		return Call, nil
	case "put", "Put", "PUT", "p", "P":
		return Put, nil
	}
	return "", fmt.Errorf("unknown option kind %q (want call or put)", s)
}

// OptionSpec fully describes one European option to be priced.
//
// Fields:
//   - Spot: current underlying price S, assumed > 0 (not validated)
//   - Strike: strike price K, assumed > 0 (not validated)
//   - Expiry: time to expiry T in years; floored to Epsilon
//   - Sigma: annualized volatility as a decimal; floored to Epsilon
//   - Rate: annual risk-free rate as a decimal
//   - Kind: Call or Put
//
// The struct is a plain value; build a fresh one per evaluation.
type OptionSpec struct {
	Spot   float64 `json:"spot"`
	Strike float64 `json:"strike"`
	Expiry float64 `json:"expiry"`
	Sigma  float64 `json:"sigma"`
	Rate   float64 `json:"rate"`
	Kind   Kind    `json:"kind"`
}

// Greeks holds the result of one Black-Scholes evaluation.
//
// Vega is per 1.00 of volatility (a move from 0.20 to 1.20); theta is
// per year. The per-1% and per-day conventions traders quote are
// display scalings applied by the report layer, not part of the model.
type Greeks struct {
	Price float64 `json:"price"`
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Theta float64 `json:"theta"`
}

// Evaluate prices the option and computes its Greeks.
//
// The implementation is the textbook Black-Scholes system:
//
//	d1 = (ln(S/K) + (r + sigma^2/2) T) / (sigma sqrt(T))
//	d2 = d1 - sigma sqrt(T)
//
// with price, delta and theta dispatched on spec.Kind, and gamma and
// vega shared by both kinds. Expiry and Sigma are floored to Epsilon
// first, so degenerate inputs yield a well-defined result instead of a
// division by zero. Non-positive Spot or Strike is a caller-contract
// violation: the log blows up and the resulting NaN/Inf propagates to
// the output rather than being masked.
func Evaluate(spec OptionSpec) Greeks {
	T := math.Max(spec.Expiry, Epsilon)
	sigma := math.Max(spec.Sigma, Epsilon)
	sqrtT := math.Sqrt(T)

	d1 := (math.Log(spec.Spot/spec.Strike) + (spec.Rate+0.5*sigma*sigma)*T) / (sigma * sqrtT)
	d2 := d1 - sigma*sqrtT
	disc := math.Exp(-spec.Rate * T)
	pdf := normPDF(d1)

	g := Greeks{
		Gamma: pdf / (spec.Spot * sigma * sqrtT),
		Vega:  spec.Spot * pdf * sqrtT,
	}

	if spec.Kind == Put {
		g.Price = spec.Strike*disc*normCDF(-d2) - spec.Spot*normCDF(-d1)
		g.Delta = normCDF(d1) - 1.0
		g.Theta = -(spec.Spot*pdf*sigma)/(2*sqrtT) + spec.Rate*spec.Strike*disc*normCDF(-d2)
	} else {
		g.Price = spec.Spot*normCDF(d1) - spec.Strike*disc*normCDF(d2)
		g.Delta = normCDF(d1)
		g.Theta = -(spec.Spot*pdf*sigma)/(2*sqrtT) - spec.Rate*spec.Strike*disc*normCDF(d2)
	}
	return g
}

// Price returns just the theoretical option price. Convenience wrapper
// over Evaluate for callers that do not need the sensitivities.
func Price(spec OptionSpec) float64 {
	return Evaluate(spec).Price
}

// D1D2 exposes the standardized intermediates of the model, with the
// same Epsilon flooring Evaluate applies. Useful for diagnostics and
// tests.
func D1D2(spec OptionSpec) (d1, d2 float64) {
	T := math.Max(spec.Expiry, Epsilon)
	sigma := math.Max(spec.Sigma, Epsilon)
	d1 = (math.Log(spec.Spot/spec.Strike) + (spec.Rate+0.5*sigma*sigma)*T) / (sigma * math.Sqrt(T))
	d2 = d1 - sigma*math.Sqrt(T)
	return d1, d2
}

// StrikeForDelta inverts the delta formula: it returns the strike at
// which the option described by spec (spec.Strike is ignored) would
// carry the target delta. Call deltas must lie in (0,1), put deltas in
// (-1,0).
//
// Solving N(d1) = target for K gives
//
//	K = S * exp((r + sigma^2/2) T - d1 sigma sqrt(T))
//
// where d1 is the normal quantile of the target (shifted by one for
// puts).
func StrikeForDelta(spec OptionSpec, target float64) (float64, error) {
	p := target
	if spec.Kind == Put {
		p = target + 1.0
	}
	if p <= 0 || p >= 1 {
		return 0, fmt.Errorf("delta %v out of range for %s", target, spec.Kind)
	}

	T := math.Max(spec.Expiry, Epsilon)
	sigma := math.Max(spec.Sigma, Epsilon)
	d1 := NormInv(p)
	return spec.Spot * math.Exp((spec.Rate+0.5*sigma*sigma)*T-d1*sigma*math.Sqrt(T)), nil
}

// normPDF calculates the probability density function (PDF) of the
// standard normal distribution at x: exp(-0.5 * x^2) / sqrt(2 pi).
func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / sqrt2Pi
}

// normCDF computes the cumulative distribution function of the standard
// normal distribution for a given value x using the error function
// approximation. It returns a value between 0 and 1.
func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

// NormInv computes the inverse of the standard normal cumulative
// distribution function (quantile function). It returns the value x
// such that the cumulative probability at x equals p.
//
// The function uses a rational approximation based on Wichura's method,
// which provides high accuracy across the entire range of valid
// probabilities.
//
// Panics if p is not strictly between 0 and 1.
//
// Example:
//
//	NormInv(0.975) // approximately 1.96
//	NormInv(0.025) // approximately -1.96
func NormInv(p float64) float64 {
	if p <= 0 || p >= 1 {
		panic("NormInv: p must be in (0,1)")
	}

	// Coefficients
	a := []float64{
		-3.969683028665376e+01,
		2.209460984245205e+02,
		-2.759285104469687e+02,
		1.383577518672690e+02,
		-3.066479806614716e+01,
		2.506628277459239e+00,
	}

	b := []float64{
		-5.447609879822406e+01,
		1.615858368580409e+02,
		-1.556989798598866e+02,
		6.680131188771972e+01,
		-1.328068155288572e+01,
	}

	c := []float64{
		-7.784894002430293e-03,
		-3.223964580411365e-01,
		-2.400758277161838e+00,
		-2.549732539343734e+00,
		4.374664141464968e+00,
		2.938163982698783e+00,
	}

	d := []float64{
		7.784695709041462e-03,
		3.224671290700398e-01,
		2.445134137142996e+00,
		3.754408661907416e+00,
	}

	plow := 0.02425
	phigh := 1 - plow

	var q, r float64

	if p < plow {
		q = math.Sqrt(-2 * math.Log(p))
		return (((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	}

	if p > phigh {
		q = math.Sqrt(-2 * math.Log(1-p))
		return -(((((c[0]*q+c[1])*q+c[2])*q+c[3])*q+c[4])*q + c[5]) /
			((((d[0]*q+d[1])*q+d[2])*q+d[3])*q + 1)
	}

	q = p - 0.5
	r = q * q
	return (((((a[0]*r+a[1])*r+a[2])*r+a[3])*r+a[4])*r + a[5]) * q /
		(((((b[0]*r+b[1])*r+b[2])*r+b[3])*r+b[4])*r + 1)
}
