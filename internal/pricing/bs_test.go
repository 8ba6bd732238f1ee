package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

var refSpec = OptionSpec{
	Spot:   100,
	Strike: 100,
	Expiry: 0.5,
	Sigma:  0.2,
	Rate:   0.03,
	Kind:   Call,
}

// Known-good values for the reference ATM call.
func TestEvaluateReferenceCall(t *testing.T) {
	g := Evaluate(refSpec)

	assert.InDelta(t, 6.371028, g.Price, 1e-6)
	assert.InDelta(t, 0.570158, g.Delta, 1e-6)
	assert.InDelta(t, 0.027772, g.Gamma, 1e-6)
	assert.InDelta(t, 27.772132, g.Vega, 1e-6)
	assert.InDelta(t, -7.073770, g.Theta, 1e-6)
}

func TestD1D2ReferenceCase(t *testing.T) {
	d1, d2 := D1D2(refSpec)

	assert.InDelta(t, 0.176777, d1, 1e-6)
	assert.InDelta(t, 0.035355, d2, 1e-6)
	assert.InDelta(t, refSpec.Sigma*math.Sqrt(refSpec.Expiry), d1-d2, 1e-12)
}

func paramGrid() []OptionSpec {
	var out []OptionSpec
	for _, S := range []float64{50, 80, 100, 120, 150} {
		for _, K := range []float64{80, 100, 120} {
			for _, T := range []float64{0.05, 0.5, 2} {
				for _, sigma := range []float64{0.1, 0.3} {
					for _, r := range []float64{0, 0.05} {
						out = append(out, OptionSpec{Spot: S, Strike: K, Expiry: T, Sigma: sigma, Rate: r, Kind: Call})
					}
				}
			}
		}
	}
	return out
}

// call - put must equal S - K*exp(-rT) for every parameter set.
func TestPutCallParity(t *testing.T) {
	for _, spec := range paramGrid() {
		call := Evaluate(spec)

		put := spec
		put.Kind = Put
		putG := Evaluate(put)

		lhs := call.Price - putG.Price
		rhs := spec.Spot - spec.Strike*math.Exp(-spec.Rate*spec.Expiry)
		require.InDeltaf(t, rhs, lhs, 1e-9, "parity violated for %+v", spec)
	}
}

func TestDeltaBounds(t *testing.T) {
	for _, spec := range paramGrid() {
		call := Evaluate(spec)
		assert.GreaterOrEqual(t, call.Delta, 0.0)
		assert.LessOrEqual(t, call.Delta, 1.0)

		put := spec
		put.Kind = Put
		putG := Evaluate(put)
		assert.GreaterOrEqual(t, putG.Delta, -1.0)
		assert.LessOrEqual(t, putG.Delta, 0.0)
	}
}

// Gamma and vega do not depend on the option kind.
func TestGammaVegaSymmetry(t *testing.T) {
	for _, spec := range paramGrid() {
		call := Evaluate(spec)

		put := spec
		put.Kind = Put
		putG := Evaluate(put)

		assert.Equal(t, call.Gamma, putG.Gamma)
		assert.Equal(t, call.Vega, putG.Vega)
	}
}

// At the expiry floor the price collapses to the intrinsic value.
func TestIntrinsicValueAtExpiry(t *testing.T) {
	call := Evaluate(OptionSpec{Spot: 110, Strike: 100, Expiry: 0, Sigma: 0.2, Rate: 0.03, Kind: Call})
	assert.InDelta(t, 10.0, call.Price, 1e-3)

	otmCall := Evaluate(OptionSpec{Spot: 90, Strike: 100, Expiry: 0, Sigma: 0.2, Rate: 0.03, Kind: Call})
	assert.InDelta(t, 0.0, otmCall.Price, 1e-3)

	put := Evaluate(OptionSpec{Spot: 90, Strike: 100, Expiry: 0, Sigma: 0.2, Rate: 0.03, Kind: Put})
	assert.InDelta(t, 10.0, put.Price, 1e-3)
}

// With volatility floored, an option that is out of the money forward
// is worth (almost exactly) nothing.
func TestZeroVolDeterministic(t *testing.T) {
	call := Evaluate(OptionSpec{Spot: 100, Strike: 120, Expiry: 1, Sigma: 0, Rate: 0.05, Kind: Call})
	assert.InDelta(t, 0.0, call.Price, 1e-9)
}

// Call delta is non-decreasing in S.
func TestCallDeltaMonotoneInSpot(t *testing.T) {
	prev := -1.0
	for S := 50.0; S <= 150.0; S += 1.0 {
		g := Evaluate(OptionSpec{Spot: S, Strike: 100, Expiry: 0.5, Sigma: 0.2, Rate: 0.03, Kind: Call})
		require.GreaterOrEqualf(t, g.Delta, prev, "delta decreased at S=%v", S)
		prev = g.Delta
	}
}

// Independent reconstruction of the call price through gonum's normal
// distribution must agree with the erf-based implementation.
func TestPriceAgainstDistuv(t *testing.T) {
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	for _, spec := range paramGrid() {
		d1, d2 := D1D2(spec)
		ref := spec.Spot*norm.CDF(d1) - spec.Strike*math.Exp(-spec.Rate*spec.Expiry)*norm.CDF(d2)
		require.InDeltaf(t, ref, Evaluate(spec).Price, 1e-9, "mismatch for %+v", spec)
	}
}

func TestNormInvAgainstDistuv(t *testing.T) {
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	for _, p := range []float64{0.001, 0.01, 0.025, 0.2, 0.5, 0.8, 0.975, 0.99, 0.999} {
		assert.InDeltaf(t, norm.Quantile(p), NormInv(p), 1e-6, "quantile mismatch at p=%v", p)
	}
}

func TestNormInvPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { NormInv(0) })
	assert.Panics(t, func() { NormInv(1) })
}

func TestStrikeForDelta(t *testing.T) {
	spec := refSpec

	strike, err := StrikeForDelta(spec, 0.3)
	require.NoError(t, err)
	spec.Strike = strike
	assert.InDelta(t, 0.3, Evaluate(spec).Delta, 1e-9)

	put := refSpec
	put.Kind = Put
	strike, err = StrikeForDelta(put, -0.4)
	require.NoError(t, err)
	put.Strike = strike
	assert.InDelta(t, -0.4, Evaluate(put).Delta, 1e-9)

	_, err = StrikeForDelta(refSpec, 1.5)
	assert.Error(t, err)
	_, err = StrikeForDelta(put, 0.4)
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("call")
	require.NoError(t, err)
	assert.Equal(t, Call, kind)

	kind, err = ParseKind("PUT")
	require.NoError(t, err)
	assert.Equal(t, Put, kind)

	_, err = ParseKind("straddle")
	assert.Error(t, err)
}

// A nonsensical spot propagates as NaN instead of being masked.
func TestNegativeSpotPropagatesNaN(t *testing.T) {
	g := Evaluate(OptionSpec{Spot: -100, Strike: 100, Expiry: 0.5, Sigma: 0.2, Rate: 0.03, Kind: Call})
	assert.True(t, math.IsNaN(g.Price))
	assert.True(t, math.IsNaN(g.Delta))
}
