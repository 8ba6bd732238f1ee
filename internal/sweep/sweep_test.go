package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactkeval/option-greeks/internal/pricing"
)

var base = pricing.OptionSpec{
	Spot:   100,
	Strike: 100,
	Expiry: 0.5,
	Sigma:  0.2,
	Rate:   0.03,
	Kind:   pricing.Call,
}

func TestLinspace(t *testing.T) {
	xs, err := Linspace(50, 150, 101)
	require.NoError(t, err)

	require.Len(t, xs, 101)
	assert.Equal(t, 50.0, xs[0])
	assert.Equal(t, 150.0, xs[100])
	assert.InDelta(t, 51.0, xs[1], 1e-12)

	_, err = Linspace(0, 1, 1)
	assert.Error(t, err)
}

func TestRunMatchesInputOrderAndLength(t *testing.T) {
	xs, err := Linspace(50, 150, 25)
	require.NoError(t, err)

	pts, err := Run(base, Spot, xs)
	require.NoError(t, err)

	require.Len(t, pts, len(xs))
	for i, pt := range pts {
		assert.Equal(t, xs[i], pt.X)

		spec := base
		spec.Spot = xs[i]
		assert.Equal(t, pricing.Evaluate(spec), pt.Greeks)
	}
}

func TestRunExpiryVariable(t *testing.T) {
	xs := []float64{0, 0.1, 0.5, 1}

	pts, err := Run(base, Expiry, xs)
	require.NoError(t, err)

	require.Len(t, pts, 4)
	for i, pt := range pts {
		spec := base
		spec.Expiry = xs[i]
		assert.Equal(t, pricing.Evaluate(spec), pt.Greeks)
	}
}

// Identical inputs must produce bit-identical output.
func TestRunDeterministic(t *testing.T) {
	xs, err := Linspace(0.01, 1, 50)
	require.NoError(t, err)

	first, err := Run(base, Expiry, xs)
	require.NoError(t, err)
	second, err := Run(base, Expiry, xs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunUnknownVariable(t *testing.T) {
	_, err := Run(base, Variable("sigma"), []float64{1, 2})
	assert.Error(t, err)
}

func TestParseVariable(t *testing.T) {
	v, err := ParseVariable("S")
	require.NoError(t, err)
	assert.Equal(t, Spot, v)

	v, err = ParseVariable("expiry")
	require.NoError(t, err)
	assert.Equal(t, Expiry, v)

	_, err = ParseVariable("K")
	assert.Error(t, err)
}
