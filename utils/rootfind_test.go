package utils

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvert(t *testing.T) {
	opts := DefaultInvertOptions()
	{ // Monotonic increasing and decreasing functions
		x, err := Invert(func(x float64) float64 { return x * x * x }, 8, 0, 10, opts)
		require.NoError(t, err)
		assert.InDelta(t, 2., x, 1.e-10)

		x, err = Invert(func(x float64) float64 { return math.Exp(-x) }, 0.25, 0, 20, opts)
		require.NoError(t, err)
		assert.InDelta(t, math.Log(4), x, 1.e-10)
	}
	{ // A function that is infinite at the lower end of the bracket, like A/A* at M=0
		f := func(x float64) float64 { return 1 / x }
		x, err := Invert(f, 1.e4, 0, 1, opts)
		require.NoError(t, err)
		assert.InDelta(t, 1.e-4, x, 1.e-14)
	}
	{ // Tiny targets are resolved relative to their size, not stopped at a bracket end within 1e-12
		x, err := Invert(func(x float64) float64 { return math.Exp(-x) }, 1.e-200, 0, 1000, opts)
		require.NoError(t, err)
		assert.InEpsilon(t, 200*math.Ln10, x, 1.e-11)

		f := func(x float64) float64 { return math.Pow(x, -7) }
		x, err = Invert(f, math.Pow(300, -7), 160, 640, opts)
		require.NoError(t, err)
		assert.InEpsilon(t, 300., x, 1.e-11)
	}
	{ // Root on the bracket end
		x, err := Invert(func(x float64) float64 { return x }, 1, 1, 3, opts)
		require.NoError(t, err)
		assert.Equal(t, 1., x)
	}
	{ // Target outside the bracket
		_, err := Invert(func(x float64) float64 { return x }, 5, 1, 3, opts)
		assert.True(t, errors.Is(err, ErrNotBracketed))
	}
	{ // Iteration budget too small to converge
		o := opts
		o.MaxIterations = 3
		o.MaxNewton = 0
		_, err := Invert(func(x float64) float64 { return x }, math.Pi, 0, 10, o)
		assert.True(t, errors.Is(err, ErrNoConvergence))
	}
	{ // Flat at the root, converges through the bracket width
		x, err := Invert(func(x float64) float64 { return (x - 1) * (x - 1) * (x - 1) }, 0, 0, 3, opts)
		require.NoError(t, err)
		assert.InDelta(t, 1., x, 2.e-4)
	}
}

func TestGoldenSectionMax(t *testing.T) {
	x, fx := GoldenSectionMax(func(x float64) float64 { return math.Sin(x) }, 0, math.Pi, 1.e-10)
	assert.InDelta(t, math.Pi/2, x, 1.e-6)
	assert.InDelta(t, 1., fx, 1.e-12)

	x, fx = GoldenSectionMax(func(x float64) float64 { return -(x - 0.3) * (x - 0.3) }, 0, 1, 1.e-10)
	assert.InDelta(t, 0.3, x, 1.e-6)
	assert.InDelta(t, 0., fx, 1.e-12)

	// Degenerate interval
	x, _ = GoldenSectionMax(math.Sin, 1, 1, 1.e-10)
	assert.Equal(t, 1., x)
}

func TestMath(t *testing.T) {
	assert.InDelta(t, 90., Deg(math.Pi/2), 1.e-12)
	assert.InDelta(t, math.Pi/6, Rad(30), 1.e-15)
}
