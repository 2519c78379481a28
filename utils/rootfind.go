package utils

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

var (
	ErrNotBracketed  = errors.New("root is not bracketed")
	ErrNoConvergence = errors.New("root search did not converge")
)

type InvertOptions struct {
	Tol           float64 // Relative to |target| for the residual, to max(1,|x|) for the bracket width
	MaxIterations int
	NewtonWindow  float64 // Newton steps are tried once the bracket is below this fraction of its initial width
	MaxNewton     int
}

func DefaultInvertOptions() InvertOptions {
	return InvertOptions{
		Tol:           1.e-12,
		MaxIterations: 100,
		NewtonWindow:  0.05,
		MaxNewton:     25,
	}
}

/*
Invert finds x in [lo,hi] with f(x) = target, given that f(lo)-target and f(hi)-target differ in sign.

Bisection keeps the bracket, Newton steps with a central difference derivative accelerate it once the
bracket is tight. A Newton iterate outside the current bracket is replaced by the bisection point.
*/
func Invert(f func(x float64) float64, target, lo, hi float64, opts InvertOptions) (x float64, err error) {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultInvertOptions().MaxIterations
	}
	if opts.Tol <= 0 {
		opts.Tol = DefaultInvertOptions().Tol
	}
	var (
		g = func(x float64) float64 {
			return f(x) - target
		}
		resTol      = math.Max(opts.Tol*math.Abs(target), math.SmallestNonzeroFloat64)
		glo, ghi    = g(lo), g(hi)
		width0      = hi - lo
		newtonSteps int
		settings    = &fd.Settings{Formula: fd.Central}
	)
	switch {
	case math.Abs(glo) <= resTol:
		return lo, nil
	case math.Abs(ghi) <= resTol:
		return hi, nil
	case math.IsNaN(glo) || math.IsNaN(ghi) || (glo < 0) == (ghi < 0):
		err = fmt.Errorf("%w: f(%g)-target = %g, f(%g)-target = %g", ErrNotBracketed, lo, glo, hi, ghi)
		return
	}
	x = 0.5 * (lo + hi)
	for iter := 0; iter < opts.MaxIterations; iter++ {
		gx := g(x)
		if math.Abs(gx) <= resTol {
			return
		}
		if (gx < 0) == (glo < 0) {
			lo, glo = x, gx
		} else {
			hi = x
		}
		if hi-lo <= opts.Tol*math.Max(1, math.Abs(x)) {
			x = 0.5 * (lo + hi)
			return
		}
		next := 0.5 * (lo + hi)
		if hi-lo <= opts.NewtonWindow*width0 && newtonSteps < opts.MaxNewton {
			settings.Step = 1.e-7 * math.Max(math.Abs(x), 1.e-3)
			deriv := fd.Derivative(g, x, settings)
			if deriv != 0 && !math.IsNaN(deriv) && !math.IsInf(deriv, 0) {
				if xn := x - gx/deriv; xn > lo && xn < hi {
					next = xn
					newtonSteps++
				}
			}
		}
		x = next
	}
	err = fmt.Errorf("%w after %d iterations, bracket [%g,%g]", ErrNoConvergence, opts.MaxIterations, lo, hi)
	return
}

// GoldenSectionMax locates the maximum of a unimodal f on [lo,hi]
func GoldenSectionMax(f func(x float64) float64, lo, hi, tol float64) (x, fx float64) {
	const (
		invPhi  = 0.6180339887498949
		maxIter = 200
	)
	var (
		a, b   = lo, hi
		c      = b - invPhi*(b-a)
		d      = a + invPhi*(b-a)
		fc, fD = f(c), f(d)
	)
	for iter := 0; b-a > tol && iter < maxIter; iter++ {
		if fc > fD {
			b, d, fD = d, c, fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fD
			d = a + invPhi*(b-a)
			fD = f(d)
		}
	}
	x = 0.5 * (a + b)
	fx = f(x)
	return
}
