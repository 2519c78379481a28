package relations

import (
	"math"

	"github.com/notargets/compflow/types"
)

// Frictionless constant area flow with heat addition, ratios referenced to the thermally choked state

func RayleighPPstar(M, gamma float64) float64 {
	return (1. + gamma) / (1. + gamma*M*M)
}

func RayleighTTstar(M, gamma float64) float64 {
	r := (1. + gamma) * M / (1. + gamma*M*M)
	return r * r
}

func RayleighRhoRhostar(M, gamma float64) float64 {
	return (1. + gamma*M*M) / ((1. + gamma) * M * M)
}

func RayleighTtTtstar(M, gamma float64) float64 {
	d := 1. + gamma*M*M
	return 2. * (1. + gamma) * M * M / (d * d) * stagnationFactor(M, gamma)
}

func RayleighP0P0star(M, gamma float64) float64 {
	return RayleighPPstar(M, gamma) * math.Pow(sonicFactor(M, gamma), gamma/(gamma-1.))
}

// RayleighTTstarPeak is the Mach number 1/sqrt(gamma) where the subsonic static temperature peaks
func RayleighTTstarPeak(gamma float64) (M, TTstar float64) {
	M = 1. / math.Sqrt(gamma)
	TTstar = (1. + gamma) * (1. + gamma) / (4. * gamma)
	return
}

// RayleighTtTtstarLimit is Tt/Tt* as M -> infinity
func RayleighTtTtstarLimit(gamma float64) float64 {
	return (gamma + 1.) * (gamma - 1.) / (gamma * gamma)
}

// RayleighP0P0starLimit is P0/P0* as M -> 0
func RayleighP0P0starLimit(gamma float64) float64 {
	return (1. + gamma) * math.Pow(2./(gamma+1.), gamma/(gamma-1.))
}

func Rayleigh(M, gamma float64) (fs types.FlowState) {
	fs = types.NewFlowState(types.FT_Rayleigh, 6)
	fs.Set(types.Q_M, M)
	fs.Set(types.Q_TTstar, RayleighTTstar(M, gamma))
	fs.Set(types.Q_PPstar, RayleighPPstar(M, gamma))
	fs.Set(types.Q_P0P0star, RayleighP0P0star(M, gamma))
	fs.Set(types.Q_RhoRhostar, RayleighRhoRhostar(M, gamma))
	fs.Set(types.Q_TtTtstar, RayleighTtTtstar(M, gamma))
	return
}
