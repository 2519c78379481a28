package relations

import (
	"math"

	"github.com/notargets/compflow/types"
)

// stagnationFactor is 1 + (gamma-1)/2 M^2, T0/T for isentropic flow
func stagnationFactor(M, gamma float64) float64 {
	return 1. + 0.5*(gamma-1.)*M*M
}

// sonicFactor is the stagnation factor normalized by its sonic value, (2/(gamma+1))(1 + (gamma-1)/2 M^2)
func sonicFactor(M, gamma float64) float64 {
	return 2. / (gamma + 1.) * stagnationFactor(M, gamma)
}

func TT0(M, gamma float64) float64 {
	return 1. / stagnationFactor(M, gamma)
}

func PP0(M, gamma float64) float64 {
	return math.Pow(TT0(M, gamma), gamma/(gamma-1.))
}

func RhoRho0(M, gamma float64) float64 {
	return math.Pow(TT0(M, gamma), 1./(gamma-1.))
}

// AAstar is the quasi one dimensional area ratio, infinite at M=0 and 1 at M=1
func AAstar(M, gamma float64) float64 {
	if M == 0 {
		return math.Inf(1)
	}
	return math.Pow(sonicFactor(M, gamma), 0.5*(gamma+1.)/(gamma-1.)) / M
}

func Isentropic(M, gamma float64) (fs types.FlowState) {
	fs = types.NewFlowState(types.FT_Isentropic, 5)
	fs.Set(types.Q_M, M)
	fs.Set(types.Q_TT0, TT0(M, gamma))
	fs.Set(types.Q_PP0, PP0(M, gamma))
	fs.Set(types.Q_RhoRho0, RhoRho0(M, gamma))
	fs.Set(types.Q_AAstar, AAstar(M, gamma))
	return
}
