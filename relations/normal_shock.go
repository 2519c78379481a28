package relations

import (
	"math"

	"github.com/notargets/compflow/types"
)

// Rankine-Hugoniot jump relations for a calorically perfect gas, valid for M1 >= 1

func ShockM2(M1, gamma float64) float64 {
	var (
		M1sq = M1 * M1
		GM1  = gamma - 1.
	)
	return math.Sqrt((1. + 0.5*GM1*M1sq) / (gamma*M1sq - 0.5*GM1))
}

func ShockP2P1(M1, gamma float64) float64 {
	return 1. + 2.*gamma/(gamma+1.)*(M1*M1-1.)
}

func ShockRho2Rho1(M1, gamma float64) float64 {
	M1sq := M1 * M1
	return (gamma + 1.) * M1sq / ((gamma-1.)*M1sq + 2.)
}

func ShockT2T1(M1, gamma float64) float64 {
	return ShockP2P1(M1, gamma) / ShockRho2Rho1(M1, gamma)
}

// ShockP02P01 is the stagnation pressure ratio, the entropy rise across the shock
func ShockP02P01(M1, gamma float64) float64 {
	var (
		GM1 = gamma - 1.
	)
	return math.Pow(ShockRho2Rho1(M1, gamma), gamma/GM1) * math.Pow(1./ShockP2P1(M1, gamma), 1./GM1)
}

// ShockM2Limit is the downstream Mach number of an infinitely strong shock
func ShockM2Limit(gamma float64) float64 {
	return math.Sqrt((gamma - 1.) / (2. * gamma))
}

// ShockRho2Rho1Limit is the density ratio of an infinitely strong shock
func ShockRho2Rho1Limit(gamma float64) float64 {
	return (gamma + 1.) / (gamma - 1.)
}

func NormalShock(M1, gamma float64) (fs types.FlowState) {
	fs = types.NewFlowState(types.FT_NormalShock, 6)
	setShockJump(&fs, M1, ShockM2(M1, gamma), M1, gamma)
	return
}

// setShockJump fills the normal shock fields, the jump ratios taken at the normal Mach component Mn1
func setShockJump(fs *types.FlowState, M1, M2, Mn1, gamma float64) {
	fs.Set(types.Q_M1, M1)
	fs.Set(types.Q_M2, M2)
	fs.Set(types.Q_P2P1, ShockP2P1(Mn1, gamma))
	fs.Set(types.Q_T2T1, ShockT2T1(Mn1, gamma))
	fs.Set(types.Q_Rho2Rho1, ShockRho2Rho1(Mn1, gamma))
	fs.Set(types.Q_P02P01, ShockP02P01(Mn1, gamma))
}
