package relations

import (
	"math"

	"github.com/notargets/compflow/types"
)

// Adiabatic constant area flow with wall friction, ratios referenced to the choked (M=1) state

func FannoTTstar(M, gamma float64) float64 {
	return 1. / sonicFactor(M, gamma)
}

func FannoPPstar(M, gamma float64) float64 {
	return 1. / (M * math.Sqrt(sonicFactor(M, gamma)))
}

func FannoRhoRhostar(M, gamma float64) float64 {
	return math.Sqrt(sonicFactor(M, gamma)) / M
}

// FannoP0P0star has the same form as the isentropic area ratio
func FannoP0P0star(M, gamma float64) float64 {
	return AAstar(M, gamma)
}

/*
FannoFriction is the friction length to choking, 4fLmax/D:
	(1 - M^2)/(gamma M^2) + (gamma+1)/(2 gamma) ln( M^2 / ((2/(gamma+1))(1 + (gamma-1)/2 M^2)) )
*/
func FannoFriction(M, gamma float64) float64 {
	if M == 0 {
		return math.Inf(1)
	}
	var (
		Msq = M * M
	)
	return (1.-Msq)/(gamma*Msq) + 0.5*(gamma+1.)/gamma*math.Log(Msq/sonicFactor(M, gamma))
}

// FannoFrictionLimit is 4fLmax/D as M -> infinity, the longest duct a supersonic inflow can choke in
func FannoFrictionLimit(gamma float64) float64 {
	return -1./gamma + 0.5*(gamma+1.)/gamma*math.Log((gamma+1.)/(gamma-1.))
}

func Fanno(M, gamma float64) (fs types.FlowState) {
	fs = types.NewFlowState(types.FT_Fanno, 6)
	fs.Set(types.Q_M, M)
	fs.Set(types.Q_TTstar, FannoTTstar(M, gamma))
	fs.Set(types.Q_PPstar, FannoPPstar(M, gamma))
	fs.Set(types.Q_P0P0star, FannoP0P0star(M, gamma))
	fs.Set(types.Q_RhoRhostar, FannoRhoRhostar(M, gamma))
	fs.Set(types.Q_FrictionLength, FannoFriction(M, gamma))
	return
}
