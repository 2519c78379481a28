package relations

import (
	"math"

	"github.com/notargets/compflow/types"
	"github.com/notargets/compflow/utils"
)

const (
	angleTol        = 1.e-12 // Radians of slack allowed at the ends of the wave angle range
	goldenSearchTol = 1.e-11
)

// MachAngle is the wave angle of an infinitely weak disturbance, asin(1/M1)
func MachAngle(M1 float64) float64 {
	return math.Asin(1. / M1)
}

/*
Theta is the flow deflection produced by a shock at wave angle beta, from the theta-beta-M relation
	tan(theta) = 2 cot(beta) (M1^2 sin^2(beta) - 1) / (M1^2 (gamma + cos(2 beta)) + 2)
All angles in radians.
*/
func Theta(M1, beta, gamma float64) float64 {
	var (
		sb      = math.Sin(beta)
		M1sq    = M1 * M1
		num     = 2. * (M1sq*sb*sb - 1.) / math.Tan(beta)
		denom   = M1sq*(gamma+math.Cos(2.*beta)) + 2.
		tanThta = num / denom
	)
	return math.Atan(tanThta)
}

// MaxDeflection returns the largest attached shock deflection for M1, with the wave angle producing it
func MaxDeflection(M1, gamma float64) (thetaMax, betaMax float64) {
	if M1 <= 1 {
		return 0, 0.5 * math.Pi
	}
	betaMax, thetaMax = utils.GoldenSectionMax(func(beta float64) float64 {
		return Theta(M1, beta, gamma)
	}, MachAngle(M1), 0.5*math.Pi, goldenSearchTol)
	return
}

/*
ObliqueShock evaluates the shock at wave angle beta (radians) through the normal component Mn1 = M1 sin(beta).
Beta must lie in [asin(1/M1), 90deg], the range of compressive shocks with theta >= 0.
*/
func ObliqueShock(M1, beta, gamma float64) (fs types.FlowState, err error) {
	if M1 < 1 {
		err = types.NewFlowError(types.ErrInvalidInput, "oblique shock requires M1 >= 1, have %g", M1)
		return
	}
	var (
		mu = MachAngle(M1)
	)
	if beta < mu-angleTol || beta > 0.5*math.Pi+angleTol {
		err = types.NewFlowError(types.ErrInvalidInput,
			"wave angle %.6g deg outside [%.6g, 90] deg for M1 = %g, the shock would not be compressive",
			utils.Deg(beta), utils.Deg(mu), M1)
		return
	}
	beta = math.Max(mu, math.Min(beta, 0.5*math.Pi))
	var (
		theta = math.Max(0, Theta(M1, beta, gamma))
		Mn1   = math.Max(1, M1*math.Sin(beta))
		Mn2   = ShockM2(Mn1, gamma)
		M2    = Mn2 / math.Sin(beta-theta)
	)
	fs = types.NewFlowState(types.FT_ObliqueShock, 10)
	setShockJump(&fs, M1, M2, Mn1, gamma)
	fs.Set(types.Q_BetaDeg, utils.Deg(beta))
	fs.Set(types.Q_ThetaDeg, utils.Deg(theta))
	fs.Set(types.Q_Mn1, Mn1)
	fs.Set(types.Q_Mn2, Mn2)
	return
}
