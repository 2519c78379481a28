/*
Package relations holds the closed form compressible flow relations for a calorically perfect gas.

Every function is pure, the only inputs are the defining variable of the flow (Mach number, or the wave
angle for an oblique shock) and the ratio of specific heats gamma. Range checking of those inputs belongs
to the caller, with the exception of the oblique shock whose wave angle range depends on M1.
*/
package relations

import (
	"github.com/notargets/compflow/types"
	"github.com/notargets/compflow/utils"
)

// DefiningQuantity is the input each flow type is evaluated from without a search
func DefiningQuantity(ft types.FlowType) types.Quantity {
	switch ft {
	case types.FT_NormalShock:
		return types.Q_M1
	case types.FT_ObliqueShock:
		return types.Q_BetaDeg
	}
	return types.Q_M
}

/*
Forward evaluates the full flow state. For an oblique shock x is the wave angle in radians and M1 the
upstream Mach number, for every other flow type x is the (upstream) Mach number and M1 is unused.
*/
func Forward(ft types.FlowType, x, gamma, M1 float64) (fs types.FlowState, err error) {
	switch ft {
	case types.FT_Isentropic:
		fs = Isentropic(x, gamma)
	case types.FT_NormalShock:
		fs = NormalShock(x, gamma)
	case types.FT_ObliqueShock:
		fs, err = ObliqueShock(M1, x, gamma)
	case types.FT_Fanno:
		fs = Fanno(x, gamma)
	case types.FT_Rayleigh:
		fs = Rayleigh(x, gamma)
	default:
		err = types.NewFlowError(types.ErrInvalidInput, "no relations for flow type %s", ft)
	}
	return
}

// ForwardDeg is Forward with the oblique shock wave angle given in degrees
func ForwardDeg(ft types.FlowType, x, gamma, M1 float64) (fs types.FlowState, err error) {
	if ft == types.FT_ObliqueShock {
		x = utils.Rad(x)
	}
	return Forward(ft, x, gamma, M1)
}
