package relations

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/compflow/types"
	"github.com/notargets/compflow/utils"
)

const gamma = 1.4

func TestIsentropic(t *testing.T) {
	fs := Isentropic(2, gamma)
	assert.Equal(t, []types.Quantity{types.Q_M, types.Q_TT0, types.Q_PP0, types.Q_RhoRho0, types.Q_AAstar},
		fs.Quantities())
	assert.InDelta(t, 0.5556, fs.MustGet(types.Q_TT0), 1.e-4)
	assert.InDelta(t, 0.1278, fs.MustGet(types.Q_PP0), 1.e-4)
	assert.InDelta(t, 0.2300, fs.MustGet(types.Q_RhoRho0), 1.e-4)
	assert.InDelta(t, 1.6875, fs.MustGet(types.Q_AAstar), 1.e-10)

	// Stagnation point
	fs = Isentropic(0, gamma)
	assert.Equal(t, 1., fs.MustGet(types.Q_TT0))
	assert.Equal(t, 1., fs.MustGet(types.Q_PP0))
	assert.True(t, math.IsInf(fs.MustGet(types.Q_AAstar), 1))

	// Throat
	assert.InDelta(t, 1., AAstar(1, gamma), 1.e-14)
	for _, dM := range []float64{1.e-2, 1.e-4, 1.e-6} {
		assert.InDelta(t, 1., AAstar(1-dM, gamma), 2*dM)
		assert.InDelta(t, 1., AAstar(1+dM, gamma), 2*dM)
		assert.Greater(t, AAstar(1-dM, gamma), 1.)
	}
	// Ratios bounded by one for all Mach numbers
	for M := 0.; M < 20; M += 0.25 {
		assert.True(t, TT0(M, gamma) > 0 && TT0(M, gamma) <= 1)
		assert.True(t, PP0(M, gamma) > 0 && PP0(M, gamma) <= 1)
		assert.GreaterOrEqual(t, AAstar(M, gamma), 1.)
	}
}

func TestNormalShock(t *testing.T) {
	fs := NormalShock(2, gamma)
	assert.InDelta(t, 0.5774, fs.MustGet(types.Q_M2), 1.e-4)
	assert.InDelta(t, 4.5, fs.MustGet(types.Q_P2P1), 1.e-12)
	assert.InDelta(t, 1.6875, fs.MustGet(types.Q_T2T1), 1.e-12)
	assert.InDelta(t, 2.6667, fs.MustGet(types.Q_Rho2Rho1), 1.e-4)
	assert.InDelta(t, 0.7209, fs.MustGet(types.Q_P02P01), 1.e-4)

	// Sonic upstream flow is an infinitely weak shock
	fs = NormalShock(1, gamma)
	for _, p := range fs.Props {
		assert.InDelta(t, 1., p.Value, 1.e-14, p.Quantity.String())
	}
	for M1 := 1.05; M1 < 50; M1 *= 1.3 {
		fs = NormalShock(M1, gamma)
		assert.Less(t, fs.MustGet(types.Q_M2), M1)
		assert.Less(t, fs.MustGet(types.Q_M2), 1.)
		assert.Greater(t, fs.MustGet(types.Q_M2), ShockM2Limit(gamma))
		assert.LessOrEqual(t, fs.MustGet(types.Q_P02P01), 1.)
		assert.Less(t, fs.MustGet(types.Q_Rho2Rho1), ShockRho2Rho1Limit(gamma))
	}
}

func TestObliqueShock(t *testing.T) {
	{ // Weak shock at M1 = 2.5, theta = 10 deg sits at beta = 31.85 deg
		fs, err := ObliqueShock(2.5, utils.Rad(31.850592), gamma)
		require.NoError(t, err)
		assert.InDelta(t, 10., fs.MustGet(types.Q_ThetaDeg), 1.e-4)
		assert.Less(t, fs.MustGet(types.Q_M2), 2.5)
		assert.InDelta(t, 2.0859, fs.MustGet(types.Q_M2), 1.e-3)
		assert.InDelta(t, 1.8639, fs.MustGet(types.Q_P2P1), 1.e-3)
		assert.InDelta(t, 0.7764, fs.MustGet(types.Q_Mn2), 1.e-3)
		assert.Equal(t, []types.Quantity{
			types.Q_M1, types.Q_M2, types.Q_P2P1, types.Q_T2T1, types.Q_Rho2Rho1, types.Q_P02P01,
			types.Q_BetaDeg, types.Q_ThetaDeg, types.Q_Mn1, types.Q_Mn2,
		}, fs.Quantities())
	}
	{ // Mach wave: no change across the wave
		M1 := 3.
		fs, err := ObliqueShock(M1, MachAngle(M1), gamma)
		require.NoError(t, err)
		assert.InDelta(t, 0., fs.MustGet(types.Q_ThetaDeg), 1.e-12)
		assert.InDelta(t, M1, fs.MustGet(types.Q_M2), 1.e-10)
		assert.InDelta(t, 1., fs.MustGet(types.Q_P2P1), 1.e-12)
		assert.InDelta(t, utils.Deg(math.Asin(1/M1)), fs.MustGet(types.Q_BetaDeg), 1.e-12)
	}
	{ // Ninety degree wave angle is the normal shock
		fs, err := ObliqueShock(2, 0.5*math.Pi, gamma)
		require.NoError(t, err)
		ns := NormalShock(2, gamma)
		for _, q := range ns.Quantities() {
			assert.InDelta(t, ns.MustGet(q), fs.MustGet(q), 1.e-10, q.String())
		}
		assert.InDelta(t, 0., fs.MustGet(types.Q_ThetaDeg), 1.e-10)
	}
	{ // Expansive wave angles are rejected
		_, err := ObliqueShock(2.5, utils.Rad(20), gamma)
		assert.True(t, errors.Is(err, types.ErrInvalidInput))
		_, err = ObliqueShock(2.5, utils.Rad(91), gamma)
		assert.True(t, errors.Is(err, types.ErrInvalidInput))
		_, err = ObliqueShock(0.8, utils.Rad(60), gamma)
		assert.True(t, errors.Is(err, types.ErrInvalidInput))
	}
	{ // Maximum deflection, published values for gamma = 1.4
		for _, c := range []struct{ M1, thetaMax, betaMax float64 }{
			{1.5, 12.1127, 66.589},
			{2, 22.9735, 64.669},
			{2.5, 29.7974, 64.782},
			{3, 34.0734, 65.241},
		} {
			thetaMax, betaMax := MaxDeflection(c.M1, gamma)
			assert.InDelta(t, c.thetaMax, utils.Deg(thetaMax), 1.e-3)
			assert.InDelta(t, c.betaMax, utils.Deg(betaMax), 1.e-2)
		}
		thetaMax, betaMax := MaxDeflection(1, gamma)
		assert.Equal(t, 0., thetaMax)
		assert.Equal(t, 0.5*math.Pi, betaMax)
	}
}

func TestFanno(t *testing.T) {
	fs := Fanno(3, gamma)
	assert.InDelta(t, 0.5222, fs.MustGet(types.Q_FrictionLength), 1.e-4)
	assert.InDelta(t, 0.4286, fs.MustGet(types.Q_TTstar), 1.e-4)
	assert.InDelta(t, 0.2182, fs.MustGet(types.Q_PPstar), 1.e-4)
	assert.InDelta(t, 4.2346, fs.MustGet(types.Q_P0P0star), 1.e-4)
	assert.InDelta(t, 0.5092, fs.MustGet(types.Q_RhoRhostar), 1.e-4)

	fs = Fanno(0.5, gamma)
	assert.InDelta(t, 1.0691, fs.MustGet(types.Q_FrictionLength), 1.e-4)
	assert.InDelta(t, 1.1429, fs.MustGet(types.Q_TTstar), 1.e-4)

	// Choking point
	for _, p := range Fanno(1, gamma).Props {
		if p.Quantity == types.Q_FrictionLength {
			assert.InDelta(t, 0., p.Value, 1.e-14)
		} else {
			assert.InDelta(t, 1., p.Value, 1.e-14, p.Quantity.String())
		}
	}
	for _, dM := range []float64{1.e-2, 1.e-3, 1.e-4} {
		assert.InDelta(t, 0., FannoFriction(1-dM, gamma), dM)
		assert.InDelta(t, 0., FannoFriction(1+dM, gamma), dM)
	}
	assert.InDelta(t, 0.8215, FannoFrictionLimit(gamma), 1.e-4)
	assert.Less(t, FannoFriction(1.e3, gamma), FannoFrictionLimit(gamma))
	assert.True(t, math.IsInf(FannoFriction(0, gamma), 1))
}

func TestRayleigh(t *testing.T) {
	fs := Rayleigh(2, gamma)
	assert.InDelta(t, 0.5289, fs.MustGet(types.Q_TTstar), 1.e-4)
	assert.InDelta(t, 0.3636, fs.MustGet(types.Q_PPstar), 1.e-4)
	assert.InDelta(t, 1.5031, fs.MustGet(types.Q_P0P0star), 1.e-4)
	assert.InDelta(t, 0.6875, fs.MustGet(types.Q_RhoRhostar), 1.e-4)
	assert.InDelta(t, 0.7934, fs.MustGet(types.Q_TtTtstar), 1.e-4)

	fs = Rayleigh(0.5, gamma)
	assert.InDelta(t, 0.7901, fs.MustGet(types.Q_TTstar), 1.e-4)
	assert.InDelta(t, 0.6914, fs.MustGet(types.Q_TtTtstar), 1.e-4)
	assert.InDelta(t, 1.1141, fs.MustGet(types.Q_P0P0star), 1.e-4)

	for _, p := range Rayleigh(1, gamma).Props {
		assert.InDelta(t, 1., p.Value, 1.e-14, p.Quantity.String())
	}
	Mpeak, Tpeak := RayleighTTstarPeak(gamma)
	assert.InDelta(t, Tpeak, RayleighTTstar(Mpeak, gamma), 1.e-14)
	assert.Less(t, RayleighTTstar(Mpeak-0.01, gamma), Tpeak)
	assert.Less(t, RayleighTTstar(Mpeak+0.01, gamma), Tpeak)
	assert.InDelta(t, 0.4898, RayleighTtTtstarLimit(gamma), 1.e-4)
	assert.InDelta(t, 1.2679, RayleighP0P0starLimit(gamma), 1.e-4)
	assert.InDelta(t, RayleighP0P0starLimit(gamma), RayleighP0P0star(0, gamma), 1.e-14)

	// Static temperature decays as 1/M^2 without overflowing at large M
	r := (1. + gamma) / gamma
	assert.InEpsilon(t, r*r*1.e-200, RayleighTTstar(1.e100, gamma), 1.e-12)
	assert.Equal(t, 0., RayleighTTstar(1.e200, gamma))
}

func TestForward(t *testing.T) {
	for _, ft := range []types.FlowType{types.FT_Isentropic, types.FT_NormalShock, types.FT_Fanno, types.FT_Rayleigh} {
		fs, err := Forward(ft, 2, gamma, 0)
		require.NoError(t, err)
		assert.Equal(t, ft, fs.Type)
		assert.Equal(t, 2., fs.MustGet(DefiningQuantity(ft)))
	}
	fs, err := ForwardDeg(types.FT_ObliqueShock, 45, gamma, 2)
	require.NoError(t, err)
	assert.InDelta(t, 45., fs.MustGet(types.Q_BetaDeg), 1.e-12)
	assert.Equal(t, types.Q_BetaDeg, DefiningQuantity(types.FT_ObliqueShock))

	_, err = Forward(types.FT_None, 2, gamma, 0)
	assert.True(t, errors.Is(err, types.ErrInvalidInput))
}
