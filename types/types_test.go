package types

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes(t *testing.T) {
	{ // Flow type names
		for _, name := range []string{"isentropic", "normal-shock", "oblique-shock", "fanno", "rayleigh"} {
			ft, err := ParseFlowType(name)
			require.NoError(t, err)
			assert.Equal(t, name, ft.String())
		}
		ft, err := ParseFlowType(" Normal_Shock ")
		assert.NoError(t, err)
		assert.Equal(t, FT_NormalShock, ft)
		_, err = ParseFlowType("prandtl-meyer")
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
	{ // Quantity labels round trip through the alias map
		for q := Q_M; q <= Q_TtTtstar; q++ {
			qq, err := ParseQuantity(q.String())
			require.NoError(t, err, q.String())
			assert.Equal(t, q, qq)
		}
		for alias, want := range map[string]Quantity{
			"A/Astar":   Q_AAstar,
			"A_Astar":   Q_AAstar,
			"P_P0":      Q_PP0,
			"pt/pt*":    Q_P0P0star,
			"4fL/D":     Q_FrictionLength,
			"delta_deg": Q_ThetaDeg,
			"t / t0":    Q_TT0,
		} {
			q, err := ParseQuantity(alias)
			assert.NoError(t, err)
			assert.Equal(t, want, q, alias)
		}
		_, err := ParseQuantity("h/h0")
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
	{ // Branch names and the oblique shock mapping
		b, err := ParseBranch("Supersonic")
		assert.NoError(t, err)
		assert.Equal(t, B_Supersonic, b)
		assert.Equal(t, B_Weak, b.ForFlow(FT_ObliqueShock))
		assert.Equal(t, B_Strong, B_Subsonic.ForFlow(FT_ObliqueShock))
		assert.Equal(t, B_Supersonic, b.ForFlow(FT_Fanno))
		b, err = ParseBranch("")
		assert.NoError(t, err)
		assert.Equal(t, B_None, b)
		_, err = ParseBranch("transonic")
		assert.Error(t, err)
	}
}

func TestFlowStateJSON(t *testing.T) {
	fs := NewFlowState(FT_Isentropic, 5)
	fs.Set(Q_M, 0)
	fs.Set(Q_TT0, 1)
	fs.Set(Q_PP0, 1)
	fs.Set(Q_RhoRho0, 1)
	fs.Set(Q_AAstar, math.Inf(1))
	data, err := json.Marshal(fs)
	require.NoError(t, err)
	assert.Equal(t, `{"M":0,"T/T0":1,"P/P0":1,"rho/rho0":1,"A/A*":null}`, string(data))

	fs.Set(Q_M, 0.5)
	assert.Len(t, fs.Props, 5)
	assert.Equal(t, 0.5, fs.MustGet(Q_M))
	_, ok := fs.Get(Q_M2)
	assert.False(t, ok)
	assert.Panics(t, func() { fs.MustGet(Q_M2) })
	assert.Equal(t, []Quantity{Q_M, Q_TT0, Q_PP0, Q_RhoRho0, Q_AAstar}, fs.Quantities())
}

func TestFlowError(t *testing.T) {
	err := error(NewFlowError(ErrNoSolution, "theta %.1f exceeds %.1f", 31., 29.8))
	assert.True(t, errors.Is(err, ErrNoSolution))
	assert.False(t, errors.Is(err, ErrInvalidInput))
	var fe *FlowError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "theta 31.0 exceeds 29.8", fe.Detail)
	assert.Equal(t, "no solution: theta 31.0 exceeds 29.8", err.Error())
}
