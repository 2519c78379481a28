package types

import (
	"fmt"
	"strings"
)

/*
Quantity labels every property a FlowState can carry. The same label is reused across flow
types when the textbook symbol is the same (T/T* is a Fanno and a Rayleigh property), the
meaning comes from the FlowType it travels with.
*/
type Quantity uint8

const (
	Q_None Quantity = iota
	Q_M
	Q_M1
	Q_M2
	Q_TT0      // T/T0
	Q_PP0      // P/P0
	Q_RhoRho0  // rho/rho0
	Q_AAstar   // A/A*
	Q_P2P1     // P2/P1
	Q_T2T1     // T2/T1
	Q_Rho2Rho1 // rho2/rho1
	Q_P02P01   // P02/P01
	Q_BetaDeg  // wave angle
	Q_ThetaDeg // deflection angle
	Q_Mn1      // upstream normal Mach component
	Q_Mn2      // downstream normal Mach component
	Q_TTstar   // T/T*
	Q_PPstar   // P/P*
	Q_P0P0star // P0/P0*
	Q_RhoRhostar
	Q_FrictionLength // 4fLmax/D
	Q_TtTtstar       // Tt/Tt*
)

var quantityLabels = []string{
	"",
	"M",
	"M1",
	"M2",
	"T/T0",
	"P/P0",
	"rho/rho0",
	"A/A*",
	"P2/P1",
	"T2/T1",
	"rho2/rho1",
	"P02/P01",
	"beta_deg",
	"theta_deg",
	"Mn1",
	"Mn2",
	"T/T*",
	"P/P*",
	"P0/P0*",
	"rho/rho*",
	"4fLmax/D",
	"Tt/Tt*",
}

func (q Quantity) String() string {
	if int(q) >= len(quantityLabels) {
		return fmt.Sprintf("Quantity(%d)", q)
	}
	return quantityLabels[q]
}

// QuantityNameMap is keyed on the lower case label, aliases from older front ends included
var QuantityNameMap = map[string]Quantity{
	"m":         Q_M,
	"mach":      Q_M,
	"m1":        Q_M1,
	"m2":        Q_M2,
	"t/t0":      Q_TT0,
	"t_t0":      Q_TT0,
	"p/p0":      Q_PP0,
	"p_p0":      Q_PP0,
	"rho/rho0":  Q_RhoRho0,
	"rho_rho0":  Q_RhoRho0,
	"a/a*":      Q_AAstar,
	"a/astar":   Q_AAstar,
	"a_astar":   Q_AAstar,
	"p2/p1":     Q_P2P1,
	"t2/t1":     Q_T2T1,
	"rho2/rho1": Q_Rho2Rho1,
	"p02/p01":   Q_P02P01,
	"pt2/pt1":   Q_P02P01,
	"beta_deg":  Q_BetaDeg,
	"beta":      Q_BetaDeg,
	"theta_deg": Q_ThetaDeg,
	"theta":     Q_ThetaDeg,
	"delta_deg": Q_ThetaDeg,
	"delta":     Q_ThetaDeg,
	"mn1":       Q_Mn1,
	"mn2":       Q_Mn2,
	"t/t*":      Q_TTstar,
	"t/tstar":   Q_TTstar,
	"p/p*":      Q_PPstar,
	"p/pstar":   Q_PPstar,
	"p0/p0*":    Q_P0P0star,
	"pt/pt*":    Q_P0P0star,
	"p0/p0star": Q_P0P0star,
	"rho/rho*":  Q_RhoRhostar,
	"4flmax/d":  Q_FrictionLength,
	"4fl/d":     Q_FrictionLength,
	"4fl*/d":    Q_FrictionLength,
	"tt/tt*":    Q_TtTtstar,
	"t0/t0*":    Q_TtTtstar,
}

func ParseQuantity(name string) (q Quantity, err error) {
	var (
		key = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
		ok  bool
	)
	if q, ok = QuantityNameMap[key]; !ok {
		err = NewFlowError(ErrInvalidInput, "unknown quantity %q", name)
	}
	return
}

func (q Quantity) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

func (q *Quantity) UnmarshalText(text []byte) (err error) {
	*q, err = ParseQuantity(string(text))
	return
}
