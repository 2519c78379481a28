package flow

import (
	"math"

	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
)

const endpointTol = 1.e-9 // Relative slack when comparing a target with a limiting value

/*
Segment is one monotonic piece of an invertible relation. Lo and Hi bound the independent variable,
Mach number or wave angle in radians, and FLo, FHi are the values of the relation there. An infinite Hi
is an open end whose limiting value is never attained.
*/
type Segment struct {
	Branch   types.Branch
	Lo, Hi   float64
	FLo, FHi float64
}

func (s Segment) Range() (vMin, vMax float64) {
	return math.Min(s.FLo, s.FHi), math.Max(s.FLo, s.FHi)
}

// Contains accepts values strictly inside the range, and end values only at a finite end
func (s Segment) Contains(v float64) bool {
	vMin, vMax := s.Range()
	if v > vMin && v < vMax {
		return true
	}
	return (nearly(v, s.FLo) && !math.IsInf(s.Lo, 0)) || (nearly(v, s.FHi) && !math.IsInf(s.Hi, 0))
}

// Clamp pulls a target that sits within tolerance outside the segment range back onto its end value
func (s Segment) Clamp(v float64) float64 {
	vMin, vMax := s.Range()
	switch {
	case v < vMin && nearly(v, vMin):
		return vMin
	case v > vMax && nearly(v, vMax):
		return vMax
	}
	return v
}

func nearly(a, b float64) bool {
	if math.IsInf(b, 0) || math.IsInf(a, 0) {
		return a == b
	}
	return math.Abs(a-b) <= endpointTol*math.Max(1, math.Abs(b))
}

type Inversion struct {
	F        func(x float64) float64
	Segments []Segment
	// ResolveNone picks a branch for targets where the two solutions collapse to a trivial one
	ResolveNone func(target float64) types.Branch
}

type inversionBuilder func(gamma, M1 float64) Inversion

/*
inversionTable holds, per flow type and known quantity, the relation to invert and its monotonic
pieces. Quantities that are monotonic over the whole Mach range have one segment and take no branch.
*/
var inversionTable = map[types.FlowType]map[types.Quantity]inversionBuilder{
	types.FT_Isentropic: {
		types.Q_TT0:     stagnationRatio(relations.TT0),
		types.Q_PP0:     stagnationRatio(relations.PP0),
		types.Q_RhoRho0: stagnationRatio(relations.RhoRho0),
		types.Q_AAstar:  sonicMinimum(relations.AAstar),
	},
	types.FT_NormalShock: {
		types.Q_M2: func(gamma, _ float64) Inversion {
			return shockRatio(relations.ShockM2, gamma, relations.ShockM2Limit(gamma))
		},
		types.Q_P2P1: func(gamma, _ float64) Inversion {
			return shockRatio(relations.ShockP2P1, gamma, math.Inf(1))
		},
		types.Q_T2T1: func(gamma, _ float64) Inversion {
			return shockRatio(relations.ShockT2T1, gamma, math.Inf(1))
		},
		types.Q_Rho2Rho1: func(gamma, _ float64) Inversion {
			return shockRatio(relations.ShockRho2Rho1, gamma, relations.ShockRho2Rho1Limit(gamma))
		},
		types.Q_P02P01: func(gamma, _ float64) Inversion {
			return shockRatio(relations.ShockP02P01, gamma, 0)
		},
	},
	types.FT_ObliqueShock: {
		types.Q_ThetaDeg: deflection,
	},
	types.FT_Fanno: {
		types.Q_TTstar: func(gamma, _ float64) Inversion {
			return wholeRange(relations.FannoTTstar, gamma, 0.5*(gamma+1.), 0)
		},
		types.Q_PPstar: func(gamma, _ float64) Inversion {
			return wholeRange(relations.FannoPPstar, gamma, math.Inf(1), 0)
		},
		types.Q_RhoRhostar: func(gamma, _ float64) Inversion {
			return wholeRange(relations.FannoRhoRhostar, gamma, math.Inf(1), math.Sqrt((gamma-1.)/(gamma+1.)))
		},
		types.Q_P0P0star: sonicMinimum(relations.FannoP0P0star),
		types.Q_FrictionLength: func(gamma, _ float64) Inversion {
			return sonicSplit(relations.FannoFriction, gamma, math.Inf(1), 0, relations.FannoFrictionLimit(gamma))
		},
	},
	types.FT_Rayleigh: {
		types.Q_PPstar: func(gamma, _ float64) Inversion {
			return wholeRange(relations.RayleighPPstar, gamma, 1.+gamma, 0)
		},
		types.Q_RhoRhostar: func(gamma, _ float64) Inversion {
			return wholeRange(relations.RayleighRhoRhostar, gamma, math.Inf(1), gamma/(1.+gamma))
		},
		types.Q_TTstar: rayleighTemperature,
		types.Q_TtTtstar: func(gamma, _ float64) Inversion {
			return sonicSplit(relations.RayleighTtTtstar, gamma, 0, 1, relations.RayleighTtTtstarLimit(gamma))
		},
		types.Q_P0P0star: func(gamma, _ float64) Inversion {
			return sonicSplit(relations.RayleighP0P0star, gamma, relations.RayleighP0P0starLimit(gamma), 1, math.Inf(1))
		},
	},
}

func LookupInversion(ft types.FlowType, known types.Quantity) (builder inversionBuilder, ok bool) {
	var byKnown map[types.Quantity]inversionBuilder
	if byKnown, ok = inversionTable[ft]; !ok {
		return
	}
	builder, ok = byKnown[known]
	return
}

// InvertibleQuantities lists the known quantities of a flow type in canonical order
func InvertibleQuantities(ft types.FlowType) (qs []types.Quantity) {
	qs = append(qs, relations.DefiningQuantity(ft))
	for q := types.Q_M; q <= types.Q_TtTtstar; q++ {
		if _, ok := LookupInversion(ft, q); ok {
			qs = append(qs, q)
		}
	}
	return
}

func wholeRange(f func(M, gamma float64) float64, gamma, fAtZero, fAtInf float64) Inversion {
	return Inversion{
		F: func(M float64) float64 { return f(M, gamma) },
		Segments: []Segment{
			{Branch: types.B_None, Lo: 0, Hi: math.Inf(1), FLo: fAtZero, FHi: fAtInf},
		},
	}
}

func stagnationRatio(f func(M, gamma float64) float64) inversionBuilder {
	return func(gamma, _ float64) Inversion {
		return wholeRange(f, gamma, 1, 0)
	}
}

func sonicSplit(f func(M, gamma float64) float64, gamma, fAtZero, fSonic, fAtInf float64) Inversion {
	return Inversion{
		F: func(M float64) float64 { return f(M, gamma) },
		Segments: []Segment{
			{Branch: types.B_Subsonic, Lo: 0, Hi: 1, FLo: fAtZero, FHi: fSonic},
			{Branch: types.B_Supersonic, Lo: 1, Hi: math.Inf(1), FLo: fSonic, FHi: fAtInf},
		},
	}
}

// sonicMinimum is a ratio with the A/A* shape, unbounded at both ends with its minimum of one at M=1
func sonicMinimum(f func(M, gamma float64) float64) inversionBuilder {
	return func(gamma, _ float64) Inversion {
		return sonicSplit(f, gamma, math.Inf(1), 1, math.Inf(1))
	}
}

func shockRatio(f func(M1, gamma float64) float64, gamma, fAtInf float64) Inversion {
	return Inversion{
		F: func(M1 float64) float64 { return f(M1, gamma) },
		Segments: []Segment{
			{Branch: types.B_None, Lo: 1, Hi: math.Inf(1), FLo: 1, FHi: fAtInf},
		},
	}
}

/*
rayleighTemperature splits T/T* at M = 1. Below M = 1 the ratio rises to its peak at 1/sqrt(gamma)
and falls back to one, the subsonic branch is the rising part which reaches every subsonic value.
*/
func rayleighTemperature(gamma, _ float64) Inversion {
	Mpeak, Tpeak := relations.RayleighTTstarPeak(gamma)
	return Inversion{
		F: func(M float64) float64 { return relations.RayleighTTstar(M, gamma) },
		Segments: []Segment{
			{Branch: types.B_Subsonic, Lo: 0, Hi: Mpeak, FLo: 0, FHi: Tpeak},
			{Branch: types.B_Supersonic, Lo: 1, Hi: math.Inf(1), FLo: 1, FHi: 0},
		},
	}
}

// deflection inverts theta(beta) for fixed M1, weak and strong solutions meet at the maximum deflection
func deflection(gamma, M1 float64) Inversion {
	var (
		mu                = relations.MachAngle(M1)
		thetaMax, betaMax = relations.MaxDeflection(M1, gamma)
	)
	return Inversion{
		F: func(beta float64) float64 { return relations.Theta(M1, beta, gamma) },
		Segments: []Segment{
			{Branch: types.B_Weak, Lo: mu, Hi: betaMax, FLo: 0, FHi: thetaMax},
			{Branch: types.B_Strong, Lo: betaMax, Hi: 0.5 * math.Pi, FLo: thetaMax, FHi: 0},
		},
		ResolveNone: func(theta float64) types.Branch {
			if nearly(theta, 0) {
				return types.B_Weak // Mach wave
			}
			return types.B_None
		},
	}
}

// Contains reports whether any branch of the relation reaches the value
func (inv Inversion) Contains(v float64) bool {
	for _, s := range inv.Segments {
		if s.Contains(v) {
			return true
		}
	}
	return false
}

func (inv Inversion) Range() (vMin, vMax float64) {
	vMin, vMax = math.Inf(1), math.Inf(-1)
	for _, s := range inv.Segments {
		lo, hi := s.Range()
		vMin, vMax = math.Min(vMin, lo), math.Max(vMax, hi)
	}
	return
}

func (inv Inversion) branched() bool {
	for _, s := range inv.Segments {
		if s.Branch != types.B_None {
			return true
		}
	}
	return false
}

/*
Select picks the segment to search for target. A branch is only consulted when the relation has more
than one segment, and it is only required when the target is reached on two of them at distinct points.
*/
func (inv Inversion) Select(target float64, branch types.Branch) (seg Segment, err error) {
	var candidates []Segment
	for _, s := range inv.Segments {
		if s.Contains(target) {
			candidates = append(candidates, s)
		}
	}
	if !inv.branched() {
		branch = types.B_None
	}
	if len(candidates) == 0 {
		vMin, vMax := inv.Range()
		err = types.NewFlowError(types.ErrNoSolution, "value %g is outside the achievable range [%g, %g]",
			target, vMin, vMax)
		return
	}
	if branch != types.B_None {
		for _, s := range candidates {
			if s.Branch == branch {
				return s, nil
			}
		}
		for _, s := range inv.Segments {
			if s.Branch == branch {
				vMin, vMax := s.Range()
				err = types.NewFlowError(types.ErrNoSolution, "value %g is not reachable on the %s branch, range [%g, %g]",
					target, branch, vMin, vMax)
				return
			}
		}
		err = types.NewFlowError(types.ErrInvalidInput, "branch %s does not apply here", branch)
		return
	}
	switch {
	case len(candidates) == 1:
		return candidates[0], nil
	case candidates[0].Hi == candidates[1].Lo && nearly(target, candidates[0].FHi):
		// Both branches meet at the target, the solution is the shared end point
		return candidates[0], nil
	case inv.ResolveNone != nil:
		if b := inv.ResolveNone(target); b != types.B_None {
			for _, s := range candidates {
				if s.Branch == b {
					return s, nil
				}
			}
		}
	}
	err = types.NewFlowError(types.ErrAmbiguousBranch, "value %g is reached on both the %s and %s branches, a branch is required",
		target, candidates[0].Branch, candidates[1].Branch)
	return
}

/*
Bracket returns a search interval on the segment that holds the target. An open upper end is closed by
growing the interval geometrically until the relation passes the target, which for tiny ratios can take
the Mach number close to the float64 limit.
*/
func (inv Inversion) Bracket(seg Segment, target float64) (lo, hi float64, err error) {
	const (
		startHi = 10.
		growth  = 4.
		maxHi   = math.MaxFloat64 / growth
	)
	lo, hi = seg.Lo, seg.Hi
	if !math.IsInf(hi, 1) {
		return
	}
	if nearly(target, seg.FLo) {
		hi = math.Max(startHi, 2*lo)
		return
	}
	sLo := inv.F(lo) - target
	for hi = math.Max(startHi, 2*lo); hi <= maxHi; hi *= growth {
		sHi := inv.F(hi) - target
		if math.IsNaN(sHi) {
			break
		}
		if (sHi < 0) != (sLo < 0) || sHi == 0 {
			return
		}
		lo, sLo = hi, sHi
	}
	err = types.NewFlowError(types.ErrNoSolution, "value %g is not reached at any representable Mach number, the limit is %g",
		target, seg.FHi)
	return
}
