package flow

import (
	"math"

	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
	"github.com/notargets/compflow/utils"
)

const deflectionTol = 1.e-9 // degrees

// Validate rejects a request that has no physical meaning before any search is attempted
func Validate(req FlowRequest) (err error) {
	if math.IsNaN(req.Gamma) || math.IsInf(req.Gamma, 0) || req.Gamma <= 1 {
		return types.NewFlowError(types.ErrInvalidInput, "gamma must be a finite number greater than 1, have %g", req.Gamma)
	}
	if _, ok := types.FlowTypeNameMap[req.FlowType.String()]; !ok || req.FlowType == types.FT_None {
		return types.NewFlowError(types.ErrInvalidInput, "unknown flow type %d", req.FlowType)
	}
	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		return types.NewFlowError(types.ErrInvalidInput, "value of %s must be finite, have %g", req.Known, req.Value)
	}
	if err = validateBranch(req); err != nil {
		return
	}
	ft := req.FlowType
	if ft == types.FT_ObliqueShock {
		return validateOblique(req)
	}
	if req.Known == relations.DefiningQuantity(ft) {
		lowest := 0.
		if ft == types.FT_NormalShock {
			lowest = 1.
		}
		if req.Value < lowest {
			return types.NewFlowError(types.ErrInvalidInput, "%s must be at least %g for %s, have %g",
				req.Known, lowest, ft, req.Value)
		}
		return
	}
	builder, ok := LookupInversion(ft, req.Known)
	if !ok {
		return types.NewFlowError(types.ErrInvalidInput, "%s is not a known quantity for %s, use one of %v",
			req.Known, ft, InvertibleQuantities(ft))
	}
	inv := builder(req.Gamma, req.M1)
	if !inv.Contains(req.Value) {
		vMin, vMax := inv.Range()
		return types.NewFlowError(types.ErrInvalidInput, "%s = %g is outside the physical range [%g, %g] for %s",
			req.Known, req.Value, vMin, vMax, ft)
	}
	return
}

func validateBranch(req FlowRequest) error {
	b := req.Branch.ForFlow(req.FlowType)
	if b == types.B_None {
		return nil
	}
	oblique := req.FlowType == types.FT_ObliqueShock
	if oblique != (b == types.B_Weak || b == types.B_Strong) {
		return types.NewFlowError(types.ErrInvalidInput, "branch %s does not apply to %s", req.Branch, req.FlowType)
	}
	return nil
}

func validateOblique(req FlowRequest) error {
	M1 := req.M1
	if math.IsNaN(M1) || math.IsInf(M1, 0) || M1 < 1 {
		return types.NewFlowError(types.ErrInvalidInput, "oblique shock needs a finite upstream Mach number M1 >= 1, have %g", M1)
	}
	switch req.Known {
	case types.Q_BetaDeg:
		mu := utils.Deg(relations.MachAngle(M1))
		if req.Value < mu-deflectionTol || req.Value > 90+deflectionTol {
			return types.NewFlowError(types.ErrInvalidInput, "wave angle %g deg is outside [%g, 90] for M1 = %g",
				req.Value, mu, M1)
		}
	case types.Q_ThetaDeg:
		if req.Value < 0 {
			return types.NewFlowError(types.ErrInvalidInput, "deflection angle must not be negative, have %g deg", req.Value)
		}
		thetaMax, _ := relations.MaxDeflection(M1, req.Gamma)
		if req.Value > utils.Deg(thetaMax)+deflectionTol {
			return types.NewFlowError(types.ErrNoSolution, "deflection %g deg exceeds the maximum %g deg for M1 = %g, the shock detaches",
				req.Value, utils.Deg(thetaMax), M1)
		}
	default:
		return types.NewFlowError(types.ErrInvalidInput, "%s is not a known quantity for %s, use one of %v",
			req.Known, req.FlowType, InvertibleQuantities(req.FlowType))
	}
	return nil
}
