package flow

import (
	"errors"
	"math"

	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
	"github.com/notargets/compflow/utils"
)

type Dispatcher struct {
	Options utils.InvertOptions
}

// NewDispatcher uses the default search settings where tolerance or maxIterations are not positive
func NewDispatcher(tolerance float64, maxIterations int) (d *Dispatcher) {
	d = &Dispatcher{
		Options: utils.DefaultInvertOptions(),
	}
	if tolerance > 0 {
		d.Options.Tol = tolerance
	}
	if maxIterations > 0 {
		d.Options.MaxIterations = maxIterations
	}
	return
}

var defaultDispatcher = NewDispatcher(0, 0)

// Compute evaluates a request with the default search settings
func Compute(req FlowRequest) (types.FlowState, error) {
	return defaultDispatcher.Compute(req)
}

func (d *Dispatcher) Compute(req FlowRequest) (fs types.FlowState, err error) {
	if err = Validate(req); err != nil {
		return
	}
	ft := req.FlowType
	if req.Known == relations.DefiningQuantity(ft) {
		return relations.ForwardDeg(ft, req.Value, req.Gamma, req.M1)
	}
	var x float64
	if x, err = d.Solve(req); err != nil {
		return
	}
	return relations.Forward(ft, x, req.Gamma, req.M1)
}

/*
Solve recovers the defining variable of a validated request from its known quantity: the Mach number,
or for an oblique shock the wave angle in radians.
*/
func (d *Dispatcher) Solve(req FlowRequest) (x float64, err error) {
	builder, ok := LookupInversion(req.FlowType, req.Known)
	if !ok {
		err = types.NewFlowError(types.ErrInvalidInput, "%s can not be inverted for %s", req.Known, req.FlowType)
		return
	}
	var (
		inv    = builder(req.Gamma, req.M1)
		target = req.Value
		seg    Segment
		lo, hi float64
	)
	if req.FlowType == types.FT_ObliqueShock {
		target = utils.Rad(target)
	}
	if seg, err = inv.Select(target, req.Branch.ForFlow(req.FlowType)); err != nil {
		return
	}
	target = seg.Clamp(target)
	if lo, hi, err = inv.Bracket(seg, target); err != nil {
		return
	}
	x, err = utils.Invert(inv.F, target, lo, hi, d.Options)
	if errors.Is(err, utils.ErrNotBracketed) {
		// The segment holds the target analytically, the end values in floating point can round past it
		x, err = nearestEnd(inv.F, target, lo, hi), nil
	}
	if err != nil {
		err = types.NewFlowError(types.ErrConvergenceFailure, "%s: %v", req, err)
		return
	}
	x = math.Min(math.Max(x, seg.Lo), seg.Hi)
	return
}

func nearestEnd(f func(x float64) float64, target, lo, hi float64) float64 {
	if math.Abs(f(lo)-target) <= math.Abs(f(hi)-target) {
		return lo
	}
	return hi
}
