/*
Package flow is the single entry point for compressible flow computations.

A FlowRequest names the flow type, one known quantity with its value and, where the known quantity
maps back to two Mach numbers (or two wave angles), the branch to take. Compute validates the request,
evaluates the closed form relations directly when the known quantity is the defining Mach number (wave
angle for oblique shocks), and otherwise recovers it by a bracketed numerical inversion first.
*/
package flow

import (
	"fmt"

	"github.com/notargets/compflow/types"
)

const DefaultGamma = 1.4

type FlowRequest struct {
	Gamma    float64        `json:"gamma"`
	FlowType types.FlowType `json:"flowType"`
	Known    types.Quantity `json:"known"`
	Value    float64        `json:"value"`
	Branch   types.Branch   `json:"branch,omitempty"`
	M1       float64        `json:"M1,omitempty"` // Upstream Mach number, oblique shock only
}

// NewFlowRequest parses the string form used by the CLI and the HTTP transport
func NewFlowRequest(gamma float64, flowType, known string, value float64, branch string) (req FlowRequest, err error) {
	req = FlowRequest{
		Gamma: gamma,
		Value: value,
	}
	if req.FlowType, err = types.ParseFlowType(flowType); err != nil {
		return
	}
	if req.Known, err = types.ParseQuantity(known); err != nil {
		return
	}
	req.Branch, err = types.ParseBranch(branch)
	return
}

func (req FlowRequest) String() string {
	s := fmt.Sprintf("%s gamma=%g %s=%g", req.FlowType, req.Gamma, req.Known, req.Value)
	if req.FlowType == types.FT_ObliqueShock {
		s += fmt.Sprintf(" M1=%g", req.M1)
	}
	if req.Branch != types.B_None {
		s += " branch=" + req.Branch.String()
	}
	return s
}
