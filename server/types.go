package server

import (
	"github.com/notargets/compflow/flow"
	"github.com/notargets/compflow/types"
)

// FlowBody is the JSON body accepted by every flow endpoint. Pointers tell absent fields from zeros.
type FlowBody struct {
	Gamma    *float64 `json:"gamma,omitempty"`
	Known    string   `json:"known,omitempty"`
	Value    *float64 `json:"value,omitempty"`
	Branch   string   `json:"branch,omitempty"`
	M1       *float64 `json:"M1,omitempty"`
	BetaDeg  *float64 `json:"beta_deg,omitempty"`
	ThetaDeg *float64 `json:"theta_deg,omitempty"`
}

// ErrorResponse is returned with every non 2xx status.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// Request resolves the body into a FlowRequest for the flow type of the route
func (b FlowBody) Request(ft types.FlowType) (req flow.FlowRequest, err error) {
	req = flow.FlowRequest{
		Gamma:    flow.DefaultGamma,
		FlowType: ft,
	}
	if b.Gamma != nil {
		req.Gamma = *b.Gamma
	}
	if req.Branch, err = types.ParseBranch(b.Branch); err != nil {
		return
	}
	switch {
	case ft == types.FT_ObliqueShock:
		if b.M1 == nil {
			err = types.NewFlowError(types.ErrInvalidInput, "M1 is required for %s", ft)
			return
		}
		req.M1 = *b.M1
		switch {
		case b.ThetaDeg != nil:
			req.Known, req.Value = types.Q_ThetaDeg, *b.ThetaDeg
			return
		case b.BetaDeg != nil:
			req.Known, req.Value = types.Q_BetaDeg, *b.BetaDeg
			return
		}
	case ft == types.FT_NormalShock && b.Known == "" && b.M1 != nil:
		req.Known, req.Value = types.Q_M1, *b.M1
		return
	}
	if b.Known == "" || b.Value == nil {
		err = types.NewFlowError(types.ErrInvalidInput, "known and value are required for %s", ft)
		return
	}
	if req.Known, err = types.ParseQuantity(b.Known); err != nil {
		return
	}
	req.Value = *b.Value
	return
}
