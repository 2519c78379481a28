package types

import (
	"errors"
	"fmt"
)

// Failure classes of a flow computation
var (
	// ErrInvalidInput marks structurally or physically impossible input
	ErrInvalidInput = errors.New("invalid input")

	// ErrAmbiguousBranch marks a two-valued inversion requested without a branch
	ErrAmbiguousBranch = errors.New("ambiguous branch")

	// ErrNoSolution marks a value or angle outside the range reachable on the declared branch
	ErrNoSolution = errors.New("no solution")

	// ErrConvergenceFailure marks an exhausted root search, a defect rather than a user error
	ErrConvergenceFailure = errors.New("convergence failure")
)

// FlowError carries one of the sentinel kinds along with a readable detail
type FlowError struct {
	Kind   error
	Detail string
}

func NewFlowError(kind error, format string, args ...interface{}) *FlowError {
	return &FlowError{
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

func (e *FlowError) Error() string {
	return e.Kind.Error() + ": " + e.Detail
}

func (e *FlowError) Unwrap() error {
	return e.Kind
}
