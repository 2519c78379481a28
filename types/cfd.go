package types

import (
	"fmt"
	"strings"
)

type FlowType uint8

const (
	FT_None FlowType = iota
	FT_Isentropic
	FT_NormalShock
	FT_ObliqueShock
	FT_Fanno
	FT_Rayleigh
)

var flowTypeNames = []string{
	"none",
	"isentropic",
	"normal-shock",
	"oblique-shock",
	"fanno",
	"rayleigh",
}

func (ft FlowType) String() string {
	if int(ft) >= len(flowTypeNames) {
		return fmt.Sprintf("FlowType(%d)", ft)
	}
	return flowTypeNames[ft]
}

var FlowTypeNameMap = map[string]FlowType{
	"isentropic":    FT_Isentropic,
	"normal-shock":  FT_NormalShock,
	"normalshock":   FT_NormalShock,
	"normal_shock":  FT_NormalShock,
	"oblique-shock": FT_ObliqueShock,
	"obliqueshock":  FT_ObliqueShock,
	"oblique_shock": FT_ObliqueShock,
	"fanno":         FT_Fanno,
	"rayleigh":      FT_Rayleigh,
}

func ParseFlowType(name string) (ft FlowType, err error) {
	var ok bool
	if ft, ok = FlowTypeNameMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = NewFlowError(ErrInvalidInput, "unknown flow type %q", name)
	}
	return
}

// MarshalText and UnmarshalText let enums travel through JSON and YAML as their labels
func (ft FlowType) MarshalText() ([]byte, error) { return []byte(ft.String()), nil }

func (ft *FlowType) UnmarshalText(text []byte) (err error) {
	*ft, err = ParseFlowType(string(text))
	return
}

// Branch selects one solution family of a two-valued inversion
type Branch uint8

const (
	B_None Branch = iota
	B_Subsonic
	B_Supersonic
	B_Weak
	B_Strong
)

var branchNames = []string{"", "subsonic", "supersonic", "weak", "strong"}

func (b Branch) String() string {
	if int(b) >= len(branchNames) {
		return fmt.Sprintf("Branch(%d)", b)
	}
	return branchNames[b]
}

var BranchNameMap = map[string]Branch{
	"":           B_None,
	"none":       B_None,
	"subsonic":   B_Subsonic,
	"sub":        B_Subsonic,
	"supersonic": B_Supersonic,
	"super":      B_Supersonic,
	"sup":        B_Supersonic,
	"weak":       B_Weak,
	"strong":     B_Strong,
}

func ParseBranch(name string) (b Branch, err error) {
	var ok bool
	if b, ok = BranchNameMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = NewFlowError(ErrInvalidInput, "unknown branch %q, must be one of subsonic, supersonic, weak, strong", name)
	}
	return
}

func (b Branch) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *Branch) UnmarshalText(text []byte) (err error) {
	*b, err = ParseBranch(string(text))
	return
}

// ForFlow maps the sonic branch names onto the oblique shock weak/strong families, weak being
// the solution with the smaller wave angle
func (b Branch) ForFlow(ft FlowType) Branch {
	if ft != FT_ObliqueShock {
		return b
	}
	switch b {
	case B_Supersonic:
		return B_Weak
	case B_Subsonic:
		return B_Strong
	}
	return b
}
