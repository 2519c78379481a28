package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/compflow/flow"
	"github.com/notargets/compflow/types"
)

// Parameters obtained from the YAML batch file
type BatchParameters struct {
	Title         string      `yaml:"Title"`
	Gamma         float64     `yaml:"Gamma"` // Default for cases that carry no gamma of their own
	Tolerance     float64     `yaml:"Tolerance"`
	MaxIterations int         `yaml:"MaxIterations"`
	Cases         []BatchCase `yaml:"Cases"`
}

type BatchCase struct {
	Name     string         `yaml:"Name"`
	FlowType types.FlowType `yaml:"FlowType"`
	Known    types.Quantity `yaml:"Known"`
	Value    float64        `yaml:"Value"`
	Branch   types.Branch   `yaml:"Branch"`
	M1       float64        `yaml:"M1"`
	Gamma    float64        `yaml:"Gamma"`
}

func (bp *BatchParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, bp)
}

// Requests resolves the gamma of every case, falling back to the file value and then to air
func (bp *BatchParameters) Requests() (reqs []flow.FlowRequest) {
	reqs = make([]flow.FlowRequest, len(bp.Cases))
	for i, c := range bp.Cases {
		gamma := c.Gamma
		if gamma == 0 {
			gamma = bp.Gamma
		}
		if gamma == 0 {
			gamma = flow.DefaultGamma
		}
		reqs[i] = flow.FlowRequest{
			Gamma:    gamma,
			FlowType: c.FlowType,
			Known:    c.Known,
			Value:    c.Value,
			Branch:   c.Branch,
			M1:       c.M1,
		}
	}
	return
}

func (bp *BatchParameters) CaseName(i int) string {
	if name := bp.Cases[i].Name; name != "" {
		return name
	}
	return fmt.Sprintf("case-%d", i+1)
}

func (bp *BatchParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", bp.Title)
	fmt.Printf("%8.5f\t\t= Gamma\n", bp.Gamma)
	if bp.Tolerance != 0 {
		fmt.Printf("%8.2e\t\t= Tolerance\n", bp.Tolerance)
	}
	if bp.MaxIterations != 0 {
		fmt.Printf("[%d]\t\t\t\t= Max Iterations\n", bp.MaxIterations)
	}
	for i, req := range bp.Requests() {
		fmt.Printf("Cases[%s] = %s\n", bp.CaseName(i), req)
	}
}
