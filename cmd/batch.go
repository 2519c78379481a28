/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/notargets/compflow/InputParameters"
	"github.com/notargets/compflow/flow"
	"github.com/notargets/compflow/types"
)

const exampleBatchFile = `
########################################
Title: "Nozzle and inlet checks"
Gamma: 1.4
Cases:
  - Name: nozzle-exit
    FlowType: isentropic
    Known: A/A*
    Value: 1.5
    Branch: supersonic
  - Name: ramp
    FlowType: oblique-shock
    M1: 2.5
    Known: theta_deg
    Value: 10
    Branch: weak
########################################
`

// BatchCmd represents the batch command
var BatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Compute every case of a YAML input file",
	Long: `
Reads a YAML file of flow requests and computes each one, a failing case is reported and does not
stop the others.

compflow batch -I cases.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			fileName, _ = cmd.Flags().GetString("inputConditionsFile")
			data        []byte
			of          OutputFormat
		)
		if len(fileName) == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Example File:%s\n", exampleBatchFile)
			return fmt.Errorf("must supply an input file (-I, --inputConditionsFile)")
		}
		if of, err = ParseOutputFormat(viper.GetString("output")); err != nil {
			return
		}
		if data, err = os.ReadFile(fileName); err != nil {
			return fmt.Errorf("unable to read %s: %w", fileName, err)
		}
		bp := &InputParameters.BatchParameters{}
		if err = bp.Parse(data); err != nil {
			return fmt.Errorf("unable to parse %s: %w", fileName, err)
		}
		if gamma := viper.GetFloat64("gamma"); bp.Gamma == 0 && cmd.Flags().Changed("gamma") {
			bp.Gamma = gamma
		}
		results := RunBatch(bp, newDispatcher())
		if err = writeBatch(cmd.OutOrStdout(), results, of); err != nil {
			return
		}
		var failed int
		for _, r := range results {
			if r.Error != "" {
				failed++
			}
		}
		if failed != 0 {
			return fmt.Errorf("%d of %d cases failed", failed, len(results))
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(BatchCmd)
	BatchCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file of flow requests")
}

type BatchResult struct {
	Name    string           `json:"name"`
	Request flow.FlowRequest `json:"request"`
	State   *types.FlowState `json:"state,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// RunBatch computes the cases in file order, search settings in the file override the dispatcher's
func RunBatch(bp *InputParameters.BatchParameters, d *flow.Dispatcher) (results []BatchResult) {
	if bp.Tolerance > 0 || bp.MaxIterations > 0 {
		opts := d.Options
		d = flow.NewDispatcher(bp.Tolerance, bp.MaxIterations)
		if bp.Tolerance <= 0 {
			d.Options.Tol = opts.Tol
		}
		if bp.MaxIterations <= 0 {
			d.Options.MaxIterations = opts.MaxIterations
		}
	}
	for i, req := range bp.Requests() {
		r := BatchResult{Name: bp.CaseName(i), Request: req}
		if fs, err := d.Compute(req); err != nil {
			r.Error = err.Error()
		} else {
			r.State = &fs
		}
		results = append(results, r)
	}
	return
}

func writeBatch(w io.Writer, results []BatchResult, of OutputFormat) (err error) {
	switch of {
	case OF_JSON:
		var data []byte
		if data, err = json.MarshalIndent(results, "", "  "); err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return
	case OF_YAML:
		docs := make([]yaml.MapSlice, len(results))
		for i, r := range results {
			docs[i] = yaml.MapSlice{
				{Key: "name", Value: r.Name},
				{Key: "request", Value: r.Request.String()},
			}
			if r.State != nil {
				docs[i] = append(docs[i], yaml.MapItem{Key: "state", Value: stateMapSlice(*r.State)})
			} else {
				docs[i] = append(docs[i], yaml.MapItem{Key: "error", Value: r.Error})
			}
		}
		var data []byte
		if data, err = yaml.Marshal(docs); err != nil {
			return
		}
		_, err = w.Write(data)
		return
	}
	for _, r := range results {
		if _, err = fmt.Fprintf(w, "%s: %s\n", r.Name, r.Request); err != nil {
			return
		}
		if r.State == nil {
			if _, err = fmt.Fprintf(w, "error: %s\n\n", r.Error); err != nil {
				return
			}
			continue
		}
		if err = writeState(w, *r.State, of); err != nil {
			return
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return
		}
	}
	return
}
