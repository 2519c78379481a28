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
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/notargets/compflow/flow"
	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
	"github.com/notargets/compflow/utils"
)

// SweepCmd represents the sweep command
var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Tabulate a flow type over a range of Mach number or wave angle",
	Long: `
Evaluates the flow state at evenly spaced points of the defining variable and writes a CSV table,
the wave angle in degrees for oblique shocks and the Mach number otherwise.

compflow sweep --flowType fanno --from 0.1 --to 4 --points 40 --csvFile fanno.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			sr  flow.SweepRequest
			tbl flow.SweepTable
			w   io.Writer = cmd.OutOrStdout()
		)
		if sr, err = sweepRequest(cmd.Flags()); err != nil {
			return
		}
		if dir, _ := cmd.Flags().GetString("profile"); dir != "" {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
		}
		if tbl, err = flow.Sweep(commandContext(cmd), sr); err != nil {
			return
		}
		if fileName, _ := cmd.Flags().GetString("csvFile"); fileName != "" {
			var f *os.File
			if f, err = os.Create(fileName); err != nil {
				return fmt.Errorf("unable to create %s: %w", fileName, err)
			}
			defer f.Close()
			w = f
		}
		return tbl.WriteCSV(w)
	},
}

func init() {
	rootCmd.AddCommand(SweepCmd)
	addSweepFlags(SweepCmd.Flags())
	SweepCmd.Flags().StringP("csvFile", "F", "", "write the table to this file instead of stdout")
	SweepCmd.Flags().String("profile", "", "write a CPU profile of the sweep into this directory")
}

func addSweepFlags(fs *pflag.FlagSet) {
	fs.StringP("flowType", "f", types.FT_Isentropic.String(), "isentropic, normal-shock, oblique-shock, fanno or rayleigh")
	fs.Float64("from", 0, "first value of the defining variable, defaults to the start of its range")
	fs.Float64("to", 5, "last value of the defining variable")
	fs.IntP("points", "n", 51, "number of sample points")
	fs.IntP("parallel", "p", 0, "number of partitions computed concurrently, 0 for one per CPU")
	fs.Float64("m1", 2, "upstream Mach number, oblique shock only")
}

func sweepRequest(fs *pflag.FlagSet) (sr flow.SweepRequest, err error) {
	name, _ := fs.GetString("flowType")
	if sr.FlowType, err = types.ParseFlowType(name); err != nil {
		return
	}
	sr.Gamma = viper.GetFloat64("gamma")
	sr.From, _ = fs.GetFloat64("from")
	sr.To, _ = fs.GetFloat64("to")
	sr.Points, _ = fs.GetInt("points")
	sr.Parallel, _ = fs.GetInt("parallel")
	sr.M1, _ = fs.GetFloat64("m1")
	if fs.Changed("from") {
		return
	}
	switch sr.FlowType {
	case types.FT_NormalShock:
		sr.From = 1
	case types.FT_ObliqueShock:
		sr.From = utils.Deg(relations.MachAngle(sr.M1))
		if !fs.Changed("to") {
			sr.To = 90
		}
	}
	return
}
