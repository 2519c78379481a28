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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/compflow/flow"
	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
)

var flowTypeShort = map[types.FlowType]string{
	types.FT_Isentropic:   "Isentropic flow ratios referenced to stagnation and sonic conditions",
	types.FT_NormalShock:  "Jump conditions across a normal shock",
	types.FT_ObliqueShock: "Oblique shock from the deflection or the wave angle",
	types.FT_Fanno:        "Adiabatic constant area flow with friction",
	types.FT_Rayleigh:     "Frictionless constant area flow with heat addition",
}

func newFlowCmd(ft types.FlowType) *cobra.Command {
	var (
		defining = relations.DefiningQuantity(ft)
		knowns   = flow.InvertibleQuantities(ft)
	)
	c := &cobra.Command{
		Use:   ft.String(),
		Short: flowTypeShort[ft],
		Long: fmt.Sprintf(`
%s.

Known quantities: %v
A branch is needed when the known value is reached at two Mach numbers (two wave angles for an oblique shock).

compflow %s --known %s --value 2`, flowTypeShort[ft], knowns, ft, defining),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var (
				req flow.FlowRequest
				of  OutputFormat
				fs  types.FlowState
			)
			if of, err = ParseOutputFormat(viper.GetString("output")); err != nil {
				return
			}
			known, _ := cmd.Flags().GetString("known")
			value, _ := cmd.Flags().GetFloat64("value")
			branch, _ := cmd.Flags().GetString("branch")
			if req, err = flow.NewFlowRequest(viper.GetFloat64("gamma"), ft.String(), known, value, branch); err != nil {
				return
			}
			if ft == types.FT_ObliqueShock {
				req.M1, _ = cmd.Flags().GetFloat64("m1")
			}
			if fs, err = newDispatcher().Compute(req); err != nil {
				return
			}
			return writeState(cmd.OutOrStdout(), fs, of)
		},
	}
	c.Flags().StringP("known", "k", defining.String(), fmt.Sprintf("known quantity, one of %v", knowns))
	c.Flags().Float64P("value", "v", 0, "value of the known quantity, angles in degrees")
	c.Flags().StringP("branch", "b", "", "subsonic, supersonic, weak or strong")
	if ft == types.FT_ObliqueShock {
		c.Flags().Float64("m1", 0, "upstream Mach number")
		_ = c.MarkFlagRequired("m1")
	}
	_ = c.MarkFlagRequired("value")
	return c
}

func init() {
	for _, ft := range []types.FlowType{
		types.FT_Isentropic, types.FT_NormalShock, types.FT_ObliqueShock, types.FT_Fanno, types.FT_Rayleigh,
	} {
		rootCmd.AddCommand(newFlowCmd(ft))
	}
}
