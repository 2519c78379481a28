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

	"github.com/notargets/compflow/flow"
	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
	"github.com/notargets/compflow/utils"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Chart flow ratios over a range of Mach number or wave angle",
	Long: `
Sweeps a flow type and draws the selected quantities against the defining variable. The image format
follows the extension of the output file.

compflow plot --flowType isentropic --to 4 -q T/T0 -q P/P0 -q rho/rho0 --plotFile isentropic.png`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			sr  flow.SweepRequest
			tbl flow.SweepTable
		)
		if sr, err = sweepRequest(cmd.Flags()); err != nil {
			return
		}
		if tbl, err = flow.Sweep(commandContext(cmd), sr); err != nil {
			return
		}
		names, _ := cmd.Flags().GetStringSlice("quantity")
		yMax, _ := cmd.Flags().GetFloat64("yMax")
		fileName, _ := cmd.Flags().GetString("plotFile")
		if err = PlotSweep(tbl, names, yMax, fileName); err != nil {
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s written\n", fileName)
		return
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	addSweepFlags(PlotCmd.Flags())
	PlotCmd.Flags().StringSliceP("quantity", "q", nil, "quantities to draw, all of the flow state when omitted")
	PlotCmd.Flags().Float64("yMax", 5, "upper limit of the vertical axis, divergent ratios are clipped")
	PlotCmd.Flags().StringP("plotFile", "F", "compflow.png", "image file to write")
}

func PlotSweep(tbl flow.SweepTable, names []string, yMax float64, fileName string) (err error) {
	var (
		xq     = relations.DefiningQuantity(tbl.FlowType)
		x, _   = tbl.Column(xq)
		qs     []types.Quantity
		lc     = utils.NewLineChart(tbl.FlowType.String(), xq.String(), "ratio")
		yRange = []float64{0, yMax}
	)
	for _, name := range names {
		var q types.Quantity
		if q, err = types.ParseQuantity(name); err != nil {
			return
		}
		qs = append(qs, q)
	}
	if len(qs) == 0 {
		for _, q := range tbl.Columns {
			if q != xq && q != types.Q_M1 && q != types.Q_BetaDeg && q != types.Q_ThetaDeg {
				qs = append(qs, q)
			}
		}
	}
	if tbl.FlowType == types.FT_ObliqueShock {
		yRange = nil
	}
	for _, q := range qs {
		col, ok := tbl.Column(q)
		if !ok {
			return types.NewFlowError(types.ErrInvalidInput, "%s is not part of the %s state", q, tbl.FlowType)
		}
		if err = lc.AddSeries(q.String(), x, col, yRange...); err != nil {
			return
		}
	}
	return lc.Save(fileName, 6, 4)
}
