package flow

import (
	"context"
	"encoding/csv"
	"io"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/compflow/relations"
	"github.com/notargets/compflow/types"
	"github.com/notargets/compflow/utils"
)

// SweepRequest samples a flow type over its defining variable, the wave angle in degrees for oblique shocks
type SweepRequest struct {
	FlowType types.FlowType `json:"flowType"`
	Gamma    float64        `json:"gamma"`
	M1       float64        `json:"M1,omitempty"`
	From     float64        `json:"from"`
	To       float64        `json:"to"`
	Points   int            `json:"points"`
	Parallel int            `json:"parallel,omitempty"`
}

// SweepTable has one row per sample point and one column per quantity of the flow state
type SweepTable struct {
	FlowType types.FlowType
	Columns  []types.Quantity
	Data     *mat.Dense
}

func Sweep(ctx context.Context, sr SweepRequest) (tbl SweepTable, err error) {
	if sr.Points < 2 {
		err = types.NewFlowError(types.ErrInvalidInput, "a sweep needs at least 2 points, have %d", sr.Points)
		return
	}
	known := relations.DefiningQuantity(sr.FlowType)
	for _, v := range []float64{sr.From, sr.To} {
		if err = Validate(FlowRequest{Gamma: sr.Gamma, FlowType: sr.FlowType, Known: known, Value: v, M1: sr.M1}); err != nil {
			return
		}
	}
	var (
		grid = floats.Span(make([]float64, sr.Points), sr.From, sr.To)
		fs   types.FlowState
	)
	if fs, err = relations.ForwardDeg(sr.FlowType, grid[0], sr.Gamma, sr.M1); err != nil {
		return
	}
	tbl = SweepTable{
		FlowType: sr.FlowType,
		Columns:  fs.Quantities(),
		Data:     mat.NewDense(sr.Points, len(fs.Props), nil),
	}
	degree := sr.Parallel
	if degree < 1 {
		degree = runtime.NumCPU()
	}
	var (
		pm     = utils.NewPartitionMap(degree, sr.Points)
		g, gtx = errgroup.WithContext(ctx)
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		kMin, kMax := pm.GetBucketRange(np)
		g.Go(func() error {
			for k := kMin; k < kMax; k++ {
				if err := gtx.Err(); err != nil {
					return err
				}
				state, err := relations.ForwardDeg(sr.FlowType, grid[k], sr.Gamma, sr.M1)
				if err != nil {
					return err
				}
				// Rows are disjoint between partitions
				tbl.Data.SetRow(k, state.Values())
			}
			return nil
		})
	}
	err = g.Wait()
	return
}

func (tbl SweepTable) Column(q types.Quantity) (col []float64, ok bool) {
	for j, c := range tbl.Columns {
		if c == q {
			return mat.Col(nil, j, tbl.Data), true
		}
	}
	return
}

func (tbl SweepTable) WriteCSV(w io.Writer) (err error) {
	var (
		cw     = csv.NewWriter(w)
		r, c   = tbl.Data.Dims()
		record = make([]string, c)
	)
	for j, q := range tbl.Columns {
		record[j] = q.String()
	}
	if err = cw.Write(record); err != nil {
		return
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			record[j] = strconv.FormatFloat(tbl.Data.At(i, j), 'g', 10, 64)
		}
		if err = cw.Write(record); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}
