package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/notargets/compflow/flow"
	"github.com/notargets/compflow/types"
)

var referenceColumns = []string{"case_id", "module", "gamma", "known", "value", "branch", "M1", "quantity", "expected", "tol"}

type ReferenceCase struct {
	ID       string
	Request  flow.FlowRequest
	Quantity types.Quantity
	Expected float64
	Tol      float64
}

type CaseResult struct {
	Case  ReferenceCase
	Got   float64
	Err   error
	Error float64
}

func (cr CaseResult) Pass() bool {
	return cr.Err == nil && cr.Error <= cr.Case.Tol
}

func ReadReference(r io.Reader) (cases []ReferenceCase, err error) {
	var (
		records [][]string
	)
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(referenceColumns)
	if records, err = cr.ReadAll(); err != nil {
		return
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty reference table")
	}
	for j, name := range referenceColumns {
		if strings.TrimSpace(records[0][j]) != name {
			return nil, fmt.Errorf("column %d is %q, expected %q", j+1, records[0][j], name)
		}
	}
	for i, rec := range records[1:] {
		var rc ReferenceCase
		if rc, err = parseCase(rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		cases = append(cases, rc)
	}
	return
}

func parseCase(rec []string) (rc ReferenceCase, err error) {
	var (
		gamma, value, M1 float64
	)
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	rc.ID = rec[0]
	if gamma, err = strconv.ParseFloat(rec[2], 64); err != nil {
		return
	}
	if value, err = strconv.ParseFloat(rec[4], 64); err != nil {
		return
	}
	if rec[6] != "" {
		if M1, err = strconv.ParseFloat(rec[6], 64); err != nil {
			return
		}
	}
	if rc.Request, err = flow.NewFlowRequest(gamma, rec[1], rec[3], value, rec[5]); err != nil {
		return
	}
	rc.Request.M1 = M1
	if rc.Quantity, err = types.ParseQuantity(rec[7]); err != nil {
		return
	}
	if rc.Expected, err = strconv.ParseFloat(rec[8], 64); err != nil {
		return
	}
	rc.Tol, err = strconv.ParseFloat(rec[9], 64)
	return
}

func Check(d *flow.Dispatcher, cases []ReferenceCase) (results []CaseResult) {
	results = make([]CaseResult, len(cases))
	for i, rc := range cases {
		results[i].Case = rc
		fs, err := d.Compute(rc.Request)
		if err != nil {
			results[i].Err = err
			continue
		}
		got, ok := fs.Get(rc.Quantity)
		if !ok {
			results[i].Err = fmt.Errorf("%s state has no %s", fs.Type, rc.Quantity)
			continue
		}
		results[i].Got = got
		results[i].Error = math.Abs(got - rc.Expected)
	}
	return
}
