package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type Property struct {
	Quantity Quantity
	Value    float64
}

// FlowState is the ordered set of properties for one flow type at one operating point
type FlowState struct {
	Type  FlowType
	Props []Property
}

func NewFlowState(ft FlowType, capacity int) (fs FlowState) {
	fs = FlowState{
		Type:  ft,
		Props: make([]Property, 0, capacity),
	}
	return
}

func (fs *FlowState) Set(q Quantity, val float64) {
	for i := range fs.Props {
		if fs.Props[i].Quantity == q {
			fs.Props[i].Value = val
			return
		}
	}
	fs.Props = append(fs.Props, Property{Quantity: q, Value: val})
}

func (fs FlowState) Get(q Quantity) (val float64, ok bool) {
	for _, p := range fs.Props {
		if p.Quantity == q {
			return p.Value, true
		}
	}
	return
}

// MustGet panics when the quantity is absent, for use where the flow type guarantees it
func (fs FlowState) MustGet(q Quantity) float64 {
	val, ok := fs.Get(q)
	if !ok {
		panic(fmt.Errorf("%s state has no %s", fs.Type, q))
	}
	return val
}

func (fs FlowState) Quantities() (qs []Quantity) {
	qs = make([]Quantity, len(fs.Props))
	for i, p := range fs.Props {
		qs[i] = p.Quantity
	}
	return
}

func (fs FlowState) Values() (vals []float64) {
	vals = make([]float64, len(fs.Props))
	for i, p := range fs.Props {
		vals[i] = p.Value
	}
	return
}

// MarshalJSON writes an object whose keys keep the property order, non-finite values become null
func (fs FlowState) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range fs.Props {
		if i != 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Quantity.String())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if math.IsInf(p.Value, 0) || math.IsNaN(p.Value) {
			buf.WriteString("null")
		} else {
			buf.WriteString(strconv.FormatFloat(p.Value, 'g', -1, 64))
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (fs FlowState) Print() {
	fmt.Printf("[%s]\n", fs.Type)
	for _, p := range fs.Props {
		fmt.Printf("%12.6f\t= %s\n", p.Value, p.Quantity)
	}
}
