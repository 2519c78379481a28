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
	"math"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/notargets/compflow/types"
)

type OutputFormat uint8

const (
	OF_Text OutputFormat = iota
	OF_JSON
	OF_YAML
)

func ParseOutputFormat(name string) (of OutputFormat, err error) {
	switch strings.ToLower(name) {
	case "", "text":
		of = OF_Text
	case "json":
		of = OF_JSON
	case "yaml", "yml":
		of = OF_YAML
	default:
		err = fmt.Errorf("unknown output format %q, must be one of text, json, yaml", name)
	}
	return
}

func writeState(w io.Writer, fs types.FlowState, of OutputFormat) (err error) {
	switch of {
	case OF_JSON:
		var data []byte
		if data, err = json.MarshalIndent(fs, "", "  "); err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
	case OF_YAML:
		var data []byte
		if data, err = yaml.Marshal(stateMapSlice(fs)); err != nil {
			return
		}
		_, err = w.Write(data)
	default:
		_, err = fmt.Fprintf(w, "[%s]\n", fs.Type)
		for _, p := range fs.Props {
			if err != nil {
				return
			}
			_, err = fmt.Fprintf(w, "%14.8g\t= %s\n", p.Value, p.Quantity)
		}
	}
	return
}

// stateMapSlice keeps the property order in YAML, non-finite values are written as null as in JSON
func stateMapSlice(fs types.FlowState) (ms yaml.MapSlice) {
	ms = make(yaml.MapSlice, len(fs.Props))
	for i, p := range fs.Props {
		var val interface{} = p.Value
		if math.IsInf(p.Value, 0) || math.IsNaN(p.Value) {
			val = nil
		}
		ms[i] = yaml.MapItem{Key: p.Quantity.String(), Value: val}
	}
	return
}
