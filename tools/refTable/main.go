package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/notargets/compflow/flow"
)

var (
	csvFile = "reference_table.csv"
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "reference table of published flow values")
	tolPtr := flag.Float64("tolerance", 0, "relative tolerance of the numerical inversion, 0 for the default")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
	defer f.Close()
	cases, err := ReadReference(bufio.NewReader(f))
	if err != nil {
		fmt.Printf("error: %s\n", err)
		os.Exit(1)
	}
	var failures int
	for _, cr := range Check(flow.NewDispatcher(*tolPtr, 0), cases) {
		switch {
		case cr.Err != nil:
			fmt.Printf("%-20s FAIL %v\n", cr.Case.ID, cr.Err)
		case cr.Pass():
			fmt.Printf("%-20s PASS %s=%.6f, err=%g\n", cr.Case.ID, cr.Case.Quantity, cr.Got, cr.Error)
		default:
			fmt.Printf("%-20s FAIL %s=%.6f, expected %.6f, err=%g\n", cr.Case.ID, cr.Case.Quantity, cr.Got,
				cr.Case.Expected, cr.Error)
		}
		if !cr.Pass() {
			failures++
		}
	}
	fmt.Printf("%d of %d cases failed\n", failures, len(cases))
	if failures != 0 {
		os.Exit(1)
	}
}
