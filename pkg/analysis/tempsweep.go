package analysis

import (
	"fmt"

	"github.com/edp1096/toy-semi/pkg/carrier"
	"github.com/edp1096/toy-semi/pkg/material"
)

type TempSweep struct {
	BaseAnalysis
	start     float64 // Start temperature (K)
	stop      float64 // Stop temperature (K)
	step      float64 // Increment (K)
	donor     float64
	acceptor  float64
	sweepVals []float64
}

func NewTempSweep(start, stop, step, donor, acceptor float64) *TempSweep {
	if step <= 0 {
		panic("temperature sweep: step must be positive")
	}

	ts := &TempSweep{
		BaseAnalysis: *NewBaseAnalysis(),
		start:        start,
		stop:         stop,
		step:         step,
		donor:        donor,
		acceptor:     acceptor,
	}

	for v := start; v <= stop; v += step {
		ts.sweepVals = append(ts.sweepVals, v)
	}

	return ts
}

func (ts *TempSweep) Setup(mat material.Params) error {
	ts.Material = mat
	return nil
}

func (ts *TempSweep) Execute() error {
	for _, temp := range ts.sweepVals {
		cond := carrier.Condition{Temp: temp, Donor: ts.donor, Acceptor: ts.acceptor}

		res, err := ts.solver.Solve(ts.Material, cond, ts.Boltzmann)
		if err != nil {
			return fmt.Errorf("solve error at T=%g: %v", temp, err)
		}

		ts.StoreResult("TEMP", temp, res)
	}

	return nil
}
