package analysis

import (
	"fmt"

	"github.com/edp1096/toy-semi/pkg/carrier"
	"github.com/edp1096/toy-semi/pkg/material"
)

type OperatingPoint struct {
	BaseAnalysis
	cond   carrier.Condition
	result carrier.Result
}

func NewOP(cond carrier.Condition) *OperatingPoint {
	return &OperatingPoint{
		BaseAnalysis: *NewBaseAnalysis(),
		cond:         cond,
	}
}

func (op *OperatingPoint) Setup(mat material.Params) error {
	op.Material = mat
	return nil
}

func (op *OperatingPoint) Execute() error {
	res, err := op.solver.Solve(op.Material, op.cond, op.Boltzmann)
	if err != nil {
		return fmt.Errorf("operating point error: %v", err)
	}

	op.result = res
	op.StoreResult("TEMP", op.cond.Temp, res)

	return nil
}

// Result returns the full solve result including the conduction type,
// which the column map cannot carry.
func (op *OperatingPoint) Result() carrier.Result {
	return op.result
}
