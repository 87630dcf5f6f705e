package analysis

import (
	"github.com/edp1096/toy-semi/internal/consts"
	"github.com/edp1096/toy-semi/pkg/carrier"
	"github.com/edp1096/toy-semi/pkg/material"
)

type Analysis interface {
	Setup(mat material.Params) error
	Execute() error
	GetResults() map[string][]float64
}

type BaseAnalysis struct {
	Material  material.Params
	Boltzmann float64 // eV/K, overridable before Execute
	solver    *carrier.Solver
	results   map[string][]float64 // key: column name, value: result per point
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{
		Boltzmann: consts.BOLTZMANN_EV,
		solver:    carrier.NewSolver(),
		results:   make(map[string][]float64),
	}
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}

func (a *BaseAnalysis) StoreResult(axis string, axisVal float64, res carrier.Result) {
	a.results[axis] = append(a.results[axis], axisVal)
	a.results["NI"] = append(a.results["NI"], res.Ni)
	a.results["N"] = append(a.results["N"], res.N)
	a.results["P"] = append(a.results["P"], res.P)
	a.results["EF"] = append(a.results["EF"], res.FermiOffset)
	a.results["EG"] = append(a.results["EG"], res.Eg)
}
