package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/edp1096/toy-semi/pkg/carrier"
	"github.com/edp1096/toy-semi/pkg/material"
)

// DopingSweep varies the donor or acceptor concentration logarithmically
// at a fixed temperature, the other dopant density held constant.
type DopingSweep struct {
	BaseAnalysis
	variable  string  // "nd" or "na"
	start     float64 // Start concentration (cm^-3), > 0
	stop      float64 // Stop concentration (cm^-3)
	points    int     // Points per decade
	temp      float64
	donor     float64 // Fixed value when sweeping na, and vice versa
	acceptor  float64
	sweepVals []float64
}

func NewDopingSweep(variable string, start, stop float64, pointsPerDecade int, temp, donor, acceptor float64) (*DopingSweep, error) {
	variable = strings.ToLower(variable)
	if variable != "nd" && variable != "na" {
		return nil, fmt.Errorf("invalid sweep variable: %s", variable)
	}
	if start <= 0 || stop < start {
		return nil, fmt.Errorf("invalid sweep range: %g to %g", start, stop)
	}
	if pointsPerDecade < 1 {
		return nil, fmt.Errorf("invalid points per decade: %d", pointsPerDecade)
	}

	ds := &DopingSweep{
		BaseAnalysis: *NewBaseAnalysis(),
		variable:     variable,
		start:        start,
		stop:         stop,
		points:       pointsPerDecade,
		temp:         temp,
		donor:        donor,
		acceptor:     acceptor,
	}
	ds.generateSweepPoints()

	return ds, nil
}

func (ds *DopingSweep) generateSweepPoints() {
	logStart := math.Log10(ds.start)
	logStop := math.Log10(ds.stop)
	total := int(math.Round((logStop-logStart)*float64(ds.points))) + 1

	if total < 2 {
		ds.sweepVals = []float64{ds.start}
		return
	}

	step := (logStop - logStart) / float64(total-1)
	ds.sweepVals = make([]float64, total)
	for i := 0; i < total; i++ {
		ds.sweepVals[i] = math.Pow(10, logStart+float64(i)*step)
	}
}

func (ds *DopingSweep) Setup(mat material.Params) error {
	ds.Material = mat
	return nil
}

func (ds *DopingSweep) Execute() error {
	for _, val := range ds.sweepVals {
		cond := carrier.Condition{Temp: ds.temp, Donor: ds.donor, Acceptor: ds.acceptor}
		if ds.variable == "nd" {
			cond.Donor = val
		} else {
			cond.Acceptor = val
		}

		res, err := ds.solver.Solve(ds.Material, cond, ds.Boltzmann)
		if err != nil {
			return fmt.Errorf("solve error at %s=%g: %v", ds.variable, val, err)
		}

		ds.StoreResult("SWEEP", val, res)
	}

	return nil
}
