package carrier

import (
	"fmt"
	"math"

	"github.com/edp1096/toy-semi/internal/consts"
	"github.com/edp1096/toy-semi/pkg/material"
)

type ConductionType int

const (
	Intrinsic ConductionType = iota
	NType
	PType
)

func (t ConductionType) String() string {
	switch t {
	case NType:
		return "n-type"
	case PType:
		return "p-type"
	default:
		return "intrinsic"
	}
}

// DomainError reports a non-physical input value.
type DomainError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s=%g: %s", e.Param, e.Value, e.Reason)
}

// Condition is a single operating point.
type Condition struct {
	Temp     float64 // Temperature (K)
	Donor    float64 // Donor concentration Nd (cm^-3)
	Acceptor float64 // Acceptor concentration Na (cm^-3)
}

// Result holds equilibrium carrier statistics at one operating point.
type Result struct {
	Ni          float64 // Intrinsic carrier concentration (cm^-3)
	N           float64 // Electron concentration (cm^-3)
	P           float64 // Hole concentration (cm^-3)
	FermiOffset float64 // Fermi level relative to the intrinsic level (eV)
	Eg          float64 // Temperature adjusted bandgap (eV)
	Type        ConductionType
}

// DefaultStrongDopingRatio selects the asymptotic extrinsic branch once
// |Nd-Na| >= ratio * ni. At ratio R the quadratic root exceeds the
// asymptote by ~1/R^2 relative (1e-6 here), so the branch switch is
// invisible at display precision while still skipping the squaring of
// huge dopant densities.
const DefaultStrongDopingRatio = 1e3

type Solver struct {
	StrongDopingRatio float64
}

func NewSolver() *Solver {
	return &Solver{StrongDopingRatio: DefaultStrongDopingRatio}
}

// Solve computes equilibrium electron/hole concentrations, the intrinsic
// concentration and the Fermi level offset for a doped semiconductor.
//
// Eg(T) is extrapolated linearly from the 300 K value and not clamped;
// at temperatures where the extrapolation drives Eg negative the
// exponential factor exceeds unity and the result is reported as-is.
// Exp underflow at low temperature (ni -> 0) is likewise legitimate.
func (s *Solver) Solve(mat material.Params, cond Condition, boltzmannEv float64) (Result, error) {
	if cond.Temp <= 0 {
		return Result{}, &DomainError{"temp", cond.Temp, "temperature must be positive"}
	}
	if boltzmannEv <= 0 {
		return Result{}, &DomainError{"kb", boltzmannEv, "Boltzmann constant must be positive"}
	}
	if cond.Donor < 0 {
		return Result{}, &DomainError{"nd", cond.Donor, "donor concentration must not be negative"}
	}
	if cond.Acceptor < 0 {
		return Result{}, &DomainError{"na", cond.Acceptor, "acceptor concentration must not be negative"}
	}

	eg := mat.Eg300 + mat.TempCoeff*(cond.Temp-consts.REF_TEMP)
	ratio := cond.Temp / consts.REF_TEMP
	nc := mat.Nc300 * math.Pow(ratio, 1.5)
	nv := mat.Nv300 * math.Pow(ratio, 1.5)
	ni := math.Sqrt(nc*nv) * math.Exp(-eg/(2*boltzmannEv*cond.Temp))

	res := Result{Ni: ni, Eg: eg}
	net := cond.Donor - cond.Acceptor

	switch {
	case math.Abs(net) < ni:
		res.N = ni
		res.P = ni
		res.Type = Intrinsic

	case net > 0:
		res.N = s.majority(net, ni)
		res.P = ni * ni / res.N
		res.FermiOffset = boltzmannEv * cond.Temp * math.Log(res.N/ni)
		res.Type = NType

	default:
		res.P = s.majority(-net, ni)
		res.N = ni * ni / res.P
		res.FermiOffset = -boltzmannEv * cond.Temp * math.Log(res.P/ni)
		res.Type = PType
	}

	return res, nil
}

// majority solves mass action + charge neutrality for the majority
// carrier. Past StrongDopingRatio the quadratic root is numerically
// identical to the dopant density itself, so return it directly.
func (s *Solver) majority(net, ni float64) float64 {
	if net >= s.StrongDopingRatio*ni {
		return net
	}
	return (net + math.Sqrt(net*net+4*ni*ni)) / 2
}
