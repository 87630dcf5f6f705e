package material

import (
	"fmt"
	"strings"
)

// Params holds the band structure parameters of a semiconductor.
// Reference values are given at 300 K; the solver scales them to the
// operating temperature.
type Params struct {
	Name      string
	Eg300     float64 // Bandgap energy at 300 K (eV)
	Nc300     float64 // Effective density of states, conduction band (cm^-3)
	Nv300     float64 // Effective density of states, valence band (cm^-3)
	TempCoeff float64 // Bandgap temperature coefficient dEg/dT (eV/K)
}

func Silicon() Params {
	return Params{
		Name:      "Si",
		Eg300:     1.12,     // eV
		Nc300:     2.8e19,   // cm^-3
		Nv300:     1.04e19,  // cm^-3
		TempCoeff: -2.73e-4, // eV/K
	}
}

func Germanium() Params {
	return Params{
		Name:      "Ge",
		Eg300:     0.66,
		Nc300:     1.04e19,
		Nv300:     6.0e18,
		TempCoeff: -3.7e-4,
	}
}

func GalliumArsenide() Params {
	return Params{
		Name:      "GaAs",
		Eg300:     1.42,
		Nc300:     4.7e17,
		Nv300:     7.0e18,
		TempCoeff: -4.5e-4,
	}
}

// ByName returns a preset by its common name or chemical symbol.
// The returned value is a copy; callers may edit parameters freely.
func ByName(name string) (Params, error) {
	switch strings.ToLower(name) {
	case "si", "silicon":
		return Silicon(), nil
	case "ge", "germanium":
		return Germanium(), nil
	case "gaas", "gallium-arsenide":
		return GalliumArsenide(), nil
	}
	return Params{}, fmt.Errorf("unknown material: %s", name)
}
