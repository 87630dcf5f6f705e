package util

import (
	"fmt"
	"math"
)

// FormatConcentration renders a carrier or dopant density in cm^-3.
func FormatConcentration(value float64) string {
	return fmt.Sprintf("%10.4e cm^-3", value)
}

// FormatEnergy renders an energy in eV, scaled to m/u prefixes for the
// small Fermi offsets near the intrinsic level.
func FormatEnergy(value float64) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1 || absValue == 0:
		return fmt.Sprintf("%.4f eV", value)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.4f meV", value*1e3)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.4f ueV", value*1e6)
	default:
		return fmt.Sprintf("%.3e eV", value)
	}
}

func FormatTemperature(temp float64) string {
	return fmt.Sprintf("%7.2f K", temp)
}
