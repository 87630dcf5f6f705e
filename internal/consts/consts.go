package consts

const (
	BOLTZMANN_EV = 8.617e-5 // Boltzmann constant (eV/K). Default, user overridable
	REF_TEMP     = 300.0    // Reference temperature for material parameters (K)
)
