package shock_relations

import (
	"math"
)

/*
Jump relations across a moving normal shock in a calorically perfect gas,
written in terms of the pressure ratio r = P2/P1 (downstream over upstream)
and mu2 = (Gamma-1)/(Gamma+1). Pure functions, no state.
*/

func mu2(Gamma float64) (m2 float64) {
	m2 = (Gamma - 1.) / (Gamma + 1.)
	return
}

// DensityRatio returns Rho2/Rho1 across a shock of strength r. Tends to 1 as
// r -> 1 and to (Gamma+1)/(Gamma-1) in the strong shock limit
func DensityRatio(Gamma, r float64) (ratio float64) {
	m2 := mu2(Gamma)
	ratio = (r + m2) / (1. + m2*r)
	return
}

// TemperatureRatio returns T2/T1 across a shock of strength r
func TemperatureRatio(Gamma, r float64) (ratio float64) {
	ratio = r / DensityRatio(Gamma, r)
	return
}

// ShockMach returns the Mach number of the shock relative to the upstream gas
func ShockMach(Gamma, r float64) (Ms float64) {
	Ms = math.Sqrt(((Gamma+1.)*r + (Gamma - 1.)) / (2. * Gamma))
	return
}

// ShockSpeed returns the lab frame speed of a shock of strength r advancing
// into gas moving at u with sound speed a. dir is +1 for a right facing
// shock, -1 for left facing
func ShockSpeed(Gamma, r, u, a, dir float64) (s float64) {
	s = u + dir*a*ShockMach(Gamma, r)
	return
}
