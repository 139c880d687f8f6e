package exact_riemann

import (
	"fmt"
	"math"

	"github.com/notargets/riemann/shock_relations"
)

// GasState is one side of the initial discontinuity, a calorically perfect
// gas with ratio of specific heats Gamma
type GasState struct {
	Gamma, Rho, U, P float64
}

func NewGasState(Gamma, Rho, U, P float64) (s GasState) {
	s = GasState{
		Gamma: Gamma,
		Rho:   Rho,
		U:     U,
		P:     P,
	}
	s.check()
	return
}

func (s GasState) check() {
	if s.Gamma <= 1 || s.Rho <= 0 || s.P <= 0 {
		panic(fmt.Errorf("unphysical gas state: Gamma = %v, Rho = %v, P = %v", s.Gamma, s.Rho, s.P))
	}
}

func (s GasState) SoundSpeed() (a float64) {
	a = math.Sqrt(s.Gamma * s.P / s.Rho)
	return
}

type WaveKind uint8

func (wk WaveKind) String() string {
	strings := []string{
		"Rarefaction",
		"Shock",
	}
	return strings[int(wk)]
}

const (
	Rarefaction WaveKind = iota
	Shock
)

// Classify determines the wave emitted into a side with initial pressure p
// when the star region pressure is p0. Every component that branches on wave
// type goes through here, so shock / rarefaction attribution can not drift
// between the pressure iteration and the density evaluation
func Classify(p0, p float64) (wk WaveKind) {
	if p0 > p {
		wk = Shock
	} else {
		wk = Rarefaction
	}
	return
}

func ConstantA(Gamma, Rho float64) (A float64) {
	A = 2. / ((Gamma + 1.) * Rho)
	return
}

func ConstantB(Gamma, P float64) (B float64) {
	B = (Gamma - 1.) * P / (Gamma + 1.)
	return
}

// WaveFunction evaluates one side's contribution to the pressure function:
// the velocity change across the wave emitted into the side with state s when
// the pressure behind the wave is p0. The shock branch is the Rankine-Hugoniot
// relation, the rarefaction branch the isentropic one, and the two agree when
// p0 equals s.P. Monotone increasing in p0
func WaveFunction(p0 float64, s GasState) (psi float64) {
	var (
		Gamma = s.Gamma
		GM1   = Gamma - 1.
	)
	switch Classify(p0, s.P) {
	case Shock:
		psi = (p0 - s.P) * math.Sqrt(ConstantA(Gamma, s.Rho)/(p0+ConstantB(Gamma, s.P)))
	case Rarefaction:
		a := s.SoundSpeed()
		psi = (2. * a / GM1) * (math.Pow(p0/s.P, GM1/(2.*Gamma)) - 1.)
	}
	return
}

// PressureFunction is the residual whose unique positive root is the star
// region pressure. Strictly increasing in p0 since both wave function terms
// are
func PressureFunction(p0 float64, left, right GasState) (phi float64) {
	phi = WaveFunction(p0, left) + WaveFunction(p0, right) + right.U - left.U
	return
}

// StarVelocity returns the contact surface velocity given the star pressure.
// Closed form, no iteration
func StarVelocity(pstar float64, left, right GasState) (ustar float64) {
	ustar = 0.5*(left.U+right.U) + 0.5*(WaveFunction(pstar, right)-WaveFunction(pstar, left))
	return
}

// EdgeDensity returns the density adjacent to the contact surface on the side
// with state s: across a shock when pstar exceeds s.P, otherwise through the
// isentropic rarefaction relation. At pstar == s.P both branches reduce to
// s.Rho
func EdgeDensity(pstar float64, s GasState) (rho float64) {
	r := pstar / s.P
	switch Classify(pstar, s.P) {
	case Shock:
		rho = s.Rho * shock_relations.DensityRatio(s.Gamma, r)
	case Rarefaction:
		rho = s.Rho * math.Pow(r, 1./s.Gamma)
	}
	return
}
