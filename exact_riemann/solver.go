package exact_riemann

import (
	"fmt"
	"math"
)

// Solver finds the star region state by bisection on PressureFunction. The
// zero value is not usable, construct with NewSolver
type Solver struct {
	Tol              float64 // convergence tolerance on |PressureFunction|
	MaxIter          int
	PFloor, PCeiling float64 // admissible pressure range for bracketing
}

func NewSolver() (sv *Solver) {
	sv = &Solver{
		Tol:      1.e-10,
		MaxIter:  100,
		PFloor:   1.e-10,
		PCeiling: 1.e10,
	}
	return
}

// StarState is the constant state between the two waves. Converged reports
// whether the residual tolerance was met within the iteration cap; when it is
// false P is the best effort bracket midpoint. Vacuum reports that the two
// states are rarefied enough relative to their velocity difference that no
// positive star pressure exists
type StarState struct {
	P, U       float64
	Converged  bool
	Vacuum     bool
	Iterations int
	Residual   float64
}

// Solve computes the star region pressure and velocity for the Riemann
// problem with the given left and right states.
//
// The initial bracket is chosen from the sign pattern of the pressure
// function at the two input pressures: both positive puts the root below
// both, mixed signs bracket it already, both negative put it above both.
// Monotonicity of the pressure function makes this a three way case decision
// instead of a search
func (sv *Solver) Solve(left, right GasState) (ss StarState) {
	left.check()
	right.check()
	var (
		pLow, pHigh = math.Min(left.P, right.P), math.Max(left.P, right.P)
		phiLow      = PressureFunction(pLow, left, right)
		phiHigh     = PressureFunction(pHigh, left, right)
	)
	ss.Vacuum = vacuumForming(left, right)
	switch {
	case phiLow > 0 && phiHigh > 0:
		pLow, pHigh = sv.PFloor, pLow
	case phiLow <= 0 && phiHigh >= 0:
		// root already bracketed
	default:
		pLow, pHigh = pHigh, sv.PCeiling
	}
	var p0 float64
	for ss.Iterations = 1; ss.Iterations <= sv.MaxIter; ss.Iterations++ {
		p0 = 0.5 * (pLow + pHigh)
		ss.Residual = PressureFunction(p0, left, right)
		if math.Abs(ss.Residual) < sv.Tol {
			ss.Converged = true
			break
		}
		if ss.Residual > 0 {
			pHigh = p0
		} else {
			pLow = p0
		}
	}
	if ss.Converged {
		ss.P = p0
	} else {
		ss.P = 0.5 * (pLow + pHigh)
		ss.Iterations = sv.MaxIter
		fmt.Printf("star pressure iteration not converged: iterations = %d, bracket = [%v, %v], residual = %v\n",
			ss.Iterations, pLow, pHigh, ss.Residual)
	}
	ss.U = StarVelocity(ss.P, left, right)
	return
}

// vacuumForming is the pressure positivity condition: when the velocity
// divergence u_R - u_L reaches the combined rarefaction capacity
// 2a_L/(GM1_L) + 2a_R/(GM1_R) the two fans separate and no positive star
// pressure satisfies the pressure function
func vacuumForming(left, right GasState) bool {
	du := right.U - left.U
	capacity := 2.*left.SoundSpeed()/(left.Gamma-1.) + 2.*right.SoundSpeed()/(right.Gamma-1.)
	return du >= capacity
}

// StarPressure is the single value convenience over Solve
func StarPressure(left, right GasState) (pstar float64) {
	ss := NewSolver().Solve(left, right)
	if ss.Vacuum {
		fmt.Printf("vacuum forming configuration: star pressure %v is not meaningful\n", ss.P)
	}
	pstar = ss.P
	return
}

// StarVelocityDirect computes the star velocity without a precomputed star
// pressure. It repeats the root finding internally, so callers needing both
// values should call Solve (or StarPressure) once and use StarVelocity
func StarVelocityDirect(left, right GasState) (ustar float64) {
	ustar = StarVelocity(StarPressure(left, right), left, right)
	return
}
