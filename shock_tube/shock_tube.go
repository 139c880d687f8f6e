package shock_tube

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/riemann/exact_riemann"
	"github.com/notargets/riemann/shock_relations"
)

// ShockTube is a 1D tube on [XMin, XMax] with a diaphragm at X0 separating
// two constant gas states. The exact solution of the resulting Riemann
// problem is computed once at construction; Sample and Profile evaluate it at
// any later time from self similarity
type ShockTube struct {
	Left, Right    exact_riemann.GasState
	X0, XMin, XMax float64
	Star           exact_riemann.StarState
}

func NewShockTube(left, right exact_riemann.GasState, x0, xMin, xMax float64, svO ...*exact_riemann.Solver) (st *ShockTube) {
	var (
		sv = exact_riemann.NewSolver()
	)
	if len(svO) > 0 {
		sv = svO[0]
	}
	st = &ShockTube{
		Left:  left,
		Right: right,
		X0:    x0,
		XMin:  xMin,
		XMax:  xMax,
	}
	st.Star = sv.Solve(left, right)
	return
}

// WaveSet holds the positions of the three waves at a given time. For a
// rarefaction Head and Tail differ, for a shock they coincide
type WaveSet struct {
	LeftKind, RightKind  exact_riemann.WaveKind
	LeftHead, LeftTail   float64
	Contact              float64
	RightTail, RightHead float64
}

// Waves returns the wave positions at time t
func (st *ShockTube) Waves(t float64) (ws WaveSet) {
	var (
		lHead, lTail = st.leftSpeeds()
		rTail, rHead = st.rightSpeeds()
	)
	ws = WaveSet{
		LeftKind:  exact_riemann.Classify(st.Star.P, st.Left.P),
		RightKind: exact_riemann.Classify(st.Star.P, st.Right.P),
		LeftHead:  st.X0 + lHead*t,
		LeftTail:  st.X0 + lTail*t,
		Contact:   st.X0 + st.Star.U*t,
		RightTail: st.X0 + rTail*t,
		RightHead: st.X0 + rHead*t,
	}
	return
}

// leftSpeeds returns the head and tail speeds of the left wave. A shock has a
// single speed, reported for both
func (st *ShockTube) leftSpeeds() (head, tail float64) {
	var (
		s = st.Left
		a = s.SoundSpeed()
		r = st.Star.P / s.P
	)
	if exact_riemann.Classify(st.Star.P, s.P) == exact_riemann.Shock {
		head = shock_relations.ShockSpeed(s.Gamma, r, s.U, a, -1)
		tail = head
		return
	}
	aStar := a * math.Pow(r, (s.Gamma-1.)/(2.*s.Gamma))
	head = s.U - a
	tail = st.Star.U - aStar
	return
}

func (st *ShockTube) rightSpeeds() (tail, head float64) {
	var (
		s = st.Right
		a = s.SoundSpeed()
		r = st.Star.P / s.P
	)
	if exact_riemann.Classify(st.Star.P, s.P) == exact_riemann.Shock {
		head = shock_relations.ShockSpeed(s.Gamma, r, s.U, a, 1)
		tail = head
		return
	}
	aStar := a * math.Pow(r, (s.Gamma-1.)/(2.*s.Gamma))
	head = s.U + a
	tail = st.Star.U + aStar
	return
}

// Sample evaluates the exact solution at position x and time t > 0
func (st *ShockTube) Sample(t, x float64) (rho, p, u float64) {
	rho, p, u, _ = st.sample((x - st.X0) / t)
	return
}

// sample evaluates the self similar solution at speed xi = (x-x0)/t. The
// returned Gamma is the specific heat ratio of the gas occupying that point,
// which follows the contact surface
func (st *ShockTube) sample(xi float64) (rho, p, u, Gamma float64) {
	var (
		lHead, lTail = st.leftSpeeds()
		rTail, rHead = st.rightSpeeds()
	)
	switch {
	case xi < lHead:
		rho, p, u, Gamma = st.Left.Rho, st.Left.P, st.Left.U, st.Left.Gamma
	case xi < lTail:
		rho, p, u = fanState(xi, st.Left, -1)
		Gamma = st.Left.Gamma
	case xi < st.Star.U:
		rho = exact_riemann.EdgeDensity(st.Star.P, st.Left)
		p, u, Gamma = st.Star.P, st.Star.U, st.Left.Gamma
	case xi < rTail:
		rho = exact_riemann.EdgeDensity(st.Star.P, st.Right)
		p, u, Gamma = st.Star.P, st.Star.U, st.Right.Gamma
	case xi < rHead:
		rho, p, u = fanState(xi, st.Right, 1)
		Gamma = st.Right.Gamma
	default:
		rho, p, u, Gamma = st.Right.Rho, st.Right.P, st.Right.U, st.Right.Gamma
	}
	return
}

// fanState evaluates the interior of a rarefaction fan at similarity speed
// xi. dir is -1 for the left fan, +1 for the right. The sound speed varies
// linearly across the fan in the mu2 = (Gamma-1)/(Gamma+1) parameterization
func fanState(xi float64, s exact_riemann.GasState, dir float64) (rho, p, u float64) {
	var (
		a   = s.SoundSpeed()
		mu2 = (s.Gamma - 1.) / (s.Gamma + 1.)
	)
	c := mu2*dir*(xi-s.U) + (1.-mu2)*a
	u = (1.-mu2)*(xi-dir*a) + mu2*s.U
	rho = s.Rho * math.Pow(c/a, 2./(s.Gamma-1.))
	p = s.P * math.Pow(rho/s.Rho, s.Gamma)
	return
}

// Profile samples the solution at time t on nSamples uniform points plus a
// tight pair of points astride each discontinuity, so plots show crisp jumps.
// E is the specific internal energy P/((Gamma-1) Rho). At t <= 0 the initial
// data is returned
func (st *ShockTube) Profile(t float64, nSamples int) (X, Rho, P, U, E []float64) {
	var (
		tol = 0.00000001
		ws  = st.Waves(t)
	)
	X = floats.Span(make([]float64, nSamples), st.XMin, st.XMax)
	jumps := []float64{ws.Contact}
	if ws.LeftKind == exact_riemann.Shock {
		jumps = append(jumps, ws.LeftHead)
	} else {
		jumps = append(jumps, ws.LeftHead, ws.LeftTail)
	}
	if ws.RightKind == exact_riemann.Shock {
		jumps = append(jumps, ws.RightHead)
	} else {
		jumps = append(jumps, ws.RightTail, ws.RightHead)
	}
	for _, xj := range jumps {
		for _, x := range []float64{xj - tol, xj + tol} {
			if x > st.XMin && x < st.XMax {
				X = append(X, x)
			}
		}
	}
	sort.Float64s(X)
	Rho = make([]float64, len(X))
	P = make([]float64, len(X))
	U = make([]float64, len(X))
	E = make([]float64, len(X))
	for i, x := range X {
		var rho, p, u, Gamma float64
		if t > 0 {
			rho, p, u, Gamma = st.sample((x - st.X0) / t)
		} else if x < st.X0 {
			rho, p, u, Gamma = st.Left.Rho, st.Left.P, st.Left.U, st.Left.Gamma
		} else {
			rho, p, u, Gamma = st.Right.Rho, st.Right.P, st.Right.U, st.Right.Gamma
		}
		Rho[i], P[i], U[i] = rho, p, u
		E[i] = p / ((Gamma - 1.) * rho)
	}
	return
}
