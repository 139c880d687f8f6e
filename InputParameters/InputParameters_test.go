package InputParameters

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sodDeck = []byte(`
Title: SOD Shock Tube
Left:
    Gamma: 1.4
    Rho: 1.0
    U: 0.0
    P: 1.0
Right:
    Gamma: 1.4
    Rho: 0.125
    U: 0.0
    P: 0.1
FinalTime: 0.1
NSamples: 50
`)

func TestParse(t *testing.T) {
	rp := &RiemannParameters{}
	assert.NoError(t, rp.Parse(sodDeck))
	assert.Equal(t, "SOD Shock Tube", rp.Title)
	assert.Equal(t, 1.4, rp.Left.Gamma)
	assert.Equal(t, 0.125, rp.Right.Rho)
	assert.Equal(t, 0.1, rp.FinalTime)
	assert.Equal(t, 50, rp.NSamples)
	// Defaults fill in what the deck leaves out
	assert.Equal(t, 0.5, rp.X0)
	assert.Equal(t, 0., rp.XMin)
	assert.Equal(t, 1., rp.XMax)
	sv := rp.Solver()
	assert.Equal(t, 1.e-10, sv.Tol)
	assert.Equal(t, 100, sv.MaxIter)
	rp.Print()
}

func TestTube(t *testing.T) {
	rp := &RiemannParameters{}
	assert.NoError(t, rp.Parse(sodDeck))
	st := rp.Tube()
	assert.True(t, st.Star.Converged)
	assert.True(t, math.Abs(st.Star.P-0.30313) < 1.e-5)
	// Deck overrides for the iteration controls reach the solver
	rp.Tolerance = 1.e-6
	rp.MaxIterations = 10
	sv := rp.Solver()
	assert.Equal(t, 1.e-6, sv.Tol)
	assert.Equal(t, 10, sv.MaxIter)
	// Unphysical decks fail fast
	rp.Left.Gamma = 1.0
	assert.Panics(t, func() { rp.States() })
}
