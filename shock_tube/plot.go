package shock_tube

import (
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/riemann/utils"
)

// PlotProfile displays the exact solution at time t: density, momentum and
// total energy per unit volume. Blocks forever holding the window open unless
// a graphDelay is supplied, in which case it returns after that delay
func (st *ShockTube) PlotProfile(t float64, nSamples int, graphDelay ...time.Duration) {
	X, Rho, P, U, E := st.Profile(t, nSamples)
	_ = P
	RhoU := make([]float64, len(X))
	Ener := make([]float64, len(X))
	for i := range X {
		RhoU[i] = Rho[i] * U[i]
		Ener[i] = Rho[i]*E[i] + 0.5*Rho[i]*utils.POW(U[i], 2)
	}
	var (
		fmin = float32(floats.Min(Rho))
		fmax = float32(floats.Max(Ener))
	)
	if fm := float32(floats.Min(RhoU)); fm < fmin {
		fmin = fm
	}
	chart := chart2d.NewChart2D(1920, 1280, float32(st.XMin), float32(st.XMax), fmin-0.1, fmax+0.1)
	colorMap := utils2.NewColorMap(-1, 1, 1)
	go chart.Plot()
	pSeries := func(field []float64, name string, color float32) {
		if err := chart.AddSeries(name, X, field, chart2d.NoGlyph, chart2d.Solid, colorMap.GetRGB(color)); err != nil {
			panic("unable to add graph series")
		}
	}
	pSeries(Rho, "Rho", -0.7)
	pSeries(RhoU, "RhoU", 0.0)
	pSeries(Ener, "Ener", 0.7)
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
		return
	}
	for {
		time.Sleep(time.Second)
	}
}
