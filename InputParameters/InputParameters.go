package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/riemann/exact_riemann"
	"github.com/notargets/riemann/shock_tube"
)

// GasStateParameters is one side of the diaphragm as given in the input file
type GasStateParameters struct {
	Gamma float64 `yaml:"Gamma"`
	Rho   float64 `yaml:"Rho"`
	U     float64 `yaml:"U"`
	P     float64 `yaml:"P"`
}

// Parameters obtained from the YAML input file
type RiemannParameters struct {
	Title         string             `yaml:"Title"`
	Left          GasStateParameters `yaml:"Left"`
	Right         GasStateParameters `yaml:"Right"`
	X0            float64            `yaml:"X0"`
	XMin          float64            `yaml:"XMin"`
	XMax          float64            `yaml:"XMax"`
	FinalTime     float64            `yaml:"FinalTime"`
	NSamples      int                `yaml:"NSamples"`
	Tolerance     float64            `yaml:"Tolerance"`
	MaxIterations int                `yaml:"MaxIterations"`
}

func (rp *RiemannParameters) Parse(data []byte) error {
	rp.X0, rp.XMin, rp.XMax = 0.5, 0, 1
	rp.FinalTime = 0.2
	rp.NSamples = 100
	return yaml.Unmarshal(data, rp)
}

func (rp *RiemannParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("%8.5f\t= Left  (Gamma, Rho, U, P)\n", []float64{rp.Left.Gamma, rp.Left.Rho, rp.Left.U, rp.Left.P})
	fmt.Printf("%8.5f\t= Right (Gamma, Rho, U, P)\n", []float64{rp.Right.Gamma, rp.Right.Rho, rp.Right.U, rp.Right.P})
	fmt.Printf("%8.5f\t= X0, XMin, XMax\n", []float64{rp.X0, rp.XMin, rp.XMax})
	fmt.Printf("%8.5f\t\t= FinalTime\n", rp.FinalTime)
	fmt.Printf("[%d]\t\t\t= NSamples\n", rp.NSamples)
}

// Solver builds the star region solver, applying Tolerance and MaxIterations
// when the file sets them
func (rp *RiemannParameters) Solver() (sv *exact_riemann.Solver) {
	sv = exact_riemann.NewSolver()
	if rp.Tolerance > 0 {
		sv.Tol = rp.Tolerance
	}
	if rp.MaxIterations > 0 {
		sv.MaxIter = rp.MaxIterations
	}
	return
}

func (rp *RiemannParameters) States() (left, right exact_riemann.GasState) {
	left = exact_riemann.NewGasState(rp.Left.Gamma, rp.Left.Rho, rp.Left.U, rp.Left.P)
	right = exact_riemann.NewGasState(rp.Right.Gamma, rp.Right.Rho, rp.Right.U, rp.Right.P)
	return
}

func (rp *RiemannParameters) Tube() (st *shock_tube.ShockTube) {
	left, right := rp.States()
	st = shock_tube.NewShockTube(left, right, rp.X0, rp.XMin, rp.XMax, rp.Solver())
	return
}
