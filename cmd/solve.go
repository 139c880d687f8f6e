/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/riemann/InputParameters"
	"github.com/notargets/riemann/exact_riemann"
	"github.com/notargets/riemann/shock_tube"
)

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a Riemann problem exactly",
	Long: `
Solves the exact Riemann problem for one of the canonical shock tube cases or
for a problem described in a YAML input file,

riemann solve -c 0 -t 0.2`,
	Run: func(cmd *cobra.Command, args []string) {
		if prof, _ := cmd.Flags().GetBool("cpuprofile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		var (
			st *shock_tube.ShockTube
			t  float64
			n  int
		)
		input, _ := cmd.Flags().GetString("input")
		t, _ = cmd.Flags().GetFloat64("finalTime")
		n, _ = cmd.Flags().GetInt("nSamples")
		if len(input) != 0 {
			data, err := os.ReadFile(input)
			if err != nil {
				fmt.Printf("unable to read input file [%s]: %v\n", input, err)
				os.Exit(1)
			}
			rp := &InputParameters.RiemannParameters{}
			if err = rp.Parse(data); err != nil {
				fmt.Printf("unable to parse input file [%s]: %v\n", input, err)
				os.Exit(1)
			}
			rp.Print()
			if !cmd.Flags().Changed("finalTime") {
				t = rp.FinalTime
			}
			if !cmd.Flags().Changed("nSamples") {
				n = rp.NSamples
			}
			st = rp.Tube()
			fmt.Printf("Exact Riemann Solution: %s\n", rp.Title)
		} else {
			Casep, _ := cmd.Flags().GetInt("case")
			ct := shock_tube.CaseType(Casep)
			st = shock_tube.NewShockTubeCase(ct)
			fmt.Printf("Exact Riemann Solution: %s\n", ct)
		}
		printSolution(st, t)
		if graph, _ := cmd.Flags().GetBool("graph"); graph {
			delay, _ := cmd.Flags().GetInt("delay")
			if delay != 0 {
				st.PlotProfile(t, n, time.Duration(delay)*time.Millisecond)
			} else {
				st.PlotProfile(t, n)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().IntP("case", "c", 0, "canonical case to run: 0 = SOD Shock Tube, 1 = 123 Expansion, 2 = Left Blast Wave, 3 = Blast Collision")
	SolveCmd.Flags().StringP("input", "i", "", "YAML input file describing the problem, overrides -c")
	SolveCmd.Flags().Float64P("finalTime", "t", 0.2, "time at which to report wave positions and sample the profile")
	SolveCmd.Flags().IntP("nSamples", "n", 100, "number of uniform profile sample points")
	SolveCmd.Flags().IntP("delay", "d", 0, "milliseconds to hold the plot before exiting, 0 holds forever")
	SolveCmd.Flags().BoolP("graph", "g", false, "display the solution profile")
	SolveCmd.Flags().Bool("cpuprofile", false, "write a CPU profile for the solve")
}

func printSolution(st *shock_tube.ShockTube, t float64) {
	var (
		ss = st.Star
		ws = st.Waves(t)
	)
	if ss.Vacuum {
		fmt.Printf("Vacuum forming configuration - star state is not meaningful\n")
	}
	fmt.Printf("Pstar = %10.5f, Ustar = %10.5f\n", ss.P, ss.U)
	fmt.Printf("Converged = %v, iterations = %d, residual = %10.3e\n", ss.Converged, ss.Iterations, ss.Residual)
	fmt.Printf("RhoStarL = %10.5f, RhoStarR = %10.5f\n",
		exact_riemann.EdgeDensity(ss.P, st.Left), exact_riemann.EdgeDensity(ss.P, st.Right))
	fmt.Printf("Left wave: %s, Right wave: %s\n", ws.LeftKind, ws.RightKind)
	fmt.Printf("Wave positions at t = %8.4f:\n", t)
	fmt.Printf("Left  [%8.4f, %8.4f], Contact %8.4f, Right [%8.4f, %8.4f]\n",
		ws.LeftHead, ws.LeftTail, ws.Contact, ws.RightTail, ws.RightHead)
}
