package shock_tube

import (
	"fmt"

	"github.com/notargets/riemann/exact_riemann"
)

type CaseType uint8

const (
	SOD_TUBE CaseType = iota
	EXPANSION_123
	BLAST_WAVE_LEFT
	BLAST_COLLISION
)

var (
	case_names = []string{
		"SOD Shock Tube",
		"123 Double Expansion",
		"Left Blast Wave",
		"Blast Wave Collision",
	}
)

func (ct CaseType) String() string {
	return case_names[int(ct)]
}

// NewShockTubeCase builds one of the canonical test problems on the unit tube
// with the diaphragm at 0.5
func NewShockTubeCase(ct CaseType) (st *ShockTube) {
	var left, right exact_riemann.GasState
	switch ct {
	case SOD_TUBE:
		left = exact_riemann.NewGasState(1.4, 1, 0, 1)
		right = exact_riemann.NewGasState(1.4, 0.125, 0, 0.1)
	case EXPANSION_123:
		left = exact_riemann.NewGasState(1.4, 1, -2, 0.4)
		right = exact_riemann.NewGasState(1.4, 1, 2, 0.4)
	case BLAST_WAVE_LEFT:
		left = exact_riemann.NewGasState(1.4, 1, 0, 1000)
		right = exact_riemann.NewGasState(1.4, 1, 0, 0.01)
	case BLAST_COLLISION:
		left = exact_riemann.NewGasState(1.4, 5.99924, 19.5975, 460.894)
		right = exact_riemann.NewGasState(1.4, 5.99242, -6.19633, 46.095)
	default:
		panic(fmt.Errorf("unknown case type %d", ct))
	}
	st = NewShockTube(left, right, 0.5, 0, 1)
	return
}
