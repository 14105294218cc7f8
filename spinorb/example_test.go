package spinorb_test

import (
	"fmt"

	"github.com/qchem-go/spinorbit/core"
	"github.com/qchem-go/spinorbit/spinorb"
)

// ExampleExpandOneBody lifts a one-orbital integral set to spin
// orbitals: one alpha entry, one beta entry, nothing in between.
func ExampleExpandOneBody() {
	src := &core.DenseSource{
		NOrb: 1,
		Sym:  []int{0},
		HA:   []float64{-1.25},
		HB:   []float64{-1.25},
		VAA:  []float64{0},
		VAB:  []float64{0.675},
		VBB:  []float64{0},
	}

	oei, err := spinorb.ExpandOneBody(src)
	if err != nil {
		fmt.Println("expand:", err)

		return
	}

	for _, e := range oei {
		fmt.Printf("(%d,%d) %.3f\n", e.I, e.J, e.V)
	}
	// Output:
	// (0,0) -1.250
	// (1,1) -1.250
}
