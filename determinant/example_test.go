package determinant_test

import (
	"fmt"

	"github.com/qchem-go/spinorbit/determinant"
)

// ExampleEnumerate lists the determinant basis of two electrons in two
// orbitals, in the reproducible enumeration order.
func ExampleEnumerate() {
	dets, err := determinant.Enumerate(2, 1, 1)
	if err != nil {
		fmt.Println("enumerate:", err)

		return
	}

	for _, d := range dets {
		fmt.Println(d.String(2))
	}
	// Output:
	// |20>
	// |ab>
	// |ba>
	// |02>
}
