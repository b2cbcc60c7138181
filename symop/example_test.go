package symop_test

import (
	"fmt"

	"github.com/katalvlaran/xtalsym/symop"
)

// ExampleParseTriplet parses a three-fold screw generator and composes it
// with itself: three applications add up to a full-cell translation.
func ExampleParseTriplet() {
	op, err := symop.ParseTriplet("-y,x-y,z+1/3")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(op.Triplet())
	fmt.Println(op.Mul(op).Triplet())
	fmt.Println(op.Mul(op).Mul(op).Triplet())
	// Output:
	// -y,x-y,z+1/3
	// -x+y,-x,z+2/3
	// x,y,z
}

// ExampleOp_Inverse inverts a cell-enlarging change-of-basis operator;
// the inverse carries exact thirds.
func ExampleOp_Inverse() {
	op, _ := symop.ParseTriplet("-y+z,x+z,-x+y+z")
	inv, err := op.Inverse()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(inv.Triplet())
	// Output:
	// -1/3*x+2/3*y-1/3*z,-2/3*x+1/3*y+1/3*z,1/3*x+1/3*y+1/3*z
}

// ExampleOp_ApplyToHKL maps a reflection index by the transpose convention.
func ExampleOp_ApplyToHKL() {
	op, _ := symop.ParseTriplet("-y,x-y,z")
	fmt.Println(op.ApplyToHKL([3]int{3, 0, 1}))
	// Output:
	// [0 -3 1]
}
