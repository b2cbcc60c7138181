package symgroup_test

import (
	"fmt"

	"github.com/katalvlaran/xtalsym/symgroup"
)

// ExampleSymopsFromHall closes the Hall symbol of P 21/c (space group 14)
// and lists the canonical operation set.
func ExampleSymopsFromHall() {
	gops, err := symgroup.SymopsFromHall("-P 2ybc")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("order:", gops.Order())
	for _, op := range gops.AllOpsSorted() {
		fmt.Println(op.Triplet())
	}
	// Output:
	// order: 4
	// -x,-y,-z
	// -x,y+1/2,-z+1/2
	// x,-y+1/2,z+1/2
	// x,y,z
}

// ExampleGroupOps_GridFactors picks the map sampling P 61 requires along
// its six-fold screw axis.
func ExampleGroupOps_GridFactors() {
	gops, _ := symgroup.SymopsFromHall("P 61")
	fmt.Println(gops.GridFactors())
	// Output:
	// [1 1 6]
}
