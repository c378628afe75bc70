package bnb_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/bnb"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The textbook instance — three items with weights 10, 20, 30 and values
//	60, 100, 120 against capacity 50. The greedy fractional fill would start
//	with the ratio-6 item, but the exact 0/1 optimum skips it: items 1 and 2
//	fill the knapsack perfectly for a value of 220.
//
// Use case:
//
//	Any exact subset-selection under a single additive budget.
//
// Complexity: exponential worst case; instances like this resolve in a few
// dozen node expansions thanks to the fractional bound.
func ExampleSolve() {
	items, err := bnb.Items([]int64{60, 100, 120}, []int64{10, 20, 30})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := bnb.Solve(items, 50, bnb.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%d included=%v\n", res.MaxValue, res.Included)
	// Output:
	// value=220 included=[1 2]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve_zeroCapacity
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Capacity 0 is legal and yields the trivial empty solution regardless of
//	the item set — nothing fits, nothing is chosen.
func ExampleSolve_zeroCapacity() {
	items, _ := bnb.Items([]int64{3, 4}, []int64{2, 3})

	res, err := bnb.Solve(items, 0, bnb.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%d included=%v\n", res.MaxValue, res.Included)
	// Output:
	// value=0 included=[]
}
