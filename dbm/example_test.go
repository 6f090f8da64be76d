// Package dbm_test provides runnable examples of the DBM algebra.
package dbm_test

import (
	"fmt"

	"github.com/ticktac-project/tchecker-go/dbm"
)

// ExampleDBM_Constrain builds a 2-clock universal-positive zone and
// constrains x1 to be at most 5.
func ExampleDBM_Constrain() {
	d, err := dbm.UniversalPositive(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if _, err := d.Constrain(1, 0, dbm.Le, 5); err != nil {
		fmt.Println("error:", err)
		return
	}
	c, err := d.At(1, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)
	// Output: <=5
}

// ExampleDBM_ResetToValue shows resetting a clock to a fixed value: after
// resetting x1 to 7, both D[x1][0]==7 and D[0][x1]==-7 hold.
func ExampleDBM_ResetToValue() {
	d, err := dbm.UniversalPositive(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := d.ResetToValue(1, 7); err != nil {
		fmt.Println("error:", err)
		return
	}
	x0, _ := d.At(1, 0)
	zx, _ := d.At(0, 1)
	fmt.Printf("x1=%d z-x1=%d\n", x0.Value, zx.Value)
	// Output: x1=7 z-x1=-7
}
