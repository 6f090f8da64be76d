// Package covreach_test provides a runnable example of covering
// reachability search.
package covreach_test

import (
	"fmt"

	"github.com/ticktac-project/tchecker-go/algorithms/covreach"
	"github.com/ticktac-project/tchecker-go/system"
	"github.com/ticktac-project/tchecker-go/vm"
	"github.com/ticktac-project/tchecker-go/zg"
)

// ExampleRun searches a counter system for the first state where x==3.
func ExampleRun() {
	b := system.NewBuilder()
	p0, _ := b.AddProcess("p")
	xv, _ := b.AddIntVar("x", 0, 10, 0)
	loc, _ := b.AddLocation(p0, "l", true, false, false, nil)
	guard := vm.Program{
		{Op: vm.OpLoad, Operand: int64(xv)}, {Op: vm.OpPush, Operand: 5},
		{Op: vm.OpLt},
		{Op: vm.OpRet},
	}
	statement := vm.Program{
		{Op: vm.OpLoad, Operand: int64(xv)}, {Op: vm.OpPush, Operand: 1}, {Op: vm.OpAdd},
		{Op: vm.OpStore, Operand: int64(xv)},
		{Op: vm.OpPush, Operand: 1},
		{Op: vm.OpRet},
	}
	_, _ = b.AddEdge(p0, loc, "up", loc, guard, statement)
	sys, _ := b.Build()

	target := func(s zg.State) bool { return len(s.IntVars) > 0 && s.IntVars[0] == 3 }
	res, err := covreach.Run(sys, target)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status == covreach.Reached)
	// Output: true
}
