// Package path_test provides runnable examples of path reconstruction.
package path_test

import (
	"fmt"

	"github.com/ticktac-project/tchecker-go/algorithms/covreach"
	"github.com/ticktac-project/tchecker-go/path"
	"github.com/ticktac-project/tchecker-go/system"
	"github.com/ticktac-project/tchecker-go/vm"
	"github.com/ticktac-project/tchecker-go/zg"
)

// ExampleTreeEdgeTo reconstructs the edge sequence from a counter
// system's initial state to the first node where x reaches 2, then
// replays it into (from, label, to) steps.
func ExampleTreeEdgeTo() {
	b := system.NewBuilder()
	p0, _ := b.AddProcess("p")
	xv, _ := b.AddIntVar("x", 0, 5, 0)
	loc, _ := b.AddLocation(p0, "l", true, false, false, nil)
	statement := vm.Program{
		{Op: vm.OpLoad, Operand: int64(xv)}, {Op: vm.OpPush, Operand: 1}, {Op: vm.OpAdd},
		{Op: vm.OpStore, Operand: int64(xv)},
		{Op: vm.OpPush, Operand: 1},
		{Op: vm.OpRet},
	}
	_, _ = b.AddEdge(p0, loc, "up", loc, nil, statement)
	sys, _ := b.Build()

	res, err := covreach.Run(sys, func(s zg.State) bool { return s.IntVars[xv] == 2 })
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	edges, err := path.TreeEdgeTo(res.Graph, res.Found)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	steps, err := path.Of(res.Graph, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range steps {
		fmt.Printf("x: %d -> %d\n", s.From.IntVars[xv], s.To.IntVars[xv])
	}
	// Output:
	// x: 0 -> 1
	// x: 1 -> 2
}
