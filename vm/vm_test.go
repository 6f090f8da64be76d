package vm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ticktac-project/tchecker-go/vm"
)

func TestRun_ArithmeticAndComparison(t *testing.T) {
	// (3 + 4) > 6 -> 1
	prog := vm.Program{
		{Op: vm.OpPush, Operand: 3},
		{Op: vm.OpPush, Operand: 4},
		{Op: vm.OpAdd},
		{Op: vm.OpPush, Operand: 6},
		{Op: vm.OpGt},
		{Op: vm.OpRet},
	}
	res, err := vm.Run(prog, nil, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), res)
}

func TestRun_StoreRespectsBounds(t *testing.T) {
	intvars := []int64{0}
	bounds := []vm.IntVarDomain{{Min: 0, Max: 10}}
	prog := vm.Program{
		{Op: vm.OpPush, Operand: 20},
		{Op: vm.OpStore, Operand: 0},
		{Op: vm.OpRet},
	}
	_, err := vm.Run(prog, intvars, bounds, nil, nil)
	require.Error(t, err)
	var rangeErr vm.IntVarRangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestRun_PushesClockConstraint(t *testing.T) {
	var constraints []vm.ClockConstraint
	// x - y < 5 : push x=1, y=0, cmp=1(strict), c=5
	prog := vm.Program{
		{Op: vm.OpPush, Operand: 1},
		{Op: vm.OpPush, Operand: 0},
		{Op: vm.OpPush, Operand: 1},
		{Op: vm.OpPush, Operand: 5},
		{Op: vm.OpPushClockConstraint},
		{Op: vm.OpPush, Operand: 1},
		{Op: vm.OpRet},
	}
	res, err := vm.Run(prog, nil, nil, &constraints, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), res)
	require.Len(t, constraints, 1)
	require.Equal(t, 1, constraints[0].X)
	require.Equal(t, 0, constraints[0].Y)
}

func TestRun_JumpAndConditional(t *testing.T) {
	// JZ pops 0, so it jumps over the push of 99 to push 42; RET
	prog := vm.Program{
		{Op: vm.OpPush, Operand: 0},
		{Op: vm.OpJz, Operand: 3},
		{Op: vm.OpPush, Operand: 99},
		{Op: vm.OpPush, Operand: 42},
		{Op: vm.OpRet},
	}
	res, err := vm.Run(prog, nil, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, int64(42), res)
}

func TestRun_UnterminatedProgramErrors(t *testing.T) {
	prog := vm.Program{{Op: vm.OpPush, Operand: 1}}
	_, err := vm.Run(prog, nil, nil, nil, nil)
	require.ErrorIs(t, err, vm.ErrUnterminated)
}

func TestRun_LocalFrame(t *testing.T) {
	prog := vm.Program{
		{Op: vm.OpFramePush, Operand: 1},
		{Op: vm.OpPush, Operand: 7},
		{Op: vm.OpStoreLocal, Operand: 0},
		{Op: vm.OpLoadLocal, Operand: 0},
		{Op: vm.OpFramePop},
		{Op: vm.OpRet},
	}
	res, err := vm.Run(prog, nil, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, int64(7), res)
}
