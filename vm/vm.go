// SPDX-License-Identifier: MIT
package vm

import "github.com/ticktac-project/tchecker-go/dbm"

// IntVarDomain bounds an integer variable for range-checking OpStore,
// spec.md §7's "Arithmetic range error ... integer-var out of its
// declared bounds during a statement".
type IntVarDomain struct {
	Min, Max int64
}

// ClockConstraint is the side-effect emitted by OpPushClockConstraint:
// x - y cmp c.
type ClockConstraint struct {
	X, Y int
	Cmp  dbm.Cmp
	C    int64
}

// ClockReset is the side-effect emitted by OpPushClockReset: the general
// x := y + c form (y == 0, c == 0 for a point reset "x := c"; y != 0,
// c == 0 for a clock copy "x := y").
type ClockReset struct {
	X, Y int
	C    int64
}

// frame is a scratch array of local variables, pushed/popped by
// OpFramePush/OpFramePop around nested subexpression evaluation.
type frame struct {
	locals []int64
}

// Run interprets prog against intvars (read by OpLoad, written by
// OpStore and range-checked against bounds), appending any clock
// constraints/resets the program pushes to the supplied sinks. It
// returns prog's RET/RETZ result, or an error on stack underflow, a
// bad jump target, an unterminated program, or an out-of-bounds store.
//
// Grounded on original_source/include/tchecker/vm/vm.hh's run contract.
func Run(prog Program, intvars []int64, bounds []IntVarDomain, constraints *[]ClockConstraint, resets *[]ClockReset) (int64, error) {
	var stack []int64
	var frames []frame

	push := func(v int64) { stack = append(stack, v) }
	pop := func() (int64, error) {
		if len(stack) == 0 {
			return 0, ErrStackUnderflow
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, nil
	}
	popN := func(n int) ([]int64, error) {
		if len(stack) < n {
			return nil, ErrStackUnderflow
		}
		out := make([]int64, n)
		copy(out, stack[len(stack)-n:])
		stack = stack[:len(stack)-n]
		return out, nil
	}

	pc := 0
	for pc < len(prog) {
		ins := prog[pc]
		switch ins.Op {
		case OpPush:
			push(ins.Operand)
		case OpLoad:
			idx := int(ins.Operand)
			if idx < 0 || idx >= len(intvars) {
				return 0, ErrStackUnderflow
			}
			push(intvars[idx])
		case OpStore:
			v, err := pop()
			if err != nil {
				return 0, err
			}
			idx := int(ins.Operand)
			if idx < 0 || idx >= len(intvars) {
				return 0, ErrStackUnderflow
			}
			if idx < len(bounds) && (v < bounds[idx].Min || v > bounds[idx].Max) {
				return 0, IntVarRangeError{Index: idx, Value: v, Min: bounds[idx].Min, Max: bounds[idx].Max}
			}
			intvars[idx] = v
			push(v)

		case OpAdd, OpSub, OpMul, OpDiv, OpMod:
			ops, err := popN(2)
			if err != nil {
				return 0, err
			}
			a, b := ops[0], ops[1]
			switch ins.Op {
			case OpAdd:
				push(a + b)
			case OpSub:
				push(a - b)
			case OpMul:
				push(a * b)
			case OpDiv:
				push(a / b)
			case OpMod:
				push(a % b)
			}
		case OpNeg:
			a, err := pop()
			if err != nil {
				return 0, err
			}
			push(-a)

		case OpEq, OpNeq, OpLt, OpLe, OpGt, OpGe:
			ops, err := popN(2)
			if err != nil {
				return 0, err
			}
			a, b := ops[0], ops[1]
			var res bool
			switch ins.Op {
			case OpEq:
				res = a == b
			case OpNeq:
				res = a != b
			case OpLt:
				res = a < b
			case OpLe:
				res = a <= b
			case OpGt:
				res = a > b
			case OpGe:
				res = a >= b
			}
			push(boolToInt(res))

		case OpAnd:
			ops, err := popN(2)
			if err != nil {
				return 0, err
			}
			push(boolToInt(ops[0] != 0 && ops[1] != 0))
		case OpOr:
			ops, err := popN(2)
			if err != nil {
				return 0, err
			}
			push(boolToInt(ops[0] != 0 || ops[1] != 0))
		case OpNot:
			a, err := pop()
			if err != nil {
				return 0, err
			}
			push(boolToInt(a == 0))

		case OpPushClockConstraint:
			ops, err := popN(4)
			if err != nil {
				return 0, err
			}
			x, y, cmpv, c := ops[0], ops[1], ops[2], ops[3]
			cmp := dbm.Le
			if cmpv != 0 {
				cmp = dbm.Lt
			}
			*constraints = append(*constraints, ClockConstraint{X: int(x), Y: int(y), Cmp: cmp, C: c})
		case OpPushClockReset:
			ops, err := popN(3)
			if err != nil {
				return 0, err
			}
			x, y, c := ops[0], ops[1], ops[2]
			*resets = append(*resets, ClockReset{X: int(x), Y: int(y), C: c})

		case OpFramePush:
			frames = append(frames, frame{locals: make([]int64, ins.Operand)})
		case OpFramePop:
			if len(frames) == 0 {
				return 0, ErrNoFrame
			}
			frames = frames[:len(frames)-1]
		case OpLoadLocal:
			if len(frames) == 0 {
				return 0, ErrNoFrame
			}
			cur := &frames[len(frames)-1]
			idx := int(ins.Operand)
			if idx < 0 || idx >= len(cur.locals) {
				return 0, ErrStackUnderflow
			}
			push(cur.locals[idx])
		case OpStoreLocal:
			if len(frames) == 0 {
				return 0, ErrNoFrame
			}
			v, err := pop()
			if err != nil {
				return 0, err
			}
			cur := &frames[len(frames)-1]
			idx := int(ins.Operand)
			if idx < 0 || idx >= len(cur.locals) {
				return 0, ErrStackUnderflow
			}
			cur.locals[idx] = v
			push(v)

		case OpJmp:
			target := int(ins.Operand)
			if target < 0 || target >= len(prog) {
				return 0, ErrBadJumpTarget
			}
			pc = target
			continue
		case OpJz:
			v, err := pop()
			if err != nil {
				return 0, err
			}
			if v == 0 {
				target := int(ins.Operand)
				if target < 0 || target >= len(prog) {
					return 0, ErrBadJumpTarget
				}
				pc = target
				continue
			}

		case OpRet, OpRetz:
			return pop()

		default:
			return 0, ErrUnknownOp
		}
		pc++
	}
	return 0, ErrUnterminated
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
