package main

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/jcorbin/specky/internal/flushio"
	"github.com/jcorbin/specky/internal/logio"
)

// Interp holds the evaluator's state: memory, cursor, program counter, and
// the two I/O collaborators (Input's stdin line reader, Log's stdout tee).
type Interp struct {
	program []Statement
	mem     *Memory
	cursor  Value
	pc      int

	stdin   *bufio.Reader
	extOut  io.Writer
	capture bytes.Buffer
	out     flushio.WriteFlusher
	trace   *logio.Logger
}

// Memory exposes the evaluator's memory, for the debug dumper and tests.
func (in *Interp) Memory() *Memory { return in.mem }

// Cursor returns the current cursor value.
func (in *Interp) Cursor() Value { return in.cursor }

func (in *Interp) step(stmt Statement) {
	switch stmt.Op {
	case OpLoad:
		in.cursor = compressCursor(resolveOperand(in.mem, stmt.Operand))

	case OpAssign:
		v := resolveOperand(in.mem, stmt.Operand)
		if v.Kind() == KindTime {
			v = TimeNow()
		}
		in.mem.Store(in.cursor, v)

	case OpOverwrite:
		v := resolveOperand(in.mem, stmt.Operand)
		in.mem.Store(v, in.cursor)

	case OpSwap:
		v := resolveOperand(in.mem, stmt.Operand)
		a, b := in.mem.Load(in.cursor), in.mem.Load(v)
		in.mem.Store(in.cursor, b)
		in.mem.Store(v, a)

	case OpDefine:
		v := resolveOperand(in.mem, stmt.Operand)
		in.mem.Store(v, JumpAddressValue(uint(in.pc)))

	case OpJump:
		v := resolveOperand(in.mem, stmt.Operand)
		if target, ok := in.mem.Load(v).JumpAddr(); ok {
			in.pc = int(target)
		}
		// A Jump to an undefined (or overwritten) label is a silent no-op.

	case OpTruthy, OpFalsy, OpExists, OpEmpty:
		if !predicateHolds(stmt.Op, in.mem.Load(in.cursor)) {
			in.pc += int(stmt.SkipQty)
		}

	case OpInput:
		in.mem.Store(in.cursor, classifyInputLine(in.readInputLine()))

	case OpLog:
		in.writeOut(FormatLog(in.mem, in.cursor, stmt.Print))

	default:
		left := in.mem.Load(in.cursor)
		right := resolveRight(in.mem, stmt.Operand)
		in.mem.Store(in.cursor, evalBinary(stmt.Op, left, right))
	}
}

// compressCursor re-narrows a wide Integer to SmallInt immediately after a
// Load.
func compressCursor(v Value) Value {
	if n, ok := v.Int(); ok {
		return IntValue(n)
	}
	return v
}

func predicateHolds(op Op, v Value) bool {
	switch op {
	case OpTruthy:
		return v.Truthy()
	case OpFalsy:
		return !v.Truthy()
	case OpExists:
		return v.Kind() != KindNull
	case OpEmpty:
		return v.Kind() == KindNull
	}
	return false
}

func (in *Interp) writeOut(s string) {
	io.WriteString(in.out, s) //nolint:errcheck // best-effort, matches the evaluator's total semantics
	if in.trace != nil {
		in.trace.Leveledf("TRACE")("log %q", s)
	}
}

func (in *Interp) readInputLine() string {
	line, _ := in.stdin.ReadString('\n')
	return strings.TrimSpace(line)
}
