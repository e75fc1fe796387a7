package main

import (
	"github.com/jcorbin/specky/internal/flushio"
	"github.com/jcorbin/specky/internal/panicerr"
)

// New builds an Interp with empty memory and a Null cursor, applying opts
// over the defaults (stdin reads as empty, stdout discarded; Run's capture
// buffer is always active regardless of options).
func New(opts ...Option) *Interp {
	in := &Interp{mem: NewMemory(), cursor: Null()}
	defaultOptions.apply(in)
	Options(opts...).apply(in)
	in.out = flushio.WriteFlushers(
		flushio.NewWriteFlusher(in.extOut),
		flushio.NewWriteFlusher(&in.capture),
	)
	return in
}

// Run evaluates program to completion (or until no statements remain) and
// returns the captured stdout text. Evaluation itself is total: the only
// errors Run can return come from an isolated panic/Goexit in the
// evaluator, or from flushing the output sink.
func (in *Interp) Run(program []Statement) (string, error) {
	in.program = program
	in.pc = 0

	runErr := panicerr.Recover("interp", func() error {
		for in.pc < len(in.program) {
			in.step(in.program[in.pc])
			in.pc++
		}
		return nil
	})
	flushErr := in.out.Flush()
	if runErr != nil {
		return in.capture.String(), runErr
	}
	return in.capture.String(), flushErr
}
