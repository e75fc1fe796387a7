package main

import (
	"bufio"
	"bytes"
	"io"

	"github.com/jcorbin/specky/internal/logio"
)

// Option configures an Interp at construction time. The apply-interface
// plus merging combinator below is carried over from the VMOption pattern
// this interpreter's evaluator loop is itself adapted from.
type Option interface{ apply(in *Interp) }

var defaultOptions = Options(
	withStdin(bytes.NewReader(nil)),
	withStdout(io.Discard),
)

// Options flattens and normalizes a list of Option values, so that nil and
// already-merged Options values compose cleanly.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*Interp) {}

type options []Option

func (opts options) apply(in *Interp) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(in)
		}
	}
}

type stdinOption struct{ io.Reader }
type stdoutOption struct{ io.Writer }
type traceOption struct{ *logio.Logger }

// WithStdin sets the Reader Input statements read lines from.
func WithStdin(r io.Reader) Option { return withStdin(r) }

// WithStdout sets the Writer Log statements write to, in addition to the
// always-on in-memory capture buffer Run returns.
func WithStdout(w io.Writer) Option { return withStdout(w) }

// WithTrace attaches a Logger that records one TRACE line per Log
// statement executed; it plays no role in program output.
func WithTrace(l *logio.Logger) Option { return withTrace(l) }

func withStdin(r io.Reader) stdinOption   { return stdinOption{r} }
func withStdout(w io.Writer) stdoutOption { return stdoutOption{w} }
func withTrace(l *logio.Logger) traceOption { return traceOption{l} }

func (o stdinOption) apply(in *Interp)  { in.stdin = bufio.NewReader(o.Reader) }
func (o stdoutOption) apply(in *Interp) { in.extOut = o.Writer }
func (o traceOption) apply(in *Interp)  { in.trace = o.Logger }
