package main

import (
	"io"
	"time"

	"github.com/jcorbin/specky/internal/config"
)

// BenchResult summarizes repeated runs of the same program, an external
// collaborator to the evaluator proper rather than a language feature.
type BenchResult struct {
	Iterations int
	Min        time.Duration
	Max        time.Duration
	Total      time.Duration
}

// Average returns the mean wall time per iteration.
func (r BenchResult) Average() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Iterations)
}

// RunBenchmark re-runs program from a fresh Interp up to cfg's iteration
// and wall-time caps, whichever is reached first.
func RunBenchmark(program []Statement, cfg *config.Config) BenchResult {
	deadline := time.Now().Add(time.Duration(cfg.Benchmark.MaxSeconds) * time.Second)
	var res BenchResult
	for i := 0; i < cfg.Benchmark.MaxIterations && time.Now().Before(deadline); i++ {
		in := New(WithStdout(io.Discard))
		start := time.Now()
		in.Run(program)
		elapsed := time.Since(start)

		res.Iterations++
		res.Total += elapsed
		if res.Iterations == 1 || elapsed < res.Min {
			res.Min = elapsed
		}
		if elapsed > res.Max {
			res.Max = elapsed
		}
	}
	return res
}
