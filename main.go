package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/jcorbin/specky/internal/config"
	"github.com/jcorbin/specky/internal/logio"
)

// cliOptions is parsed by go-flags, in the manner of sqldef's cmd/*/*.go
// parseOptions functions: a flat struct of long/short flags plus one
// positional argument.
type cliOptions struct {
	Trace  bool   `long:"trace" description:"log one line per executed Log statement"`
	Dump   bool   `long:"dump" description:"pretty-print the final memory and cursor after running"`
	Bench  bool   `long:"bench" description:"repeatedly run the program and report timing instead of its output"`
	Config string `long:"config" description:"TOML config file for benchmark/trace settings" value-name:"path"`

	Args struct {
		Source string `positional-arg-name:"source" description:"path to a .specky source file"`
	} `positional-args:"yes"`
}

func main() {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options] source.specky"
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if opts.Args.Source == "" {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "specky: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	f, err := os.Open(opts.Args.Source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "specky: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	program, err := ParseProgram(opts.Args.Source, f)
	if err != nil {
		// Parse-error rendering stays monochrome.
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if opts.Bench {
		result := RunBenchmark(program, cfg)
		fmt.Printf("%d runs: min=%v max=%v avg=%v\n",
			result.Iterations, result.Min, result.Max, result.Average())
		return
	}

	runOpts := []Option{WithStdin(os.Stdin), WithStdout(os.Stdout)}
	if opts.Trace || cfg.Trace.Enabled {
		log := &logio.Logger{}
		log.SetOutput(os.Stderr)
		defer log.Close()
		runOpts = append(runOpts, WithTrace(log))
	}

	in := New(runOpts...)
	_, err = in.Run(program)
	if opts.Dump {
		dumpInterp(os.Stdout, in)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "specky: %v\n", err)
		os.Exit(1)
	}
}
