package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/k0kubun/pp/v3"
)

// memorySnapshot is a pretty-printable rendering of an Interp's final state,
// built for the CLI's --dump flag. It exists only so pp has plain structs and
// a sorted slice to walk, rather than Value's unexported fields and Memory's
// internal map.
type memorySnapshot struct {
	Cursor string
	Cells  []memoryCell
}

type memoryCell struct {
	Key   string
	Value string
}

// dumpInterp pretty-prints in's cursor and every memory cell to out, in the
// manner sqldef's mysql parser uses pp.Println to dump a parsed AST.
func dumpInterp(out io.Writer, in *Interp) {
	snap := memorySnapshot{Cursor: stringifyValue(in.Cursor(), false)}
	in.Memory().Each(func(key, val Value) {
		snap.Cells = append(snap.Cells, memoryCell{
			Key:   stringifyValue(key, false),
			Value: fmt.Sprintf("%s(%s)", val.Kind(), stringifyValue(val, false)),
		})
	})
	sort.Slice(snap.Cells, func(i, j int) bool { return snap.Cells[i].Key < snap.Cells[j].Key })

	printer := pp.New()
	printer.Output = out
	printer.Println(snap)
}
