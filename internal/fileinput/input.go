// Package fileinput provides line/column tracked rune reading over a single
// named source, normalizing "\r\n" to "\n" as runes are read.
package fileinput

import (
	"fmt"
	"io"

	"github.com/jcorbin/specky/internal/runeio"
)

// Location names a line and column within a named source.
type Location struct {
	Name   string
	Line   int
	Column int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v:%v", loc.Name, loc.Line, loc.Column) }

// Input implements sequential rune reading over a single named source,
// tracking the current Location and collapsing "\r\n" into "\n" so that
// downstream consumers (the lexer) never observe a carriage return.
type Input struct {
	rr       runeio.Reader
	name     string
	loc      Location
	pushback *rune
}

// New wraps r as an Input named name, starting at line 1 column 0.
func New(name string, r io.Reader) *Input {
	return &Input{
		rr:   runeio.NewReader(r),
		name: name,
		loc:  Location{Name: name, Line: 1, Column: 0},
	}
}

// Loc returns the location of the rune most recently returned by ReadRune.
func (in *Input) Loc() Location { return in.loc }

// ReadRune reads one logical rune, normalizing any "\r\n" pair (or a lone
// "\r") to a single '\n', and advancing the tracked Location.
func (in *Input) ReadRune() (rune, error) {
	r, err := in.next()
	if err != nil {
		return 0, err
	}

	if r == '\r' {
		if r2, err2 := in.next(); err2 == nil && r2 != '\n' {
			in.unread(r2)
		} else if err2 != nil && err2 != io.EOF {
			return 0, err2
		}
		r = '\n'
	}

	in.advance(r)
	return r, nil
}

func (in *Input) next() (rune, error) {
	if in.pushback != nil {
		r := *in.pushback
		in.pushback = nil
		return r, nil
	}
	r, _, err := in.rr.ReadRune()
	return r, err
}

func (in *Input) unread(r rune) { in.pushback = &r }

func (in *Input) advance(r rune) {
	if r == '\n' {
		in.loc.Line++
		in.loc.Column = 0
	} else {
		in.loc.Column++
	}
}
