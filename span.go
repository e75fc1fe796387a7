package main

import "github.com/jcorbin/specky/internal/fileinput"

// span names the source range a token or statement was parsed from, for use
// in error messages. Specky only needs the start location: reporting a
// single point is enough to let a reader find the offending lexeme.
type span struct {
	fileinput.Location
}
