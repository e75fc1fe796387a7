package main

import "fmt"

// ParseError is implemented by every error the lexer or parser can produce:
// a small sum of parse-error kinds, each carrying its own source span.
type ParseError interface {
	error
	Span() span
}

// SyntaxError reports an unexpected token at statement or sub-statement
// position, carrying the expected class, the token actually found, and the
// source span.
type SyntaxError struct {
	Expected string
	Found    token
	Where    span
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: expected %s, found %v", e.Where, e.Expected, e.Found.kind)
}

func (e *SyntaxError) Span() span { return e.Where }

// CustomError reports a lexing/parsing failure with a free-form message,
// such as a trailing backslash inside a text literal.
type CustomError struct {
	Message string
	Where   span
}

func (e *CustomError) Error() string { return fmt.Sprintf("%v: %s", e.Where, e.Message) }
func (e *CustomError) Span() span    { return e.Where }

// UnexpectedEndOfFileError reports input ending mid-construct.
type UnexpectedEndOfFileError struct {
	Where span
}

func (e *UnexpectedEndOfFileError) Error() string {
	return fmt.Sprintf("%v: unexpected end of file", e.Where)
}

func (e *UnexpectedEndOfFileError) Span() span { return e.Where }

func syntaxError(where span, expected string, found token) error {
	return &SyntaxError{Expected: expected, Found: found, Where: where}
}

func customError(where span, msg string) error {
	return &CustomError{Message: msg, Where: where}
}

func unexpectedEOF(where span) error {
	return &UnexpectedEndOfFileError{Where: where}
}
