/*
Package main implements Specky, an interpreter for a small stack-free,
pointer-oriented esoteric programming language.

A Specky program is a flat sequence of statements, each built from a single
operator and an optional operand expression. There is no stack and no call
frames: the interpreter holds one cursor value ("the pointer"), a memory
mapping value to value, and a program counter, and each statement reads or
writes through that cursor.

Most of the interesting behavior lives in the operand resolution procedure
known as "the reader": an operand carries a count of chained memory
dereferences to apply before use, and that chain is defined even when it
loops back on itself partway through (see reader.go).

The package is organized leaves-first, matching its own three-stage
pipeline:

  - lexer.go, token.go: scan source text into tokens.
  - parser.go, ast.go: fold tokens into a flat []Statement.
  - value.go, memory.go, reader.go, ops.go, interp.go, format.go: the value
    model, memory, dereference chaining, operator table, and evaluator loop.

main.go, bench.go and the internal/ packages are the CLI, benchmarking
harness, and small single-concern I/O helpers around that core; none of
them participate in language semantics.
*/
package main
