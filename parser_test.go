package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseAll(t *testing.T, src string) []Statement {
	t.Helper()
	stmts, err := ParseProgram(t.Name(), strings.NewReader(src))
	require.NoError(t, err)
	return stmts
}

func Test_Parser_loadSymbol(t *testing.T) {
	stmts := parseAll(t, "|< x")
	require.Len(t, stmts, 1)
	require.Equal(t, OpLoad, stmts[0].Op)
	require.Equal(t, SymbolValue("x"), stmts[0].Operand.Value)
	require.Equal(t, uint(0), stmts[0].Operand.Reader)
}

func Test_Parser_readerBumpCount(t *testing.T) {
	stmts := parseAll(t, "|< §§§x")
	require.Len(t, stmts, 1)
	require.Equal(t, uint(3), stmts[0].Operand.Reader)
}

func Test_Parser_signedIntegerLiterals(t *testing.T) {
	stmts := parseAll(t, "<= -5")
	n, ok := stmts[0].Operand.Value.Int()
	require.True(t, ok)
	require.Equal(t, "-5", n.String())

	stmts = parseAll(t, "<= --5")
	n, ok = stmts[0].Operand.Value.Int()
	require.True(t, ok)
	require.Equal(t, "5", n.String(), "double negation cancels")

	stmts = parseAll(t, "<= +-5")
	n, ok = stmts[0].Operand.Value.Int()
	require.True(t, ok)
	require.Equal(t, "-5", n.String())
}

func Test_Parser_floatLiteral(t *testing.T) {
	stmts := parseAll(t, "<= 3.5")
	f, ok := stmts[0].Operand.Value.Float()
	require.True(t, ok)
	got, _ := f.Float64()
	require.Equal(t, 3.5, got)
}

func Test_Parser_textLiteral(t *testing.T) {
	stmts := parseAll(t, `<= /ab\ncd/`)
	s, ok := stmts[0].Operand.Value.Text()
	require.True(t, ok)
	require.Equal(t, "ab\ncd", s)
}

func Test_Parser_sequentialConditionalSkipQuantity(t *testing.T) {
	for _, tc := range []struct {
		src     string
		op      Op
		wantQty uint
	}{
		{"?", OpTruthy, 1},
		{"??", OpTruthy, 2},
		{"???", OpTruthy, 3},
		{"!", OpFalsy, 1},
		{"!!", OpFalsy, 2},
		{"$", OpExists, 1},
		{"°°", OpEmpty, 2},
	} {
		t.Run(tc.src, func(t *testing.T) {
			stmts := parseAll(t, tc.src)
			require.Len(t, stmts, 1)
			require.Equal(t, tc.op, stmts[0].Op)
			require.Equal(t, tc.wantQty, stmts[0].SkipQty)
		})
	}
}

func Test_Parser_jumpGroups(t *testing.T) {
	stmts := parseAll(t, "[<] L [>] L")
	require.Len(t, stmts, 2)
	require.Equal(t, OpDefine, stmts[0].Op)
	require.Equal(t, SymbolValue("L"), stmts[0].Operand.Value)
	require.Equal(t, OpJump, stmts[1].Op)
	require.Equal(t, SymbolValue("L"), stmts[1].Operand.Value)
}

func Test_Parser_printGroupFlags(t *testing.T) {
	stmts := parseAll(t, `{~@\}`)
	require.Len(t, stmts, 1)
	require.Equal(t, OpLog, stmts[0].Op)
	require.Equal(t, printPointer, stmts[0].Print.kind)
	require.True(t, stmts[0].Print.reverse)
	require.False(t, stmts[0].Print.newline, "single backslash flips newline off")
}

func Test_Parser_printGroupDoubleBackslashRestoresNewline(t *testing.T) {
	stmts := parseAll(t, `{@\\}`)
	require.True(t, stmts[0].Print.newline)
}

func Test_Parser_inputStatement(t *testing.T) {
	stmts := parseAll(t, `\`)
	require.Len(t, stmts, 1)
	require.Equal(t, OpInput, stmts[0].Op)
}

func Test_Parser_unexpectedTokenIsSyntaxError(t *testing.T) {
	_, err := ParseProgram(t.Name(), strings.NewReader("]"))
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}

func Test_Parser_unterminatedGroupIsEOFError(t *testing.T) {
	_, err := ParseProgram(t.Name(), strings.NewReader("["))
	require.Error(t, err)
	var eofErr *UnexpectedEndOfFileError
	require.ErrorAs(t, err, &eofErr)
}
