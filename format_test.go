package main

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FormatLog_pointerPrint(t *testing.T) {
	// {@} prints the cursor, {~@} reverses it, \ suppresses the trailing
	// newline.
	m := NewMemory()
	cursor := SymbolValue("ab")

	assert.Equal(t, "ab\n", FormatLog(m, cursor, printOptions{kind: printPointer, newline: true}))
	assert.Equal(t, "ba\n", FormatLog(m, cursor, printOptions{kind: printPointer, reverse: true, newline: true}))
	assert.Equal(t, "ab", FormatLog(m, cursor, printOptions{kind: printPointer, newline: false}))
	assert.Equal(t, "ba", FormatLog(m, cursor, printOptions{kind: printPointer, reverse: true, newline: false}))
}

func Test_FormatLog_valueKindAppliesReaderBump(t *testing.T) {
	m := NewMemory()
	cursor := SymbolValue("c")
	m.Store(cursor, IntFromInt64(1))
	m.Store(IntFromInt64(1), IntFromInt64(2))

	got := FormatLog(m, cursor, printOptions{kind: printValue, readerBump: 1, newline: false})
	assert.Equal(t, "2", got)
}

func Test_FormatLog_typeKind(t *testing.T) {
	m := NewMemory()
	cursor := SymbolValue("c")
	m.Store(cursor, IntFromInt64(1))
	assert.Equal(t, "SmallInt\n", FormatLog(m, cursor, printOptions{kind: printType, newline: true}))
}

func Test_FormatLog_special(t *testing.T) {
	m := NewMemory()
	cursor := SymbolValue("c")
	m.Store(cursor, Bool(true))
	assert.Equal(t, "1", FormatLog(m, cursor, printOptions{kind: printValue, special: true, newline: false}))
}

func Test_FormatLog_spaceCount(t *testing.T) {
	m := NewMemory()
	cursor := SymbolValue("x")
	assert.Equal(t, "x  \n", FormatLog(m, cursor, printOptions{kind: printPointer, spaceCount: 2, newline: true}))
}

func Test_transposeLines(t *testing.T) {
	assert.Equal(t, "ac\nbd", transposeLines("ab\ncd"))
	assert.Equal(t, "ac\nbd\n", transposeLines("ab\ncd\n"))
	assert.Equal(t, "ac\nb ", transposeLines("ab\nc"))
}

func Test_FormatLog_vertical(t *testing.T) {
	m := NewMemory()
	cursor := SymbolValue("c")
	m.Store(cursor, TextValue("ab"))
	got := FormatLog(m, cursor, printOptions{kind: printValue, special: true, vertical: true, newline: false})
	assert.Equal(t, "a\nb", got)
}

func Test_FormatLog_assignReparsesAndStores(t *testing.T) {
	m := NewMemory()
	cursor := SymbolValue("c")
	m.Store(cursor, IntFromInt64(41))
	opts := printOptions{kind: printValue, newline: false, assign: true}
	s := FormatLog(m, cursor, opts)
	require.Equal(t, "41", s)
	assert.True(t, m.Load(cursor).Equal(IntFromInt64(41)))
}

func Test_stringifyValue_matrix(t *testing.T) {
	bigN, ok := new(big.Int).SetString("170141183460469231731687303715884105728", 10) // 2^127
	require.True(t, ok)

	for _, tc := range []struct {
		name        string
		v           Value
		normal      string
		special     string
		skipSpecial bool
	}{
		{"null", Null(), "null", "\x00", false},
		{"true", Bool(true), "true", "1", false},
		{"false", Bool(false), "false", "0", false},
		{"int", IntFromInt64(65), "65", "A", false},
		{"wide int", IntValue(bigN), bigN.String(), "", true},
		{"text", TextValue("a/b"), `/a\/b/`, "a/b", false},
		{"symbol", SymbolValue("Hi"), "Hi", "", true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.normal, stringifyValue(tc.v, false))
			if !tc.skipSpecial {
				assert.Equal(t, tc.special, stringifyValue(tc.v, true))
			}
		})
	}
}

func Test_classifyInputLine(t *testing.T) {
	for _, tc := range []struct {
		line     string
		wantKind Kind
	}{
		{"", KindNull},
		{"123", KindSmallInt},
		{"1.5", KindText},
		{"true", KindBoolean},
		{"on", KindBoolean},
		{"false", KindBoolean},
		{"null", KindNull},
		{"µ", KindTime},
		{"foo", KindSymbol},
		{"hello world", KindText},
	} {
		t.Run(tc.line, func(t *testing.T) {
			got := classifyInputLine(tc.line)
			assert.Equal(t, tc.wantKind, got.Kind())
		})
	}
}
