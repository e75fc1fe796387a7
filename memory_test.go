package main

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Memory_LoadMiss(t *testing.T) {
	m := NewMemory()
	assert.Equal(t, Null(), m.Load(SymbolValue("x")))
}

func Test_Memory_StoreLoad(t *testing.T) {
	m := NewMemory()
	m.Store(SymbolValue("x"), IntFromInt64(7))
	assert.True(t, m.Load(SymbolValue("x")).Equal(IntFromInt64(7)))
}

func Test_Memory_smallIntIntegerSameCell(t *testing.T) {
	// memory[SmallInt(n)] and memory[Integer(n)] must be the same cell.
	m := NewMemory()
	m.Store(IntFromInt64(5), TextValue("five"))

	require.Equal(t, 1, m.Len())
	wide5 := Value{kind: KindInteger, i: big.NewInt(5)}
	got := m.Load(wide5)
	assert.True(t, got.Equal(TextValue("five")))

	// Overwriting through the same logical key must not create a second cell.
	m.Store(wide5, TextValue("cinco"))
	assert.Equal(t, 1, m.Len())
	assert.True(t, m.Load(IntFromInt64(5)).Equal(TextValue("cinco")))
}

func Test_Memory_everyTimeValueSharesOneCell(t *testing.T) {
	m := NewMemory()
	m.Store(TimeNow(), TextValue("first"))
	m.Store(TimeNow(), TextValue("second"))
	assert.Equal(t, 1, m.Len())
	assert.True(t, m.Load(TimeNow()).Equal(TextValue("second")))
}
