package main

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/specky/internal/mem"
)

func Test_Value_Equal_smallIntIntegerKeyEquivalence(t *testing.T) {
	// SmallInt(n) and Integer(n) for the same representable n must be
	// equal and hash-equal keys.
	small := IntFromInt64(42)
	require.Equal(t, KindSmallInt, small.Kind())

	wide := IntValue(new(big.Int).Add(mem.Max, big.NewInt(1)))
	require.Equal(t, KindInteger, wide.Kind())

	sameAsSmall := Value{kind: KindInteger, i: big.NewInt(42)}
	assert.True(t, small.Equal(sameAsSmall))
	assert.Equal(t, small.mapKey(), sameAsSmall.mapKey())
}

func Test_Value_Truthy(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    Value
		want bool
	}{
		{"null", Null(), false},
		{"false", Bool(false), false},
		{"true", Bool(true), true},
		{"zero", IntFromInt64(0), false},
		{"nonzero", IntFromInt64(1), true},
		{"empty text", TextValue(""), false},
		{"nonempty text", TextValue("x"), true},
		{"symbol", SymbolValue("x"), true},
		{"time", TimeNow(), true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Truthy())
		})
	}

	zero, err := NewFloat("0.0")
	require.NoError(t, err)
	assert.False(t, zero.Truthy(), "0.0 Float is falsy")

	one, err := NewFloat("1.5")
	require.NoError(t, err)
	assert.True(t, one.Truthy())
}

func Test_Value_Equal_timeIgnoresContents(t *testing.T) {
	// A Time used as a lookup key ignores its contents.
	a := TimeNow()
	b := TimeNow()
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.mapKey(), b.mapKey())
}

func Test_compareOrder(t *testing.T) {
	for _, tc := range []struct {
		name    string
		l, r    Value
		wantOK  bool
		wantCmp int
	}{
		{"int<int", IntFromInt64(1), IntFromInt64(2), true, -1},
		{"int=int", IntFromInt64(2), IntFromInt64(2), true, 0},
		{"text<text", TextValue("a"), TextValue("b"), true, -1},
		{"bool unordered", Bool(true), Bool(false), false, 0},
		{"int vs text unordered", IntFromInt64(1), TextValue("a"), false, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cmp, ok := compareOrder(tc.l, tc.r)
			assert.Equal(t, tc.wantOK, ok)
			if ok {
				assert.Equal(t, tc.wantCmp, sign(cmp))
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
