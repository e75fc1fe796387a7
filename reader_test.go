package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test_readerResolve_zeroIsIdentity checks that reader=0 returns value
// unchanged.
func Test_readerResolve_zeroIsIdentity(t *testing.T) {
	m := NewMemory()
	v := IntFromInt64(3)
	assert.True(t, readerResolve(m, 0, v).Equal(v))
}

// Test_readerResolve_acyclicChain checks that on an acyclic chain of length
// >= k, reader=k returns the k-th successor.
func Test_readerResolve_acyclicChain(t *testing.T) {
	m := NewMemory()
	// 0 -> 1 -> 2 -> 3 -> 4 (no cycle)
	for i := int64(0); i < 4; i++ {
		m.Store(IntFromInt64(i), IntFromInt64(i+1))
	}
	for k := uint(0); k <= 4; k++ {
		got := readerResolve(m, k, IntFromInt64(0))
		want := IntFromInt64(int64(k))
		assert.Truef(t, got.Equal(want), "reader=%d: got %v want %v", k, got, want)
	}
}

// Test_readerResolve_circular checks that for every cycle length L in
// 2..15, every starting index i, and every extra depth e in 0..3L-1,
// following the reader e steps from i around the L-cycle defined by
// memory[i] = (i+1) mod L lands on (i+e) mod L.
func Test_readerResolve_circular(t *testing.T) {
	for L := int64(2); L <= 15; L++ {
		m := NewMemory()
		for i := int64(0); i < L; i++ {
			m.Store(IntFromInt64(i), IntFromInt64((i+1)%L))
		}
		for i := int64(0); i < L; i++ {
			for e := uint(0); e < uint(3*L); e++ {
				got := readerResolve(m, e, IntFromInt64(i))
				want := IntFromInt64((i + int64(e)) % L)
				require.Truef(t, got.Equal(want),
					"L=%d i=%d e=%d: got %v want %v", L, i, e, got, want)
			}
		}
	}
}

func Test_resolveRight_symbolIndirection(t *testing.T) {
	m := NewMemory()
	m.Store(SymbolValue("x"), IntFromInt64(9))
	got := resolveRight(m, Expression{Value: SymbolValue("x")})
	assert.True(t, got.Equal(IntFromInt64(9)))
}
