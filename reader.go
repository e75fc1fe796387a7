package main

// readerResolve walks `reader` steps of memory lookup starting at value. If
// a step revisits a value already seen, it returns a value picked from the
// cycle by an index derived from the total remaining depth rather than
// looping forever.
//
// Memory.Load already normalises SmallInt/Integer keys to the same cell, so
// no extra normalisation is needed here.
func readerResolve(mem *Memory, reader uint, value Value) Value {
	chain := []Value{value}
	cur := value
	for step := uint(0); step < reader; step++ {
		cur = mem.Load(cur)
		if idx, found := indexInChain(chain, cur); found {
			modulo := uint(len(chain)) - idx
			base := reader + step + idx + 1
			return chain[idx+(base%modulo)]
		}
		chain = append(chain, cur)
	}
	return cur
}

func indexInChain(chain []Value, v Value) (uint, bool) {
	for i, c := range chain {
		if c.Equal(v) {
			return uint(i), true
		}
	}
	return 0, false
}

// resolveOperand reader-resolves e, the operand value used by
// Assign/Overwrite/Swap/Define/Jump.
func resolveOperand(mem *Memory, e Expression) Value {
	return readerResolve(mem, e.Reader, e.Value)
}

// resolveRight implements the binary-operator pattern's extra indirection:
// if the reader-resolved operand is a Symbol, one further memory lookup
// names the variable the symbol refers to.
func resolveRight(mem *Memory, e Expression) Value {
	v := resolveOperand(mem, e)
	if v.Kind() == KindSymbol {
		v = mem.Load(v)
	}
	return v
}
