package main

import (
	"math"
	"math/big"
)

// evalBinary implements the operator semantics table. left and right have
// already been resolved (left = memory[cursor], right = the reader-resolved,
// symbol-indirected operand); evalBinary is a pure function of the two
// values.
func evalBinary(op Op, left, right Value) Value {
	switch op {
	case OpAdd:
		return addValues(left, right)
	case OpSub:
		return numericOp(left, right, (*big.Int).Sub, (*big.Float).Sub)
	case OpMul:
		return numericOp(left, right, (*big.Int).Mul, (*big.Float).Mul)
	case OpDiv:
		return divValues(left, right)
	case OpMod:
		return modValues(left, right)
	case OpPow:
		return powValues(left, right)
	case OpEqual:
		return Bool(left.Equal(right))
	case OpUnequal:
		return Bool(!left.Equal(right))
	case OpLess:
		cmp, ok := compareOrder(left, right)
		if !ok {
			return Null()
		}
		return Bool(cmp < 0)
	case OpGreater:
		cmp, ok := compareOrder(left, right)
		if !ok {
			return Null()
		}
		return Bool(cmp > 0)
	case OpLessEq:
		cmp, ok := compareOrder(left, right)
		if !ok {
			return Null()
		}
		return Bool(cmp <= 0)
	case OpGreaterEq:
		cmp, ok := compareOrder(left, right)
		if !ok {
			return Null()
		}
		return Bool(cmp >= 0)
	case OpAnd:
		return Bool(left.Truthy() && right.Truthy())
	case OpOr:
		return Bool(left.Truthy() || right.Truthy())
	case OpXor:
		return Bool(left.Truthy() != right.Truthy())
	case OpIndex:
		return indexValue(left, right)
	default:
		return Null()
	}
}

// addValues handles the extra Text combinations '+' supports beyond plain
// arithmetic: Text·Text concatenation and Text·Int concatenation via the
// right operand's decimal form.
func addValues(l, r Value) Value {
	if li, lok := l.Int(); lok {
		if ri, rok := r.Int(); rok {
			return IntValue(new(big.Int).Add(li, ri))
		}
	}
	if lf, lok := l.Float(); lok {
		if rf, rok := r.Float(); rok {
			return FloatValue(new(big.Float).SetPrec(floatPrec).Add(lf, rf))
		}
	}
	if l.Kind() == KindText {
		lt, _ := l.Text()
		if r.Kind() == KindText {
			rt, _ := r.Text()
			return TextValue(lt + rt)
		}
		if ri, ok := r.Int(); ok {
			return TextValue(lt + ri.String())
		}
	}
	return Null()
}

// numericOp applies intFn to an Int·Int pair or floatFn to a Flt·Flt pair;
// every other pairing (including the Text combinations '+' alone allows)
// yields Null.
func numericOp(l, r Value, intFn func(z, x, y *big.Int) *big.Int, floatFn func(z, x, y *big.Float) *big.Float) Value {
	if li, lok := l.Int(); lok {
		if ri, rok := r.Int(); rok {
			z := new(big.Int)
			intFn(z, li, ri)
			return IntValue(z)
		}
	}
	if lf, lok := l.Float(); lok {
		if rf, rok := r.Float(); rok {
			z := new(big.Float).SetPrec(floatPrec)
			floatFn(z, lf, rf)
			return FloatValue(z)
		}
	}
	return Null()
}

// divValues and modValues special-case zero divisors instead of propagating
// a panic: an Integer zero divisor, Float 0/0 and a Float '%' by zero
// yield Null, while a nonzero Float divided by zero yields ±Inf.
func divValues(l, r Value) Value {
	if li, lok := l.Int(); lok {
		if ri, rok := r.Int(); rok {
			if ri.Sign() == 0 {
				return Null()
			}
			return IntValue(new(big.Int).Quo(li, ri))
		}
	}
	if lf, lok := l.Float(); lok {
		if rf, rok := r.Float(); rok {
			if lf.Sign() == 0 && rf.Sign() == 0 {
				return Null()
			}
			return FloatValue(new(big.Float).SetPrec(floatPrec).Quo(lf, rf))
		}
	}
	return Null()
}

func modValues(l, r Value) Value {
	if li, lok := l.Int(); lok {
		if ri, rok := r.Int(); rok {
			if ri.Sign() == 0 {
				return Null()
			}
			return IntValue(new(big.Int).Rem(li, ri))
		}
	}
	if lf, lok := l.Float(); lok {
		if rf, rok := r.Float(); rok {
			return floatMod(lf, rf)
		}
	}
	return Null()
}

// floatMod implements fmod-style truncated remainder for big.Float, which
// has no native Mod.
func floatMod(l, r *big.Float) Value {
	if r.Sign() == 0 {
		return Null()
	}
	q := new(big.Float).SetPrec(floatPrec).Quo(l, r)
	qi, _ := q.Int(nil) // truncates toward zero
	qf := new(big.Float).SetPrec(floatPrec).SetInt(qi)
	prod := new(big.Float).SetPrec(floatPrec).Mul(qf, r)
	return FloatValue(new(big.Float).SetPrec(floatPrec).Sub(l, prod))
}

// powValues implements '^': integer exponentiation requires the exponent
// to fit a uint32, and float exponentiation borrows math.Pow at float64
// precision since math/big has no Float.Pow.
func powValues(l, r Value) Value {
	if li, lok := l.Int(); lok {
		if ri, rok := r.Int(); rok {
			if ri.Sign() < 0 || !ri.IsUint64() || ri.Uint64() > math.MaxUint32 {
				return Null()
			}
			return IntValue(new(big.Int).Exp(li, ri, nil))
		}
	}
	if lf, lok := l.Float(); lok {
		if rf, rok := r.Float(); rok {
			return floatPowValue(lf, rf)
		}
	}
	return Null()
}

func floatPowValue(l, r *big.Float) Value {
	lf64, _ := l.Float64()
	rf64, _ := r.Float64()
	res := math.Pow(lf64, rf64)
	if math.IsNaN(res) {
		return Null()
	}
	if math.IsInf(res, 0) {
		return FloatValue(new(big.Float).SetPrec(floatPrec).SetInf(res < 0))
	}
	return FloatValue(new(big.Float).SetPrec(floatPrec).SetFloat64(res))
}

// indexValue implements '~': a one-character Text at right's 0-based
// code-point index into left, or Null if left isn't Text, right isn't an
// integer, or the index is out of range.
func indexValue(l, r Value) Value {
	if l.Kind() != KindText {
		return Null()
	}
	lt, _ := l.Text()
	ri, ok := r.Int()
	if !ok || !ri.IsInt64() {
		return Null()
	}
	runes := []rune(lt)
	idx := ri.Int64()
	if idx < 0 || idx >= int64(len(runes)) {
		return Null()
	}
	return TextValue(string(runes[idx]))
}
