package main

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/jcorbin/specky/internal/mem"
)

// Kind names a Value variant.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindSmallInt
	KindInteger
	KindFloat
	KindText
	KindSymbol
	KindTime
	KindJumpAddress
)

var kindNames = [...]string{
	KindNull:        "Null",
	KindBoolean:     "Boolean",
	KindSmallInt:    "SmallInt",
	KindInteger:     "Integer",
	KindFloat:       "Float",
	KindText:        "Text",
	KindSymbol:      "Symbol",
	KindTime:        "Time",
	KindJumpAddress: "JumpAddress",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// floatPrec is the big.Float mantissa precision Specky computes with: roughly
// double float64's precision, so chained arithmetic in long-running programs
// doesn't visibly round-trip-lose compared to a naive float64.
const floatPrec = 100

// Value is a tagged union of every Specky runtime type. The zero Value is Null.
type Value struct {
	kind  Kind
	b     bool
	i     *big.Int // SmallInt, Integer, JumpAddress
	f     *big.Float
	s     string // Text or Symbol
	t     time.Time
	tSet  bool // has the Time been stamped with an instant yet
}

// Null is the bottom/absent value.
func Null() Value { return Value{} }

// Bool builds a Boolean value.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// classifyInt reports whether n fits the 128-bit signed SmallInt range, or
// must be tagged the wider Integer kind.
func classifyInt(n *big.Int) Kind {
	if mem.Fits(n) {
		return KindSmallInt
	}
	return KindInteger
}

// IntValue builds a SmallInt or Integer from n, compressing as needed.
func IntValue(n *big.Int) Value { return Value{kind: classifyInt(n), i: n} }

// IntFromInt64 is a convenience constructor for small literal integers.
func IntFromInt64(n int64) Value { return IntValue(big.NewInt(n)) }

// FloatValue builds a Float value from f.
func FloatValue(f *big.Float) Value { return Value{kind: KindFloat, f: f} }

// NewFloat parses a decimal string into a Float at Specky's working precision.
func NewFloat(s string) (Value, error) {
	f, _, err := big.ParseFloat(s, 10, floatPrec, big.ToNearestEven)
	if err != nil {
		return Value{}, err
	}
	return FloatValue(f), nil
}

// TextValue builds a Text value.
func TextValue(s string) Value { return Value{kind: KindText, s: s} }

// SymbolValue builds a Symbol value.
func SymbolValue(s string) Value { return Value{kind: KindSymbol, s: s} }

// TimePlaceholder builds an un-stamped Time value, as produced by a bare µ
// literal before it passes through Assign.
func TimePlaceholder() Value { return Value{kind: KindTime} }

// TimeNow builds a Time value stamped with the current instant.
func TimeNow() Value { return Value{kind: KindTime, t: time.Now(), tSet: true} }

// JumpAddressValue builds a JumpAddress pointing at statement index pc.
func JumpAddressValue(pc uint) Value {
	return Value{kind: KindJumpAddress, i: new(big.Int).SetUint64(uint64(pc))}
}

// Kind returns v's variant tag.
func (v Value) Kind() Kind { return v.kind }

func (v Value) isInt() bool { return v.kind == KindSmallInt || v.kind == KindInteger }

// Int returns v's integer payload and true, if v is a SmallInt or Integer.
func (v Value) Int() (*big.Int, bool) {
	if v.isInt() {
		return v.i, true
	}
	return nil, false
}

// Float returns v's float payload and true, if v is a Float.
func (v Value) Float() (*big.Float, bool) {
	if v.kind == KindFloat {
		return v.f, true
	}
	return nil, false
}

// Text returns v's string payload and true, if v is Text or Symbol.
func (v Value) Text() (string, bool) {
	if v.kind == KindText || v.kind == KindSymbol {
		return v.s, true
	}
	return "", false
}

// Bool returns v's boolean payload and true, if v is a Boolean.
func (v Value) Bool() (bool, bool) {
	if v.kind == KindBoolean {
		return v.b, true
	}
	return false, false
}

// JumpAddr returns v's statement index and true, if v is a JumpAddress.
func (v Value) JumpAddr() (uint, bool) {
	if v.kind == KindJumpAddress {
		return uint(v.i.Uint64()), true
	}
	return 0, false
}

// Equal is structural equality over all variants, with SmallInt and Integer
// treated as the same number regardless of tag. A Time value compares equal
// to any other Time value: as a lookup key it ignores its stamped instant,
// and there is no other notion of instant comparison defined.
func (v Value) Equal(o Value) bool {
	if v.isInt() && o.isInt() {
		return v.i.Cmp(o.i) == 0
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBoolean:
		return v.b == o.b
	case KindFloat:
		return v.f.Cmp(o.f) == 0
	case KindText, KindSymbol:
		return v.s == o.s
	case KindTime:
		return true
	case KindJumpAddress:
		return v.i.Cmp(o.i) == 0
	}
	return false
}

// compareOrder implements the ordered comparison operators (<,>,=<,>=):
// only Int·Int, Float·Float and Text·Text are ordered; every other pairing
// yields ok=false (Null result).
func compareOrder(l, r Value) (cmp int, ok bool) {
	if l.isInt() && r.isInt() {
		return l.i.Cmp(r.i), true
	}
	if l.kind == KindFloat && r.kind == KindFloat {
		return l.f.Cmp(r.f), true
	}
	if l.kind == KindText && r.kind == KindText {
		return strings.Compare(l.s, r.s), true
	}
	return 0, false
}

// Truthy reports whether v counts as true in a conditional.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBoolean:
		return v.b
	case KindSmallInt, KindInteger:
		return v.i.Sign() != 0
	case KindText:
		return v.s != ""
	case KindFloat:
		if v.f.IsInf() || v.f.Sign() == 0 {
			return false
		}
		return true
	default:
		return true
	}
}

// mapKey returns a canonical, comparable representation of v suitable for
// use as a Go map key, normalizing SmallInt and Integer of the same number
// to the identical key and collapsing every Time value to one key.
func (v Value) mapKey() string {
	switch v.kind {
	case KindNull:
		return "N"
	case KindBoolean:
		if v.b {
			return "Bt"
		}
		return "Bf"
	case KindSmallInt, KindInteger:
		return "I" + v.i.String()
	case KindFloat:
		return "F" + v.f.Text('g', -1)
	case KindText:
		return "T" + v.s
	case KindSymbol:
		return "S" + v.s
	case KindTime:
		return "Z"
	case KindJumpAddress:
		return "J" + v.i.String()
	}
	return "?"
}
