// Package mem implements the bounded/arbitrary-precision integer rules
// shared by Specky's value model and evaluator: classifying a *big.Int as
// "small" (fits a 128-bit signed range) or "wide".
package mem

import "math/big"

// Bits is the width of Specky's SmallInt representation.
const Bits = 128

var (
	// Min and Max bound the signed Bits-wide range that SmallInt must fit
	// within; anything outside widens to Integer.
	Min = new(big.Int).Lsh(big.NewInt(-1), Bits-1)
	Max = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), Bits-1), big.NewInt(1))
)

// Fits reports whether n's magnitude fits within the SmallInt range.
func Fits(n *big.Int) bool {
	return n.Cmp(Min) >= 0 && n.Cmp(Max) <= 0
}
