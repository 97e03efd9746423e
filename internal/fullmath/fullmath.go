package fullmath

import "math/big"

// MulDiv computes floor(x * y / denominator) with a full-precision
// intermediate product. The truncation is load-bearing: reciprocal and
// scale conversions in the render path depend on exact floor semantics.
func MulDiv(x, y, denominator *big.Int) *big.Int {
	product := new(big.Int).Mul(x, y)
	return product.Quo(product, denominator)
}

// Pow10 returns 10^n as a fresh big.Int. n must be non-negative.
func Pow10(n uint) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
