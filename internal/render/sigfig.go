package render

import (
	"math/big"

	"positionScope/internal/fullmath"
)

// sigfigsRounded reduces value to at most five significant figures with
// round-half-up on the guard digit. digits is the displayed magnitude of
// value, one less than its digit count (the last digit is the guard).
// extraDigit reports the 99999 -> 100000 carry, which costs the caller one
// more digit of magnitude.
func sigfigsRounded(value *big.Int, digits int) (uint64, bool) {
	v := new(big.Int).Set(value)
	if digits > 5 {
		v.Quo(v, fullmath.Pow10(uint(digits-5)))
	}

	// At most six digits remain, so the value fits a machine word.
	n := v.Uint64()
	roundUp := n%10 > 4
	n /= 10
	if roundUp {
		n++
	}

	if n == 100000 {
		return n / 10, true
	}
	return n, false
}
