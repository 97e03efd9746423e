package render

import (
	"errors"
	"math/big"
)

// ErrLengthInsufficient reports a value that does not fit the requested
// fixed hex width. It is never silently truncated.
var ErrLengthInsufficient = errors.New("hex length insufficient for value")

const hexAlphabet = "0123456789abcdef"

var nibbleMask = big.NewInt(0xf)

// ToHexString encodes a non-negative value as "0x" followed by exactly
// 2*length lowercase hex characters, zero-padded on the left.
func ToHexString(value *big.Int, length int) (string, error) {
	buffer := make([]byte, 2*length+2)
	buffer[0] = '0'
	buffer[1] = 'x'

	v := new(big.Int).Set(value)
	nibble := new(big.Int)
	for i := len(buffer) - 1; i > 1; i-- {
		buffer[i] = hexAlphabet[nibble.And(v, nibbleMask).Uint64()]
		v.Rsh(v, 4)
	}
	if v.Sign() != 0 {
		return "", ErrLengthInsufficient
	}
	return string(buffer), nil
}

// ToHexStringNoPrefix is ToHexString without the "0x" prefix and without
// the fit check. Callers use it to slice fixed-width fragments, such as
// 3-byte color values, where the width is guaranteed.
func ToHexStringNoPrefix(value *big.Int, length int) string {
	buffer := make([]byte, 2*length)

	v := new(big.Int).Set(value)
	nibble := new(big.Int)
	for i := len(buffer) - 1; i >= 0; i-- {
		buffer[i] = hexAlphabet[nibble.And(v, nibbleMask).Uint64()]
		v.Rsh(v, 4)
	}
	return string(buffer)
}
