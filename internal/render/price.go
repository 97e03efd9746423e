package render

import (
	"errors"
	"fmt"
	"math/big"

	"positionScope/internal/fullmath"
	"positionScope/internal/tickmath"
)

// PriceLookup maps a tick to its Q64.96 square-root price. The production
// implementation is tickmath.GetSqrtRatioAtTick; tests may inject others.
type PriceLookup func(tick int32) (*big.Int, error)

// Sentinel strings returned at the grid bounds instead of a computed price.
const (
	MinPrice = "MIN"
	MaxPrice = "MAX"
)

// ErrPriceUnderflow reports a price whose scaled value cannot carry five
// significant figures. Large decimal skews can crush a near-bound square-root
// price to zero before the digit layout runs.
var ErrPriceUnderflow = errors.New("price too small for five significant figures")

var (
	q64  = new(big.Int).Lsh(big.NewInt(1), 64)
	q96  = new(big.Int).Lsh(big.NewInt(1), 96)
	q128 = new(big.Int).Lsh(big.NewInt(1), 128)
	q192 = new(big.Int).Lsh(big.NewInt(1), 192)
	ten  = big.NewInt(10)

	// floor(sqrt(10) * 2^128). Decimal-count differences move the price in
	// powers of 10 but the square-root domain only scales in powers of
	// sqrt(10), so odd differences need this half-step correction.
	sqrt10X128, _ = new(big.Int).SetString("1076067327063303206878105757264492625226", 10)

	pow10x44 = fullmath.Pow10(44)
	pow10x5  = fullmath.Pow10(5)
)

// TickToDecimalString renders the price at tick as a five-significant-figure
// decimal string, or the MIN/MAX sentinel when the tick sits on the
// spacing-truncated grid bound. flip inverts the price orientation, which
// also swaps which bound reads as small.
func TickToDecimalString(lookup PriceLookup, tick, tickSpacing int32, baseDecimals, quoteDecimals uint8, flip bool) (string, error) {
	if lookup == nil {
		return "", fmt.Errorf("price lookup is nil")
	}
	if tickSpacing <= 0 {
		return "", fmt.Errorf("tick spacing must be positive: %d", tickSpacing)
	}

	switch tick {
	case (tickmath.MinTick / tickSpacing) * tickSpacing:
		if flip {
			return MaxPrice, nil
		}
		return MinPrice, nil
	case (tickmath.MaxTick / tickSpacing) * tickSpacing:
		if flip {
			return MinPrice, nil
		}
		return MaxPrice, nil
	}

	sqrtRatioX96, err := lookup(tick)
	if err != nil {
		return "", fmt.Errorf("price lookup at tick %d: %w", tick, err)
	}
	if sqrtRatioX96 == nil || sqrtRatioX96.Sign() <= 0 {
		return "", fmt.Errorf("price lookup at tick %d: non-positive sqrt price", tick)
	}

	if flip {
		// Exact reciprocal in the same fixed-point domain: inverting a
		// Q64.96 square root doubles the scale before the division.
		sqrtRatioX96 = new(big.Int).Quo(q192, sqrtRatioX96)
	}

	return FixedPointToDecimalString(sqrtRatioX96, baseDecimals, quoteDecimals)
}

// FixedPointToDecimalString renders a Q64.96 square-root price as a decimal
// string with exactly five significant figures. It returns ErrPriceUnderflow
// when the decimal-adjusted price is too small to render.
func FixedPointToDecimalString(sqrtRatioX96 *big.Int, baseDecimals, quoteDecimals uint8) (string, error) {
	adjusted := adjustForDecimalPrecision(sqrtRatioX96, baseDecimals, quoteDecimals)

	// Square the Q96 value and drop to a lower scale so the decimal
	// rescaling below stays in range.
	value := fullmath.MulDiv(adjusted, adjusted, q64)
	priceBelowOne := adjusted.Cmp(q96) < 0

	if priceBelowOne {
		// 10^44 is the minimum scale that keeps five significant figures
		// plus the rounding guard for the smallest representable price.
		value = fullmath.MulDiv(value, pow10x44, q128)
	} else {
		// Four fractional guard digits plus the rounding digit.
		value = fullmath.MulDiv(value, pow10x5, q128)
	}

	// Every layout below assumes at least five displayed digits plus the
	// rounding guard. The scaled value is either zero or at least
	// floor(10^44 / 2^128); anything smaller cannot fill a buffer.
	if value.Cmp(pow10x5) < 0 {
		return "", ErrPriceUnderflow
	}

	digits := 0
	for temp := new(big.Int).Set(value); temp.Sign() != 0; temp.Quo(temp, ten) {
		digits++
	}
	// The trailing digit is the rounding guard, not a displayed digit.
	digits--

	sigfigs, extraDigit := sigfigsRounded(value, digits)
	if extraDigit {
		digits++
	}

	params := decimalParams{
		sigfigs:       sigfigs,
		isLessThanOne: priceBelowOne,
	}
	switch {
	case priceBelowOne:
		// "0." plus leading zeros plus five sigfigs.
		params.bufferLength = 7 + 43 - digits
		params.zerosStartIndex = 2
		params.zerosEndIndex = 43 - digits + 1
		params.sigfigIndex = params.bufferLength - 1
	case digits >= 9:
		// No decimal point: five sigfigs then trailing zeros.
		params.bufferLength = digits - 4
		params.zerosStartIndex = 5
		params.zerosEndIndex = params.bufferLength - 1
		params.sigfigIndex = 4
	default:
		// Five sigfigs straddling the decimal point in a six-byte buffer.
		params.bufferLength = 6
		params.sigfigIndex = 5
		params.decimalIndex = digits - 5 + 1
	}

	return generateDecimalString(params), nil
}

// adjustForDecimalPrecision rescales a Q64.96 square-root price to
// compensate for differing token decimal counts between the pair.
// Differences beyond 18 pass through unadjusted; that is the observed
// behavior of the reference and is kept rather than guessed at.
func adjustForDecimalPrecision(sqrtRatioX96 *big.Int, baseDecimals, quoteDecimals uint8) *big.Int {
	diff := int(baseDecimals) - int(quoteDecimals)
	if diff < 0 {
		diff = -diff
	}
	if diff == 0 || diff > 18 {
		return new(big.Int).Set(sqrtRatioX96)
	}

	scale := fullmath.Pow10(uint(diff / 2))
	var adjusted *big.Int
	if baseDecimals > quoteDecimals {
		adjusted = new(big.Int).Mul(sqrtRatioX96, scale)
		if diff%2 == 1 {
			adjusted = fullmath.MulDiv(adjusted, sqrt10X128, q128)
		}
	} else {
		adjusted = new(big.Int).Quo(sqrtRatioX96, scale)
		if diff%2 == 1 {
			adjusted = fullmath.MulDiv(adjusted, q128, sqrt10X128)
		}
	}
	return adjusted
}
