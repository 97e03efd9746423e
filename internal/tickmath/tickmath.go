package tickmath

import (
	"errors"
	"math/big"
)

// Tick bounds of the logarithmic price grid (price = 1.0001^tick).
const (
	MinTick int32 = -887272
	MaxTick int32 = 887272
)

var (
	// MinSqrtRatio is the sqrt price at MinTick.
	MinSqrtRatio = big.NewInt(4295128739)
	// MaxSqrtRatio is the sqrt price at MaxTick.
	MaxSqrtRatio = mustParseDec("1461446703485210103287273052203988822378723970342")

	ErrTickOutOfBounds = errors.New("tick out of bounds")
)

// tickRatios[i] holds sqrt(1.0001^(2^i)) in UQ128.128, i = 0..19.
var tickRatios = [20]*big.Int{
	mustParseHex("fffcb933bd6fad37aa2d162d1a594001"),
	mustParseHex("fff97272373d413259a46990580e213a"),
	mustParseHex("fff2e50f5f656932ef12357cf3c7fdcc"),
	mustParseHex("ffe5caca7e10e4e61c3624eaa0941cd0"),
	mustParseHex("ffcb9843d60f6159c9db58835c926644"),
	mustParseHex("ff973b41fa98c081472e6896dfb254c0"),
	mustParseHex("ff2ea16466c96a3843ec78b326b52861"),
	mustParseHex("fe5dee046a99a2a811c461f1969c3053"),
	mustParseHex("fcbe86c7900a88aedcffc83b479aa3a4"),
	mustParseHex("f987a7253ac413176f2b074cf7815e54"),
	mustParseHex("f3392b0822b70005940c7a398e4b70f3"),
	mustParseHex("e7159475a2c29b7443b29c7fa6e889d9"),
	mustParseHex("d097f3bdfd2022b8845ad8f792aa5825"),
	mustParseHex("a9f746462d870fdf8a65dc1f90e061e5"),
	mustParseHex("70d869a156d2a1b890bb3df62baf32f7"),
	mustParseHex("31be135f97d08fd981231505542fcfa6"),
	mustParseHex("9aa508b5b7a84e1c677de54f3e99bc9"),
	mustParseHex("5d6af8dedb81196699c329225ee604"),
	mustParseHex("2216e584f5fa1ea926041bedfe98"),
	mustParseHex("48a170391f7dc42444e8fa2"),
}

var (
	oneQ128    = new(big.Int).Lsh(big.NewInt(1), 128)
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	twoPow32   = new(big.Int).Lsh(big.NewInt(1), 32)
)

// GetSqrtRatioAtTick computes sqrt(1.0001^tick) * 2^96 for a tick within
// [MinTick, MaxTick]. The result always fits in 160 bits.
func GetSqrtRatioAtTick(tick int32) (*big.Int, error) {
	if tick < MinTick || tick > MaxTick {
		return nil, ErrTickOutOfBounds
	}

	absTick := tick
	if absTick < 0 {
		absTick = -absTick
	}

	var ratio *big.Int
	if absTick&0x1 != 0 {
		ratio = new(big.Int).Set(tickRatios[0])
	} else {
		ratio = new(big.Int).Set(oneQ128)
	}
	for i := 1; i < len(tickRatios); i++ {
		if absTick&(1<<uint(i)) != 0 {
			ratio = mulShift(ratio, tickRatios[i])
		}
	}

	if tick > 0 {
		ratio = new(big.Int).Div(maxUint256, ratio)
	}

	// Downcast UQ128.128 to Q64.96, rounding up so the result round-trips
	// with the inverse tick computation.
	sqrtPriceX96 := new(big.Int).Rsh(ratio, 32)
	if new(big.Int).Mod(ratio, twoPow32).Sign() != 0 {
		sqrtPriceX96.Add(sqrtPriceX96, big.NewInt(1))
	}
	return sqrtPriceX96, nil
}

func mulShift(ratio, multiplier *big.Int) *big.Int {
	product := new(big.Int).Mul(ratio, multiplier)
	return product.Rsh(product, 128)
}

func mustParseHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("tickmath: bad hex constant " + s)
	}
	return n
}

func mustParseDec(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("tickmath: bad decimal constant " + s)
	}
	return n
}
