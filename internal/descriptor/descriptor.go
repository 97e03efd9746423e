package descriptor

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"positionScope/internal/model"
	"positionScope/internal/render"
	"positionScope/internal/tickmath"
)

// maxFee is the exclusive upper bound of the uint24 fee field.
const maxFee = 1 << 24

// colorShift drops everything but the top three bytes of an address, which
// become its display color.
const colorShift = 136

// Build renders the descriptor metadata for one position record. lookup is
// the tick-to-sqrt-price primitive, injected so tests can pin prices.
func Build(lookup render.PriceLookup, rec model.PositionRecord) (model.DescriptorRecord, error) {
	if err := validate(rec); err != nil {
		return model.DescriptorRecord{}, err
	}

	base, quote := rec.Token0, rec.Token1
	if rec.Flip {
		base, quote = rec.Token1, rec.Token0
	}

	// Flipping inverts prices, so the tick bounds swap roles too.
	lowerTick, upperTick := rec.TickLower, rec.TickUpper
	if rec.Flip {
		lowerTick, upperTick = rec.TickUpper, rec.TickLower
	}

	priceLower, err := render.TickToDecimalString(lookup, lowerTick, rec.TickSpacing, base.Decimals, quote.Decimals, rec.Flip)
	if err != nil {
		return model.DescriptorRecord{}, fmt.Errorf("render lower price: %w", err)
	}
	priceUpper, err := render.TickToDecimalString(lookup, upperTick, rec.TickSpacing, base.Decimals, quote.Decimals, rec.Flip)
	if err != nil {
		return model.DescriptorRecord{}, fmt.Errorf("render upper price: %w", err)
	}
	priceCurrent, err := render.TickToDecimalString(lookup, rec.TickCurrent, rec.TickSpacing, base.Decimals, quote.Decimals, rec.Flip)
	if err != nil {
		return model.DescriptorRecord{}, fmt.Errorf("render current price: %w", err)
	}

	feePercent := render.FeeToPercentString(rec.Fee)
	quoteSymbol := render.EscapeQuotes(quote.Symbol)
	baseSymbol := render.EscapeQuotes(base.Symbol)

	name := fmt.Sprintf("%s - %s/%s - %s<>%s", feePercent, quoteSymbol, baseSymbol, priceLower, priceUpper)
	description := fmt.Sprintf(
		"Liquidity position in the %s-%s %s pool, spanning ticks %d to %d. Current price: %s %s per %s. Pool address: %s.",
		quoteSymbol, baseSymbol, feePercent,
		rec.TickLower, rec.TickUpper,
		priceCurrent, quoteSymbol, baseSymbol,
		addressToString(common.HexToAddress(rec.PoolAddress)),
	)

	return model.DescriptorRecord{
		ChainID:      rec.ChainID,
		TokenID:      rec.TokenID,
		PoolAddress:  rec.PoolAddress,
		Name:         name,
		Description:  description,
		QuoteSymbol:  quoteSymbol,
		BaseSymbol:   baseSymbol,
		FeePercent:   feePercent,
		PriceLower:   priceLower,
		PriceUpper:   priceUpper,
		PriceCurrent: priceCurrent,
		QuoteAddress: addressToString(common.HexToAddress(quote.Address)),
		BaseAddress:  addressToString(common.HexToAddress(base.Address)),
		ColorQuote:   tokenColorHex(common.HexToAddress(quote.Address)),
		ColorBase:    tokenColorHex(common.HexToAddress(base.Address)),
	}, nil
}

func validate(rec model.PositionRecord) error {
	if !common.IsHexAddress(rec.PoolAddress) {
		return fmt.Errorf("invalid pool address: %s", rec.PoolAddress)
	}
	if !common.IsHexAddress(rec.Token0.Address) {
		return fmt.Errorf("invalid token0 address: %s", rec.Token0.Address)
	}
	if !common.IsHexAddress(rec.Token1.Address) {
		return fmt.Errorf("invalid token1 address: %s", rec.Token1.Address)
	}
	if rec.Fee >= maxFee {
		return fmt.Errorf("fee exceeds uint24: %d", rec.Fee)
	}
	if rec.TickSpacing <= 0 {
		return fmt.Errorf("tick spacing must be positive: %d", rec.TickSpacing)
	}
	if rec.TickLower >= rec.TickUpper {
		return fmt.Errorf("tick lower %d must be below tick upper %d", rec.TickLower, rec.TickUpper)
	}
	for _, boundary := range []struct {
		name string
		tick int32
	}{
		{"tick_lower", rec.TickLower},
		{"tick_upper", rec.TickUpper},
	} {
		if boundary.tick < tickmath.MinTick || boundary.tick > tickmath.MaxTick {
			return fmt.Errorf("%s out of range: %d", boundary.name, boundary.tick)
		}
		if boundary.tick%rec.TickSpacing != 0 {
			return fmt.Errorf("%s %d not aligned to tick spacing %d", boundary.name, boundary.tick, rec.TickSpacing)
		}
	}
	if rec.TickCurrent < tickmath.MinTick || rec.TickCurrent > tickmath.MaxTick {
		return fmt.Errorf("tick_current out of range: %d", rec.TickCurrent)
	}
	return nil
}

// addressToString renders an address as its 42-character lowercase hex
// form. A 20-byte address always fits, so the unchecked encoder applies.
func addressToString(addr common.Address) string {
	return "0x" + render.ToHexStringNoPrefix(new(big.Int).SetBytes(addr.Bytes()), 20)
}

func tokenColorHex(addr common.Address) string {
	value := new(big.Int).SetBytes(addr.Bytes())
	return render.ToHexStringNoPrefix(value.Rsh(value, colorShift), 3)
}
