package descriptor

import (
	"math/big"
	"strings"
	"testing"

	"positionScope/internal/model"
)

func stepLookup(tick int32) (*big.Int, error) {
	// sqrt price 1 below zero, 3 at and above: prices 1.0 and 9.0.
	if tick < 0 {
		return new(big.Int).Lsh(big.NewInt(1), 96), nil
	}
	return new(big.Int).Lsh(big.NewInt(3), 96), nil
}

func testRecord() model.PositionRecord {
	return model.PositionRecord{
		ChainID:     1,
		TokenID:     42,
		PoolAddress: "0x8ad599c3A0ff1De082011EFDDc58f1908eb6e6D8",
		Token0: model.TokenMeta{
			Address:  "0x1122334455667788990011223344556677889900",
			Decimals: 18,
			Symbol:   "WETH",
		},
		Token1: model.TokenMeta{
			Address:  "0xaabbccdd667788990011223344556677889900ff",
			Decimals: 18,
			Symbol:   "USDC",
		},
		Fee:         3000,
		TickSpacing: 60,
		TickLower:   -60,
		TickUpper:   60,
		TickCurrent: 0,
	}
}

func TestBuild(t *testing.T) {
	got, err := Build(stepLookup, testRecord())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if got.FeePercent != "0.3%" {
		t.Fatalf("fee percent: got %q", got.FeePercent)
	}
	if got.PriceLower != "1.0000" || got.PriceUpper != "9.0000" || got.PriceCurrent != "9.0000" {
		t.Fatalf("prices: %q %q %q", got.PriceLower, got.PriceUpper, got.PriceCurrent)
	}
	if got.QuoteSymbol != "USDC" || got.BaseSymbol != "WETH" {
		t.Fatalf("orientation: quote %q base %q", got.QuoteSymbol, got.BaseSymbol)
	}
	if got.Name != "0.3% - USDC/WETH - 1.0000<>9.0000" {
		t.Fatalf("name: got %q", got.Name)
	}
	if got.ColorBase != "112233" || got.ColorQuote != "aabbcc" {
		t.Fatalf("colors: base %q quote %q", got.ColorBase, got.ColorQuote)
	}
	if got.BaseAddress != "0x1122334455667788990011223344556677889900" {
		t.Fatalf("base address: got %q", got.BaseAddress)
	}
	if !strings.Contains(got.Description, "9.0000 USDC per WETH") {
		t.Fatalf("description missing price sentence: %q", got.Description)
	}
}

func TestBuildFlipped(t *testing.T) {
	rec := testRecord()
	rec.Flip = true

	got, err := Build(stepLookup, rec)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	// The flip swaps orientation and inverts prices, so the former upper
	// bound becomes the lower price.
	if got.QuoteSymbol != "WETH" || got.BaseSymbol != "USDC" {
		t.Fatalf("orientation: quote %q base %q", got.QuoteSymbol, got.BaseSymbol)
	}
	if got.PriceLower != "0.11111" || got.PriceUpper != "1.0000" {
		t.Fatalf("flipped prices: %q %q", got.PriceLower, got.PriceUpper)
	}
}

func TestBuildEscapesSymbols(t *testing.T) {
	rec := testRecord()
	rec.Token1.Symbol = `EV"L`

	got, err := Build(stepLookup, rec)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got.QuoteSymbol != `EV\"L` {
		t.Fatalf("quote symbol not escaped: %q", got.QuoteSymbol)
	}
	if !strings.Contains(got.Name, `EV\"L/WETH`) {
		t.Fatalf("name not escaped: %q", got.Name)
	}
}

func TestBuildValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.PositionRecord)
	}{
		{"bad pool address", func(r *model.PositionRecord) { r.PoolAddress = "nope" }},
		{"bad token address", func(r *model.PositionRecord) { r.Token0.Address = "0x123" }},
		{"fee overflow", func(r *model.PositionRecord) { r.Fee = 1 << 24 }},
		{"zero spacing", func(r *model.PositionRecord) { r.TickSpacing = 0 }},
		{"inverted range", func(r *model.PositionRecord) { r.TickLower, r.TickUpper = 60, -60 }},
		{"misaligned boundary", func(r *model.PositionRecord) { r.TickLower = -30 }},
		{"lower out of range", func(r *model.PositionRecord) { r.TickLower = -900060 }},
		{"current out of range", func(r *model.PositionRecord) { r.TickCurrent = 900000 }},
	}
	for _, tc := range cases {
		rec := testRecord()
		tc.mutate(&rec)
		if _, err := Build(stepLookup, rec); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}
