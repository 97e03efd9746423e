package model

// DescriptorRecord is the rendered metadata for one position, ready for
// the SVG/template layer to consume.
type DescriptorRecord struct {
	ChainID      uint64 `json:"chain_id"`
	TokenID      uint64 `json:"token_id"`
	PoolAddress  string `json:"pool_address"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	QuoteSymbol  string `json:"quote_symbol"`
	BaseSymbol   string `json:"base_symbol"`
	FeePercent   string `json:"fee_percent"`
	PriceLower   string `json:"price_lower"`
	PriceUpper   string `json:"price_upper"`
	PriceCurrent string `json:"price_current"`
	QuoteAddress string `json:"quote_address"`
	BaseAddress  string `json:"base_address"`
	ColorQuote   string `json:"color_quote"`
	ColorBase    string `json:"color_base"`
}

// RenderError is the error-sidecar record for inputs that failed to render.
type RenderError struct {
	ChainID     uint64 `json:"chain_id,omitempty"`
	TokenID     uint64 `json:"token_id,omitempty"`
	PoolAddress string `json:"pool_address,omitempty"`
	Error       string `json:"error"`
}
