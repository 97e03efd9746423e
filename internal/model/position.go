package model

// TokenMeta captures ERC20 metadata for one side of a pair.
type TokenMeta struct {
	Address  string `json:"address"`
	Decimals uint8  `json:"decimals"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name,omitempty"`
}

// PositionRecord is one line of render input: the numeric state of a
// position plus whatever token metadata the producer already knows. Records
// with an empty token symbol get resolved on chain when an RPC is
// configured.
type PositionRecord struct {
	ChainID     uint64    `json:"chain_id"`
	TokenID     uint64    `json:"token_id"`
	PoolAddress string    `json:"pool_address"`
	Token0      TokenMeta `json:"token0"`
	Token1      TokenMeta `json:"token1"`
	Fee         uint32    `json:"fee"`
	TickSpacing int32     `json:"tick_spacing"`
	TickLower   int32     `json:"tick_lower"`
	TickUpper   int32     `json:"tick_upper"`
	TickCurrent int32     `json:"tick_current"`
	// Flip inverts the price orientation: prices are quoted as token0 per
	// token1 instead of token1 per token0.
	Flip bool `json:"flip,omitempty"`
}
