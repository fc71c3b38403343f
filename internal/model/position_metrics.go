package model

// PositionMetrics is the analyzer output for one position snapshot. Token
// amounts and fees are decimal strings of raw (undivided) token units.
type PositionMetrics struct {
	ChainID           uint64  `json:"chain_id"`
	PoolAddress       string  `json:"pool_address"`
	Owner             string  `json:"owner,omitempty"`
	TickLower         int     `json:"tick_lower"`
	TickUpper         int     `json:"tick_upper"`
	CurrentTick       int     `json:"current_tick"`
	Price             float64 `json:"price"`
	PriceLower        float64 `json:"price_lower"`
	PriceUpper        float64 `json:"price_upper"`
	Liquidity         string  `json:"liquidity"`
	Amount0           string  `json:"amount0"`
	Amount1           string  `json:"amount1"`
	FeesOwed0         string  `json:"fees_owed0"`
	FeesOwed1         string  `json:"fees_owed1"`
	InRange           bool    `json:"in_range"`
	PercentInRange    float64 `json:"percent_in_range"`
	CapitalEfficiency float64 `json:"capital_efficiency"`
	Timestamp         uint64  `json:"timestamp"`
}
