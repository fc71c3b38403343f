package model

// PositionSnapshot is one line of the analyzer's input: a position's on-chain
// state paired with the pool state it was read against. Liquidity and fee
// growth accumulators are decimal strings.
type PositionSnapshot struct {
	Owner                    string    `json:"owner,omitempty"`
	TickLower                int       `json:"tick_lower"`
	TickUpper                int       `json:"tick_upper"`
	Liquidity                string    `json:"liquidity"`
	FeeGrowthInside0X128     string    `json:"fee_growth_inside0_x128,omitempty"`
	FeeGrowthInside1X128     string    `json:"fee_growth_inside1_x128,omitempty"`
	FeeGrowthInside0LastX128 string    `json:"fee_growth_inside0_last_x128,omitempty"`
	FeeGrowthInside1LastX128 string    `json:"fee_growth_inside1_last_x128,omitempty"`
	Pool                     PoolState `json:"pool"`
}
