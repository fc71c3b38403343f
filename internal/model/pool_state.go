package model

// PoolState is a point-in-time pricing snapshot of a pool. SqrtPriceX96 is a
// decimal string since the value exceeds 64-bit range.
type PoolState struct {
	ChainID      uint64 `json:"chain_id"`
	PoolAddress  string `json:"pool_address"`
	Fee          int    `json:"fee"`
	Tick         int    `json:"tick"`
	SqrtPriceX96 string `json:"sqrt_price_x96"`
	Decimals0    int    `json:"decimals0"`
	Decimals1    int    `json:"decimals1"`
	Timestamp    uint64 `json:"timestamp"`
}
