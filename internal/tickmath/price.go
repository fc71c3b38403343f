package tickmath

import (
	"fmt"
	"math"
)

// TickSpacingForFee returns the tick spacing for one of the four standard fee
// tiers. Unknown tiers are an error, never a default.
func TickSpacingForFee(fee int) (int, error) {
	spacing, ok := tickSpacings[fee]
	if !ok {
		return 0, fmt.Errorf("unknown fee tier %d (expected 100, 500, 3000 or 10000)", fee)
	}
	return spacing, nil
}

// TickToPrice returns the raw token1/token0 price at a tick: 1.0001^tick.
func TickToPrice(tick int) float64 {
	return math.Pow(tickBase, float64(tick))
}

// PriceToTick returns the tick whose price is closest to, but not above, the
// given price: floor(log(price) / log(1.0001)). A price between two tick
// boundaries always maps to the lower tick, so
// TickToPrice(PriceToTick(p)) <= p.
func PriceToTick(price float64) (int, error) {
	if !(price > 0) || math.IsInf(price, 1) {
		return 0, fmt.Errorf("price must be a positive finite number, got %v", price)
	}
	return int(math.Floor(math.Log(price) / math.Log(tickBase))), nil
}

// DecimalAdjustment returns the factor 10^(decimals0 - decimals1) that scales
// a raw price into a human-readable one.
func DecimalAdjustment(decimals0, decimals1 int) float64 {
	return math.Pow(10, float64(decimals0-decimals1))
}
