package position

import (
	"fmt"
	"math"
	"math/big"

	"tickScope/internal/tickmath"
)

// CalculateFees returns the uncollected fees of a position from its fee
// growth snapshots: fees_i = (feeGrowthInside_i - feeGrowthInside_iLast) * L / 2^128.
// Inputs are already-fetched snapshot values; a delta that comes out negative
// (accumulator wrapped between snapshots) is clamped to zero.
func CalculateFees(feeGrowthInside0, feeGrowthInside1, liquidity, feeGrowthInside0Last, feeGrowthInside1Last *big.Int) (*big.Int, *big.Int) {
	return feeSide(feeGrowthInside0, feeGrowthInside0Last, liquidity),
		feeSide(feeGrowthInside1, feeGrowthInside1Last, liquidity)
}

func feeSide(growth, growthLast, liquidity *big.Int) *big.Int {
	delta := new(big.Int).Sub(growth, growthLast)
	if delta.Sign() <= 0 {
		return new(big.Int)
	}
	return mulDiv(delta, liquidity, tickmath.Q128)
}

// ImpermanentLoss returns the divergence loss percentage for a relative price
// move since deposit: |2*sqrt(r)/(1+r) - 1| * 100. A ratio of 1 yields
// exactly 0; the function is symmetric under r -> 1/r.
func ImpermanentLoss(priceRatio float64) (float64, error) {
	if !(priceRatio > 0) || math.IsInf(priceRatio, 1) {
		return 0, fmt.Errorf("price ratio must be a positive finite number, got %v", priceRatio)
	}
	return math.Abs(2*math.Sqrt(priceRatio)/(1+priceRatio)-1) * 100, nil
}

// EstimateAPR annualizes a day of fees against TVL. Zero TVL returns 0 rather
// than failing so display paths stay total.
func EstimateAPR(fees24h, tvl float64) float64 {
	if tvl == 0 {
		return 0
	}
	return fees24h / tvl * 365 * 100
}

// TWAPTick returns the time-weighted average tick between two cumulative tick
// observations, rounding toward negative infinity like the oracle library.
func TWAPTick(tickCumulativeStart, tickCumulativeEnd int64, startTs, endTs uint64) (int, error) {
	if endTs <= startTs {
		return 0, fmt.Errorf("observation interval must be positive: start %d, end %d", startTs, endTs)
	}

	delta := tickCumulativeEnd - tickCumulativeStart
	elapsed := int64(endTs - startTs)
	tick := delta / elapsed
	if delta < 0 && delta%elapsed != 0 {
		tick--
	}
	return int(tick), nil
}

// TWAPPrice returns the time-weighted average price over an observation
// interval, decimal-adjusted.
func TWAPPrice(tickCumulativeStart, tickCumulativeEnd int64, startTs, endTs uint64, decimals0, decimals1 int) (float64, error) {
	tick, err := TWAPTick(tickCumulativeStart, tickCumulativeEnd, startTs, endTs)
	if err != nil {
		return 0, err
	}
	return tickmath.TickToPrice(tick) * tickmath.DecimalAdjustment(decimals0, decimals1), nil
}
