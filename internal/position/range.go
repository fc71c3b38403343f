package position

import (
	"fmt"
	"math"

	"tickScope/internal/tickmath"
)

// TickRange is a position boundary pair. TickLower is always strictly below
// TickUpper and both are usable ticks for the pool's fee tier.
type TickRange struct {
	TickLower int `json:"tick_lower"`
	TickUpper int `json:"tick_upper"`
}

// TickDistance describes where the current tick sits inside a range.
// PercentInRange is 0 below the range, 100 above it, and a linear
// interpolation of the tick position inside it.
type TickDistance struct {
	ToLower        int     `json:"to_lower"`
	ToUpper        int     `json:"to_upper"`
	PercentInRange float64 `json:"percent_in_range"`
}

// zScores maps a confidence level to its normal-distribution z value.
var zScores = map[float64]float64{
	0.90: 1.645,
	0.95: 1.96,
	0.99: 2.576,
}

const defaultZScore = 1.96

// CalculateTickRange builds a range spanning currentPrice * (1 ± percent/100),
// snapped to the fee tier's spacing. The band is symmetric in price, not in
// tick space; the resulting tick asymmetry is expected.
func CalculateTickRange(currentTick int, percentRange float64, feeTier int) (TickRange, error) {
	spacing, err := tickmath.TickSpacingForFee(feeTier)
	if err != nil {
		return TickRange{}, err
	}
	if !tickmath.IsValidTick(currentTick) {
		return TickRange{}, fmt.Errorf("current tick %d out of range", currentTick)
	}

	currentPrice := tickmath.TickToPrice(currentTick)

	lowerTick, err := tickmath.PriceToTick(currentPrice * (1 - percentRange/100))
	if err != nil {
		return TickRange{}, fmt.Errorf("lower price bound: %w", err)
	}
	upperTick, err := tickmath.PriceToTick(currentPrice * (1 + percentRange/100))
	if err != nil {
		return TickRange{}, fmt.Errorf("upper price bound: %w", err)
	}

	result := TickRange{
		TickLower: tickmath.NearestUsableTick(lowerTick, spacing),
		TickUpper: tickmath.NearestUsableTick(upperTick, spacing),
	}
	if result.TickLower >= result.TickUpper {
		return TickRange{}, fmt.Errorf("percent range %v collapses to a zero-width range at tick %d", percentRange, currentTick)
	}
	return result, nil
}

// FullRangeTicks returns the widest mintable range for a fee tier. The
// one-spacing safety margin of NearestUsableTick applies here too, so the
// result sits one spacing inside the absolute tick bounds.
func FullRangeTicks(feeTier int) (TickRange, error) {
	spacing, err := tickmath.TickSpacingForFee(feeTier)
	if err != nil {
		return TickRange{}, err
	}
	return TickRange{
		TickLower: tickmath.NearestUsableTick(tickmath.MinTick, spacing),
		TickUpper: tickmath.NearestUsableTick(tickmath.MaxTick, spacing),
	}, nil
}

// InRange reports whether the current tick is inside [tickLower, tickUpper).
// The upper bound is exclusive, matching the protocol's tick-crossing rule.
func InRange(tickLower, tickUpper, currentTick int) bool {
	return currentTick >= tickLower && currentTick < tickUpper
}

// Distance returns tick distances to the range boundaries and the linear
// position of the current tick within the range.
func Distance(currentTick, tickLower, tickUpper int) (TickDistance, error) {
	if tickLower >= tickUpper {
		return TickDistance{}, fmt.Errorf("tick lower %d must be less than tick upper %d", tickLower, tickUpper)
	}

	dist := TickDistance{
		ToLower: currentTick - tickLower,
		ToUpper: tickUpper - currentTick,
	}
	switch {
	case currentTick < tickLower:
		dist.PercentInRange = 0
	case currentTick >= tickUpper:
		dist.PercentInRange = 100
	default:
		dist.PercentInRange = float64(currentTick-tickLower) / float64(tickUpper-tickLower) * 100
	}
	return dist, nil
}

// SuggestTickRange sizes a range from expected price movement:
// expectedMove = volatility * sqrt(holdingPeriodDays) * zScore. Unrecognized
// confidence levels fall back to the 95% z value rather than failing; this is
// the one lookup in the package with a soft default.
func SuggestTickRange(currentTick int, volatility, holdingPeriodDays, confidenceLevel float64, feeTier int) (TickRange, error) {
	if volatility < 0 {
		return TickRange{}, fmt.Errorf("volatility must be non-negative, got %v", volatility)
	}
	if holdingPeriodDays <= 0 {
		return TickRange{}, fmt.Errorf("holding period must be positive, got %v", holdingPeriodDays)
	}

	zScore, ok := zScores[confidenceLevel]
	if !ok {
		zScore = defaultZScore
	}

	expectedMove := volatility * math.Sqrt(holdingPeriodDays) * zScore
	return CalculateTickRange(currentTick, expectedMove*100, feeTier)
}

// CapitalEfficiency returns the concentration factor of a range relative to
// the full tick domain. Zero-width ranges are rejected; validate with
// ValidateTicks before calling.
func CapitalEfficiency(tickLower, tickUpper int) (float64, error) {
	if tickUpper == tickLower {
		return 0, fmt.Errorf("zero-width tick range")
	}
	if tickLower > tickUpper {
		return 0, fmt.Errorf("tick lower %d must be less than tick upper %d", tickLower, tickUpper)
	}
	return float64(tickmath.MaxTick-tickmath.MinTick) / float64(tickUpper-tickLower), nil
}
