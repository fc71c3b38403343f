package tickmath

import (
	"fmt"
	"math"
)

// NearestUsableTick rounds a tick to the nearest multiple of tickSpacing
// (ties away from zero) and clamps the result one spacing inside the absolute
// tick bounds. The one-spacing margin avoids minting exactly on the protocol
// boundary and applies to every caller, full-range included. tickSpacing must
// be positive; use TickSpacingForFee to obtain it.
func NearestUsableTick(tick, tickSpacing int) int {
	rounded := int(math.Round(float64(tick)/float64(tickSpacing))) * tickSpacing

	if rounded < MinTick+tickSpacing {
		return MinTick + tickSpacing
	}
	if rounded > MaxTick-tickSpacing {
		return MaxTick - tickSpacing
	}
	return rounded
}

// IsUsableTick reports whether a tick is mintable at the given spacing.
func IsUsableTick(tick, tickSpacing int) bool {
	return tickSpacing > 0 && tick%tickSpacing == 0
}

// IsValidTick reports whether a tick is within the protocol bounds.
func IsValidTick(tick int) bool {
	return tick >= MinTick && tick <= MaxTick
}

// ValidateTicks checks a position range: ordering first, then bounds, then
// spacing divisibility. It reports the first failing constraint only.
func ValidateTicks(tickLower, tickUpper, tickSpacing int) error {
	if tickLower >= tickUpper {
		return fmt.Errorf("tick lower %d must be less than tick upper %d", tickLower, tickUpper)
	}
	if !IsValidTick(tickLower) {
		return fmt.Errorf("tick lower %d out of range [%d, %d]", tickLower, MinTick, MaxTick)
	}
	if !IsValidTick(tickUpper) {
		return fmt.Errorf("tick upper %d out of range [%d, %d]", tickUpper, MinTick, MaxTick)
	}
	if !IsUsableTick(tickLower, tickSpacing) {
		return fmt.Errorf("tick lower %d not divisible by spacing %d", tickLower, tickSpacing)
	}
	if !IsUsableTick(tickUpper, tickSpacing) {
		return fmt.Errorf("tick upper %d not divisible by spacing %d", tickUpper, tickSpacing)
	}
	return nil
}
