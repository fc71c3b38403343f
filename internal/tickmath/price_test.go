package tickmath

import (
	"math"
	"testing"
)

func TestTickToPriceZeroPoint(t *testing.T) {
	if got := TickToPrice(0); got != 1.0 {
		t.Fatalf("TickToPrice(0) = %v, want exactly 1.0", got)
	}

	tick, err := PriceToTick(1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tick != 0 {
		t.Fatalf("PriceToTick(1.0) = %d, want exactly 0", tick)
	}
}

func TestTickToPriceMonotonic(t *testing.T) {
	ticks := []int{MinTick, -500000, -100000, -1000, -1, 0, 1, 1000, 100000, 500000, MaxTick}
	for i := 1; i < len(ticks); i++ {
		lo := TickToPrice(ticks[i-1])
		hi := TickToPrice(ticks[i])
		if !(lo < hi) {
			t.Fatalf("prices not strictly increasing: tick %d -> %v, tick %d -> %v", ticks[i-1], lo, ticks[i], hi)
		}
	}
}

func TestPriceToTickRoundTrip(t *testing.T) {
	prices := []float64{1e-9, 0.0004, 0.37, 1.0, 1.5, 42.0, 1800.5, 65000, 3.2e9, 9.9e11}
	for _, price := range prices {
		tick, err := PriceToTick(price)
		if err != nil {
			t.Fatalf("PriceToTick(%v): %v", price, err)
		}

		back := TickToPrice(tick)
		if back > price*(1+1e-12) {
			t.Fatalf("floor violated: TickToPrice(PriceToTick(%v)) = %v exceeds input", price, back)
		}

		relErr := math.Abs(back-price) / price
		if relErr > 2e-4 {
			t.Fatalf("round trip for %v: got %v, relative error %v", price, back, relErr)
		}
	}
}

func TestPriceToTickInvalid(t *testing.T) {
	for _, price := range []float64{0, -1, -0.0001, math.NaN(), math.Inf(1)} {
		if _, err := PriceToTick(price); err == nil {
			t.Fatalf("expected error for price %v", price)
		}
	}
}

func TestTickSpacingForFee(t *testing.T) {
	cases := map[int]int{100: 1, 500: 10, 3000: 60, 10000: 200}
	for fee, want := range cases {
		got, err := TickSpacingForFee(fee)
		if err != nil {
			t.Fatalf("TickSpacingForFee(%d): %v", fee, err)
		}
		if got != want {
			t.Fatalf("TickSpacingForFee(%d) = %d, want %d", fee, got, want)
		}
	}

	if _, err := TickSpacingForFee(2500); err == nil {
		t.Fatalf("expected error for unknown fee tier")
	}
}

func TestDecimalAdjustment(t *testing.T) {
	if got := DecimalAdjustment(18, 18); got != 1.0 {
		t.Fatalf("equal decimals adjustment = %v, want 1.0", got)
	}
	if got := DecimalAdjustment(6, 18); got != 1e-12 {
		t.Fatalf("adjustment(6, 18) = %v, want 1e-12", got)
	}
	if got := DecimalAdjustment(18, 6); got != 1e12 {
		t.Fatalf("adjustment(18, 6) = %v, want 1e12", got)
	}
}
