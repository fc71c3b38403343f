package position

import (
	"math"
	"math/big"
	"testing"

	"tickScope/internal/tickmath"
)

func TestCalculateFees(t *testing.T) {
	liquidity := big.NewInt(5_000_000)

	// A delta of exactly Q128 pays out one token unit per unit of liquidity.
	growth0 := new(big.Int).Set(tickmath.Q128)
	growth1 := new(big.Int).Lsh(tickmath.Q128, 1)
	fees0, fees1 := CalculateFees(growth0, growth1, liquidity, new(big.Int), new(big.Int))

	if fees0.Cmp(liquidity) != 0 {
		t.Fatalf("fees0 = %s, want %s", fees0, liquidity)
	}
	want1 := new(big.Int).Lsh(liquidity, 1)
	if fees1.Cmp(want1) != 0 {
		t.Fatalf("fees1 = %s, want %s", fees1, want1)
	}
}

func TestCalculateFeesNoGrowth(t *testing.T) {
	liquidity := big.NewInt(5_000_000)
	growth := new(big.Int).Set(tickmath.Q128)

	fees0, fees1 := CalculateFees(growth, growth, liquidity, growth, growth)
	if fees0.Sign() != 0 || fees1.Sign() != 0 {
		t.Fatalf("no growth must yield zero fees, got %s / %s", fees0, fees1)
	}

	// Negative deltas (wrapped accumulators) clamp to zero instead of
	// producing negative fees.
	fees0, _ = CalculateFees(new(big.Int), new(big.Int), liquidity, growth, growth)
	if fees0.Sign() != 0 {
		t.Fatalf("negative delta must clamp to zero, got %s", fees0)
	}
}

func TestImpermanentLoss(t *testing.T) {
	loss, err := ImpermanentLoss(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loss != 0 {
		t.Fatalf("IL(1) = %v, want exactly 0", loss)
	}

	loss, err = ImpermanentLoss(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(loss-20) > 1e-12 {
		t.Fatalf("IL(4) = %v, want 20", loss)
	}
}

func TestImpermanentLossSymmetry(t *testing.T) {
	for _, ratio := range []float64{0.1, 0.5, 1.3, 2, 7.5, 100} {
		up, err := ImpermanentLoss(ratio)
		if err != nil {
			t.Fatalf("IL(%v): %v", ratio, err)
		}
		down, err := ImpermanentLoss(1 / ratio)
		if err != nil {
			t.Fatalf("IL(1/%v): %v", ratio, err)
		}
		if math.Abs(up-down) > 1e-9 {
			t.Fatalf("IL not symmetric for %v: %v vs %v", ratio, up, down)
		}
	}
}

func TestImpermanentLossInvalid(t *testing.T) {
	for _, ratio := range []float64{0, -2, math.NaN()} {
		if _, err := ImpermanentLoss(ratio); err == nil {
			t.Fatalf("expected error for ratio %v", ratio)
		}
	}
}

func TestEstimateAPR(t *testing.T) {
	if got := EstimateAPR(1000, 0); got != 0 {
		t.Fatalf("zero TVL must return 0, got %v", got)
	}
	if got := EstimateAPR(1000, 365000); got != 100 {
		t.Fatalf("APR = %v, want 100", got)
	}
}

func TestTWAPTick(t *testing.T) {
	tick, err := TWAPTick(0, 6000, 100, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tick != 60 {
		t.Fatalf("TWAP tick = %d, want 60", tick)
	}

	// Negative averages round toward negative infinity.
	tick, err = TWAPTick(0, -100, 0, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tick != -15 {
		t.Fatalf("TWAP tick = %d, want -15", tick)
	}

	if _, err := TWAPTick(0, 100, 50, 50); err == nil {
		t.Fatalf("expected error for zero interval")
	}
	if _, err := TWAPTick(0, 100, 60, 50); err == nil {
		t.Fatalf("expected error for negative interval")
	}
}
