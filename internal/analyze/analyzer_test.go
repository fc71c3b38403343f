package analyze

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"tickScope/internal/model"
	"tickScope/internal/tickmath"
)

type captureSink struct {
	metrics []model.PositionMetrics
}

func (s *captureSink) PutMetricsBatch(metrics []model.PositionMetrics) error {
	s.metrics = append(s.metrics, metrics...)
	return nil
}

func testSnapshot() model.PositionSnapshot {
	return model.PositionSnapshot{
		Owner:                    "0x2222222222222222222222222222222222222222",
		TickLower:                -600,
		TickUpper:                600,
		Liquidity:                "10000000000",
		FeeGrowthInside0X128:     tickmath.Q128.String(),
		FeeGrowthInside1X128:     "0",
		FeeGrowthInside0LastX128: "0",
		FeeGrowthInside1LastX128: "0",
		Pool: model.PoolState{
			ChainID:      56,
			PoolAddress:  "0x1111111111111111111111111111111111111111",
			Fee:          3000,
			Tick:         0,
			SqrtPriceX96: "79228162514264337593543950336", // 2^96
			Decimals0:    18,
			Decimals1:    18,
			Timestamp:    1700000000,
		},
	}
}

func TestComputeMetrics(t *testing.T) {
	analyzer := NewAnalyzer(Config{}, &captureSink{}, nil, zap.NewNop())

	metrics, err := analyzer.Compute(testSnapshot())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if !metrics.InRange {
		t.Fatalf("position at tick 0 in [-600, 600) must be in range")
	}
	if metrics.PercentInRange != 50 {
		t.Fatalf("percent in range = %v, want 50", metrics.PercentInRange)
	}
	if metrics.Price != 1.0 {
		t.Fatalf("price at Q96 = %v, want 1.0", metrics.Price)
	}
	if metrics.Amount0 == "0" || metrics.Amount1 == "0" {
		t.Fatalf("in-range position must hold both tokens: %s / %s", metrics.Amount0, metrics.Amount1)
	}
	if metrics.FeesOwed0 != "10000000000" {
		t.Fatalf("fees owed0 = %s, want liquidity (delta of one Q128)", metrics.FeesOwed0)
	}
	if metrics.FeesOwed1 != "0" {
		t.Fatalf("fees owed1 = %s, want 0", metrics.FeesOwed1)
	}
	if metrics.CapitalEfficiency <= 1 {
		t.Fatalf("capital efficiency = %v, want > 1", metrics.CapitalEfficiency)
	}
}

func TestComputeMetricsInvalid(t *testing.T) {
	analyzer := NewAnalyzer(Config{}, &captureSink{}, nil, zap.NewNop())

	badAddress := testSnapshot()
	badAddress.Pool.PoolAddress = "not-an-address"
	if _, err := analyzer.Compute(badAddress); err == nil {
		t.Fatalf("expected error for invalid pool address")
	}

	badFee := testSnapshot()
	badFee.Pool.Fee = 1234
	if _, err := analyzer.Compute(badFee); err == nil {
		t.Fatalf("expected error for unknown fee tier")
	}

	badRange := testSnapshot()
	badRange.TickLower, badRange.TickUpper = 600, -600
	if _, err := analyzer.Compute(badRange); err == nil {
		t.Fatalf("expected error for inverted range")
	}

	badSpacing := testSnapshot()
	badSpacing.TickLower = -601
	if _, err := analyzer.Compute(badSpacing); err == nil {
		t.Fatalf("expected error for off-spacing tick")
	}

	badLiquidity := testSnapshot()
	badLiquidity.Liquidity = "-5"
	if _, err := analyzer.Compute(badLiquidity); err == nil {
		t.Fatalf("expected error for negative liquidity")
	}
}

func TestAnalyzerRun(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "snapshots.jsonl")

	good, err := json.Marshal(testSnapshot())
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	outOfRange := testSnapshot()
	outOfRange.Pool.Tick = 1200
	sqrt, err := tickmath.TickToSqrtPriceX96(1200)
	if err != nil {
		t.Fatalf("sqrt price: %v", err)
	}
	outOfRange.Pool.SqrtPriceX96 = sqrt.String()
	second, err := json.Marshal(outOfRange)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	content := string(good) + "\n" + "{broken json\n" + string(second) + "\n"
	if err := os.WriteFile(inputPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	sink := &captureSink{}
	analyzer := NewAnalyzer(Config{BatchSize: 1}, sink, nil, zap.NewNop())

	if err := analyzer.Run(context.Background(), inputPath); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(sink.metrics) != 2 {
		t.Fatalf("expected 2 metrics records, got %d", len(sink.metrics))
	}

	above := sink.metrics[1]
	if above.InRange {
		t.Fatalf("position above range reported in range")
	}
	if above.PercentInRange != 100 {
		t.Fatalf("above range percent = %v, want 100", above.PercentInRange)
	}
	if above.Amount0 != "0" {
		t.Fatalf("above range amount0 = %s, want 0", above.Amount0)
	}
}

func TestAnalyzerRunMissingInput(t *testing.T) {
	analyzer := NewAnalyzer(Config{}, &captureSink{}, nil, zap.NewNop())
	if err := analyzer.Run(context.Background(), "/nonexistent/input.jsonl"); err == nil {
		t.Fatalf("expected error for missing input")
	}
}
