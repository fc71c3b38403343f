package analyze

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"tickScope/internal/model"
	"tickScope/internal/position"
	"tickScope/internal/storage"
	"tickScope/internal/storage/postgres"
	"tickScope/internal/tickmath"
)

// Config controls analyzer behavior.
type Config struct {
	BatchSize int
}

// Analyzer derives position metrics from position snapshots.
type Analyzer struct {
	cfg    Config
	sink   storage.Storage
	store  *postgres.Store
	logger *zap.Logger
}

// NewAnalyzer builds an analyzer. The sink is required; the Postgres store is
// optional.
func NewAnalyzer(cfg Config, sink storage.Storage, store *postgres.Store, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		cfg:    cfg,
		sink:   sink,
		store:  store,
		logger: logger,
	}
}

// Run computes metrics for every snapshot in a JSONL file. Malformed or
// invalid lines are logged and skipped; the run fails only on I/O errors.
func (a *Analyzer) Run(ctx context.Context, inputPath string) error {
	if a.sink == nil {
		return fmt.Errorf("sink is nil")
	}
	if a.cfg.BatchSize <= 0 {
		a.cfg.BatchSize = 1000
	}

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	batch := make([]model.PositionMetrics, 0, a.cfg.BatchSize)
	var total, computed, failed int

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		total++

		var snapshot model.PositionSnapshot
		if err := json.Unmarshal(line, &snapshot); err != nil {
			failed++
			a.logger.Warn("decode snapshot", zap.Error(err))
			continue
		}

		metrics, err := a.Compute(snapshot)
		if err != nil {
			failed++
			a.logger.Warn("compute metrics",
				zap.Error(err),
				zap.String("pool", snapshot.Pool.PoolAddress),
				zap.Int("tick_lower", snapshot.TickLower),
				zap.Int("tick_upper", snapshot.TickUpper),
			)
			continue
		}

		batch = append(batch, metrics)
		computed++

		if len(batch) >= a.cfg.BatchSize {
			if err := a.flush(ctx, batch); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan input: %w", err)
	}

	if len(batch) > 0 {
		if err := a.flush(ctx, batch); err != nil {
			return err
		}
	}

	a.logger.Info("analyze complete",
		zap.Int("total", total),
		zap.Int("computed", computed),
		zap.Int("failed", failed),
	)

	return nil
}

// Compute runs the range and liquidity math for one snapshot.
func (a *Analyzer) Compute(snapshot model.PositionSnapshot) (model.PositionMetrics, error) {
	pool := snapshot.Pool
	if !common.IsHexAddress(pool.PoolAddress) {
		return model.PositionMetrics{}, fmt.Errorf("invalid pool address: %q", pool.PoolAddress)
	}

	spacing, err := tickmath.TickSpacingForFee(pool.Fee)
	if err != nil {
		return model.PositionMetrics{}, err
	}
	if err := tickmath.ValidateTicks(snapshot.TickLower, snapshot.TickUpper, spacing); err != nil {
		return model.PositionMetrics{}, err
	}
	if !tickmath.IsValidTick(pool.Tick) {
		return model.PositionMetrics{}, fmt.Errorf("pool tick %d out of range", pool.Tick)
	}

	sqrtPrice, err := tickmath.ParseSqrtPriceX96(pool.SqrtPriceX96)
	if err != nil {
		return model.PositionMetrics{}, fmt.Errorf("pool sqrt price: %w", err)
	}
	liquidity, err := parseAmount(snapshot.Liquidity)
	if err != nil {
		return model.PositionMetrics{}, fmt.Errorf("liquidity: %w", err)
	}

	sqrtLower, err := tickmath.TickToSqrtPriceX96(snapshot.TickLower)
	if err != nil {
		return model.PositionMetrics{}, err
	}
	sqrtUpper, err := tickmath.TickToSqrtPriceX96(snapshot.TickUpper)
	if err != nil {
		return model.PositionMetrics{}, err
	}

	amounts := position.AmountsForLiquidity(sqrtPrice, sqrtLower, sqrtUpper, liquidity)

	fees0, fees1, err := feesOwed(snapshot, liquidity)
	if err != nil {
		return model.PositionMetrics{}, err
	}

	price, err := tickmath.SqrtPriceX96ToPrice(sqrtPrice, pool.Decimals0, pool.Decimals1)
	if err != nil {
		return model.PositionMetrics{}, err
	}
	adjustment := tickmath.DecimalAdjustment(pool.Decimals0, pool.Decimals1)

	dist, err := position.Distance(pool.Tick, snapshot.TickLower, snapshot.TickUpper)
	if err != nil {
		return model.PositionMetrics{}, err
	}
	efficiency, err := position.CapitalEfficiency(snapshot.TickLower, snapshot.TickUpper)
	if err != nil {
		return model.PositionMetrics{}, err
	}

	return model.PositionMetrics{
		ChainID:           pool.ChainID,
		PoolAddress:       common.HexToAddress(pool.PoolAddress).Hex(),
		Owner:             snapshot.Owner,
		TickLower:         snapshot.TickLower,
		TickUpper:         snapshot.TickUpper,
		CurrentTick:       pool.Tick,
		Price:             price,
		PriceLower:        tickmath.TickToPrice(snapshot.TickLower) * adjustment,
		PriceUpper:        tickmath.TickToPrice(snapshot.TickUpper) * adjustment,
		Liquidity:         liquidity.String(),
		Amount0:           amounts.Amount0.String(),
		Amount1:           amounts.Amount1.String(),
		FeesOwed0:         fees0.String(),
		FeesOwed1:         fees1.String(),
		InRange:           position.InRange(snapshot.TickLower, snapshot.TickUpper, pool.Tick),
		PercentInRange:    dist.PercentInRange,
		CapitalEfficiency: efficiency,
		Timestamp:         pool.Timestamp,
	}, nil
}

func (a *Analyzer) flush(ctx context.Context, batch []model.PositionMetrics) error {
	if err := a.sink.PutMetricsBatch(batch); err != nil {
		return err
	}
	if a.store != nil {
		if err := a.store.UpsertPositionMetrics(ctx, batch); err != nil {
			return err
		}
	}
	return nil
}

func feesOwed(snapshot model.PositionSnapshot, liquidity *big.Int) (*big.Int, *big.Int, error) {
	growth0, err := parseOptionalAmount(snapshot.FeeGrowthInside0X128)
	if err != nil {
		return nil, nil, fmt.Errorf("fee growth inside0: %w", err)
	}
	growth1, err := parseOptionalAmount(snapshot.FeeGrowthInside1X128)
	if err != nil {
		return nil, nil, fmt.Errorf("fee growth inside1: %w", err)
	}
	last0, err := parseOptionalAmount(snapshot.FeeGrowthInside0LastX128)
	if err != nil {
		return nil, nil, fmt.Errorf("fee growth inside0 last: %w", err)
	}
	last1, err := parseOptionalAmount(snapshot.FeeGrowthInside1LastX128)
	if err != nil {
		return nil, nil, fmt.Errorf("fee growth inside1 last: %w", err)
	}

	fees0, fees1 := position.CalculateFees(growth0, growth1, liquidity, last0, last1)
	return fees0, fees1, nil
}

func parseAmount(s string) (*big.Int, error) {
	value, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal integer: %q", s)
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("value must be non-negative: %q", s)
	}
	return value, nil
}

func parseOptionalAmount(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	return parseAmount(s)
}
