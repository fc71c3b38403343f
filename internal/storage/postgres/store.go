package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tickScope/internal/model"
)

// Store provides Postgres persistence for position metrics.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertPositionMetrics inserts or updates metrics, one row per position and
// snapshot timestamp.
func (s *Store) UpsertPositionMetrics(ctx context.Context, metrics []model.PositionMetrics) error {
	if len(metrics) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, m := range metrics {
		batch.Queue(`
			INSERT INTO position_metrics (
				chain_id, pool_address, owner, tick_lower, tick_upper, current_tick,
				price, price_lower, price_upper, liquidity, amount0, amount1,
				fees_owed0, fees_owed1, in_range, percent_in_range, capital_efficiency,
				snapshot_ts, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,now(),now())
			ON CONFLICT (chain_id, pool_address, owner, tick_lower, tick_upper, snapshot_ts)
			DO UPDATE SET
				current_tick = EXCLUDED.current_tick,
				price = EXCLUDED.price,
				price_lower = EXCLUDED.price_lower,
				price_upper = EXCLUDED.price_upper,
				liquidity = EXCLUDED.liquidity,
				amount0 = EXCLUDED.amount0,
				amount1 = EXCLUDED.amount1,
				fees_owed0 = EXCLUDED.fees_owed0,
				fees_owed1 = EXCLUDED.fees_owed1,
				in_range = EXCLUDED.in_range,
				percent_in_range = EXCLUDED.percent_in_range,
				capital_efficiency = EXCLUDED.capital_efficiency,
				updated_at = now()
		`,
			int64(m.ChainID),
			m.PoolAddress,
			m.Owner,
			m.TickLower,
			m.TickUpper,
			m.CurrentTick,
			m.Price,
			m.PriceLower,
			m.PriceUpper,
			m.Liquidity,
			m.Amount0,
			m.Amount1,
			m.FeesOwed0,
			m.FeesOwed1,
			m.InRange,
			m.PercentInRange,
			m.CapitalEfficiency,
			int64(m.Timestamp),
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range metrics {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
