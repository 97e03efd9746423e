package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"positionScope/internal/model"
)

// Store provides Postgres persistence for rendered descriptors.
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

// PutDescriptorBatch inserts or updates rendered descriptors, keyed on
// (chain_id, token_id).
func (s *Store) PutDescriptorBatch(ctx context.Context, records []model.DescriptorRecord) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(`
			INSERT INTO position_descriptors (
				chain_id, token_id, pool_address, name, description,
				quote_symbol, base_symbol, fee_percent,
				price_lower, price_upper, price_current,
				quote_address, base_address, color_quote, color_base,
				created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,now(),now())
			ON CONFLICT (chain_id, token_id)
			DO UPDATE SET
				pool_address = EXCLUDED.pool_address,
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				quote_symbol = EXCLUDED.quote_symbol,
				base_symbol = EXCLUDED.base_symbol,
				fee_percent = EXCLUDED.fee_percent,
				price_lower = EXCLUDED.price_lower,
				price_upper = EXCLUDED.price_upper,
				price_current = EXCLUDED.price_current,
				quote_address = EXCLUDED.quote_address,
				base_address = EXCLUDED.base_address,
				color_quote = EXCLUDED.color_quote,
				color_base = EXCLUDED.color_base,
				updated_at = now()
		`,
			int64(r.ChainID),
			int64(r.TokenID),
			r.PoolAddress,
			r.Name,
			r.Description,
			r.QuoteSymbol,
			r.BaseSymbol,
			r.FeePercent,
			r.PriceLower,
			r.PriceUpper,
			r.PriceCurrent,
			r.QuoteAddress,
			r.BaseAddress,
			r.ColorQuote,
			r.ColorBase,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range records {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
