package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/numrent/numrent/internal/domain"
	"github.com/shopspring/decimal"
)

// PricingRepository реализует domain.PricingRepository
type PricingRepository struct {
	db DBTX
}

// NewPricingRepository создает новый PricingRepository
func NewPricingRepository(db DBTX) *PricingRepository {
	return &PricingRepository{db: db}
}

// GetPricingConfig получает глобальную конфигурацию ценообразования
func (r *PricingRepository) GetPricingConfig(ctx context.Context) (*domain.PricingConfig, error) {
	cfg := &domain.PricingConfig{}
	var markups []byte

	err := r.db.QueryRow(ctx,
		`SELECT ngn_per_usd, markups, updated_at
		 FROM pricing_config
		 WHERE id = 1`,
	).Scan(&cfg.NGNPerUSD, &markups, &cfg.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get pricing config: %w", err)
	}

	if err := json.Unmarshal(markups, &cfg.Markups); err != nil {
		return nil, fmt.Errorf("repository: failed to decode markups: %w", err)
	}
	if cfg.Markups == nil {
		cfg.Markups = map[string]decimal.Decimal{}
	}

	return cfg, nil
}

// UpdatePricingConfig обновляет конфигурацию ценообразования
func (r *PricingRepository) UpdatePricingConfig(ctx context.Context, cfg *domain.PricingConfig) error {
	markups, err := json.Marshal(cfg.Markups)
	if err != nil {
		return fmt.Errorf("repository: failed to encode markups: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO pricing_config (id, ngn_per_usd, markups, updated_at)
		 VALUES (1, $1, $2, NOW())
		 ON CONFLICT (id) DO UPDATE
		 SET ngn_per_usd = EXCLUDED.ngn_per_usd, markups = EXCLUDED.markups, updated_at = NOW()`,
		cfg.NGNPerUSD, markups,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update pricing config: %w", err)
	}

	return nil
}

// GetPromoCode получает промокод
func (r *PricingRepository) GetPromoCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	promo := &domain.PromoCode{}

	err := r.db.QueryRow(ctx,
		`SELECT code, kind, value, expires_at, max_uses, used_count
		 FROM promo_codes
		 WHERE code = $1`,
		code,
	).Scan(&promo.Code, &promo.Kind, &promo.Value, &promo.ExpiresAt, &promo.MaxUses, &promo.UsedCount)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPromoNotFound
		}
		return nil, fmt.Errorf("repository: failed to get promo code %q: %w", code, err)
	}

	return promo, nil
}

// CreatePromoCode создает новый промокод
func (r *PricingRepository) CreatePromoCode(ctx context.Context, promo *domain.PromoCode) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO promo_codes (code, kind, value, expires_at, max_uses)
		 VALUES ($1, $2, $3, $4, $5)`,
		promo.Code, promo.Kind, promo.Value, promo.ExpiresAt, promo.MaxUses,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("repository: promo code %q already exists", promo.Code)
		}
		return fmt.Errorf("repository: failed to create promo code %q: %w", promo.Code, err)
	}

	return nil
}

// ConsumePromoCode атомарно расходует одно использование промокода.
// Условия в UPDATE отсекают просроченные и исчерпанные коды.
func (r *PricingRepository) ConsumePromoCode(ctx context.Context, code string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE promo_codes
		 SET used_count = used_count + 1
		 WHERE code = $1
		   AND (expires_at IS NULL OR expires_at > NOW())
		   AND (max_uses IS NULL OR used_count < max_uses)`,
		code,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to consume promo code %q: %w", code, err)
	}
	if result.RowsAffected() == 0 {
		return ErrPromoExhausted
	}

	return nil
}
