package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/numrent/numrent/internal/domain"
)

const orderColumns = `id, user_id, provider, service_code, country_code, operator,
	activation_id, phone_number, status, otp,
	base_price_usd, final_price_usd, final_price_ngn, markup_pct, promo_code,
	refund_issued, created_at, last_polled_at, next_poll_at, expires_at`

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := &domain.Order{}
	err := row.Scan(
		&order.ID, &order.UserID, &order.Provider, &order.ServiceCode, &order.CountryCode, &order.Operator,
		&order.ActivationID, &order.PhoneNumber, &order.Status, &order.OTP,
		&order.BasePriceUSD, &order.FinalPriceUSD, &order.FinalPriceNGN, &order.MarkupPct, &order.PromoCode,
		&order.RefundIssued, &order.CreatedAt, &order.LastPolledAt, &order.NextPollAt, &order.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// CreateOrder создает новый заказ аренды
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO orders (id, user_id, provider, service_code, country_code, operator,
			activation_id, phone_number, status, otp,
			base_price_usd, final_price_usd, final_price_ngn, markup_pct, promo_code,
			created_at, next_poll_at, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		order.ID, order.UserID, order.Provider, order.ServiceCode, order.CountryCode, order.Operator,
		order.ActivationID, order.PhoneNumber, order.Status, order.OTP,
		order.BasePriceUSD, order.FinalPriceUSD, order.FinalPriceNGN, order.MarkupPct, order.PromoCode,
		order.CreatedAt, order.NextPollAt, order.ExpiresAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrOrderExists
		}
		return fmt.Errorf("repository: failed to create order %q: %w", order.ID, err)
	}

	return nil
}

// GetOrderByID получает заказ по его ID
func (r *OrderRepository) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order by id %q: %w", id, err)
	}
	return order, nil
}

// GetOrderByActivationID получает заказ по upstream activation id
func (r *OrderRepository) GetOrderByActivationID(ctx context.Context, activationID string) (*domain.Order, error) {
	order, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE activation_id = $1`, activationID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order by activation id %q: %w", activationID, err)
	}
	return order, nil
}

// GetOrdersByUserID получает все заказы пользователя
func (r *OrderRepository) GetOrdersByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get orders for user %d: %w", userID, err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// GetDuePolls получает активные заказы, которым пора на опрос.
// После рестарта процесса этот же запрос возвращает все активные заказы,
// так что возобновление опроса получается автоматически.
func (r *OrderRepository) GetDuePolls(ctx context.Context, now time.Time, limit int) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE status = $1 AND next_poll_at <= $2
		 ORDER BY next_poll_at ASC
		 LIMIT $3`,
		domain.OrderStatusActive, now, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get due polls: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// ReschedulePoll фиксирует время опроса и назначает следующий
func (r *OrderRepository) ReschedulePoll(ctx context.Context, id string, polledAt, nextPollAt time.Time) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET last_polled_at = $2, next_poll_at = $3
		 WHERE id = $1 AND status = $4`,
		id, polledAt, nextPollAt, domain.OrderStatusActive,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to reschedule poll for order %q: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		// Заказ успел стать финальным, перепланировать нечего
		return domain.ErrAlreadyTerminal
	}
	return nil
}

// CompleteOrder переводит заказ active -> completed и записывает OTP.
// OTP записывается не более одного раза: условие otp IS NULL в CAS.
func (r *OrderRepository) CompleteOrder(ctx context.Context, id, otp string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE orders
		 SET status = $2, otp = $3, last_polled_at = NOW()
		 WHERE id = $1 AND status = $4 AND otp IS NULL`,
		id, domain.OrderStatusCompleted, otp, domain.OrderStatusActive,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to complete order %q: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAlreadyTerminal
	}
	return nil
}

func collectOrders(rows pgx.Rows) ([]*domain.Order, error) {
	var orders []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	return orders, nil
}
