package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/numrent/numrent/internal/domain"
	"github.com/shopspring/decimal"
)

// RefundRepository реализует domain.RefundRepository.
// Переход "финальный статус + refund_issued + пополнение кошелька +
// refund-транзакция" выполняется одной транзакцией БД; победителя среди
// конкурирующих отмен выбирает CAS по условию status='active' AND
// refund_issued=false.
type RefundRepository struct {
	db DBTX
}

// NewRefundRepository создает новый RefundRepository
func NewRefundRepository(db DBTX) *RefundRepository {
	return &RefundRepository{db: db}
}

// TerminateWithRefund переводит активный заказ в возвратный финальный
// статус и возвращает сумму, зачисленную обратно на кошелек
func (r *RefundRepository) TerminateWithRefund(ctx context.Context, orderID string, to domain.OrderStatus) (decimal.Decimal, error) {
	if !to.IsTerminal() || to == domain.OrderStatusCompleted {
		return decimal.Zero, fmt.Errorf("repository: %q is not a refunding terminal status", to)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("repository: failed to begin refund for order %q: %w", orderID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	var userID int64
	var amount decimal.Decimal
	err = tx.QueryRow(ctx,
		`UPDATE orders
		 SET status = $2, refund_issued = TRUE, last_polled_at = NOW()
		 WHERE id = $1 AND status = $3 AND refund_issued = FALSE
		 RETURNING user_id, final_price_ngn`,
		orderID, to, domain.OrderStatusActive,
	).Scan(&userID, &amount)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrAlreadyTerminal
		}
		return decimal.Zero, fmt.Errorf("repository: failed to terminate order %q: %w", orderID, err)
	}

	if _, err = tx.Exec(ctx,
		`UPDATE users SET ngn_balance = ngn_balance + $2 WHERE id = $1`,
		userID, amount,
	); err != nil {
		return decimal.Zero, fmt.Errorf("repository: failed to credit refund for order %q: %w", orderID, err)
	}

	if _, err = tx.Exec(ctx,
		`INSERT INTO transactions (id, user_id, type, amount, currency, status, reference)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.NewString(), userID, domain.TransactionTypeRefund, amount, domain.CurrencyNGN,
		domain.TransactionStatusCompleted, orderID,
	); err != nil {
		return decimal.Zero, fmt.Errorf("repository: failed to insert refund transaction for order %q: %w", orderID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return decimal.Zero, fmt.Errorf("repository: failed to commit refund for order %q: %w", orderID, err)
	}

	return amount, nil
}

// FindOrphanedRefunds ищет заказы, у которых выставлен refund_issued,
// но refund-транзакция отсутствует. На консистентной базе выборка пуста.
func (r *RefundRepository) FindOrphanedRefunds(ctx context.Context, limit int) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders o
		 WHERE o.refund_issued = TRUE
		   AND NOT EXISTS (
			SELECT 1 FROM transactions t
			WHERE t.type = $1 AND t.reference = o.id
		   )
		 LIMIT $2`,
		domain.TransactionTypeRefund, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to find orphaned refunds: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// RepairRefund дописывает пополнение кошелька и refund-транзакцию для
// заказа, помеченного refund_issued. Повторная проверка отсутствия
// транзакции внутри транзакции БД делает починку идемпотентной.
func (r *RefundRepository) RepairRefund(ctx context.Context, orderID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin refund repair for order %q: %w", orderID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var userID int64
	var amount decimal.Decimal
	err = tx.QueryRow(ctx,
		`SELECT o.user_id, o.final_price_ngn
		 FROM orders o
		 WHERE o.id = $1 AND o.refund_issued = TRUE
		   AND NOT EXISTS (
			SELECT 1 FROM transactions t
			WHERE t.type = $2 AND t.reference = o.id
		   )
		 FOR UPDATE OF o`,
		orderID, domain.TransactionTypeRefund,
	).Scan(&userID, &amount)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Возврат уже выдан полностью, чинить нечего
			return nil
		}
		return fmt.Errorf("repository: failed to lock order %q for refund repair: %w", orderID, err)
	}

	if _, err = tx.Exec(ctx,
		`UPDATE users SET ngn_balance = ngn_balance + $2 WHERE id = $1`,
		userID, amount,
	); err != nil {
		return fmt.Errorf("repository: failed to credit repaired refund for order %q: %w", orderID, err)
	}

	if _, err = tx.Exec(ctx,
		`INSERT INTO transactions (id, user_id, type, amount, currency, status, reference)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.NewString(), userID, domain.TransactionTypeRefund, amount, domain.CurrencyNGN,
		domain.TransactionStatusCompleted, orderID,
	); err != nil {
		return fmt.Errorf("repository: failed to insert repaired refund transaction for order %q: %w", orderID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit refund repair for order %q: %w", orderID, err)
	}

	return nil
}
