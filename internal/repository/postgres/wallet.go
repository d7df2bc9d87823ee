package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/numrent/numrent/internal/domain"
	"github.com/shopspring/decimal"
)

// WalletRepository реализует domain.WalletRepository.
// Единственное место в коде, которое изменяет балансы пользователей:
// мутация баланса и запись в журнал транзакций всегда в одной транзакции БД.
type WalletRepository struct {
	db DBTX
}

// NewWalletRepository создает новый WalletRepository
func NewWalletRepository(db DBTX) *WalletRepository {
	return &WalletRepository{db: db}
}

// GetBalance получает балансы пользователя
func (r *WalletRepository) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	balance := &domain.Balance{}

	err := r.db.QueryRow(ctx,
		`SELECT ngn_balance, usd_balance
		 FROM users
		 WHERE id = $1`,
		userID,
	).Scan(&balance.NGN, &balance.USD)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get balance for user %d: %w", userID, err)
	}

	return balance, nil
}

// DebitIfSufficient атомарно списывает средства, если их хватает.
// Условное обновление с проверкой ngn_balance >= amount решает гонку
// двух параллельных покупок без advisory lock.
func (r *WalletRepository) DebitIfSufficient(ctx context.Context, userID int64, amount decimal.Decimal, reference string, metadata []byte) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin debit for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	result, err := tx.Exec(ctx,
		`UPDATE users
		 SET ngn_balance = ngn_balance - $2
		 WHERE id = $1 AND ngn_balance >= $2`,
		userID, amount,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to debit user %d: %w", userID, err)
	}
	if result.RowsAffected() == 0 {
		return ErrInsufficientFunds
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO transactions (id, user_id, type, amount, currency, status, reference, metadata)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.NewString(), userID, domain.TransactionTypePurchase, amount, domain.CurrencyNGN,
		domain.TransactionStatusCompleted, reference, metadata,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert purchase transaction for user %d: %w", userID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit debit for user %d: %w", userID, err)
	}

	return nil
}

// Credit атомарно пополняет баланс и добавляет транзакцию
func (r *WalletRepository) Credit(ctx context.Context, userID int64, amount decimal.Decimal, txType domain.TransactionType, reference string, metadata []byte) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin credit for user %d: %w", userID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	result, err := tx.Exec(ctx,
		`UPDATE users
		 SET ngn_balance = ngn_balance + $2
		 WHERE id = $1`,
		userID, amount,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to credit user %d: %w", userID, err)
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO transactions (id, user_id, type, amount, currency, status, reference, metadata)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.NewString(), userID, txType, amount, domain.CurrencyNGN,
		domain.TransactionStatusCompleted, reference, metadata,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert %s transaction for user %d: %w", txType, userID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit credit for user %d: %w", userID, err)
	}

	return nil
}

// GetTransactions получает историю операций пользователя
func (r *WalletRepository) GetTransactions(ctx context.Context, userID int64) ([]*domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, type, amount, currency, status, reference, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		t := &domain.Transaction{}
		err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Currency, &t.Status, &t.Reference, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating transactions: %w", err)
	}

	return transactions, nil
}
