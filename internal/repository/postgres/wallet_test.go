package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/numrent/numrent/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletRepository_GetBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userID := int64(1)

		rows := pgxmock.NewRows([]string{"ngn_balance", "usd_balance"}).
			AddRow(decimal.NewFromInt(5000), decimal.NewFromFloat(3.25))

		mock.ExpectQuery(`SELECT ngn_balance, usd_balance`).
			WithArgs(userID).
			WillReturnRows(rows)

		balance, err := repo.GetBalance(ctx, userID)
		require.NoError(t, err)
		assert.True(t, balance.NGN.Equal(decimal.NewFromInt(5000)))
		assert.True(t, balance.USD.Equal(decimal.NewFromFloat(3.25)))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT ngn_balance, usd_balance`).
			WithArgs(int64(2)).
			WillReturnError(errors.New("database error"))

		balance, err := repo.GetBalance(ctx, int64(2))
		assert.Error(t, err)
		assert.Nil(t, balance)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWalletRepository_DebitIfSufficient(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepository(mock)
	ctx := context.Background()

	userID := int64(1)
	amount := decimal.NewFromInt(1200)
	reference := "order-1"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE users`).
			WithArgs(userID, amount).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(pgxmock.AnyArg(), userID, domain.TransactionTypePurchase, amount, domain.CurrencyNGN,
				domain.TransactionStatusCompleted, reference, []byte(nil)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := repo.DebitIfSufficient(ctx, userID, amount, reference, nil)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE users`).
			WithArgs(userID, amount).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		err := repo.DebitIfSufficient(ctx, userID, amount, reference, nil)
		assert.ErrorIs(t, err, ErrInsufficientFunds)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Transaction insert fails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE users`).
			WithArgs(userID, amount).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(pgxmock.AnyArg(), userID, domain.TransactionTypePurchase, amount, domain.CurrencyNGN,
				domain.TransactionStatusCompleted, reference, []byte(nil)).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		err := repo.DebitIfSufficient(ctx, userID, amount, reference, nil)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWalletRepository_Credit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepository(mock)
	ctx := context.Background()

	userID := int64(1)
	amount := decimal.NewFromInt(1200)

	t.Run("Success - refund", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE users`).
			WithArgs(userID, amount).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(pgxmock.AnyArg(), userID, domain.TransactionTypeRefund, amount, domain.CurrencyNGN,
				domain.TransactionStatusCompleted, "order-1", []byte(nil)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := repo.Credit(ctx, userID, amount, domain.TransactionTypeRefund, "order-1", nil)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE users`).
			WithArgs(int64(999), amount).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()

		err := repo.Credit(ctx, int64(999), amount, domain.TransactionTypeDeposit, "ref", nil)
		assert.ErrorIs(t, err, ErrUserNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWalletRepository_GetTransactions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewWalletRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userID := int64(1)
		now := time.Now()

		rows := pgxmock.NewRows([]string{"id", "user_id", "type", "amount", "currency", "status", "reference", "created_at"}).
			AddRow("txn-2", userID, domain.TransactionTypeRefund, decimal.NewFromInt(1200), domain.CurrencyNGN,
				domain.TransactionStatusCompleted, "order-1", now).
			AddRow("txn-1", userID, domain.TransactionTypePurchase, decimal.NewFromInt(1200), domain.CurrencyNGN,
				domain.TransactionStatusCompleted, "order-1", now.Add(-time.Minute))

		mock.ExpectQuery(`SELECT id, user_id, type, amount, currency, status, reference, created_at`).
			WithArgs(userID).
			WillReturnRows(rows)

		transactions, err := repo.GetTransactions(ctx, userID)
		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, domain.TransactionTypeRefund, transactions[0].Type)
		assert.Equal(t, "order-1", transactions[0].Reference)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty history", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "type", "amount", "currency", "status", "reference", "created_at"})

		mock.ExpectQuery(`SELECT id, user_id, type, amount, currency, status, reference, created_at`).
			WithArgs(int64(2)).
			WillReturnRows(rows)

		transactions, err := repo.GetTransactions(ctx, int64(2))
		require.NoError(t, err)
		assert.Empty(t, transactions)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
