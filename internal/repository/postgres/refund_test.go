package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/numrent/numrent/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefundRepository_TerminateWithRefund(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRefundRepository(mock)
	ctx := context.Background()

	orderID := "order-1"
	amount := decimal.NewFromInt(975)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE orders`).
			WithArgs(orderID, domain.OrderStatusCancelled, domain.OrderStatusActive).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "final_price_ngn"}).AddRow(int64(1), amount))
		mock.ExpectExec(`UPDATE users`).
			WithArgs(int64(1), amount).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(pgxmock.AnyArg(), int64(1), domain.TransactionTypeRefund, amount, domain.CurrencyNGN,
				domain.TransactionStatusCompleted, orderID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		refunded, err := repo.TerminateWithRefund(ctx, orderID, domain.OrderStatusCancelled)
		require.NoError(t, err)
		assert.True(t, refunded.Equal(amount))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Loser of concurrent cancel gets ErrAlreadyTerminal", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE orders`).
			WithArgs(orderID, domain.OrderStatusCancelled, domain.OrderStatusActive).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		refunded, err := repo.TerminateWithRefund(ctx, orderID, domain.OrderStatusCancelled)
		assert.ErrorIs(t, err, domain.ErrAlreadyTerminal)
		assert.True(t, refunded.IsZero())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Completed is not a refunding status", func(t *testing.T) {
		refunded, err := repo.TerminateWithRefund(ctx, orderID, domain.OrderStatusCompleted)
		assert.Error(t, err)
		assert.True(t, refunded.IsZero())
	})

	t.Run("Credit failure rolls back the whole refund", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`UPDATE orders`).
			WithArgs(orderID, domain.OrderStatusExpired, domain.OrderStatusActive).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "final_price_ngn"}).AddRow(int64(1), amount))
		mock.ExpectExec(`UPDATE users`).
			WithArgs(int64(1), amount).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		refunded, err := repo.TerminateWithRefund(ctx, orderID, domain.OrderStatusExpired)
		assert.Error(t, err)
		assert.True(t, refunded.IsZero())

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRefundRepository_FindOrphanedRefunds(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRefundRepository(mock)
	ctx := context.Background()

	t.Run("Consistent database is empty", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM orders`).
			WithArgs(domain.TransactionTypeRefund, 100).
			WillReturnRows(pgxmock.NewRows(orderColumnNames()))

		orders, err := repo.FindOrphanedRefunds(ctx, 100)
		require.NoError(t, err)
		assert.Empty(t, orders)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Finds orders missing the refund transaction", func(t *testing.T) {
		order := testOrder()
		order.Status = domain.OrderStatusCancelled
		order.RefundIssued = true
		rows := addOrderRow(pgxmock.NewRows(orderColumnNames()), order)

		mock.ExpectQuery(`SELECT (.+) FROM orders`).
			WithArgs(domain.TransactionTypeRefund, 100).
			WillReturnRows(rows)

		orders, err := repo.FindOrphanedRefunds(ctx, 100)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.True(t, orders[0].RefundIssued)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRefundRepository_RepairRefund(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRefundRepository(mock)
	ctx := context.Background()

	orderID := "order-1"
	amount := decimal.NewFromInt(975)

	t.Run("Repairs missing credit and transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT o.user_id, o.final_price_ngn`).
			WithArgs(orderID, domain.TransactionTypeRefund).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "final_price_ngn"}).AddRow(int64(1), amount))
		mock.ExpectExec(`UPDATE users`).
			WithArgs(int64(1), amount).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs(pgxmock.AnyArg(), int64(1), domain.TransactionTypeRefund, amount, domain.CurrencyNGN,
				domain.TransactionStatusCompleted, orderID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		err := repo.RepairRefund(ctx, orderID)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing to repair is a no-op", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT o.user_id, o.final_price_ngn`).
			WithArgs(orderID, domain.TransactionTypeRefund).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectRollback()

		err := repo.RepairRefund(ctx, orderID)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
