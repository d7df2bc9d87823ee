package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "login", "password_hash", "is_admin", "ngn_balance", "usd_balance", "created_at"})
}

func TestUserRepository_CreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		login := "testuser"
		passwordHash := "hashedpassword"

		rows := userRows().
			AddRow(int64(1), login, passwordHash, false, decimal.Zero, decimal.Zero, time.Now())

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(login, passwordHash).
			WillReturnRows(rows)

		user, err := repo.CreateUser(ctx, login, passwordHash)
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, login, user.Login)
		assert.False(t, user.IsAdmin)
		assert.True(t, user.NGNBalance.IsZero())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User already exists", func(t *testing.T) {
		login := "existinguser"
		passwordHash := "hashedpassword"

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(login, passwordHash).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		user, err := repo.CreateUser(ctx, login, passwordHash)
		assert.ErrorIs(t, err, ErrUserExists)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("testuser", "hash").
			WillReturnError(errors.New("database error"))

		user, err := repo.CreateUser(ctx, "testuser", "hash")
		assert.Error(t, err)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByLogin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		login := "testuser"

		rows := userRows().
			AddRow(int64(1), login, "hashedpassword", true, decimal.NewFromInt(3000), decimal.Zero, time.Now())

		mock.ExpectQuery(`SELECT id, login, password_hash, is_admin, ngn_balance, usd_balance, created_at`).
			WithArgs(login).
			WillReturnRows(rows)

		user, err := repo.GetUserByLogin(ctx, login)
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.True(t, user.IsAdmin)
		assert.True(t, user.NGNBalance.Equal(decimal.NewFromInt(3000)))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, login, password_hash, is_admin, ngn_balance, usd_balance, created_at`).
			WithArgs("nonexistent").
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetUserByLogin(ctx, "nonexistent")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := userRows().
			AddRow(int64(7), "someuser", "hash", false, decimal.Zero, decimal.Zero, time.Now())

		mock.ExpectQuery(`SELECT id, login, password_hash, is_admin, ngn_balance, usd_balance, created_at`).
			WithArgs(int64(7)).
			WillReturnRows(rows)

		user, err := repo.GetUserByID(ctx, int64(7))
		require.NoError(t, err)
		assert.Equal(t, "someuser", user.Login)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, login, password_hash, is_admin, ngn_balance, usd_balance, created_at`).
			WithArgs(int64(999)).
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetUserByID(ctx, int64(999))
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
