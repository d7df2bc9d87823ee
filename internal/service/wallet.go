package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/numrent/numrent/internal/domain"
	"github.com/numrent/numrent/internal/repository/postgres"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// WalletService реализует domain.WalletService
type WalletService struct {
	walletRepo domain.WalletRepository
	logger     *zap.Logger
}

// NewWalletService создает новый WalletService
func NewWalletService(walletRepo domain.WalletRepository, logger *zap.Logger) *WalletService {
	return &WalletService{walletRepo: walletRepo, logger: logger}
}

// GetBalance возвращает баланс кошелька пользователя
func (s *WalletService) GetBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	balance, err := s.walletRepo.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, postgres.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("wallet service: failed to get balance: %w", err)
	}
	return balance, nil
}

// GetTransactions возвращает историю транзакций, новые первыми
func (s *WalletService) GetTransactions(ctx context.Context, userID int64) ([]*domain.Transaction, error) {
	transactions, err := s.walletRepo.GetTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("wallet service: failed to get transactions: %w", err)
	}
	return transactions, nil
}

// Deposit пополняет баланс NGN. Reference пустой для ручных пополнений
// администратором, иначе — идентификатор платежа из внешней системы.
func (s *WalletService) Deposit(ctx context.Context, userID int64, amount decimal.Decimal, reference string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if reference == "" {
		reference = uuid.NewString()
	}

	if err := s.walletRepo.Credit(ctx, userID, amount, domain.TransactionTypeDeposit, reference, nil); err != nil {
		return fmt.Errorf("wallet service: failed to credit deposit: %w", err)
	}

	s.logger.Info("wallet deposited",
		zap.Int64("user_id", userID),
		zap.String("amount_ngn", amount.String()),
		zap.String("reference", reference),
	)

	return nil
}
