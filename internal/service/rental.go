package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/numrent/numrent/internal/domain"
	"github.com/numrent/numrent/internal/repository/postgres"
	"go.uber.org/zap"
)

// Первый опрос активации назначается через эту задержку после покупки
const firstPollDelay = 5 * time.Second

// RentalService реализует domain.RentalService: покупку номера со
// списанием средств, просмотр заказов и отмену с возвратом.
type RentalService struct {
	adapters    AdapterResolver
	pricing     *PricingService
	pricingRepo domain.PricingRepository
	walletRepo  domain.WalletRepository
	orderRepo   domain.OrderRepository
	refundRepo  domain.RefundRepository
	logger      *zap.Logger

	// подменяется в тестах
	now func() time.Time
}

// NewRentalService создает новый RentalService
func NewRentalService(
	adapters AdapterResolver,
	pricing *PricingService,
	pricingRepo domain.PricingRepository,
	walletRepo domain.WalletRepository,
	orderRepo domain.OrderRepository,
	refundRepo domain.RefundRepository,
	logger *zap.Logger,
) *RentalService {
	return &RentalService{
		adapters:    adapters,
		pricing:     pricing,
		pricingRepo: pricingRepo,
		walletRepo:  walletRepo,
		orderRepo:   orderRepo,
		refundRepo:  refundRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// Purchase арендует номер. Порядок фиксированный: расчет цены,
// списание промокода, списание средств, покупка у провайдера, запись
// заказа. Сбой после списания средств компенсируется refund-транзакцией,
// чтобы деньги пользователя не зависали.
func (s *RentalService) Purchase(ctx context.Context, userID int64, providerName, service, country, operator, promoCode string) (*domain.Order, error) {
	adapter, err := s.adapters.Get(providerName)
	if err != nil {
		return nil, err
	}

	quote, err := s.pricing.CalculatePrice(ctx, providerName, service, country, operator, promoCode)
	if err != nil {
		return nil, err
	}

	if promoCode != "" {
		if err := s.pricingRepo.ConsumePromoCode(ctx, promoCode); err != nil {
			if errors.Is(err, postgres.ErrPromoExhausted) || errors.Is(err, postgres.ErrPromoNotFound) {
				return nil, domain.ErrInvalidPromoCode
			}
			return nil, fmt.Errorf("rental service: failed to consume promo code: %w", err)
		}
	}

	orderID := uuid.NewString()

	meta, _ := json.Marshal(map[string]string{
		"provider": adapter.ID(),
		"service":  service,
		"country":  country,
	})
	if err := s.walletRepo.DebitIfSufficient(ctx, userID, quote.FinalPriceNGN, orderID, meta); err != nil {
		if errors.Is(err, postgres.ErrInsufficientFunds) {
			return nil, domain.ErrInsufficientFunds
		}
		return nil, fmt.Errorf("rental service: failed to debit wallet: %w", err)
	}

	purchase, err := adapter.Buy(ctx, service, country, operator)
	if err != nil {
		s.compensate(ctx, userID, quote, orderID, "provider buy failed")
		return nil, err
	}

	now := s.now()
	order := &domain.Order{
		ID:            orderID,
		UserID:        userID,
		Provider:      adapter.ID(),
		ServiceCode:   service,
		CountryCode:   country,
		Operator:      operator,
		ActivationID:  purchase.ActivationID,
		PhoneNumber:   purchase.PhoneNumber,
		Status:        domain.OrderStatusActive,
		BasePriceUSD:  quote.BaseUSD,
		FinalPriceUSD: quote.FinalPriceUSD,
		FinalPriceNGN: quote.FinalPriceNGN,
		MarkupPct:     quote.MarkupPct,
		CreatedAt:     now,
		NextPollAt:    now.Add(firstPollDelay),
		ExpiresAt:     now.Add(adapter.RentalWindow()),
	}
	if quote.Promo != nil {
		code := quote.Promo.Code
		order.PromoCode = &code
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		// Номер уже куплен у провайдера: отпускаем его и возвращаем деньги
		if _, cancelErr := adapter.Cancel(ctx, purchase.ActivationID); cancelErr != nil {
			s.logger.Error("failed to release number after order insert failure",
				zap.String("provider", adapter.ID()),
				zap.String("activation_id", purchase.ActivationID),
				zap.Error(cancelErr),
			)
		}
		s.compensate(ctx, userID, quote, orderID, "order insert failed")
		return nil, fmt.Errorf("rental service: failed to create order: %w", err)
	}

	order.ComputeCanCancel()

	s.logger.Info("number rented",
		zap.String("order_id", order.ID),
		zap.String("provider", order.Provider),
		zap.String("service", order.ServiceCode),
		zap.String("price_ngn", order.FinalPriceNGN.String()),
	)

	return order, nil
}

// compensate возвращает списанные средства после сбоя покупки
func (s *RentalService) compensate(ctx context.Context, userID int64, quote *domain.PriceQuote, orderID, cause string) {
	meta, _ := json.Marshal(map[string]string{"cause": cause})
	if err := s.walletRepo.Credit(ctx, userID, quote.FinalPriceNGN, domain.TransactionTypeRefund, orderID, meta); err != nil {
		// Оставляем след для ручного разбора: деньги списаны, заказ не создан
		s.logger.Error("compensation credit failed",
			zap.Int64("user_id", userID),
			zap.String("reference", orderID),
			zap.String("amount_ngn", quote.FinalPriceNGN.String()),
			zap.Error(err),
		)
	}
}

// GetOrders возвращает заказы пользователя, новые первыми
func (s *RentalService) GetOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	orders, err := s.orderRepo.GetOrdersByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("rental service: failed to get orders: %w", err)
	}

	for _, order := range orders {
		order.ComputeCanCancel()
	}

	return orders, nil
}

// CancelByActivation отменяет активную аренду и возвращает средства.
// Гарантия: из многих конкурентных отмен одного заказа возврат получит
// ровно одна, остальные увидят ErrAlreadyTerminal.
func (s *RentalService) CancelByActivation(ctx context.Context, userID int64, activationID string) (*domain.CancelReceipt, error) {
	order, err := s.orderRepo.GetOrderByActivationID(ctx, activationID)
	if err != nil {
		if errors.Is(err, postgres.ErrOrderNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("rental service: failed to get order: %w", err)
	}

	if order.UserID != userID {
		return nil, domain.ErrNotYourOrder
	}
	if order.Status.IsTerminal() {
		return nil, domain.ErrAlreadyTerminal
	}
	if order.OTP != nil {
		return nil, domain.ErrOrderHasOTP
	}

	adapter, err := s.adapters.Get(order.Provider)
	if err != nil {
		return nil, err
	}

	if s.now().Sub(order.CreatedAt) < adapter.CancelHold() {
		return nil, domain.ErrCancelTooEarly
	}

	result, err := adapter.Cancel(ctx, order.ActivationID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderGone) {
			// Провайдер уже забыл активацию: считаем отмену принятой
			result = &domain.CancelResult{Accepted: true}
		} else {
			return nil, err
		}
	}
	if !result.Accepted {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderRejected, result.Reason)
	}

	amount, err := s.refundRepo.TerminateWithRefund(ctx, order.ID, domain.OrderStatusCancelled)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyTerminal) {
			return nil, domain.ErrAlreadyTerminal
		}
		return nil, fmt.Errorf("rental service: failed to refund order: %w", err)
	}

	s.logger.Info("order cancelled",
		zap.String("order_id", order.ID),
		zap.String("provider", order.Provider),
		zap.String("refund_ngn", amount.String()),
	)

	return &domain.CancelReceipt{
		Success:         true,
		Message:         fmt.Sprintf("Order cancelled and %s NGN refunded to your wallet", amount.StringFixed(2)),
		RefundAmountNGN: amount,
		Currency:        domain.CurrencyNGN,
	}, nil
}
