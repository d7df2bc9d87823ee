package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/numrent/numrent/internal/domain"
	domainmocks "github.com/numrent/numrent/internal/domain/mocks"
	"github.com/numrent/numrent/internal/repository/postgres"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type rentalFixture struct {
	svc         *RentalService
	adapter     *domainmocks.ProviderAdapterMock
	cache       *domainmocks.ServiceCacheMock
	pricingRepo *domainmocks.PricingRepositoryMock
	walletRepo  *domainmocks.WalletRepositoryMock
	orderRepo   *domainmocks.OrderRepositoryMock
	refundRepo  *domainmocks.RefundRepositoryMock
}

func newRentalFixture(t *testing.T) *rentalFixture {
	f := &rentalFixture{
		adapter:     domainmocks.NewProviderAdapterMock(t),
		cache:       domainmocks.NewServiceCacheMock(t),
		pricingRepo: domainmocks.NewPricingRepositoryMock(t),
		walletRepo:  domainmocks.NewWalletRepositoryMock(t),
		orderRepo:   domainmocks.NewOrderRepositoryMock(t),
		refundRepo:  domainmocks.NewRefundRepositoryMock(t),
	}
	resolver := resolverStub{adapter: f.adapter}
	pricing := NewPricingService(resolver, f.cache, f.pricingRepo, zap.NewNop())
	f.svc = NewRentalService(resolver, pricing, f.pricingRepo, f.walletRepo, f.orderRepo, f.refundRepo, zap.NewNop())
	return f
}

// expectPriceLookup настраивает расчет цены через попадание в кэш:
// база 0.50 USD, наценка 30%, курс 1500 -> 975 NGN
func (f *rentalFixture) expectPriceLookup() {
	f.adapter.EXPECT().ID().Return("us_server")
	f.pricingRepo.EXPECT().GetPricingConfig(mock.Anything).Return(testPricingConfig(), nil).Once()
	f.cache.EXPECT().Get(mock.Anything, "us_server", "187", "wa").
		Return(&domain.CachedService{BasePriceUSD: decimal.RequireFromString("0.5")}, nil).Once()
}

func TestRentalService_Purchase(t *testing.T) {
	ctx := context.Background()
	userID := int64(1)
	priceNGN := decimal.RequireFromString("975")

	t.Run("Success", func(t *testing.T) {
		f := newRentalFixture(t)
		now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
		f.svc.now = func() time.Time { return now }

		f.expectPriceLookup()
		f.walletRepo.EXPECT().DebitIfSufficient(mock.Anything, userID, mock.Anything, mock.Anything, mock.Anything).
			Run(func(ctx context.Context, userID int64, amount decimal.Decimal, reference string, metadata []byte) {
				assert.True(t, amount.Equal(priceNGN), "debit = %s", amount)
				assert.NotEmpty(t, reference)
			}).Return(nil).Once()
		f.adapter.EXPECT().Buy(mock.Anything, "wa", "187", "").
			Return(&domain.NumberPurchase{ActivationID: "act-1", PhoneNumber: "+13475550123"}, nil).Once()
		f.adapter.EXPECT().RentalWindow().Return(20 * time.Minute).Once()

		var created *domain.Order
		f.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, order *domain.Order) { created = order }).
			Return(nil).Once()

		order, err := f.svc.Purchase(ctx, userID, "us_server", "wa", "187", "", "")
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID, order.ID)
		assert.Equal(t, "us_server", order.Provider)
		assert.Equal(t, "act-1", order.ActivationID)
		assert.Equal(t, domain.OrderStatusActive, order.Status)
		assert.True(t, order.FinalPriceNGN.Equal(priceNGN))
		assert.True(t, order.CanCancel)
		assert.Equal(t, now.Add(firstPollDelay), order.NextPollAt)
		assert.Equal(t, now.Add(20*time.Minute), order.ExpiresAt)
	})

	t.Run("Insufficient funds", func(t *testing.T) {
		f := newRentalFixture(t)

		f.expectPriceLookup()
		f.walletRepo.EXPECT().DebitIfSufficient(mock.Anything, userID, mock.Anything, mock.Anything, mock.Anything).
			Return(postgres.ErrInsufficientFunds).Once()

		order, err := f.svc.Purchase(ctx, userID, "us_server", "wa", "187", "", "")
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Nil(t, order)
	})

	t.Run("Provider buy failure refunds the debit", func(t *testing.T) {
		f := newRentalFixture(t)

		f.expectPriceLookup()
		f.walletRepo.EXPECT().DebitIfSufficient(mock.Anything, userID, mock.Anything, mock.Anything, mock.Anything).
			Return(nil).Once()
		f.adapter.EXPECT().Buy(mock.Anything, "wa", "187", "").
			Return(nil, domain.ErrNoNumbersAvailable).Once()
		f.walletRepo.EXPECT().Credit(mock.Anything, userID, mock.Anything, domain.TransactionTypeRefund, mock.Anything, mock.Anything).
			Run(func(ctx context.Context, userID int64, amount decimal.Decimal, txType domain.TransactionType, reference string, metadata []byte) {
				assert.True(t, amount.Equal(priceNGN), "refund = %s", amount)
			}).Return(nil).Once()

		order, err := f.svc.Purchase(ctx, userID, "us_server", "wa", "187", "", "")
		assert.ErrorIs(t, err, domain.ErrNoNumbersAvailable)
		assert.Nil(t, order)
	})

	t.Run("Order insert failure releases the number and refunds", func(t *testing.T) {
		f := newRentalFixture(t)

		f.expectPriceLookup()
		f.walletRepo.EXPECT().DebitIfSufficient(mock.Anything, userID, mock.Anything, mock.Anything, mock.Anything).
			Return(nil).Once()
		f.adapter.EXPECT().Buy(mock.Anything, "wa", "187", "").
			Return(&domain.NumberPurchase{ActivationID: "act-1", PhoneNumber: "+13475550123"}, nil).Once()
		f.adapter.EXPECT().RentalWindow().Return(20 * time.Minute).Once()
		f.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(errors.New("db error")).Once()
		f.adapter.EXPECT().Cancel(mock.Anything, "act-1").Return(&domain.CancelResult{Accepted: true}, nil).Once()
		f.walletRepo.EXPECT().Credit(mock.Anything, userID, mock.Anything, domain.TransactionTypeRefund, mock.Anything, mock.Anything).
			Return(nil).Once()

		order, err := f.svc.Purchase(ctx, userID, "us_server", "wa", "187", "", "")
		assert.Error(t, err)
		assert.Nil(t, order)
	})

	t.Run("Promo code is consumed before the debit", func(t *testing.T) {
		f := newRentalFixture(t)

		f.adapter.EXPECT().ID().Return("us_server")
		f.pricingRepo.EXPECT().GetPricingConfig(mock.Anything).Return(testPricingConfig(), nil).Once()
		f.cache.EXPECT().Get(mock.Anything, "us_server", "187", "wa").
			Return(&domain.CachedService{BasePriceUSD: decimal.RequireFromString("0.5")}, nil).Once()
		f.pricingRepo.EXPECT().GetPromoCode(mock.Anything, "SAVE40").Return(&domain.PromoCode{
			Code:  "SAVE40",
			Kind:  domain.PromoKindPercent,
			Value: decimal.NewFromInt(40),
		}, nil).Once()
		f.pricingRepo.EXPECT().ConsumePromoCode(mock.Anything, "SAVE40").Return(nil).Once()
		f.walletRepo.EXPECT().DebitIfSufficient(mock.Anything, userID, mock.Anything, mock.Anything, mock.Anything).
			Run(func(ctx context.Context, userID int64, amount decimal.Decimal, reference string, metadata []byte) {
				assert.True(t, amount.Equal(decimal.RequireFromString("585")), "debit = %s", amount)
			}).Return(nil).Once()
		f.adapter.EXPECT().Buy(mock.Anything, "wa", "187", "").
			Return(&domain.NumberPurchase{ActivationID: "act-2", PhoneNumber: "+13475550124"}, nil).Once()
		f.adapter.EXPECT().RentalWindow().Return(20 * time.Minute).Once()
		f.orderRepo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()

		order, err := f.svc.Purchase(ctx, userID, "us_server", "wa", "187", "", "SAVE40")
		require.NoError(t, err)
		require.NotNil(t, order.PromoCode)
		assert.Equal(t, "SAVE40", *order.PromoCode)
	})

	t.Run("Exhausted promo blocks the purchase", func(t *testing.T) {
		f := newRentalFixture(t)

		f.adapter.EXPECT().ID().Return("us_server")
		f.pricingRepo.EXPECT().GetPricingConfig(mock.Anything).Return(testPricingConfig(), nil).Once()
		f.cache.EXPECT().Get(mock.Anything, "us_server", "187", "wa").
			Return(&domain.CachedService{BasePriceUSD: decimal.RequireFromString("0.5")}, nil).Once()
		f.pricingRepo.EXPECT().GetPromoCode(mock.Anything, "SAVE40").Return(&domain.PromoCode{
			Code:  "SAVE40",
			Kind:  domain.PromoKindPercent,
			Value: decimal.NewFromInt(40),
		}, nil).Once()
		f.pricingRepo.EXPECT().ConsumePromoCode(mock.Anything, "SAVE40").Return(postgres.ErrPromoExhausted).Once()

		order, err := f.svc.Purchase(ctx, userID, "us_server", "wa", "187", "", "SAVE40")
		assert.ErrorIs(t, err, domain.ErrInvalidPromoCode)
		assert.Nil(t, order)
	})

	t.Run("Unknown provider", func(t *testing.T) {
		f := newRentalFixture(t)
		resolver := resolverStub{err: domain.ErrUnknownProvider}
		f.svc.adapters = resolver

		order, err := f.svc.Purchase(ctx, userID, "nosuch", "wa", "187", "", "")
		assert.ErrorIs(t, err, domain.ErrUnknownProvider)
		assert.Nil(t, order)
	})
}

func TestRentalService_GetOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("Derives can_cancel per order", func(t *testing.T) {
		f := newRentalFixture(t)

		otp := "482913"
		f.orderRepo.EXPECT().GetOrdersByUserID(mock.Anything, int64(1)).Return([]*domain.Order{
			{ID: "a", Status: domain.OrderStatusActive},
			{ID: "b", Status: domain.OrderStatusActive, OTP: &otp},
			{ID: "c", Status: domain.OrderStatusCancelled},
		}, nil).Once()

		orders, err := f.svc.GetOrders(ctx, 1)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		assert.True(t, orders[0].CanCancel)
		assert.False(t, orders[1].CanCancel)
		assert.False(t, orders[2].CanCancel)
	})

	t.Run("Database error", func(t *testing.T) {
		f := newRentalFixture(t)

		f.orderRepo.EXPECT().GetOrdersByUserID(mock.Anything, int64(1)).Return(nil, errors.New("db error")).Once()

		orders, err := f.svc.GetOrders(ctx, 1)
		assert.Error(t, err)
		assert.Nil(t, orders)
	})
}

func TestRentalService_CancelByActivation(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	activeOrder := func(createdAt time.Time) *domain.Order {
		return &domain.Order{
			ID:           "order-1",
			UserID:       1,
			Provider:     "us_server",
			ActivationID: "act-1",
			Status:       domain.OrderStatusActive,
			CreatedAt:    createdAt,
		}
	}

	t.Run("Success after the hold window", func(t *testing.T) {
		f := newRentalFixture(t)
		f.svc.now = func() time.Time { return now }

		f.orderRepo.EXPECT().GetOrderByActivationID(mock.Anything, "act-1").
			Return(activeOrder(now.Add(-3*time.Minute)), nil).Once()
		f.adapter.EXPECT().CancelHold().Return(3 * time.Minute).Once()
		f.adapter.EXPECT().Cancel(mock.Anything, "act-1").Return(&domain.CancelResult{Accepted: true}, nil).Once()
		f.refundRepo.EXPECT().TerminateWithRefund(mock.Anything, "order-1", domain.OrderStatusCancelled).
			Return(decimal.RequireFromString("975"), nil).Once()

		receipt, err := f.svc.CancelByActivation(ctx, 1, "act-1")
		require.NoError(t, err)
		assert.True(t, receipt.Success)
		assert.Equal(t, "Order cancelled and 975.00 NGN refunded to your wallet", receipt.Message)
		assert.Equal(t, domain.CurrencyNGN, receipt.Currency)
		assert.True(t, receipt.RefundAmountNGN.Equal(decimal.RequireFromString("975")))
	})

	t.Run("One second before the hold expires", func(t *testing.T) {
		f := newRentalFixture(t)
		f.svc.now = func() time.Time { return now }

		f.orderRepo.EXPECT().GetOrderByActivationID(mock.Anything, "act-1").
			Return(activeOrder(now.Add(-3*time.Minute+time.Second)), nil).Once()
		f.adapter.EXPECT().CancelHold().Return(3 * time.Minute).Once()

		receipt, err := f.svc.CancelByActivation(ctx, 1, "act-1")
		assert.ErrorIs(t, err, domain.ErrCancelTooEarly)
		assert.Nil(t, receipt)
	})

	t.Run("Order not found", func(t *testing.T) {
		f := newRentalFixture(t)

		f.orderRepo.EXPECT().GetOrderByActivationID(mock.Anything, "missing").
			Return(nil, postgres.ErrOrderNotFound).Once()

		receipt, err := f.svc.CancelByActivation(ctx, 1, "missing")
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
		assert.Nil(t, receipt)
	})

	t.Run("Not your order", func(t *testing.T) {
		f := newRentalFixture(t)

		order := activeOrder(now.Add(-5 * time.Minute))
		order.UserID = 2
		f.orderRepo.EXPECT().GetOrderByActivationID(mock.Anything, "act-1").Return(order, nil).Once()

		receipt, err := f.svc.CancelByActivation(ctx, 1, "act-1")
		assert.ErrorIs(t, err, domain.ErrNotYourOrder)
		assert.Nil(t, receipt)
	})

	t.Run("Already terminal", func(t *testing.T) {
		f := newRentalFixture(t)

		order := activeOrder(now.Add(-5 * time.Minute))
		order.Status = domain.OrderStatusCancelled
		f.orderRepo.EXPECT().GetOrderByActivationID(mock.Anything, "act-1").Return(order, nil).Once()

		receipt, err := f.svc.CancelByActivation(ctx, 1, "act-1")
		assert.ErrorIs(t, err, domain.ErrAlreadyTerminal)
		assert.Nil(t, receipt)
	})

	t.Run("Received OTP blocks the cancel", func(t *testing.T) {
		f := newRentalFixture(t)

		otp := "482913"
		order := activeOrder(now.Add(-5 * time.Minute))
		order.OTP = &otp
		f.orderRepo.EXPECT().GetOrderByActivationID(mock.Anything, "act-1").Return(order, nil).Once()

		receipt, err := f.svc.CancelByActivation(ctx, 1, "act-1")
		assert.ErrorIs(t, err, domain.ErrOrderHasOTP)
		assert.Nil(t, receipt)
	})

	t.Run("Provider forgot the activation", func(t *testing.T) {
		f := newRentalFixture(t)
		f.svc.now = func() time.Time { return now }

		f.orderRepo.EXPECT().GetOrderByActivationID(mock.Anything, "act-1").
			Return(activeOrder(now.Add(-5*time.Minute)), nil).Once()
		f.adapter.EXPECT().CancelHold().Return(time.Duration(0)).Once()
		f.adapter.EXPECT().Cancel(mock.Anything, "act-1").Return(nil, domain.ErrOrderGone).Once()
		f.refundRepo.EXPECT().TerminateWithRefund(mock.Anything, "order-1", domain.OrderStatusCancelled).
			Return(decimal.RequireFromString("975"), nil).Once()

		receipt, err := f.svc.CancelByActivation(ctx, 1, "act-1")
		require.NoError(t, err)
		assert.True(t, receipt.Success)
	})

	t.Run("Provider rejected the cancel", func(t *testing.T) {
		f := newRentalFixture(t)
		f.svc.now = func() time.Time { return now }

		f.orderRepo.EXPECT().GetOrderByActivationID(mock.Anything, "act-1").
			Return(activeOrder(now.Add(-5*time.Minute)), nil).Once()
		f.adapter.EXPECT().CancelHold().Return(time.Duration(0)).Once()
		f.adapter.EXPECT().Cancel(mock.Anything, "act-1").
			Return(&domain.CancelResult{Accepted: false, Reason: "sms already sent"}, nil).Once()

		receipt, err := f.svc.CancelByActivation(ctx, 1, "act-1")
		assert.ErrorIs(t, err, domain.ErrProviderRejected)
		assert.Nil(t, receipt)
	})

	t.Run("Loser of concurrent cancel", func(t *testing.T) {
		f := newRentalFixture(t)
		f.svc.now = func() time.Time { return now }

		f.orderRepo.EXPECT().GetOrderByActivationID(mock.Anything, "act-1").
			Return(activeOrder(now.Add(-5*time.Minute)), nil).Once()
		f.adapter.EXPECT().CancelHold().Return(time.Duration(0)).Once()
		f.adapter.EXPECT().Cancel(mock.Anything, "act-1").Return(&domain.CancelResult{Accepted: true}, nil).Once()
		f.refundRepo.EXPECT().TerminateWithRefund(mock.Anything, "order-1", domain.OrderStatusCancelled).
			Return(decimal.Zero, domain.ErrAlreadyTerminal).Once()

		receipt, err := f.svc.CancelByActivation(ctx, 1, "act-1")
		assert.ErrorIs(t, err, domain.ErrAlreadyTerminal)
		assert.Nil(t, receipt)
	})
}
