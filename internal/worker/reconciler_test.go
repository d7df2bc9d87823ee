package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/numrent/numrent/internal/domain"
	domainmocks "github.com/numrent/numrent/internal/domain/mocks"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestReconciler_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Consistent database is a no-op", func(t *testing.T) {
		refunds := domainmocks.NewRefundRepositoryMock(t)
		rec := NewReconciler(refunds, "@every 5m", zap.NewNop())

		refunds.EXPECT().FindOrphanedRefunds(mock.Anything, reconcilerBatch).Return(nil, nil).Once()

		rec.Run(ctx)
	})

	t.Run("Repairs every orphaned refund", func(t *testing.T) {
		refunds := domainmocks.NewRefundRepositoryMock(t)
		rec := NewReconciler(refunds, "@every 5m", zap.NewNop())

		refunds.EXPECT().FindOrphanedRefunds(mock.Anything, reconcilerBatch).Return([]*domain.Order{
			{ID: "order-1", Status: domain.OrderStatusCancelled, RefundIssued: true},
			{ID: "order-2", Status: domain.OrderStatusExpired, RefundIssued: true},
		}, nil).Once()
		refunds.EXPECT().RepairRefund(mock.Anything, "order-1").Return(nil).Once()
		refunds.EXPECT().RepairRefund(mock.Anything, "order-2").Return(nil).Once()

		rec.Run(ctx)
	})

	t.Run("Repair failure does not stop the batch", func(t *testing.T) {
		refunds := domainmocks.NewRefundRepositoryMock(t)
		rec := NewReconciler(refunds, "@every 5m", zap.NewNop())

		refunds.EXPECT().FindOrphanedRefunds(mock.Anything, reconcilerBatch).Return([]*domain.Order{
			{ID: "order-1", RefundIssued: true},
			{ID: "order-2", RefundIssued: true},
		}, nil).Once()
		refunds.EXPECT().RepairRefund(mock.Anything, "order-1").Return(errors.New("db error")).Once()
		refunds.EXPECT().RepairRefund(mock.Anything, "order-2").Return(nil).Once()

		rec.Run(ctx)
	})

	t.Run("Lookup failure skips the run", func(t *testing.T) {
		refunds := domainmocks.NewRefundRepositoryMock(t)
		rec := NewReconciler(refunds, "@every 5m", zap.NewNop())

		refunds.EXPECT().FindOrphanedRefunds(mock.Anything, reconcilerBatch).
			Return(nil, errors.New("db error")).Once()

		rec.Run(ctx)
	})
}

func TestReconciler_StartStop(t *testing.T) {
	refunds := domainmocks.NewRefundRepositoryMock(t)
	rec := NewReconciler(refunds, "@every 5m", zap.NewNop())

	refunds.EXPECT().FindOrphanedRefunds(mock.Anything, reconcilerBatch).Return(nil, nil).Once()

	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	rec.Stop()
}
