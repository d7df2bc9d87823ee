package worker

import (
	"context"
	"time"

	"github.com/numrent/numrent/internal/domain"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const reconcilerBatch = 100

// Reconciler периодически дописывает возвраты, оборванные перезапуском
// процесса: заказы с refund_issued=true без refund-транзакции. На
// консистентной базе каждый прогон — холостой.
type Reconciler struct {
	refundRepo domain.RefundRepository
	cron       *cron.Cron
	schedule   string
	logger     *zap.Logger
}

// NewReconciler создает новый Reconciler. Schedule в формате cron,
// например "@every 5m".
func NewReconciler(refundRepo domain.RefundRepository, schedule string, logger *zap.Logger) *Reconciler {
	cronLogger := cron.PrintfLogger(zap.NewStdLog(logger))
	return &Reconciler{
		refundRepo: refundRepo,
		cron:       cron.New(cron.WithChain(cron.Recover(cronLogger))),
		schedule:   schedule,
		logger:     logger,
	}
}

// Start выполняет стартовый прогон и включает расписание
func (r *Reconciler) Start(ctx context.Context) error {
	// Стартовый прогон закрывает хвосты, оставшиеся с прошлого запуска
	r.Run(ctx)

	if _, err := r.cron.AddFunc(r.schedule, func() {
		runCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		r.Run(runCtx)
	}); err != nil {
		return err
	}

	r.cron.Start()
	r.logger.Info("refund reconciler started", zap.String("schedule", r.schedule))
	return nil
}

// Stop останавливает расписание и дожидается текущего прогона
func (r *Reconciler) Stop() {
	<-r.cron.Stop().Done()
}

// Run выполняет один прогон починки возвратов
func (r *Reconciler) Run(ctx context.Context) {
	orders, err := r.refundRepo.FindOrphanedRefunds(ctx, reconcilerBatch)
	if err != nil {
		r.logger.Error("failed to find orphaned refunds", zap.Error(err))
		return
	}

	for _, order := range orders {
		if err := r.refundRepo.RepairRefund(ctx, order.ID); err != nil {
			r.logger.Error("failed to repair refund",
				zap.String("order", order.ID),
				zap.Error(err),
			)
			continue
		}
		r.logger.Warn("repaired orphaned refund",
			zap.String("order", order.ID),
			zap.String("amount_ngn", order.FinalPriceNGN.String()),
		)
	}
}
