package worker

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/numrent/numrent/internal/domain"
	"github.com/numrent/numrent/internal/service"
	"go.uber.org/zap"
)

// Интервалы опроса активаций
const (
	defaultScanInterval = 3 * time.Second
	defaultScanBatch    = 50
	minPollInterval     = 5 * time.Second
	maxPollInterval     = 10 * time.Second
)

// Pool представляет пул воркеров, опрашивающих активные аренды.
// Сканер выбирает заказы с подошедшим next_poll_at и раздает их воркерам
// через буферизованную очередь.
type Pool struct {
	workers      int
	queue        chan *domain.Order
	orderRepo    domain.OrderRepository
	refundRepo   domain.RefundRepository
	adapters     service.AdapterResolver
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanInterval time.Duration
	scanBatch    int

	// подменяется в тестах
	now func() time.Time
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	orderRepo domain.OrderRepository,
	refundRepo domain.RefundRepository,
	adapters service.AdapterResolver,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		workers:      workers,
		queue:        make(chan *domain.Order, queueSize),
		orderRepo:    orderRepo,
		refundRepo:   refundRepo,
		adapters:     adapters,
		logger:       logger,
		scanInterval: defaultScanInterval,
		scanBatch:    defaultScanBatch,
		now:          time.Now,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	// Запускаем воркеры
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер активных заказов
	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// worker обрабатывает заказы из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case order, ok := <-p.queue:
			if !ok {
				return
			}
			p.processOrder(ctx, order)
		}
	}
}

// scanner периодически выбирает заказы с подошедшим временем опроса
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanDueOrders(ctx)
		}
	}
}

// scanDueOrders выбирает и отправляет подошедшие заказы в очередь
func (p *Pool) scanDueOrders(ctx context.Context) {
	orders, err := p.orderRepo.GetDuePolls(ctx, p.now(), p.scanBatch)
	if err != nil {
		p.logger.Error("failed to get due orders", zap.Error(err))
		return
	}

	for _, order := range orders {
		// Сразу переносим следующий опрос, чтобы заказ не попал
		// в очередь повторно до обработки
		if err := p.reschedule(ctx, order); err != nil {
			if !errors.Is(err, domain.ErrAlreadyTerminal) {
				p.logger.Error("failed to reschedule order poll",
					zap.String("order", order.ID),
					zap.Error(err),
				)
			}
			continue
		}

		select {
		case p.queue <- order:
			// Успешно добавлено в очередь
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, заказ вернется при следующем скане
			p.logger.Warn("queue is full, skipping order", zap.String("order", order.ID))
		}
	}
}

// reschedule назначает следующий опрос со случайным интервалом,
// чтобы не синхронизировать запросы к провайдеру
func (p *Pool) reschedule(ctx context.Context, order *domain.Order) error {
	now := p.now()
	jitter := minPollInterval + time.Duration(rand.Int63n(int64(maxPollInterval-minPollInterval)))
	return p.orderRepo.ReschedulePoll(ctx, order.ID, now, now.Add(jitter))
}

// processOrder опрашивает одну активацию и применяет результат
func (p *Pool) processOrder(ctx context.Context, order *domain.Order) {
	p.logger.Debug("polling order", zap.String("order", order.ID))

	// Истекшие заказы закрываем без похода к провайдеру
	if p.now().After(order.ExpiresAt) {
		p.expireOrder(ctx, order)
		return
	}

	adapter, err := p.adapters.Get(order.Provider)
	if err != nil {
		p.logger.Error("unknown provider on active order",
			zap.String("order", order.ID),
			zap.String("provider", order.Provider),
		)
		return
	}

	result, err := adapter.Poll(ctx, order.ActivationID)
	if err != nil {
		// Провайдер потерял активацию: закрываем заказ с возвратом средств
		if errors.Is(err, domain.ErrOrderGone) {
			p.failOrder(ctx, order)
			return
		}
		// Сетевые и прочие временные ошибки: следующий опрос уже назначен
		p.logger.Warn("order poll failed",
			zap.String("order", order.ID),
			zap.String("provider", order.Provider),
			zap.Error(err),
		)
		return
	}

	switch result.Status {
	case domain.PollStatusWaiting:
		// Код еще не пришел, ждем следующего опроса

	case domain.PollStatusReceived:
		p.completeOrder(ctx, adapter, order, result.OTP)

	case domain.PollStatusCancelled:
		// Провайдер отменил аренду сам: возвращаем средства
		p.terminateWithRefund(ctx, order, domain.OrderStatusCancelled)

	case domain.PollStatusExpired:
		p.terminateWithRefund(ctx, order, domain.OrderStatusExpired)
	}
}

// completeOrder фиксирует полученный OTP и сообщает провайдеру о завершении
func (p *Pool) completeOrder(ctx context.Context, adapter domain.ProviderAdapter, order *domain.Order, otp string) {
	if err := p.orderRepo.CompleteOrder(ctx, order.ID, otp); err != nil {
		if errors.Is(err, domain.ErrAlreadyTerminal) {
			return
		}
		p.logger.Error("failed to complete order",
			zap.String("order", order.ID),
			zap.Error(err),
		)
		return
	}

	// Завершение у провайдера best-effort: OTP уже доставлен пользователю
	if err := adapter.Finish(ctx, order.ActivationID); err != nil {
		p.logger.Warn("failed to finish activation upstream",
			zap.String("order", order.ID),
			zap.String("provider", order.Provider),
			zap.Error(err),
		)
	}

	p.logger.Info("otp received",
		zap.String("order", order.ID),
		zap.String("provider", order.Provider),
	)
}

// expireOrder закрывает заказ по истечении окна аренды
func (p *Pool) expireOrder(ctx context.Context, order *domain.Order) {
	// Отмена у провайдера best-effort: окно все равно закрыто
	if adapter, err := p.adapters.Get(order.Provider); err == nil {
		if _, err := adapter.Cancel(ctx, order.ActivationID); err != nil && !errors.Is(err, domain.ErrOrderGone) {
			p.logger.Warn("failed to cancel expired activation upstream",
				zap.String("order", order.ID),
				zap.Error(err),
			)
		}
	}

	p.terminateWithRefund(ctx, order, domain.OrderStatusExpired)
}

// failOrder закрывает заказ, активацию которого провайдер потерял
func (p *Pool) failOrder(ctx context.Context, order *domain.Order) {
	p.logger.Warn("activation gone upstream",
		zap.String("order", order.ID),
		zap.String("provider", order.Provider),
	)
	p.terminateWithRefund(ctx, order, domain.OrderStatusFailed)
}

// terminateWithRefund переводит заказ в финальный статус с возвратом средств.
// ErrAlreadyTerminal не ошибка: заказ успели закрыть конкурентно.
func (p *Pool) terminateWithRefund(ctx context.Context, order *domain.Order, to domain.OrderStatus) {
	amount, err := p.refundRepo.TerminateWithRefund(ctx, order.ID, to)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyTerminal) {
			return
		}
		p.logger.Error("failed to terminate order with refund",
			zap.String("order", order.ID),
			zap.String("to", string(to)),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("order terminated with refund",
		zap.String("order", order.ID),
		zap.String("to", string(to)),
		zap.String("refund_ngn", amount.String()),
	)
}
