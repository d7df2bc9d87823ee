package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, login, passwordHash string) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
}

// WalletRepository определяет методы леджера кошелька.
// Только этот репозиторий имеет право изменять балансы пользователей;
// каждая мутация баланса атомарно сопровождается записью транзакции.
type WalletRepository interface {
	GetBalance(ctx context.Context, userID int64) (*Balance, error)
	// DebitIfSufficient атомарно списывает amount NGN, если средств хватает,
	// и добавляет транзакцию purchase. Возвращает ErrInsufficientFunds,
	// если баланс меньше суммы; при этом ничего не изменяется.
	DebitIfSufficient(ctx context.Context, userID int64, amount decimal.Decimal, reference string, metadata []byte) error
	// Credit атомарно пополняет баланс NGN и добавляет транзакцию указанного типа.
	Credit(ctx context.Context, userID int64, amount decimal.Decimal, txType TransactionType, reference string, metadata []byte) error
	GetTransactions(ctx context.Context, userID int64) ([]*Transaction, error)
}

// OrderRepository определяет методы для работы с заказами аренды
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, id string) (*Order, error)
	GetOrderByActivationID(ctx context.Context, activationID string) (*Order, error)
	GetOrdersByUserID(ctx context.Context, userID int64) ([]*Order, error)
	// GetDuePolls возвращает активные заказы, для которых подошло время опроса
	GetDuePolls(ctx context.Context, now time.Time, limit int) ([]*Order, error)
	// ReschedulePoll фиксирует факт опроса и назначает следующий
	ReschedulePoll(ctx context.Context, id string, polledAt, nextPollAt time.Time) error
	// CompleteOrder переводит active -> completed и записывает OTP.
	// Возвращает ErrAlreadyTerminal, если заказ уже финален.
	CompleteOrder(ctx context.Context, id, otp string) error
}

// RefundRepository выполняет атомарный переход заказа в возвратный
// финальный статус: CAS refund_issued false -> true, пополнение кошелька
// и запись refund-транзакции в одной транзакции БД.
type RefundRepository interface {
	// TerminateWithRefund возвращает сумму возврата в NGN.
	// ErrAlreadyTerminal — если заказ уже финален или возврат уже выдан.
	TerminateWithRefund(ctx context.Context, orderID string, to OrderStatus) (decimal.Decimal, error)
	// FindOrphanedRefunds ищет заказы с refund_issued=true без refund-транзакции
	FindOrphanedRefunds(ctx context.Context, limit int) ([]*Order, error)
	// RepairRefund дописывает недостающее пополнение и refund-транзакцию
	RepairRefund(ctx context.Context, orderID string) error
}

// PricingRepository определяет методы для конфигурации ценообразования
type PricingRepository interface {
	GetPricingConfig(ctx context.Context) (*PricingConfig, error)
	UpdatePricingConfig(ctx context.Context, cfg *PricingConfig) error
	GetPromoCode(ctx context.Context, code string) (*PromoCode, error)
	CreatePromoCode(ctx context.Context, promo *PromoCode) error
	// ConsumePromoCode атомарно увеличивает счетчик использований,
	// не превышая max_uses. ErrInvalidPromoCode при исчерпании лимита.
	ConsumePromoCode(ctx context.Context, code string) error
}

// ServiceCache определяет write-through таблицу закэшированных цен каталога
type ServiceCache interface {
	Put(ctx context.Context, entries []*CachedService) error
	Get(ctx context.Context, provider, country, service string) (*CachedService, error)
}

// ProviderAdapter определяет единый набор операций над провайдером номеров.
// Адаптеры — чистые HTTP-клиенты: они не трогают ни кошелек, ни заказы.
type ProviderAdapter interface {
	// ID возвращает каноничный идентификатор провайдера
	ID() string
	// Aliases возвращает дополнительные идентификаторы, под которыми
	// провайдер известен клиентам
	Aliases() []string
	// CancelHold возвращает минимальное время удержания перед отменой
	CancelHold() time.Duration
	// RentalWindow возвращает длительность аренды номера
	RentalWindow() time.Duration
	ListCountries(ctx context.Context) ([]Country, error)
	ListServices(ctx context.Context, country string) ([]ServiceOffer, error)
	Buy(ctx context.Context, service, country, operator string) (*NumberPurchase, error)
	// Poll идемпотентен, его можно звать многократно
	Poll(ctx context.Context, activationID string) (*PollResult, error)
	Cancel(ctx context.Context, activationID string) (*CancelResult, error)
	// Finish помечает аренду завершенной у провайдеров, которым это нужно
	Finish(ctx context.Context, activationID string) error
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, login, password string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
}

// WalletService определяет методы работы с кошельком
type WalletService interface {
	GetBalance(ctx context.Context, userID int64) (*Balance, error)
	GetTransactions(ctx context.Context, userID int64) ([]*Transaction, error)
	Deposit(ctx context.Context, userID int64, amount decimal.Decimal, reference string) error
}

// PricingService определяет методы каталога и расчета цен
type PricingService interface {
	ListCountries(ctx context.Context, provider string) ([]Country, error)
	ListServices(ctx context.Context, provider, country string) ([]ServiceQuote, error)
	CalculatePrice(ctx context.Context, provider, service, country, operator, promoCode string) (*PriceQuote, error)
}

// RentalService определяет операции жизненного цикла аренды
type RentalService interface {
	Purchase(ctx context.Context, userID int64, provider, service, country, operator, promoCode string) (*Order, error)
	GetOrders(ctx context.Context, userID int64) ([]*Order, error)
	CancelByActivation(ctx context.Context, userID int64, activationID string) (*CancelReceipt, error)
}
