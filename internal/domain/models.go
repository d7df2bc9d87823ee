package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus представляет статус аренды номера
type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusExpired   OrderStatus = "expired"
	OrderStatusFailed    OrderStatus = "failed"
)

// IsTerminal сообщает, является ли статус финальным.
// Из финального статуса переходы запрещены.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusCancelled, OrderStatusExpired, OrderStatusFailed:
		return true
	}
	return false
}

// TransactionType представляет тип транзакции
type TransactionType string

const (
	TransactionTypeDeposit     TransactionType = "deposit"
	TransactionTypePurchase    TransactionType = "purchase"
	TransactionTypeRefund      TransactionType = "refund"
	TransactionTypeTransferIn  TransactionType = "transfer-in"
	TransactionTypeTransferOut TransactionType = "transfer-out"
	TransactionTypePayout      TransactionType = "payout"
	TransactionTypeAdjustment  TransactionType = "adjustment"
)

// TransactionStatus представляет статус транзакции
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Currency представляет валюту кошелька
type Currency string

const (
	CurrencyNGN Currency = "NGN"
	CurrencyUSD Currency = "USD"
)

// PromoKind представляет тип промокода
type PromoKind string

const (
	PromoKindPercent  PromoKind = "percent"
	PromoKindFixedNGN PromoKind = "fixed_ngn"
	PromoKindFixedUSD PromoKind = "fixed_usd"
)

// User представляет пользователя системы
type User struct {
	ID           int64           `json:"id"`
	Login        string          `json:"login"`
	PasswordHash string          `json:"-"` // Не отправляем хеш в JSON
	IsAdmin      bool            `json:"-"`
	NGNBalance   decimal.Decimal `json:"ngn_balance"`
	USDBalance   decimal.Decimal `json:"usd_balance"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Transaction представляет операцию на кошельке. Записи append-only:
// после перехода в completed запись не изменяется.
type Transaction struct {
	ID        string            `json:"id"`
	UserID    int64             `json:"-"`
	Type      TransactionType   `json:"type"`
	Amount    decimal.Decimal   `json:"amount"`
	Currency  Currency          `json:"currency"`
	Status    TransactionStatus `json:"status"`
	Reference string            `json:"reference"`
	Metadata  []byte            `json:"-"`
	CreatedAt time.Time         `json:"created_at"`
}

// Order представляет одну аренду виртуального номера.
// Имена JSON-полей видны внешним клиентам, менять нельзя.
type Order struct {
	ID            string          `json:"id"`
	UserID        int64           `json:"-"`
	Provider      string          `json:"provider"`
	ServiceCode   string          `json:"service"`
	CountryCode   string          `json:"country"`
	Operator      string          `json:"operator,omitempty"`
	ActivationID  string          `json:"activation_id"`
	PhoneNumber   string          `json:"phone_number"`
	Status        OrderStatus     `json:"status"`
	OTP           *string         `json:"otp"`
	BasePriceUSD  decimal.Decimal `json:"provider_cost"`
	FinalPriceUSD decimal.Decimal `json:"cost_usd"`
	FinalPriceNGN decimal.Decimal `json:"price_ngn"`
	MarkupPct     decimal.Decimal `json:"markup_percentage"`
	PromoCode     *string         `json:"promo_code,omitempty"`
	CanCancel     bool            `json:"can_cancel"`
	RefundIssued  bool            `json:"-"`
	CreatedAt     time.Time       `json:"created_at"`
	LastPolledAt  *time.Time      `json:"-"`
	NextPollAt    time.Time       `json:"-"`
	ExpiresAt     time.Time       `json:"expires_at"`
}

// ComputeCanCancel вычисляет производное поле can_cancel.
// Флаг монотонный: true, пока не пришел OTP и заказ не стал финальным.
func (o *Order) ComputeCanCancel() {
	o.CanCancel = o.Status == OrderStatusActive && o.OTP == nil
}

// PricingConfig содержит глобальную конфигурацию ценообразования.
// Мутируется только администратором; процесс перечитывает ее при обновлении.
type PricingConfig struct {
	NGNPerUSD decimal.Decimal            `json:"ngn_per_usd"`
	Markups   map[string]decimal.Decimal `json:"markups"` // провайдер -> наценка в процентах
	UpdatedAt time.Time                  `json:"updated_at"`
}

// MarkupFor возвращает наценку для провайдера (0, если не задана)
func (c *PricingConfig) MarkupFor(provider string) decimal.Decimal {
	if c.Markups == nil {
		return decimal.Zero
	}
	return c.Markups[provider]
}

// PromoCode представляет промокод
type PromoCode struct {
	Code      string          `json:"code"`
	Kind      PromoKind       `json:"kind"`
	Value     decimal.Decimal `json:"value"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	MaxUses   *int32          `json:"max_uses,omitempty"`
	UsedCount int32           `json:"used_count"`
}

// CachedService представляет последнюю наблюдаемую базовую цену
// для тройки (провайдер, страна, сервис). Записывается при каждом
// успешном листинге каталога и читается при покупке, чтобы цена
// не зависела от последующих изменений каталога провайдера.
type CachedService struct {
	Provider     string          `json:"provider"`
	CountryCode  string          `json:"country"`
	ServiceCode  string          `json:"service"`
	BasePriceUSD decimal.Decimal `json:"base_price_usd"`
	Pool         string          `json:"pool,omitempty"`
	LastSeen     time.Time       `json:"last_seen"`
}

// Country представляет страну из каталога провайдера
type Country struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

// ServiceOffer представляет позицию каталога провайдера.
// BasePriceUSD уже нормализована к USD: адаптер 5sim конвертирует
// из монет по своему курсу coin_to_usd до возврата результата.
type ServiceOffer struct {
	ServiceCode  string          `json:"service_code"`
	Label        string          `json:"label,omitempty"`
	BasePriceUSD decimal.Decimal `json:"base_price_usd"`
	Pool         string          `json:"pool,omitempty"`
	Operators    []string        `json:"operators,omitempty"`
}

// NumberPurchase представляет результат покупки номера у провайдера
type NumberPurchase struct {
	ActivationID string
	PhoneNumber  string
	UpstreamCost decimal.Decimal
}

// PollStatus представляет статус активации по данным провайдера
type PollStatus string

const (
	PollStatusWaiting   PollStatus = "waiting"
	PollStatusReceived  PollStatus = "received"
	PollStatusCancelled PollStatus = "cancelled"
	PollStatusExpired   PollStatus = "expired"
)

// PollResult представляет результат опроса активации
type PollResult struct {
	Status PollStatus
	OTP    string
}

// CancelResult представляет ответ провайдера на запрос отмены
type CancelResult struct {
	Accepted bool
	Reason   string
}

// PromoApplied описывает примененный промокод в расчете цены
type PromoApplied struct {
	Code        string          `json:"code"`
	Kind        PromoKind       `json:"kind"`
	Value       decimal.Decimal `json:"value"`
	DiscountNGN decimal.Decimal `json:"discount_ngn"`
	DiscountUSD decimal.Decimal `json:"discount_usd"`
}

// PriceQuote представляет итоговую расчетную цену
type PriceQuote struct {
	FinalPriceNGN decimal.Decimal `json:"final_price_ngn"`
	FinalPriceUSD decimal.Decimal `json:"final_price_usd"`
	BaseUSD       decimal.Decimal `json:"base_usd"`
	MarkupPct     decimal.Decimal `json:"markup_percentage"`
	Promo         *PromoApplied   `json:"promo,omitempty"`
}

// ServiceQuote представляет позицию каталога с ценой для клиента
type ServiceQuote struct {
	ServiceCode   string          `json:"service_code"`
	Label         string          `json:"label,omitempty"`
	BasePriceUSD  decimal.Decimal `json:"base_price_usd"`
	FinalPriceNGN decimal.Decimal `json:"final_price_ngn"`
	Pool          string          `json:"pool,omitempty"`
	Operators     []string        `json:"operators,omitempty"`
}

// CancelReceipt представляет результат успешной отмены с возвратом средств
type CancelReceipt struct {
	Success         bool            `json:"success"`
	Message         string          `json:"message"`
	RefundAmountNGN decimal.Decimal `json:"refund_amount_ngn"`
	Currency        Currency        `json:"currency"`
}

// Balance представляет баланс кошелька пользователя
type Balance struct {
	NGN decimal.Decimal `json:"ngn_balance"`
	USD decimal.Decimal `json:"usd_balance"`
}
