package domain

import "errors"

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Ошибки заказов
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrNotYourOrder    = errors.New("order belongs to another user")
	ErrOrderHasOTP     = errors.New("order already received an otp")
	ErrCancelTooEarly  = errors.New("cancel window has not opened yet")
	ErrAlreadyTerminal = errors.New("order is already in a terminal state")
)

// Ошибки кошелька и ценообразования
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidPromoCode  = errors.New("invalid promo code")
)

// Ошибки доступности
var (
	ErrServiceUnavailable          = errors.New("service price is unavailable")
	ErrNoNumbersAvailable          = errors.New("no numbers available")
	ErrInsufficientUpstreamBalance = errors.New("insufficient upstream provider balance")
)

// Ошибки провайдеров
var (
	ErrProviderRejected    = errors.New("provider rejected the request")
	ErrProviderUnavailable = errors.New("provider is unavailable")
	ErrOrderGone           = errors.New("activation is unknown to the provider")
	ErrUnknownProvider     = errors.New("unknown provider")
)

// Внутренние ошибки
var (
	ErrRepositoryConflict = errors.New("repository conflict")
)
