package postgres

import "errors"

// Ошибки пользователей
var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// Ошибки заказов
var (
	ErrOrderExists   = errors.New("order already exists")
	ErrOrderNotFound = errors.New("order not found")
)

// Ошибки кошелька и ценообразования
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrDuplicateRefund   = errors.New("refund already exists for this order")
	ErrPromoNotFound     = errors.New("promo code not found")
	ErrPromoExhausted    = errors.New("promo code usage limit reached")
)

// Код PostgreSQL для нарушения уникальности
const pgUniqueViolation = "23505"
