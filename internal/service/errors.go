package service

import "errors"

// Ошибки валидации ввода
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidAmount = errors.New("amount must be positive")
)
