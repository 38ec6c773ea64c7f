package utils

import "errors"

var (
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")

	ErrInvalidPlan        = errors.New("invalid subscription plan")
	ErrInvalidCheckout    = errors.New("invalid checkout type")
	ErrQuotaExceeded      = errors.New("daily assistant quota exhausted")
	ErrPremiumRequired    = errors.New("premium subscription required")
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrVendorNotFound     = errors.New("vendor not found")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrAIResponseInvalid  = errors.New("unexpected response from AI provider")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
)
