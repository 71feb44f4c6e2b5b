package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicate         = errors.New("resource already exists")
	ErrInvalidOrderType  = errors.New("invalid order type")
	ErrInsufficientStock = errors.New("insufficient stock on hand")
	ErrUnauthorized      = errors.New("unauthorized")
)
