package service

import "errors"

var (
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrOrderNotCancelable = errors.New("order can no longer be cancelled")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidPrice       = errors.New("unit price must not be negative")
)
