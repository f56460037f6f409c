package repository

import "errors"

var (
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrVariationNotFound = errors.New("variation not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrAlertNotFound     = errors.New("alert not found")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidUnitType   = errors.New("invalid unit type")
	ErrInvalidVariation  = errors.New("variation name is required")

	ErrDuplicateCorrelation = errors.New("correlation id already recorded")
)
