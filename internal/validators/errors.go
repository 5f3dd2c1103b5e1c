package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail          = errors.New("email is required")
	ErrEmptyPassword       = errors.New("password is required")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrEmptyItems          = errors.New("an order needs at least one item")
	ErrEmptySKU            = errors.New("sku is required")
	ErrInvalidQty          = errors.New("quantity must be positive")
	ErrInvalidUnitPrice    = errors.New("unit price must be positive")
	ErrInvalidStatus       = errors.New("unknown order status")
	ErrNonTerminalStatus   = errors.New("target status must be paid or canceled")
)
