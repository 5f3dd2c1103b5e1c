package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-orders-admin/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the account email of a login or registration.
	FieldEmail = "email"

	// FieldPassword targets the account password of a login or registration.
	FieldPassword = "password"

	// FieldCurrency targets the currency of a new order.
	FieldCurrency = "currency"

	// FieldItems targets the order lines of a new order; each line is checked
	// with the item fields.
	FieldItems = "items"

	FieldSKU       = "sku"
	FieldQty       = "qty"
	FieldUnitPrice = "unit_price"

	// FieldStatus targets the target status of a status change, which must be
	// terminal.
	FieldStatus = "status"

	// FieldStatusFilter accepts any known status or the empty status, as used
	// by list filters.
	FieldStatusFilter = "status filter"
)

// allowedCurrencies is the exhaustive set of currencies the Orders API accepts.
var allowedCurrencies = []string{
	models.CurrencyHUF,
	models.CurrencyUSD,
	models.CurrencyEUR,
}

var knownStatuses = []models.OrderStatus{
	models.OrderStatusCreated,
	models.OrderStatusPaid,
	models.OrderStatusCanceled,
}

// OrderValidator implements the Validator interface for the account and
// order request models: Credentials, CreateOrderRequest, OrderItem,
// UpdateOrderStatusRequest and OrderStatus.
type OrderValidator struct {
}

// NewOrderValidator constructs a new OrderValidator and returns it as the
// Validator interface.
func NewOrderValidator() Validator {
	return &OrderValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of each supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *OrderValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.CreateOrderRequest:
		return v.validateCreateOrder(value, fields...)
	case *models.CreateOrderRequest:
		return v.validateCreateOrder(*value, fields...)

	case models.OrderItem:
		return v.validateItem(value, fields...)
	case *models.OrderItem:
		return v.validateItem(*value, fields...)

	case models.UpdateOrderStatusRequest:
		return v.validateStatus(value.Status, fields...)
	case *models.UpdateOrderStatusRequest:
		return v.validateStatus(value.Status, fields...)

	case models.OrderStatus:
		if len(fields) == 0 {
			fields = []string{FieldStatusFilter}
		}
		return v.validateStatus(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *OrderValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if creds.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreateOrder checks the currency and every order line.
// Returns a wrapped error naming the first invalid line (1-based).
func (v *OrderValidator) validateCreateOrder(req models.CreateOrderRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrency, FieldItems}
	}

	for _, f := range fields {
		switch f {
		case FieldCurrency:
			if !slices.Contains(allowedCurrencies, req.Currency) {
				return fmt.Errorf("%w %q", ErrUnsupportedCurrency, req.Currency)
			}
		case FieldItems:
			if len(req.Items) == 0 {
				return ErrEmptyItems
			}
			for i, item := range req.Items {
				if err := v.validateItem(item); err != nil {
					return fmt.Errorf("item %d: %w", i+1, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *OrderValidator) validateItem(item models.OrderItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSKU, FieldQty, FieldUnitPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldSKU:
			if item.SKU == "" {
				return ErrEmptySKU
			}
		case FieldQty:
			if item.Qty <= 0 {
				return ErrInvalidQty
			}
		case FieldUnitPrice:
			if item.UnitPrice <= 0 {
				return ErrInvalidUnitPrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *OrderValidator) validateStatus(status models.OrderStatus, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldStatus:
			if !status.Terminal() {
				return fmt.Errorf("%w: got %q", ErrNonTerminalStatus, status)
			}
		case FieldStatusFilter:
			if status != "" && !slices.Contains(knownStatuses, status) {
				return fmt.Errorf("%w %q", ErrInvalidStatus, status)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
