// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OrderStatus is the lifecycle state of an order.
//
// The server only allows created -> paid and created -> canceled; both targets
// are terminal.
type OrderStatus string

const (
	OrderStatusCreated  OrderStatus = "created"
	OrderStatusPaid     OrderStatus = "paid"
	OrderStatusCanceled OrderStatus = "canceled"
)

// Terminal reports whether no further transition is possible from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusPaid || s == OrderStatusCanceled
}

// Currency codes accepted by the Orders API.
const (
	CurrencyHUF = "HUF"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// OrderItem is a single order line. Amounts are in minor units.
type OrderItem struct {
	SKU       string `json:"sku"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unit_price"`

	// LineTotal is computed by the server (Qty * UnitPrice) and is omitted
	// from create requests.
	LineTotal int64 `json:"line_total,omitempty"`
}

// Order is the full order representation returned by the detail, create and
// status endpoints. The status endpoint returns Items empty.
type Order struct {
	ID          string      `json:"id"`
	Status      OrderStatus `json:"status"`
	Currency    string      `json:"currency"`
	TotalAmount int64       `json:"total_amount"`
	Items       []OrderItem `json:"items"`
	CreatedAt   string      `json:"created_at"`
}

// OrderSummary is a row of the order list.
type OrderSummary struct {
	ID          string      `json:"id"`
	Status      OrderStatus `json:"status"`
	Currency    string      `json:"currency,omitempty"`
	TotalAmount int64       `json:"total_amount"`
	CreatedAt   string      `json:"created_at"`
}

// OrderList is one page of orders. NextCursor is nil on the last page.
type OrderList struct {
	Items      []OrderSummary `json:"items"`
	NextCursor *string        `json:"next_cursor"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Currency string      `json:"currency"`
	Items    []OrderItem `json:"items"`

	// IdempotencyKey is sent as the Idempotency-Key header, not in the body.
	// A random key is generated when empty.
	IdempotencyKey string `json:"-"`
}

// UpdateOrderStatusRequest is the body of PATCH /orders/{id}/status.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}
