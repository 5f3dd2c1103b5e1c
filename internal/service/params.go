package service

import (
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/go-orders-admin/models"
)

// Page size defaults of the Orders API.
const (
	DefaultOrdersLimit = 20
	DefaultStatsLimit  = 50
)

// ListOrdersParams filters GET /orders.
type ListOrdersParams struct {
	// Limit is the page size; zero means DefaultOrdersLimit.
	Limit int
	// Cursor is the NextCursor of the previous page.
	Cursor string
	// Status restricts the page to one status when set.
	Status models.OrderStatus
}

func (p ListOrdersParams) values() url.Values {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(limitOrDefault(p.Limit, DefaultOrdersLimit)))
	if p.Cursor != "" {
		v.Set("cursor", p.Cursor)
	}
	if p.Status != "" {
		v.Set("status", string(p.Status))
	}
	return v
}

// AdminListParams filters GET /orders/admin/orders.
type AdminListParams struct {
	UserID string
	Status models.OrderStatus
	Limit  int
}

func (p AdminListParams) values() url.Values {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(limitOrDefault(p.Limit, DefaultOrdersLimit)))
	if p.UserID != "" {
		v.Set("user_id", p.UserID)
	}
	if p.Status != "" {
		v.Set("status", string(p.Status))
	}
	return v
}

// SkuStatsParams filters GET /stats/sku. From and To bound window_start and
// are sent as RFC 3339 timestamps when set.
type SkuStatsParams struct {
	Limit int
	From  time.Time
	To    time.Time
}

func (p SkuStatsParams) values() url.Values {
	v := url.Values{}
	v.Set("limit", strconv.Itoa(limitOrDefault(p.Limit, DefaultStatsLimit)))
	if !p.From.IsZero() {
		v.Set("from_ts", p.From.UTC().Format(time.RFC3339))
	}
	if !p.To.IsZero() {
		v.Set("to_ts", p.To.UTC().Format(time.RFC3339))
	}
	return v
}

func limitOrDefault(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return limit
}
