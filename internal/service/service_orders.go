package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-orders-admin/internal/adapter"
	"github.com/MKhiriev/go-orders-admin/internal/logger"
	"github.com/MKhiriev/go-orders-admin/internal/validators"
	"github.com/MKhiriev/go-orders-admin/models"
)

// IdempotencyKeyHeader carries the client-chosen key of POST /orders.
const IdempotencyKeyHeader = "Idempotency-Key"

// KeyGenerator produces idempotency keys.
type KeyGenerator interface {
	Generate() string
}

type ordersService struct {
	api       adapter.APIClient
	keys      KeyGenerator
	validator validators.Validator

	logger *logger.Logger
}

func NewOrdersService(api adapter.APIClient, keys KeyGenerator, logger *logger.Logger) OrdersService {
	return &ordersService{
		api:       api,
		keys:      keys,
		validator: validators.NewOrderValidator(),
		logger:    logger,
	}
}

func (s *ordersService) List(ctx context.Context, params ListOrdersParams) (models.OrderList, error) {
	if err := s.validate(ctx, params.Status); err != nil {
		return models.OrderList{}, err
	}

	var list models.OrderList
	if err := s.get(ctx, "/orders", params.values(), &list); err != nil {
		return models.OrderList{}, fmt.Errorf("list orders: %w", err)
	}
	return list, nil
}

func (s *ordersService) Get(ctx context.Context, id string) (models.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Order{}, fmt.Errorf("%w: order id is required", ErrInvalidDataProvided)
	}

	var order models.Order
	if err := s.get(ctx, "/orders/"+url.PathEscape(id), nil, &order); err != nil {
		return models.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}
	return order, nil
}

func (s *ordersService) Create(ctx context.Context, req models.CreateOrderRequest) (models.Order, error) {
	if err := s.validate(ctx, req); err != nil {
		return models.Order{}, err
	}

	key := req.IdempotencyKey
	if key == "" {
		key = s.keys.Generate()
	}

	resp, err := s.api.Do(ctx, adapter.Post("/orders", req).WithHeader(IdempotencyKeyHeader, key))
	if err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", mapAdapterError(err))
	}

	var order models.Order
	if err = resp.Decode(&order); err != nil {
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info().
		Str("func", "*ordersService.Create").
		Str("order_id", order.ID).
		Str("idempotency_key", key).
		Msg("order created")
	return order, nil
}

func (s *ordersService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Order{}, fmt.Errorf("%w: order id is required", ErrInvalidDataProvided)
	}
	body := models.UpdateOrderStatusRequest{Status: status}
	if err := s.validate(ctx, body); err != nil {
		return models.Order{}, err
	}

	resp, err := s.api.Do(ctx, adapter.Patch("/orders/"+url.PathEscape(id)+"/status", body))
	if err != nil {
		return models.Order{}, fmt.Errorf("update order %s: %w", id, mapAdapterError(err))
	}

	var order models.Order
	if err = resp.Decode(&order); err != nil {
		return models.Order{}, fmt.Errorf("update order %s: %w", id, err)
	}

	s.logger.Info().
		Str("func", "*ordersService.UpdateStatus").
		Str("order_id", id).
		Str("status", string(order.Status)).
		Msg("order status updated")
	return order, nil
}

func (s *ordersService) AdminList(ctx context.Context, params AdminListParams) (models.OrderList, error) {
	if err := s.validate(ctx, params.Status); err != nil {
		return models.OrderList{}, err
	}

	var list models.OrderList
	if err := s.get(ctx, "/orders/admin/orders", params.values(), &list); err != nil {
		return models.OrderList{}, fmt.Errorf("admin list orders: %w", err)
	}
	return list, nil
}

func (s *ordersService) get(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := s.api.Do(ctx, adapter.Get(path, query))
	if err != nil {
		return mapAdapterError(err)
	}
	return resp.Decode(out)
}

// validate runs the request validator and tags its error as invalid input.
func (s *ordersService) validate(ctx context.Context, obj any) error {
	if err := s.validator.Validate(ctx, obj); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
