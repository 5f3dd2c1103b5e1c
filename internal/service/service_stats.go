package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-orders-admin/internal/adapter"
	"github.com/MKhiriev/go-orders-admin/internal/logger"
	"github.com/MKhiriev/go-orders-admin/models"
)

type statsService struct {
	api    adapter.APIClient
	logger *logger.Logger
}

func NewStatsService(api adapter.APIClient, logger *logger.Logger) StatsService {
	return &statsService{api: api, logger: logger}
}

func (s *statsService) SkuStats(ctx context.Context, params SkuStatsParams) ([]models.SkuStat, error) {
	if !params.From.IsZero() && !params.To.IsZero() && params.To.Before(params.From) {
		return nil, fmt.Errorf("%w: window end is before window start", ErrInvalidDataProvided)
	}

	resp, err := s.api.Do(ctx, adapter.Get("/stats/sku", params.values()))
	if err != nil {
		return nil, fmt.Errorf("sku stats: %w", mapAdapterError(err))
	}

	var stats models.SkuStatsResponse
	if err = resp.Decode(&stats); err != nil {
		return nil, fmt.Errorf("sku stats: %w", err)
	}
	return stats.Items, nil
}
