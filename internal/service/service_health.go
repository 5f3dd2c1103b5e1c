package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-orders-admin/internal/adapter"
	"github.com/MKhiriev/go-orders-admin/models"
)

type healthService struct {
	api adapter.APIClient
}

func NewHealthService(api adapter.APIClient) HealthService {
	return &healthService{api: api}
}

func (s *healthService) Health(ctx context.Context) (models.Health, error) {
	resp, err := s.api.DoUnauthenticated(ctx, adapter.Get("/healthz", nil))
	if err != nil {
		return models.Health{}, fmt.Errorf("health: %w", mapAdapterError(err))
	}

	var health models.Health
	if err = resp.Decode(&health); err != nil {
		return models.Health{}, fmt.Errorf("health: %w", err)
	}
	return health, nil
}
