package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-orders-admin/internal/adapter"
	"github.com/MKhiriev/go-orders-admin/internal/config"
	"github.com/MKhiriev/go-orders-admin/internal/logger"
	"github.com/MKhiriev/go-orders-admin/internal/service"
	"github.com/MKhiriev/go-orders-admin/internal/session"
	"github.com/MKhiriev/go-orders-admin/internal/store"
	"github.com/MKhiriev/go-orders-admin/models"
)

// App owns every long-lived component of one ordersctl invocation.
type App struct {
	Services *service.ClientServices
	Session  *session.Session

	storages *store.ClientStorages
	logger   *logger.Logger
}

// NewApp opens the credential store, seeds the session from it and builds
// the API client and the services on top.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	sess := session.New(storages.CredentialRepository, logger)
	if err = sess.Load(ctx); err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	api, err := adapter.NewAPIClient(cfg.Adapter, sess, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create api client: %w", err)
	}

	logger.Debug().
		Str("address", cfg.Adapter.HTTPAddress).
		Bool("authenticated", sess.Authenticated()).
		Msg("client app initialised")

	return &App{
		Services: service.NewClientServices(api, sess, buildInfo, logger),
		Session:  sess,
		storages: storages,
		logger:   logger,
	}, nil
}

// Close releases the credential store.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).Msg("failed to close local storage")
		return err
	}
	return nil
}
