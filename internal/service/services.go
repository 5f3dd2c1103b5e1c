package service

import (
	"github.com/MKhiriev/go-orders-admin/internal/adapter"
	"github.com/MKhiriev/go-orders-admin/internal/logger"
	"github.com/MKhiriev/go-orders-admin/internal/utils"
	"github.com/MKhiriev/go-orders-admin/models"
)

// ClientServices aggregates every service used by the command line.
type ClientServices struct {
	AuthService    AuthService
	OrdersService  OrdersService
	StatsService   StatsService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewClientServices(api adapter.APIClient, session adapter.Session, buildInfo models.AppBuildInfo, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewAuthService(api, session, logger),
		OrdersService:  NewOrdersService(api, utils.NewUUIDGenerator(), logger),
		StatsService:   NewStatsService(api, logger),
		HealthService:  NewHealthService(api),
		AppInfoService: NewAppInfoService(buildInfo),
	}
}
