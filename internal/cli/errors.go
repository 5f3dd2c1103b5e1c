package cli

import (
	"errors"

	"github.com/MKhiriev/go-orders-admin/internal/config"
	"github.com/MKhiriev/go-orders-admin/internal/service"
)

// errorHint returns a follow-up instruction for errors the user can fix.
func errorHint(err error) string {
	switch {
	case errors.Is(err, service.ErrSessionExpired):
		return "Your session has expired. Please log in again: ordersctl auth login"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "You are not logged in. Run: ordersctl auth login"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Check the email and password and try again."
	case errors.Is(err, service.ErrAccessDenied):
		return "This command requires the admin role."
	case errors.Is(err, service.ErrServerUnavailable):
		return "The Orders API is not reachable. Check --address and try: ordersctl health"
	case errors.Is(err, config.ErrInvalidAdapterConfigs),
		errors.Is(err, config.ErrInvalidStorageConfigs),
		errors.Is(err, config.ErrInvalidAppConfigs):
		return "Check the flags, the ADAPTER_/STORAGE_/APP_ environment variables and the JSON config file."
	}
	return ""
}
