// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-orders-admin/internal/adapter"
	"github.com/MKhiriev/go-orders-admin/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The adapter error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *adapter.HTTPError
	if !errors.As(err, &httpErr) {
		// no response at all: refused connection, DNS failure, timeout
		if errors.Is(err, context.Canceled) {
			return err
		}
		return wrap(ErrServerUnavailable, err)
	}

	switch httpErr.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return wrap(ErrInvalidDataProvided, err)

	case http.StatusUnauthorized:
		switch httpErr.Message {
		case app.MsgInvalidCredentials:
			return wrap(ErrInvalidCredentials, err)
		default:
			return wrap(ErrSessionExpired, err)
		}

	case http.StatusForbidden:
		return wrap(ErrAccessDenied, err)

	case http.StatusNotFound:
		if httpErr.Message == app.MsgOrderNotFound {
			return wrap(ErrOrderNotFound, err)
		}

	case http.StatusConflict:
		switch httpErr.Message {
		case app.MsgEmailAlreadyExists:
			return wrap(ErrEmailAlreadyExists, err)
		case app.MsgIdempotencyConflict:
			return wrap(ErrIdempotencyConflict, err)
		case app.MsgInvalidStatusTransition:
			return wrap(ErrInvalidStatusTransition, err)
		}

	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return wrap(ErrServerUnavailable, err)
	}

	return err
}

func wrap(sentinel, err error) error {
	return fmt.Errorf("%w: %w", sentinel, err)
}
