package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-orders-admin/internal/adapter"
	"github.com/MKhiriev/go-orders-admin/internal/logger"
	"github.com/MKhiriev/go-orders-admin/internal/utils"
	"github.com/MKhiriev/go-orders-admin/internal/validators"
	"github.com/MKhiriev/go-orders-admin/models"
)

type authService struct {
	api       adapter.APIClient
	session   adapter.Session
	validator validators.Validator

	logger *logger.Logger
}

func NewAuthService(api adapter.APIClient, session adapter.Session, logger *logger.Logger) AuthService {
	return &authService{
		api:       api,
		session:   session,
		validator: validators.NewOrderValidator(),
		logger:    logger,
	}
}

func (s *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	creds, err := s.normalizeCredentials(ctx, creds)
	if err != nil {
		return models.User{}, err
	}

	resp, err := s.api.DoUnauthenticated(ctx, adapter.Post("/auth/register", creds))
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", mapAdapterError(err))
	}

	var user models.User
	if err = resp.Decode(&user); err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	s.logger.Info().Str("func", "*authService.Register").Str("user_id", user.ID).Msg("account registered")
	return user, nil
}

func (s *authService) Login(ctx context.Context, creds models.Credentials) error {
	creds, err := s.normalizeCredentials(ctx, creds)
	if err != nil {
		return err
	}

	resp, err := s.api.DoUnauthenticated(ctx, adapter.Post("/auth/login", creds))
	if err != nil {
		// every 401 of the login route means a wrong email/password pair
		if errors.Is(err, adapter.ErrUnauthorized) {
			return fmt.Errorf("login: %w: %w", ErrInvalidCredentials, err)
		}
		return fmt.Errorf("login: %w", mapAdapterError(err))
	}

	var tokens models.TokenResponse
	if err = resp.Decode(&tokens); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if tokens.AccessToken == "" {
		return fmt.Errorf("login: %w: response carries no access_token", adapter.ErrDecodingResponse)
	}

	refresh := tokens.RefreshToken
	if refresh == "" {
		refresh = refreshCookie(resp)
	}

	if err = s.session.SetTokens(ctx, tokens.AccessToken, refresh); err != nil {
		return fmt.Errorf("login: store credentials: %w", err)
	}

	s.logger.Info().Str("func", "*authService.Login").Msg("logged in")
	return nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *authService) Status(ctx context.Context) (models.TokenClaims, error) {
	token := s.session.AccessToken()
	if token == "" {
		return models.TokenClaims{}, ErrNotAuthenticated
	}

	claims, err := utils.ParseTokenClaims(token)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*authService.Status").Msg("stored access token is not a JWT")
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return claims, nil
}

func (s *authService) normalizeCredentials(ctx context.Context, creds models.Credentials) (models.Credentials, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := s.validator.Validate(ctx, creds); err != nil {
		return creds, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return creds, nil
}

func refreshCookie(resp *adapter.Response) string {
	cookies := (&http.Response{Header: resp.Header}).Cookies()
	for _, c := range cookies {
		if c.Name == adapter.RefreshCookieName {
			return c.Value
		}
	}
	return ""
}
