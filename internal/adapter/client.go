package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-orders-admin/internal/config"
	"github.com/MKhiriev/go-orders-admin/internal/logger"
	"github.com/MKhiriev/go-orders-admin/internal/utils"
)

// RefreshCookieName is the cookie the server reads the refresh token from.
const RefreshCookieName = "refresh_token"

type apiClient struct {
	client  *utils.HTTPClient
	session Session

	refreshPath string
	logoutPath  string

	logger *logger.Logger
}

// result is the outcome of a single attempt: either a final response (or
// error), or a signal that the credential must be refreshed first.
type result struct {
	resp         *Response
	err          error
	needsRefresh bool
}

// NewAPIClient constructs the REST implementation of [APIClient].
// It normalises the base URL from cfg.HTTPAddress and configures the
// underlying HTTP client with the request timeout.
//
// Returns [ErrInvalidAddress] (wrapped) if cfg.HTTPAddress is empty or cannot
// be parsed as a valid URL.
func NewAPIClient(cfg config.ClientAdapter, session Session, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	refreshPath := cfg.RefreshPath
	if refreshPath == "" {
		refreshPath = config.DefaultRefreshPath
	}
	logoutPath := cfg.LogoutPath
	if logoutPath == "" {
		logoutPath = config.DefaultLogoutPath
	}

	httpClient := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	withTraceID(httpClient)
	withLogging(httpClient, logger)

	return &apiClient{
		client:      httpClient,
		session:     session,
		refreshPath: refreshPath,
		logoutPath:  logoutPath,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Do implements [APIClient].
//
//	ISSUED -> (status != 401) -> DONE
//	ISSUED -> (401, attempt 1) -> REFRESHING
//	REFRESHING -> ok -> RETRYING -> DONE
//	REFRESHING -> fail -> CREDENTIAL_CLEARED -> DONE(original 401)
//	ISSUED -> (401, attempt 2) -> DONE(401)
func (c *apiClient) Do(ctx context.Context, req Request) (*Response, error) {
	attempt := 1
	if req.AlreadyRetried {
		attempt = maxAttempts
	}

	res := c.attempt(ctx, req, attempt)
	if !res.needsRefresh {
		return res.resp, res.err
	}

	log := c.logger.With().
		Str("func", "*apiClient.Do").
		Str("method", req.Method).
		Str("path", req.Path).
		Logger()

	log.Info().Msg("credential rejected, refreshing")

	if err := c.Refresh(ctx); err != nil {
		// an aborted call says nothing about the refresh token
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Info().Err(ctxErr).Msg("refresh interrupted, credential kept")
			return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, ctxErr)
		}

		log.Warn().Err(err).Msg("refresh failed, clearing credential")
		if clearErr := c.session.Clear(context.WithoutCancel(ctx)); clearErr != nil {
			log.Err(clearErr).Msg("failed to clear persisted credential")
		}
		return res.resp, res.err
	}

	req.AlreadyRetried = true
	res = c.attempt(ctx, req, attempt+1)
	return res.resp, res.err
}

// DoUnauthenticated implements [APIClient].
func (c *apiClient) DoUnauthenticated(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.send(ctx, req, "")
	if err != nil {
		return nil, err
	}
	return resp, mapHTTPError(resp.StatusCode, resp.Body)
}

// attempt sends req with the current credential and classifies the outcome.
func (c *apiClient) attempt(ctx context.Context, req Request, n int) result {
	resp, err := c.send(ctx, req, c.session.AccessToken())
	if err != nil {
		return result{err: err}
	}

	err = mapHTTPError(resp.StatusCode, resp.Body)
	if resp.StatusCode == http.StatusUnauthorized && n < maxAttempts {
		return result{resp: resp, err: err, needsRefresh: true}
	}

	return result{resp: resp, err: err}
}

func (c *apiClient) send(ctx context.Context, req Request, token string) (*Response, error) {
	r := c.client.R().SetContext(ctx)

	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}
	if token != "" {
		r.SetHeader("Authorization", "Bearer "+token)
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}

	return toResponse(resp), nil
}

func toResponse(resp *resty.Response) *Response {
	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}
}

// Refresh implements [APIClient]. The refresh token travels as the
// refresh_token cookie. A rotated refresh token is taken from the body or,
// failing that, from the Set-Cookie header.
func (c *apiClient) Refresh(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetCookies(c.refreshCookies()).
		Post(c.refreshPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err = json.Unmarshal(resp.Body(), &tokens); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrRefreshFailed, ErrDecodingResponse, err)
	}
	if tokens.AccessToken == "" {
		return fmt.Errorf("%w: response carries no access_token", ErrRefreshFailed)
	}

	refresh := tokens.RefreshToken
	if refresh == "" {
		refresh = cookieValue(resp.Cookies(), RefreshCookieName)
	}

	if err = c.session.SetTokens(context.WithoutCancel(ctx), tokens.AccessToken, refresh); err != nil {
		// memory already holds the new tokens, the resend can proceed
		c.logger.Err(err).Str("func", "*apiClient.Refresh").Msg("failed to persist refreshed credential")
	}

	c.logger.Debug().Str("func", "*apiClient.Refresh").Msg("credential refreshed")
	return nil
}

// SetCredential implements [APIClient].
func (c *apiClient) SetCredential(ctx context.Context, token string) error {
	return c.session.SetCredential(ctx, strings.TrimSpace(token))
}

// Logout implements [APIClient].
func (c *apiClient) Logout(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetCookies(c.refreshCookies()).
		Post(c.logoutPath)
	if err == nil {
		err = mapHTTPError(resp.StatusCode(), resp.Body())
	}
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "*apiClient.Logout").Msg("logout notification failed")
	}

	if err = c.session.Clear(context.WithoutCancel(ctx)); err != nil {
		c.logger.Err(err).Str("func", "*apiClient.Logout").Msg("failed to clear credential")
		return err
	}
	return nil
}

func (c *apiClient) refreshCookies() []*http.Cookie {
	token := c.session.RefreshToken()
	if token == "" {
		return nil
	}
	return []*http.Cookie{{Name: RefreshCookieName, Value: token}}
}

func cookieValue(cookies []*http.Cookie, name string) string {
	for _, c := range cookies {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

var _ APIClient = (*apiClient)(nil)
