package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-orders-admin/internal/adapter"
	"github.com/MKhiriev/go-orders-admin/internal/app"
	"github.com/MKhiriev/go-orders-admin/internal/logger"
	"github.com/MKhiriev/go-orders-admin/internal/mock"
	"github.com/MKhiriev/go-orders-admin/models"
)

func newTestAuthSvc(t *testing.T) (*authService, *mock.MockAPIClient, *mock.MockSession) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	session := mock.NewMockSession(ctrl)

	svc := NewAuthService(api, session, logger.Nop()).(*authService)
	return svc, api, session
}

var aliceCreds = models.Credentials{Email: "alice@example.com", Password: "s3cret-pass"}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, api, _ := newTestAuthSvc(t)
	ctx := context.Background()

	api.EXPECT().DoUnauthenticated(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req adapter.Request) (*adapter.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/auth/register", req.Path)
			assert.Equal(t, aliceCreds, req.Body)
			return jsonResponse(t, http.StatusCreated, models.User{ID: "u-1", Email: aliceCreds.Email, Role: "user"}), nil
		},
	)

	user, err := svc.Register(ctx, models.Credentials{Email: "  alice@example.com ", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "user", user.Role)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, api, _ := newTestAuthSvc(t)

	api.EXPECT().DoUnauthenticated(gomock.Any(), gomock.Any()).
		Return(nil, httpErr(http.StatusConflict, app.MsgEmailAlreadyExists))

	_, err := svc.Register(context.Background(), aliceCreds)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	_, err := svc.Register(context.Background(), models.Credentials{Email: " ", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_StoresBothTokens(t *testing.T) {
	svc, api, session := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().DoUnauthenticated(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req adapter.Request) (*adapter.Response, error) {
				assert.Equal(t, "/auth/login", req.Path)
				return jsonResponse(t, http.StatusOK, models.TokenResponse{
					AccessToken:  "tok-1",
					RefreshToken: "r-1",
				}), nil
			},
		),
		session.EXPECT().SetTokens(ctx, "tok-1", "r-1").Return(nil),
	)

	require.NoError(t, svc.Login(ctx, aliceCreds))
}

func TestAuthService_Login_RefreshTokenFromCookie(t *testing.T) {
	svc, api, session := newTestAuthSvc(t)
	ctx := context.Background()

	resp := jsonResponse(t, http.StatusOK, map[string]any{"access_token": "tok-1"})
	resp.Header.Add("Set-Cookie", "refresh_token=r-cookie; HttpOnly; Path=/; SameSite=lax")

	api.EXPECT().DoUnauthenticated(ctx, gomock.Any()).Return(resp, nil)
	session.EXPECT().SetTokens(ctx, "tok-1", "r-cookie").Return(nil)

	require.NoError(t, svc.Login(ctx, aliceCreds))
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, api, _ := newTestAuthSvc(t)

	api.EXPECT().DoUnauthenticated(gomock.Any(), gomock.Any()).
		Return(nil, httpErr(http.StatusUnauthorized, app.MsgInvalidCredentials))

	err := svc.Login(context.Background(), aliceCreds)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, ErrSessionExpired)
}

func TestAuthService_Login_NoAccessToken(t *testing.T) {
	svc, api, _ := newTestAuthSvc(t)

	api.EXPECT().DoUnauthenticated(gomock.Any(), gomock.Any()).
		Return(jsonResponse(t, http.StatusOK, map[string]any{"token_type": "bearer"}), nil)

	err := svc.Login(context.Background(), aliceCreds)
	assert.ErrorIs(t, err, adapter.ErrDecodingResponse)
}

func TestAuthService_Login_PersistFailure(t *testing.T) {
	svc, api, session := newTestAuthSvc(t)
	dbErr := errors.New("database is locked")

	api.EXPECT().DoUnauthenticated(gomock.Any(), gomock.Any()).
		Return(jsonResponse(t, http.StatusOK, models.TokenResponse{AccessToken: "tok-1", RefreshToken: "r-1"}), nil)
	session.EXPECT().SetTokens(gomock.Any(), "tok-1", "r-1").Return(dbErr)

	err := svc.Login(context.Background(), aliceCreds)
	assert.ErrorIs(t, err, dbErr)
}

func TestAuthService_Login_TransportError(t *testing.T) {
	svc, api, _ := newTestAuthSvc(t)
	netErr := errors.New("dial tcp 127.0.0.1:18000: connect: connection refused")

	api.EXPECT().DoUnauthenticated(gomock.Any(), gomock.Any()).Return(nil, netErr)

	err := svc.Login(context.Background(), aliceCreds)
	assert.ErrorIs(t, err, netErr)
	assert.ErrorIs(t, err, ErrServerUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestAuthService_Logout(t *testing.T) {
	svc, api, _ := newTestAuthSvc(t)
	clearErr := errors.New("disk full")

	api.EXPECT().Logout(gomock.Any()).Return(nil)
	require.NoError(t, svc.Logout(context.Background()))

	api.EXPECT().Logout(gomock.Any()).Return(clearErr)
	assert.ErrorIs(t, svc.Logout(context.Background()), clearErr)
}

// ── Status ───────────────────────────────────────────────────────────────────

func TestAuthService_Status(t *testing.T) {
	exp := time.Now().Add(10 * time.Minute).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "u-1",
		"role": "admin",
		"exp":  exp.Unix(),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	t.Run("signed in", func(t *testing.T) {
		svc, _, session := newTestAuthSvc(t)
		session.EXPECT().AccessToken().Return(token)

		claims, err := svc.Status(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.Subject)
		assert.Equal(t, "admin", claims.Role)
		assert.True(t, claims.ExpiresAt.Equal(exp))
	})

	t.Run("signed out", func(t *testing.T) {
		svc, _, session := newTestAuthSvc(t)
		session.EXPECT().AccessToken().Return("")

		_, err := svc.Status(context.Background())
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("opaque token", func(t *testing.T) {
		svc, _, session := newTestAuthSvc(t)
		session.EXPECT().AccessToken().Return("opaque")

		_, err := svc.Status(context.Background())
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}
