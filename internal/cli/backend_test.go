package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-orders-admin/internal/app"
	"github.com/MKhiriev/go-orders-admin/models"
)

var testSigningKey = []byte("test-signing-key")

type fakeUser struct {
	id       string
	password string
	role     string
}

// fakeOrdersAPI is an in-memory Orders API with the routes ordersctl uses.
type fakeOrdersAPI struct {
	mu sync.Mutex

	users   map[string]fakeUser // by email
	access  map[string]string   // access token -> email
	refresh map[string]string   // refresh token -> email
	seq     int

	orders     []models.Order // newest last
	orderOwner map[string]string
	stats      []models.SkuStat

	// stuckCursor, when set, is returned as next_cursor of every list page.
	stuckCursor string
	listCalls   int

	refreshCalls    int
	logoutCookies   []string
	idempotencyKeys []string
	statsQueries    []url.Values
}

func newFakeOrdersAPI() *fakeOrdersAPI {
	return &fakeOrdersAPI{
		users:      map[string]fakeUser{},
		access:     map[string]string{},
		refresh:    map[string]string{},
		orderOwner: map[string]string{},
	}
}

func (f *fakeOrdersAPI) start(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/healthz", f.health)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", f.register)
		r.Post("/login", f.login)
		r.Post("/refresh", f.refreshTokens)
		r.Post("/logout", f.logout)
	})
	r.Group(func(r chi.Router) {
		r.Use(f.authenticate)
		r.Get("/orders", f.listOrders)
		r.Post("/orders", f.createOrder)
		r.Get("/orders/admin/orders", f.adminOrders)
		r.Get("/orders/{id}", f.getOrder)
		r.Patch("/orders/{id}/status", f.updateStatus)
		r.Get("/stats/sku", f.skuStats)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

type emailKey struct{}

func (f *fakeOrdersAPI) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")

		f.mu.Lock()
		email, ok := f.access[token]
		f.mu.Unlock()

		if !found || !strings.EqualFold(scheme, "Bearer") || !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": app.MsgInvalidAuthentication})
			return
		}
		next.ServeHTTP(w, r.WithContext(contextWithEmail(r, email)))
	})
}

func contextWithEmail(r *http.Request, email string) context.Context {
	return context.WithValue(r.Context(), emailKey{}, email)
}

func emailFrom(r *http.Request) string {
	email, _ := r.Context().Value(emailKey{}).(string)
	return email
}

// expireAccessTokens invalidates every issued access token.
func (f *fakeOrdersAPI) expireAccessTokens() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.access = map[string]string{}
}

// revokeRefreshTokens invalidates every issued refresh token.
func (f *fakeOrdersAPI) revokeRefreshTokens() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refresh = map[string]string{}
}

func (f *fakeOrdersAPI) setStats(stats []models.SkuStat) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats = stats
}

func (f *fakeOrdersAPI) setStuckCursor(cursor string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stuckCursor = cursor
}

func (f *fakeOrdersAPI) listRequests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

// promote gives the account the admin role.
func (f *fakeOrdersAPI) promote(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.users[email]
	u.role = "admin"
	f.users[email] = u
}

func (f *fakeOrdersAPI) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "timestamp": "2026-10-19T12:00:00Z"})
}

func (f *fakeOrdersAPI) register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": []any{map[string]any{"msg": "invalid body"}}})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[creds.Email]; ok {
		writeJSON(w, http.StatusConflict, map[string]any{"detail": app.MsgEmailAlreadyExists})
		return
	}
	f.seq++
	u := fakeUser{id: fmt.Sprintf("u-%d", f.seq), password: creds.Password, role: "user"}
	f.users[creds.Email] = u
	writeJSON(w, http.StatusCreated, models.User{ID: u.id, Email: creds.Email, Role: u.role})
}

func (f *fakeOrdersAPI) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	_ = json.NewDecoder(r.Body).Decode(&creds)

	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[creds.Email]
	if !ok || u.password != creds.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": app.MsgInvalidCredentials})
		return
	}
	f.issueTokens(w, creds.Email)
}

func (f *fakeOrdersAPI) refreshTokens(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.refreshCalls++
	c, err := r.Cookie("refresh_token")
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": app.MsgRefreshTokenMissing})
		return
	}
	email, ok := f.refresh[c.Value]
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": app.MsgInvalidRefreshToken})
		return
	}
	delete(f.refresh, c.Value)
	f.issueTokens(w, email)
}

func (f *fakeOrdersAPI) logout(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c, err := r.Cookie("refresh_token"); err == nil {
		f.logoutCookies = append(f.logoutCookies, c.Value)
		delete(f.refresh, c.Value)
	}
	w.WriteHeader(http.StatusNoContent)
}

// issueTokens must be called with f.mu held.
func (f *fakeOrdersAPI) issueTokens(w http.ResponseWriter, email string) {
	u := f.users[email]
	f.seq++
	now := time.Now()
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.id,
		"role": u.role,
		"iat":  now.Unix(),
		"exp":  now.Add(15 * time.Minute).Unix(),
		"jti":  strconv.Itoa(f.seq),
	}).SignedString(testSigningKey)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"detail": err.Error()})
		return
	}
	refresh := fmt.Sprintf("r-%d", f.seq)
	f.access[access] = email
	f.refresh[refresh] = email

	http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: refresh, HttpOnly: true, Path: "/auth"})
	writeJSON(w, http.StatusOK, models.TokenResponse{
		AccessToken:      access,
		AccessExpiresIn:  900,
		RefreshToken:     refresh,
		RefreshExpiresIn: 1209600,
	})
}

func (f *fakeOrdersAPI) listOrders(w http.ResponseWriter, r *http.Request) {
	email := emailFrom(r)
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("cursor"))

	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++

	var mine []models.OrderSummary
	for i := len(f.orders) - 1; i >= 0; i-- {
		o := f.orders[i]
		if f.orderOwner[o.ID] != email {
			continue
		}
		if s := q.Get("status"); s != "" && string(o.Status) != s {
			continue
		}
		mine = append(mine, models.OrderSummary{ID: o.ID, Status: o.Status, Currency: o.Currency, TotalAmount: o.TotalAmount, CreatedAt: o.CreatedAt})
	}

	page := models.OrderList{Items: []models.OrderSummary{}}
	if offset < len(mine) {
		end := min(offset+limit, len(mine))
		page.Items = mine[offset:end]
		if end < len(mine) {
			next := strconv.Itoa(end)
			page.NextCursor = &next
		}
	}
	if f.stuckCursor != "" {
		stuck := f.stuckCursor
		page.NextCursor = &stuck
	}
	writeJSON(w, http.StatusOK, page)
}

func (f *fakeOrdersAPI) createOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": "invalid body"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.idempotencyKeys = append(f.idempotencyKeys, r.Header.Get("Idempotency-Key"))

	order := models.Order{
		ID:        fmt.Sprintf("o-%d", len(f.orders)+1),
		Status:    models.OrderStatusCreated,
		Currency:  req.Currency,
		CreatedAt: "2026-10-19T12:00:00Z",
	}
	for _, it := range req.Items {
		it.LineTotal = int64(it.Qty) * it.UnitPrice
		order.TotalAmount += it.LineTotal
		order.Items = append(order.Items, it)
	}
	f.orders = append(f.orders, order)
	f.orderOwner[order.ID] = emailFrom(r)
	writeJSON(w, http.StatusCreated, order)
}

func (f *fakeOrdersAPI) getOrder(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.findOrder(chi.URLParam(r, "id"), emailFrom(r))
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": app.MsgOrderNotFound})
		return
	}
	writeJSON(w, http.StatusOK, f.orders[i])
}

func (f *fakeOrdersAPI) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateOrderStatusRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.findOrder(chi.URLParam(r, "id"), emailFrom(r))
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": app.MsgOrderNotFound})
		return
	}
	if f.orders[i].Status != models.OrderStatusCreated {
		writeJSON(w, http.StatusConflict, map[string]any{"detail": app.MsgInvalidStatusTransition})
		return
	}
	f.orders[i].Status = req.Status
	updated := f.orders[i]
	updated.Items = nil
	writeJSON(w, http.StatusOK, updated)
}

func (f *fakeOrdersAPI) adminOrders(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.users[emailFrom(r)].role != "admin" {
		writeJSON(w, http.StatusForbidden, map[string]any{"detail": app.MsgForbidden})
		return
	}

	page := models.OrderList{Items: []models.OrderSummary{}}
	userID := r.URL.Query().Get("user_id")
	for _, o := range f.orders {
		if userID != "" && f.users[f.orderOwner[o.ID]].id != userID {
			continue
		}
		page.Items = append(page.Items, models.OrderSummary{ID: o.ID, Status: o.Status, Currency: o.Currency, TotalAmount: o.TotalAmount, CreatedAt: o.CreatedAt})
	}
	writeJSON(w, http.StatusOK, page)
}

func (f *fakeOrdersAPI) skuStats(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.statsQueries = append(f.statsQueries, r.URL.Query())
	writeJSON(w, http.StatusOK, models.SkuStatsResponse{Items: append([]models.SkuStat{}, f.stats...)})
}

// findOrder must be called with f.mu held.
func (f *fakeOrdersAPI) findOrder(id, email string) int {
	for i, o := range f.orders {
		if o.ID == id && f.orderOwner[id] == email {
			return i
		}
	}
	return -1
}

func (f *fakeOrdersAPI) snapshot() (refreshCalls int, logoutCookies, idempotencyKeys []string, statsQueries []url.Values) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshCalls,
		append([]string(nil), f.logoutCookies...),
		append([]string(nil), f.idempotencyKeys...),
		append([]url.Values(nil), f.statsQueries...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
