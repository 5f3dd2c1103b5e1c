package adapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// fakeAPI is a minimal Orders API used by the client tests.
type fakeAPI struct {
	mu sync.Mutex

	// open disables the bearer check on /orders.
	open bool
	// valid holds the access tokens accepted by protected routes.
	valid map[string]bool
	// rejectAll makes protected routes answer 401 to every token.
	rejectAll bool

	// refreshStatus overrides the refresh response status when non-zero.
	refreshStatus int
	// refreshBody overrides the refresh response body when non-empty.
	refreshBody string
	// issued is the access token handed out by the next refresh.
	issued []string
	// onRefresh runs inside the refresh handler before it answers.
	onRefresh func()

	logoutStatus int

	ordersCalls  int
	refreshCalls int
	logoutCalls  int

	ordersAuth    []string
	refreshAuth   []string
	refreshCookie []string
	logoutCookie  []string
}

func newFakeAPI(valid ...string) *fakeAPI {
	f := &fakeAPI{valid: map[string]bool{}}
	for _, tok := range valid {
		f.valid[tok] = true
	}
	return f
}

func (f *fakeAPI) start(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/orders", f.listOrders)
	r.Get("/orders/{id}", f.getOrder)
	r.Post("/auth/refresh", f.refresh)
	r.Post("/auth/logout", f.logout)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func (f *fakeAPI) authorized(r *http.Request) bool {
	token, ok := bearerToken(r)
	return ok && !f.rejectAll && f.valid[token]
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" || strings.Contains(token, " ") {
		return "", false
	}
	return token, true
}

func (f *fakeAPI) listOrders(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.ordersCalls++
	f.ordersAuth = append(f.ordersAuth, r.Header.Get("Authorization"))
	ok := f.open || f.authorized(r)
	f.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Invalid authentication credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": []any{}, "next_cursor": nil})
}

// getOrder answers with the status encoded in the id, e.g. /orders/404.
func (f *fakeAPI) getOrder(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.ordersCalls++
	f.mu.Unlock()

	switch chi.URLParam(r, "id") {
	case "400":
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "bad cursor"})
	case "403":
		writeJSON(w, http.StatusForbidden, map[string]any{"detail": "Forbidden"})
	case "404":
		writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Order not found"})
	case "409":
		writeJSON(w, http.StatusConflict, map[string]any{"detail": "Invalid status transition"})
	case "422":
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"detail": []any{map[string]any{"msg": "field required"}}})
	case "500":
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": map[string]any{"code": "internal_error", "message": "Internal server error"}})
	case "502":
		w.WriteHeader(http.StatusBadGateway)
	case "503":
		w.WriteHeader(http.StatusServiceUnavailable)
	default:
		writeJSON(w, http.StatusOK, map[string]any{"id": chi.URLParam(r, "id"), "status": "created"})
	}
}

func (f *fakeAPI) refresh(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.refreshCalls++
	f.refreshAuth = append(f.refreshAuth, r.Header.Get("Authorization"))
	cookie := ""
	if c, err := r.Cookie(RefreshCookieName); err == nil {
		cookie = c.Value
	}
	f.refreshCookie = append(f.refreshCookie, cookie)

	if f.onRefresh != nil {
		f.onRefresh()
	}

	if f.refreshStatus != 0 {
		writeJSON(w, f.refreshStatus, map[string]any{"detail": "Invalid refresh token"})
		return
	}
	if f.refreshBody != "" {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(f.refreshBody))
		return
	}

	token := "tok-refreshed"
	if len(f.issued) > 0 {
		token, f.issued = f.issued[0], f.issued[1:]
	}
	f.valid[token] = true

	http.SetCookie(w, &http.Cookie{Name: RefreshCookieName, Value: "r-2", HttpOnly: true})
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":       token,
		"access_expires_in":  900,
		"refresh_token":      "r-2",
		"refresh_expires_in": 1209600,
	})
}

func (f *fakeAPI) logout(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.logoutCalls++
	cookie := ""
	if c, err := r.Cookie(RefreshCookieName); err == nil {
		cookie = c.Value
	}
	f.logoutCookie = append(f.logoutCookie, cookie)

	if f.logoutStatus != 0 {
		w.WriteHeader(f.logoutStatus)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeAPI) counts() (orders, refresh, logout int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ordersCalls, f.refreshCalls, f.logoutCalls
}

func (f *fakeAPI) ordersAuthHeaders() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ordersAuth...)
}

func (f *fakeAPI) refreshRequests() (auth, cookies []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.refreshAuth...), append([]string(nil), f.refreshCookie...)
}

func (f *fakeAPI) logoutCookies() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.logoutCookie...)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
