package http

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	playerapp "garu-data-service/internal/app/players"
	"garu-data-service/internal/cache"
	"garu-data-service/internal/http/handlers"
	"garu-data-service/internal/testutil"
)

type stubRoster struct{ res cache.Resolution }

func (s stubRoster) GetRoster(context.Context, bool) cache.Resolution { return s.res }
func (s stubRoster) Season() string                                   { return "2025-26" }

func newTestRouter() http.Handler {
	src := stubRoster{res: cache.Resolution{Players: testutil.SampleRoster(), Season: "2025-26", Source: cache.TierDurable}}
	clock := testutil.FakeClockAt(testutil.MustParseRFC3339("2025-11-01T09:00:00Z"))
	h := handlers.NewHandler(handlers.Options{
		Players: playerapp.NewService(src, clock, rand.New(rand.NewSource(1))),
		Clock:   clock,
	})
	return NewRouter(h, []string{"http://localhost:3000"})
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter()

	cases := map[string]int{
		"/health":                      http.StatusOK,
		"/ready":                       http.StatusOK,
		"/api/players":                 http.StatusOK,
		"/api/players/stars":           http.StatusOK,
		"/api/players/top/3":           http.StatusOK,
		"/api/players/random":          http.StatusOK,
		"/api/players/role-players":    http.StatusOK,
		"/api/players/daily":           http.StatusOK,
		"/api/players/teams":           http.StatusOK,
		"/api/players/team/BOS":        http.StatusOK,
		"/api/players/search/player":   http.StatusOK,
		"/api/players/by-position/PG":  http.StatusOK,
		"/api/players/by-position/XX":  http.StatusBadRequest,
		"/api/players/journey/players": http.StatusServiceUnavailable, // no journey source wired
		"/api/players/1":               http.StatusOK,
		"/api/players/404":             http.StatusNotFound,
		"/api/players/team/XYZ":        http.StatusNotFound,
		"/api/players/top/1000":        http.StatusOK,
		"/api/players/search/nobody":   http.StatusOK,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	rr := testutil.Serve(newTestRouter(), http.MethodGet, "/does-not-exist", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	rr := testutil.Serve(newTestRouter(), http.MethodPost, "/api/players", nil)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for POST, got %d", rr.Code)
	}
}

func TestRouterAppliesCORS(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/players", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := testutil.ServeRequest(router, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/players", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr = testutil.ServeRequest(router, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected foreign origin rejected, got %q", got)
	}
}
