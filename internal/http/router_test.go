package httpapi

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arestitans/smart-dispatcher/internal/config"
	"github.com/arestitans/smart-dispatcher/internal/http/middleware"
	"github.com/arestitans/smart-dispatcher/internal/notify"
	"github.com/arestitans/smart-dispatcher/internal/orders"
	"github.com/arestitans/smart-dispatcher/internal/registry"
)

// --- tiny fake sender to satisfy notify.Sender ---
type nopSender struct{}

func (nopSender) Send(int64, string) error                          { return nil }
func (nopSender) SendButtons(int64, string, [][]notify.Button) error { return nil }

func testDeps() Dependencies {
	store := registry.NewStore()
	return Dependencies{
		Registry: store,
		Orders:   orders.NewStore(),
		Claims:   orders.NewClaimStore(),
		Dispatch: notify.NewDispatcher(nopSender{}, nil, nil, zerolog.Nop()),
	}
}

func TestRegisterRoutes_CORSAllowAll_Health_Metrics_Fallbacks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := config.Config{
		APIBasePath:    "/api",
		RateRPS:        100,
		RateBurst:      10,
		IdempotencyTTL: time.Hour,
		CORS:           config.CORSConfig{AllowedOrigins: nil}, // triggers AllowAllOrigins branch
		Security:       config.SecurityConfig{EnableHSTS: false, HSTSMaxAge: 0},
		OTEL:           config.OTELConfig{ServiceName: "test-svc"},
	}

	RegisterRoutes(r, testDeps(), cfg)

	// /health works
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	// CORS (AllowAllOrigins) → header "*"
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("AllowAllOrigins expected '*', got %q", got)
	}

	// /metrics is wired
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || len(w.Body.Bytes()) == 0 {
		t.Fatalf("GET /metrics bad: code=%d len=%d", w.Code, w.Body.Len())
	}

	// NoRoute → 404
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /nope expected 404, got %d", w.Code)
	}

	// NoMethod → 405 (POST /health)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST /health expected 405, got %d", w.Code)
	}
}

func TestRegisterRoutes_CORSWithOrigins_HeaderEcho(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := config.Config{
		APIBasePath:    "/api",
		RateRPS:        50,
		RateBurst:      5,
		IdempotencyTTL: time.Hour,
		CORS:           config.CORSConfig{AllowedOrigins: []string{"http://example.com"}},
		Security:       config.SecurityConfig{EnableHSTS: false, HSTSMaxAge: 0},
		OTEL:           config.OTELConfig{ServiceName: "test-svc"},
	}

	RegisterRoutes(r, testDeps(), cfg)

	// Any request runs through CORS middleware; header should reflect origin.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Fatalf("expected ACAO echo, got %q", got)
	}
}

func TestRegisterRoutes_APIRoutesMounted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := config.Config{
		APIBasePath:    "/api",
		RateRPS:        100,
		RateBurst:      10,
		IdempotencyTTL: time.Hour,
		OTEL:           config.OTELConfig{ServiceName: "svc"},
	}
	deps := testDeps()
	RegisterRoutes(r, deps, cfg)

	// Roster listing answers on the configured base path.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/technicians", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/technicians = %d, body %s", w.Code, w.Body.String())
	}

	// Order creation flows through to the store.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/orders",
		bytes.NewBufferString(`{"customer":"PT. Sinar Abadi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/orders = %d, body %s", w.Code, w.Body.String())
	}
	if got := deps.Orders.List(orders.Filter{}); len(got) != 1 {
		t.Fatalf("store orders = %d, want 1", len(got))
	}
}

func Test_limitBody_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// tiny cap to trigger MaxBytesReader
	r.Use(limitBody(10))
	r.POST("/echo", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too big")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("0123456789AB")) // 12 bytes
	r.ServeHTTP(w, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413 from limitBody, got %d", w.Code)
	}
}

func Test_groupWithPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	// "/" and "" should mount at root
	root1 := groupWithPrefix(r, "/")
	root1.GET("/one", func(c *gin.Context) { c.String(http.StatusOK, "one") })
	root2 := groupWithPrefix(r, "")
	root2.GET("/two", func(c *gin.Context) { c.String(http.StatusOK, "two") })

	// non-root prefix
	api := groupWithPrefix(r, "/api")
	api.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	// Hit all three
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/one", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "one" {
		t.Fatalf("GET /one got %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/two", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "two" {
		t.Fatalf("GET /two got %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("GET /api/ping got %d %q", rec.Code, rec.Body.String())
	}
}

// Smoke test that a request traverses idempotency + ratelimit + otel + security headers pipeline.
func TestPipeline_Smoke(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := config.Config{
		APIBasePath:    "/api",
		RateRPS:        100,
		RateBurst:      10,
		IdempotencyTTL: time.Hour,
		CORS:           config.CORSConfig{},                                            // allow-all branch
		Security:       config.SecurityConfig{EnableHSTS: true, HSTSMaxAge: time.Hour}, // enabled (but only set on https)
		OTEL:           config.OTELConfig{ServiceName: "svc"},
	}
	RegisterRoutes(r, testDeps(), cfg)

	// Any request goes through the middleware stack
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	// simulate https so HSTS could be eligible if middleware checks scheme
	req.URL.Scheme = "https"
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("pipeline GET /health = %d", w.Code)
	}
	// RequestID header should be present (from RequestID middleware)
	if rid := w.Header().Get("X-Request-ID"); rid == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
}

func TestRegisterRoutes_IdempotencyReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := config.Config{
		APIBasePath:    "/api",
		RateRPS:        100,
		RateBurst:      10,
		IdempotencyTTL: time.Minute,
		OTEL:           config.OTELConfig{ServiceName: "svc"},
	}
	deps := testDeps()
	RegisterRoutes(r, deps, cfg)

	// Register a technician so approve has a target.
	p, conflict := deps.Registry.CreatePending(777, "budi", "Budi", time.Now())
	if conflict != registry.ConflictNone {
		t.Fatalf("CreatePending conflict: %v", conflict)
	}

	approve := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/technicians/"+p.ID+"/approve",
			bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "dispatcher-1")
		req.Header.Set(middleware.HeaderIdempotencyKey, "approve-once")
		r.ServeHTTP(w, req)
		return w
	}

	// First approve succeeds; the retry carries the same key and is flagged as
	// a replay (the handler still answers, here with 404 since the pending
	// entry was consumed).
	if w := approve(); w.Code != http.StatusOK {
		t.Fatalf("first approve = %d, body %s", w.Code, w.Body.String())
	}
	w := approve()
	if w.Code != http.StatusNotFound {
		t.Fatalf("replayed approve = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "not_found") {
		t.Fatalf("replay body = %s", w.Body.String())
	}
}
