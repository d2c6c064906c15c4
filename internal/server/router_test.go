package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"poolbalance/internal/calculator"
	"poolbalance/internal/observability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	observability.Logger = zap.NewNop()
	if err := calculator.InitMetrics(); err != nil {
		t.Fatalf("initializing calculator metrics: %v", err)
	}

	return NewRouter(Dependencies{
		Calculator:  calculator.NewHandler(nil, "es"),
		CORSOrigins: []string{"https://pool.example"},
	})
}

func TestNewRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	if body := w.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}
}

func TestNewRouterCalculateSetsHeaderAndOmitsRequestIDInBody(t *testing.T) {
	router := newTestRouter(t)

	body := []byte(`{"calculation_type":"ph","current_value":7.0,"target_value":7.8,"pool_volume_liters":40000,"product_type":"carbonato_sodio"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", bytes.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	requestID := w.Result().Header.Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID header to be set")
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Fatalf("expected valid UUID in X-Request-ID, got %q: %v", requestID, err)
	}

	var payload map[string]any
	if err := json.NewDecoder(w.Result().Body).Decode(&payload); err != nil {
		t.Fatalf("decoding JSON response: %v", err)
	}

	if _, ok := payload["request_id"]; ok {
		t.Fatal("did not expect request_id field in success JSON body")
	}

	if got, ok := payload["unit"].(string); !ok || got != "g" {
		t.Fatalf("expected unit g, got %#v", payload["unit"])
	}
	if notes, _ := payload["notes"].(string); !strings.Contains(notes, "subir") {
		t.Fatalf("expected raise verb in notes, got %q", notes)
	}
}

func TestNewRouterUnknownCalculationType(t *testing.T) {
	router := newTestRouter(t)

	body := []byte(`{"calculation_type":"phosphates","current_value":1,"target_value":0,"pool_volume_liters":1000,"product_type":"x"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/calculate", bytes.NewReader(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestNewRouterAPIRootAndCORS(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	req.Header.Set("Origin", "https://pool.example")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if got := w.Result().Header.Get("Access-Control-Allow-Origin"); got != "https://pool.example" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
}

func TestNewRouterWithoutPoolsHandler(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/pools", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestCORSOptionsWildcardDisablesCredentials(t *testing.T) {
	opts := corsOptions([]string{"*"})
	if opts.AllowCredentials {
		t.Fatal("expected credentials to be disabled for wildcard origin")
	}

	opts = corsOptions(nil)
	if len(opts.AllowedOrigins) != 1 || opts.AllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard default, got %v", opts.AllowedOrigins)
	}
}
