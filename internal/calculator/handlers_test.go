package calculator

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"poolbalance/internal/dosage"
	"poolbalance/internal/observability"
	"poolbalance/internal/store"
	"poolbalance/internal/store/model"
	"poolbalance/internal/testutil"
)

type fakeProfiles map[uuid.UUID]model.Pool

func (f fakeProfiles) Get(_ context.Context, id uuid.UUID) (*model.Pool, error) {
	p, ok := f[id]
	if !ok {
		return nil, store.ErrRecordNotFound
	}
	return &p, nil
}

type failingProfiles struct{}

func (failingProfiles) Get(context.Context, uuid.UUID) (*model.Pool, error) {
	return nil, errors.New("connection reset")
}

func newTestRouter(t *testing.T, profiles ProfileGetter) http.Handler {
	t.Helper()

	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing calculator metrics: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(profiles, dosage.LanguageSpanish))
	return r
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return testutil.ExecuteRequest(testutil.NewJSONRequest(http.MethodPost, path, body), h)
}

func TestCalculateReturnsResult(t *testing.T) {
	observability.Logger = zap.NewNop()
	h := newTestRouter(t, nil)

	w := post(t, h, "/calculate", `{
		"calculation_type": "disinfectant",
		"current_value": 0,
		"target_value": 2,
		"pool_volume_liters": 10000,
		"product_type": "hipoclorito_sodio"
	}`)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var res dosage.Result
	testutil.DecodeJSONBody(t, w.Body, &res)

	if res.Amount != 200 || res.Unit != dosage.Milliliters {
		t.Fatalf("expected 200 ml, got %v %s", res.Amount, res.Unit)
	}
	if got := res.CalculationDetails["increase"]; got != 2.0 {
		t.Fatalf("expected increase 2, got %#v", got)
	}
}

func TestCalculateAcceptsLegacyKindAndLanguage(t *testing.T) {
	h := newTestRouter(t, nil)

	w := post(t, h, "/calculate", `{
		"calculation_type": "cyanuric_acid",
		"current_value": 100,
		"target_value": 50,
		"pool_volume_liters": 20000,
		"product_type": "dilucion_agua",
		"language": "EN"
	}`)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var res dosage.Result
	testutil.DecodeJSONBody(t, w.Body, &res)

	if res.Amount != 10000 || res.Unit != dosage.Liters {
		t.Fatalf("expected 10000 L, got %v %s", res.Amount, res.Unit)
	}
	if !strings.HasPrefix(res.Notes, "Replace 10000.0 L") {
		t.Fatalf("expected english notes, got %q", res.Notes)
	}
}

func TestCalculateRejections(t *testing.T) {
	h := newTestRouter(t, nil)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "unknown kind",
			body:    `{"calculation_type":"salt","current_value":1,"target_value":2,"pool_volume_liters":1000,"product_type":"x"}`,
			wantMsg: "Unknown calculation type",
		},
		{
			name:    "missing target",
			body:    `{"calculation_type":"ph","current_value":7.0,"pool_volume_liters":1000,"product_type":"carbonato_sodio"}`,
			wantMsg: "target_value is required",
		},
		{
			name:    "non numeric volume",
			body:    `{"calculation_type":"ph","current_value":7.0,"target_value":7.4,"pool_volume_liters":"big","product_type":"carbonato_sodio"}`,
			wantMsg: "invalid request body",
		},
		{
			name:    "zero volume",
			body:    `{"calculation_type":"alkalinity","current_value":80,"target_value":100,"pool_volume_liters":0,"product_type":"bicarbonato_sodio"}`,
			wantMsg: "pool_volume_liters must be > 0",
		},
		{
			name:    "dilution from zero",
			body:    `{"calculation_type":"stabilizer","current_value":0,"target_value":0,"pool_volume_liters":20000,"product_type":"dilucion_agua"}`,
			wantMsg: "current_value must be greater than 0 for dilution",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := post(t, h, "/calculate", tc.body)

			testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			testutil.DecodeJSONBody(t, w.Body, &body)
			if !strings.Contains(body["error"], tc.wantMsg) {
				t.Fatalf("expected error containing %q, got %q", tc.wantMsg, body["error"])
			}
		})
	}
}

func TestCalculateUnknownKindIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	oldLogger := observability.Logger
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = oldLogger })

	h := newTestRouter(t, nil)
	w := post(t, h, "/calculate", `{"calculation_type":"salt","current_value":1,"target_value":2,"pool_volume_liters":1000,"product_type":"x"}`)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["operation"]; got != "unknown" {
		t.Fatalf("expected operation %q, got %#v", "unknown", got)
	}
}

func TestCalculateFillsVolumeFromProfile(t *testing.T) {
	id := uuid.New()
	h := newTestRouter(t, fakeProfiles{id: {ID: id, Name: "backyard", VolumeLiters: 100000}})

	w := post(t, h, "/calculate", `{
		"calculation_type": "stabilizer",
		"current_value": 30,
		"target_value": 50,
		"product_type": "acido_cianurico",
		"pool_id": "`+id.String()+`"
	}`)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var res dosage.Result
	testutil.DecodeJSONBody(t, w.Body, &res)
	if res.Amount != 2.6 || res.Unit != dosage.Kilograms {
		t.Fatalf("expected 2.6 kg, got %v %s", res.Amount, res.Unit)
	}
}

func TestCalculateProfileLookupFailures(t *testing.T) {
	body := func(poolID string) string {
		return `{"calculation_type":"stabilizer","current_value":30,"target_value":50,"product_type":"acido_cianurico","pool_id":"` + poolID + `"}`
	}

	t.Run("unknown pool", func(t *testing.T) {
		w := post(t, newTestRouter(t, fakeProfiles{}), "/calculate", body(uuid.NewString()))
		testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed pool id", func(t *testing.T) {
		w := post(t, newTestRouter(t, fakeProfiles{}), "/calculate", body("not-a-uuid"))
		testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		w := post(t, newTestRouter(t, failingProfiles{}), "/calculate", body(uuid.NewString()))
		testutil.CheckResponseCode(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("explicit volume wins", func(t *testing.T) {
		w := post(t, newTestRouter(t, failingProfiles{}), "/calculate",
			`{"calculation_type":"stabilizer","current_value":30,"target_value":50,"pool_volume_liters":1000,"product_type":"acido_cianurico","pool_id":"`+uuid.NewString()+`"}`)
		testutil.CheckResponseCode(t, http.StatusOK, w.Code)
	})
}

func TestBatch(t *testing.T) {
	h := newTestRouter(t, nil)

	w := post(t, h, "/calculate/batch", `{"calculations": [
		{"calculation_type":"ph","current_value":7.2,"target_value":7.2,"pool_volume_liters":40000,"product_type":"carbonato_sodio"},
		{"calculation_type":"alkalinity","current_value":90,"target_value":100,"pool_volume_liters":37854.1,"product_type":"aumentador_alcalinidad"}
	]}`)

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp BatchResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].Amount != 0 || resp.Results[0].Notes == "" {
		t.Fatalf("expected explained zero result, got %+v", resp.Results[0])
	}
	if resp.Results[1].Unit != dosage.Grams || resp.Results[1].Amount <= 0 {
		t.Fatalf("expected grams dose, got %+v", resp.Results[1])
	}
}

func TestBatchRejections(t *testing.T) {
	h := newTestRouter(t, nil)

	t.Run("empty", func(t *testing.T) {
		w := post(t, h, "/calculate/batch", `{"calculations": []}`)
		testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
	})

	t.Run("failing entry names its index", func(t *testing.T) {
		w := post(t, h, "/calculate/batch", `{"calculations": [
			{"calculation_type":"ph","current_value":7.2,"target_value":7.6,"pool_volume_liters":40000,"product_type":"carbonato_sodio"},
			{"calculation_type":"hardness","current_value":1,"target_value":2,"pool_volume_liters":40000,"product_type":"x"}
		]}`)
		testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		testutil.DecodeJSONBody(t, w.Body, &body)
		if body["error"] != "calculation 1: Unknown calculation type" {
			t.Fatalf("unexpected error %q", body["error"])
		}
	})
}
