// README: HTTP-level tests for the deck handlers.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ridedeck/internal/http/handlers"
	"ridedeck/internal/logger"
	"ridedeck/internal/modules/citydata"
	"ridedeck/internal/modules/diagnostic"
	"ridedeck/internal/modules/pricing"
)

type stubDatabase struct {
	names []string
	err   error
}

func (s stubDatabase) IsAvailable() bool { return true }

func (s stubDatabase) ListCollections(context.Context) ([]string, error) {
	return s.names, s.err
}

func (s stubDatabase) Close() error { return nil }

// buildTestRouter wires a minimal Gin engine with the deck handlers.
func buildTestRouter(db diagnostic.Database) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.Nop()
	r := gin.New()

	deck := handlers.NewDeckHandler()
	r.GET("/", deck.Root)
	r.GET("/health", deck.Health)
	r.GET("/api/summary", deck.Summary)
	r.GET("/api/voices", deck.Voices)
	r.GET("/api/timeline", deck.Timeline)

	r.GET("/api/chart-data", handlers.NewChartHandler(citydata.NewService(citydata.NewStore())).List)
	r.POST("/api/simulate", handlers.NewSimulateHandler(log).Simulate)
	r.GET("/api/platform-comparison", handlers.NewComparisonHandler(pricing.NewService(pricing.NewStore()), log).Compare)

	diag := diagnostic.NewService(db, diagnostic.Settings{URLSet: db != nil, NameSet: db != nil})
	r.GET("/test", handlers.NewDiagnosticHandler(diag, log).Test)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

type validationBody struct {
	Error  string `json:"error"`
	Detail []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"detail"`
}

func (b validationBody) hasField(name string) bool {
	for _, d := range b.Detail {
		if d.Field == name {
			return true
		}
	}
	return false
}

func TestRoot(t *testing.T) {
	w := doRequest(buildTestRouter(nil), http.MethodGet, "/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	got := decode[map[string]string](t, w)
	if got["message"] != "Ride-Hailing Deck API is running" {
		t.Errorf("message = %q", got["message"])
	}
}

func TestFixedPayloads(t *testing.T) {
	r := buildTestRouter(nil)

	summary := decode[map[string]map[string]string](t, doRequest(r, http.MethodGet, "/api/summary", ""))
	for _, k := range []string{"labor", "safety", "algorithm", "policy"} {
		if summary[k]["headline"] == "" {
			t.Errorf("summary.%s has no headline", k)
		}
	}
	if _, ok := summary["algorithm"]["stat"]; ok {
		t.Error("summary.algorithm should not carry a stat")
	}

	voices := decode[map[string]string](t, doRequest(r, http.MethodGet, "/api/voices", ""))
	for _, k := range []string{"driver", "female_rider", "platform_rep"} {
		if voices[k] == "" {
			t.Errorf("voices.%s is empty", k)
		}
	}

	timeline := decode[[]struct {
		Year  int    `json:"year"`
		Label string `json:"label"`
	}](t, doRequest(r, http.MethodGet, "/api/timeline", ""))
	if len(timeline) != 6 || timeline[0].Year != 2019 || timeline[5].Year != 2025 {
		t.Errorf("unexpected timeline %+v", timeline)
	}
}

func TestChartData(t *testing.T) {
	r := buildTestRouter(nil)
	cases := []struct {
		query  string
		cities []string
	}{
		{"", []string{"Islamabad", "Lahore", "Karachi", "Islamabad", "Lahore", "Karachi"}},
		{"?city=lahore", []string{"Lahore", "Lahore"}},
		{"?vehicle=bike", []string{"Islamabad", "Lahore", "Karachi"}},
		{"?city=KARACHI&vehicle=car", []string{"Karachi"}},
		{"?vehicle=Car", []string{}},
		{"?city=Quetta", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/api/chart-data"+tc.query, "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			if strings.TrimSpace(w.Body.String()) == "null" {
				t.Fatal("empty result must render as []")
			}
			rows := decode[[]citydata.CityRow](t, w)
			if len(rows) != len(tc.cities) {
				t.Fatalf("got %d rows, want %d", len(rows), len(tc.cities))
			}
			for i, row := range rows {
				if row.City != tc.cities[i] {
					t.Errorf("row %d city = %s, want %s", i, row.City, tc.cities[i])
				}
			}
		})
	}
}

const referenceDay = `{"hours_online":8,"fuel_cost_per_liter":150,"km_driven":100,"base_fare_per_km":30,"algorithm_bonus":0,"algorithm_penalty":0}`

func TestSimulate_ReferenceDay(t *testing.T) {
	w := doRequest(buildTestRouter(nil), http.MethodPost, "/api/simulate", referenceDay)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	got := decode[map[string]float64](t, w)
	want := map[string]float64{
		"gross_income": 3000,
		"fuel_cost":    833.33,
		"maintenance":  240,
		"platform_fee": 360,
		"net_takehome": 1566.67,
		"stress_index": 50,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}
}

func TestSimulate_LongShiftStress(t *testing.T) {
	body := `{"hours_online":14,"fuel_cost_per_liter":150,"km_driven":100,"base_fare_per_km":30,"algorithm_penalty":0.2}`
	w := doRequest(buildTestRouter(nil), http.MethodPost, "/api/simulate", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := decode[map[string]float64](t, w)["stress_index"]; got != 76 {
		t.Errorf("stress_index = %v, want 76", got)
	}
}

func TestSimulate_ZeroIsNotMissing(t *testing.T) {
	body := `{"hours_online":0,"fuel_cost_per_liter":150,"km_driven":0,"base_fare_per_km":30}`
	w := doRequest(buildTestRouter(nil), http.MethodPost, "/api/simulate", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSimulate_IntegralFloatsAccepted(t *testing.T) {
	r := buildTestRouter(nil)
	for _, body := range []string{
		`{"hours_online":8.0,"fuel_cost_per_liter":150,"km_driven":100.0,"base_fare_per_km":30}`,
		`{"hours_online":8,"fuel_cost_per_liter":150,"km_driven":1e2,"base_fare_per_km":30}`,
	} {
		w := doRequest(r, http.MethodPost, "/api/simulate", body)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", body, w.Code, w.Body.String())
		}
		got := decode[map[string]float64](t, w)
		if got["gross_income"] != 3000 || got["stress_index"] != 50 {
			t.Errorf("%s: unexpected result %v", body, got)
		}
	}
}

func TestSimulate_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"missing hours", `{"fuel_cost_per_liter":150,"km_driven":100,"base_fare_per_km":30}`, "hours_online"},
		{"null fare", `{"hours_online":8,"fuel_cost_per_liter":150,"km_driven":100,"base_fare_per_km":null}`, "base_fare_per_km"},
		{"fractional hours", `{"hours_online":8.5,"fuel_cost_per_liter":150,"km_driven":100,"base_fare_per_km":30}`, "hours_online"},
		{"string km", `{"hours_online":8,"fuel_cost_per_liter":150,"km_driven":"lots","base_fare_per_km":30}`, "km_driven"},
		{"fractional km", `{"hours_online":8,"fuel_cost_per_liter":150,"km_driven":99.9,"base_fare_per_km":30}`, "km_driven"},
		{"hours beyond int range", `{"hours_online":1e30,"fuel_cost_per_liter":150,"km_driven":100,"base_fare_per_km":30}`, "hours_online"},
		{"null penalty", `{"hours_online":8,"fuel_cost_per_liter":150,"km_driven":100,"base_fare_per_km":30,"algorithm_penalty":null}`, "algorithm_penalty"},
		{"string bonus", `{"hours_online":8,"fuel_cost_per_liter":150,"km_driven":100,"base_fare_per_km":30,"algorithm_bonus":"high"}`, "algorithm_bonus"},
		{"malformed", `{"hours_online":8,`, "body"},
		{"empty", ``, "body"},
	}
	r := buildTestRouter(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(r, http.MethodPost, "/api/simulate", tc.body)
			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
			}
			got := decode[validationBody](t, w)
			if got.Error != "validation failed" || !got.hasField(tc.field) {
				t.Errorf("expected detail for %s, got %+v", tc.field, got)
			}
		})
	}
}

func TestSimulate_MissingFieldsAllReported(t *testing.T) {
	w := doRequest(buildTestRouter(nil), http.MethodPost, "/api/simulate", `{}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	got := decode[validationBody](t, w)
	for _, f := range []string{"hours_online", "fuel_cost_per_liter", "km_driven", "base_fare_per_km"} {
		if !got.hasField(f) {
			t.Errorf("missing detail for %s in %+v", f, got.Detail)
		}
	}
}

func TestPlatformComparison(t *testing.T) {
	cases := []struct {
		query       string
		scenario    string
		yango       float64
		acceptance  float64
		beneficiary string
	}{
		{"?scenario=peak&proposed_fare=300", "peak", 533, 0.75, "passenger"},
		{"", "short", 200, 0.59, "driver"},
		{"?proposed_fare=200", "short", 200, 0.91, "balanced"},
		{"?scenario=peak&proposed_fare=3e2", "peak", 533, 0.75, "passenger"},
		{"?scenario=long&proposed_fare=%2B50", "long", 753, 0.09, "passenger"},
	}
	r := buildTestRouter(nil)
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/api/platform-comparison"+tc.query, "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			got := decode[map[string]any](t, w)
			if got["scenario"] != tc.scenario || got["yango_fare"] != tc.yango ||
				got["acceptance_prob"] != tc.acceptance || got["beneficiary"] != tc.beneficiary {
				t.Errorf("unexpected result %v", got)
			}
			if _, ok := got["fair_low"]; ok {
				t.Error("fair range must not be rendered")
			}
		})
	}
}

func TestPlatformComparison_Invalid(t *testing.T) {
	cases := []struct {
		query string
		field string
	}{
		{"?proposed_fare=49.99", "proposed_fare"},
		{"?proposed_fare=3000.01", "proposed_fare"},
		{"?proposed_fare=abc", "proposed_fare"},
		{"?proposed_fare=NaN", "proposed_fare"},
		{"?proposed_fare=0x1.2cp8", "proposed_fare"},
		{"?proposed_fare=1_000", "proposed_fare"},
		{"?proposed_fare=Inf", "proposed_fare"},
		{"?proposed_fare=", "proposed_fare"},
		{"?scenario=rush", "scenario"},
		{"?scenario=", "scenario"},
		{"?scenario=PEAK", "scenario"},
	}
	r := buildTestRouter(nil)
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/api/platform-comparison"+tc.query, "")
			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
			}
			if got := decode[validationBody](t, w); !got.hasField(tc.field) {
				t.Errorf("expected detail for %s, got %+v", tc.field, got)
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	r := buildTestRouter(nil)
	first := doRequest(r, http.MethodPost, "/api/simulate", referenceDay).Body.String()
	second := doRequest(r, http.MethodPost, "/api/simulate", referenceDay).Body.String()
	if first != second {
		t.Errorf("simulate not idempotent: %s vs %s", first, second)
	}

	q := "/api/platform-comparison?scenario=long&proposed_fare=900"
	a := doRequest(r, http.MethodGet, q, "").Body.Bytes()
	b := doRequest(r, http.MethodGet, q, "").Body.Bytes()
	if !bytes.Equal(a, b) {
		t.Errorf("comparison not idempotent: %s vs %s", a, b)
	}
}

func TestDiagnostic_NoDatabase(t *testing.T) {
	w := doRequest(buildTestRouter(nil), http.MethodGet, "/test", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	got := decode[diagnostic.Report](t, w)
	if got.Backend != diagnostic.BackendRunning || got.Database != diagnostic.DatabaseNotAvailable {
		t.Errorf("unexpected report %+v", got)
	}
	if got.DatabaseURL != diagnostic.SettingNotSet || got.ConnectionStatus != diagnostic.ConnectionNotConnected {
		t.Errorf("unexpected report %+v", got)
	}
	if !strings.Contains(w.Body.String(), `"collections":[]`) {
		t.Errorf("collections should render as []: %s", w.Body.String())
	}
}

func TestDiagnostic_Connected(t *testing.T) {
	w := doRequest(buildTestRouter(stubDatabase{names: []string{"cities", "voices"}}), http.MethodGet, "/test", "")
	got := decode[diagnostic.Report](t, w)
	if got.Database != diagnostic.DatabaseWorking || got.ConnectionStatus != diagnostic.ConnectionConnected {
		t.Errorf("unexpected report %+v", got)
	}
	if len(got.Collections) != 2 || got.Collections[0] != "cities" {
		t.Errorf("collections = %v", got.Collections)
	}
}

func TestDiagnostic_ErrorStillOK(t *testing.T) {
	w := doRequest(buildTestRouter(stubDatabase{err: errors.New("auth failed")}), http.MethodGet, "/test", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	got := decode[diagnostic.Report](t, w)
	if got.Database != diagnostic.DatabaseErrorPrefix+"auth failed" {
		t.Errorf("database = %q", got.Database)
	}
}
