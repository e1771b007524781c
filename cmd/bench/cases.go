// README: Smoke cases for the deck API; includes fixture checks, validation, idempotence and throughput.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"ridedeck/internal/modules/diagnostic"
)

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
	StatusSkip = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name  string
	Focus string
	Run   func(ctx context.Context, r *Runner) Result
}

// check inspects a decoded JSON body and returns a failure note, or "".
type check func(body map[string]any) string

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}
	return results
}

var referenceDay = map[string]any{
	"hours_online":        8,
	"fuel_cost_per_liter": 150,
	"km_driven":           100,
	"base_fare_per_km":    30,
	"algorithm_bonus":     0,
	"algorithm_penalty":   0,
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		{
			Name:  "Env: backend reachable (optional)",
			Focus: "DATABASE_URL backend answers a listing",
			Run: func(ctx context.Context, r *Runner) Result {
				if r.cfg.DatabaseURL == "" {
					return Result{Status: StatusSkip, Note: "database-url not set"}
				}
				ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
				defer cancel()
				db, err := diagnostic.Open(ctx, r.cfg.DatabaseURL, r.cfg.DatabaseName)
				if err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				defer db.Close()
				start := time.Now()
				names, err := db.ListCollections(ctx)
				if err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				return Result{Status: StatusPass, Latency: time.Since(start), Note: fmt.Sprintf("collections=%d", len(names))}
			},
		},

		jsonCase("API: root message", http.MethodGet, base+"/", nil, http.StatusOK,
			fieldEquals("message", "Ride-Hailing Deck API is running")),
		jsonCase("API: diagnostic always 200", http.MethodGet, base+"/test", nil, http.StatusOK,
			fieldEquals("backend", diagnostic.BackendRunning)),
		httpCaseMethod("API: chart data", http.MethodGet, base+"/api/chart-data?city=lahore", nil, []int{http.StatusOK}),

		// Earnings simulator
		jsonCase("Simulate: reference day", http.MethodPost, base+"/api/simulate", referenceDay, http.StatusOK,
			fieldEquals("gross_income", 3000.0),
			fieldEquals("fuel_cost", 833.33),
			fieldEquals("net_takehome", 1566.67),
			fieldEquals("stress_index", 50.0)),
		jsonCase("Simulate: long shift stress", http.MethodPost, base+"/api/simulate", withFields(referenceDay, map[string]any{
			"hours_online":      14,
			"algorithm_penalty": 0.2,
		}), http.StatusOK, fieldEquals("stress_index", 76.0)),
		httpCase("Simulate: missing fields -> 422", base+"/api/simulate", map[string]any{}, []int{http.StatusUnprocessableEntity}),

		// Platform comparison
		jsonCase("Compare: peak at 300", http.MethodGet, base+"/api/platform-comparison?scenario=peak&proposed_fare=300", nil, http.StatusOK,
			fieldEquals("yango_fare", 533.0),
			fieldEquals("acceptance_prob", 0.75),
			fieldEquals("beneficiary", "passenger")),
		httpCaseMethod("Compare: fare below range -> 422", http.MethodGet, base+"/api/platform-comparison?proposed_fare=49.99", nil, []int{http.StatusUnprocessableEntity}),
		httpCaseMethod("Compare: fare above range -> 422", http.MethodGet, base+"/api/platform-comparison?proposed_fare=3000.01", nil, []int{http.StatusUnprocessableEntity}),
		httpCaseMethod("Compare: unknown scenario -> 422", http.MethodGet, base+"/api/platform-comparison?scenario=rush", nil, []int{http.StatusUnprocessableEntity}),

		{
			Name:  "Idempotence: simulate",
			Focus: "identical inputs give identical bodies",
			Run: func(ctx context.Context, r *Runner) Result {
				return idempotent(ctx, r, http.MethodPost, base+"/api/simulate", referenceDay)
			},
		},
		{
			Name:  "Idempotence: comparison",
			Focus: "identical inputs give identical bodies",
			Run: func(ctx context.Context, r *Runner) Result {
				return idempotent(ctx, r, http.MethodGet, base+"/api/platform-comparison?scenario=long&proposed_fare=900", nil)
			},
		},

		// Perf
		{
			Name:  "Perf: simulate throughput",
			Focus: "sustained POST /api/simulate",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.Perf {
					return Result{Status: StatusSkip, Note: "perf=false"}
				}
				return perfLoad(ctx, r, http.MethodPost, base+"/api/simulate", referenceDay)
			},
		},
		{
			Name:  "Perf: comparison throughput",
			Focus: "sustained GET /api/platform-comparison",
			Run: func(ctx context.Context, r *Runner) Result {
				if !r.cfg.Perf {
					return Result{Status: StatusSkip, Note: "perf=false"}
				}
				return perfLoad(ctx, r, http.MethodGet, base+"/api/platform-comparison?scenario=peak&proposed_fare=450", nil)
			},
		},
	}
}

func httpCase(name, url string, body any, okStatuses []int) TestCase {
	return httpCaseMethod(name, http.MethodPost, url, body, okStatuses)
}

func httpCaseMethod(name, method, url string, body any, okStatuses []int) TestCase {
	return TestCase{
		Name:  name,
		Focus: "HTTP API",
		Run: func(ctx context.Context, r *Runner) Result {
			status, _, latency, err := r.do(ctx, method, url, body)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			if contains(okStatuses, status) {
				return Result{Status: StatusPass, Latency: latency, Note: fmt.Sprintf("status=%d", status)}
			}
			return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d", status)}
		},
	}
}

func jsonCase(name, method, url string, body any, wantStatus int, checks ...check) TestCase {
	return TestCase{
		Name:  name,
		Focus: "HTTP API payload",
		Run: func(ctx context.Context, r *Runner) Result {
			status, raw, latency, err := r.do(ctx, method, url, body)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			if status != wantStatus {
				return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d", status)}
			}
			var decoded map[string]any
			if err := json.Unmarshal(raw, &decoded); err != nil {
				return Result{Status: StatusFail, Latency: latency, Note: "decode: " + err.Error()}
			}
			for _, c := range checks {
				if note := c(decoded); note != "" {
					return Result{Status: StatusFail, Latency: latency, Note: note}
				}
			}
			return Result{Status: StatusPass, Latency: latency}
		},
	}
}

func fieldEquals(key string, want any) check {
	return func(body map[string]any) string {
		if got := body[key]; got != want {
			return fmt.Sprintf("%s=%v want %v", key, got, want)
		}
		return ""
	}
}

func withFields(base, overrides map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

func (r *Runner) do(ctx context.Context, method, url string, body any) (int, []byte, time.Duration, error) {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	start := time.Now()
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	return resp.StatusCode, raw, time.Since(start), err
}

func idempotent(ctx context.Context, r *Runner, method, url string, body any) Result {
	_, first, latency, err := r.do(ctx, method, url, body)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	for i := 0; i < 5; i++ {
		_, again, _, err := r.do(ctx, method, url, body)
		if err != nil {
			return Result{Status: StatusFail, Note: err.Error()}
		}
		if !bytes.Equal(first, again) {
			return Result{Status: StatusFail, Note: fmt.Sprintf("run %d differs: %s vs %s", i+1, first, again)}
		}
	}
	return Result{Status: StatusPass, Latency: latency}
}

func perfLoad(ctx context.Context, r *Runner, method, url string, payload any) Result {
	var b []byte
	if payload != nil {
		b, _ = json.Marshal(payload)
	}
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount, non2xx atomic.Int64
	wg := sync.WaitGroup{}

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				var reader io.Reader
				if b != nil {
					reader = strings.NewReader(string(b))
				}
				req, _ := http.NewRequestWithContext(ctx, method, url, reader)
				if b != nil {
					req.Header.Set("Content-Type", "application/json")
				}
				resp, err := r.httpc.Do(req)
				if err != nil {
					errCount.Add(1)
					continue
				}
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				if resp.StatusCode < 200 || resp.StatusCode >= 300 {
					non2xx.Add(1)
				}
				count.Add(1)
			}
		}()
	}
	wg.Wait()

	if count.Load() == 0 {
		return Result{Status: StatusFail, Note: "no requests completed"}
	}
	rps := float64(count.Load()) / r.cfg.Duration.Seconds()
	note := fmt.Sprintf("rps=%.1f errors=%d non2xx=%d", rps, errCount.Load(), non2xx.Load())
	if non2xx.Load() > 0 {
		return Result{Status: StatusFail, Note: note}
	}
	return Result{Status: StatusPass, Note: note}
}

func contains(list []int, v int) bool {
	for _, i := range list {
		if i == v {
			return true
		}
	}
	return false
}
