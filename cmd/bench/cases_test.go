package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	httptransport "ridedeck/internal/http"
)

func TestCases_AgainstInProcessServer(t *testing.T) {
	handler := httptransport.NewServer(httptransport.ServerDeps{GinMode: gin.TestMode}).Routes()
	srv := httptest.NewServer(handler)
	defer srv.Close()

	r := NewRunner(Config{
		BaseURL:     srv.URL,
		Timeout:     10 * time.Second,
		Concurrency: 2,
		Duration:    50 * time.Millisecond,
		Perf:        true,
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for _, res := range r.RunAll(ctx) {
		if res.Status == StatusFail {
			t.Errorf("%s failed: %s", res.Name, res.Note)
		}
	}
}

func TestFieldEquals(t *testing.T) {
	c := fieldEquals("yango_fare", 533.0)
	if note := c(map[string]any{"yango_fare": 533.0}); note != "" {
		t.Errorf("unexpected note %q", note)
	}
	if note := c(map[string]any{"yango_fare": 532.0}); note == "" {
		t.Error("mismatch not reported")
	}
}

func TestContains(t *testing.T) {
	if !contains([]int{http.StatusOK, http.StatusCreated}, http.StatusCreated) {
		t.Error("expected match")
	}
	if contains(nil, http.StatusOK) {
		t.Error("nil list matched")
	}
}
