package connector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/narrativelab/macrograph/internal/model"
)

func testClient(cacheEnabled bool) *Client {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = cacheEnabled
	cfg.RateLimit.RequestsPerSecond = 1000
	cfg.RateLimit.Burst = 1000
	return NewClient(cfg)
}

func TestBinance_Ticker24h(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ticker/24hr" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("symbol"); got != "BTCUSDT" {
			t.Errorf("expected uppercased symbol, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"symbol":"BTCUSDT","lastPrice":"97123.40"}`))
	}))
	defer srv.Close()

	b := NewBinance(testClient(false), srv.URL)
	payload, err := b.Ticker24h(context.Background(), "btcusdt")
	if err != nil {
		t.Fatalf("ticker: %v", err)
	}
	data, ok := payload.(map[string]any)
	if !ok || data["lastPrice"] != "97123.40" {
		t.Errorf("unexpected payload %v", payload)
	}
}

func TestBinance_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":-1121,"msg":"Invalid symbol."}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	b := NewBinance(testClient(false), srv.URL)
	if _, err := b.Ticker24h(context.Background(), "NOPE"); err == nil {
		t.Error("expected error on non-2xx status")
	}
}

func TestEtherscan_QueryAssembly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("module") != "stats" || q.Get("action") != "dailynewaddress" {
			t.Errorf("unexpected module/action: %v", q)
		}
		if q.Get("chainid") != "1" || q.Get("sort") != "desc" {
			t.Errorf("expected defaults applied, got %v", q)
		}
		if q.Get("apikey") != "test-key" {
			t.Errorf("expected configured api key, got %q", q.Get("apikey"))
		}
		if q.Get("startdate") != "" {
			t.Error("empty start date must not be sent")
		}
		w.Write([]byte(`{"status":"1","result":[{"newAddressCount":12345}]}`))
	}))
	defer srv.Close()

	e := NewEtherscan(testClient(false), srv.URL, "test-key")
	payload, err := e.DailyNewAddresses(context.Background(), DailyNewAddressOptions{})
	if err != nil {
		t.Fatalf("daily new addresses: %v", err)
	}
	if data, ok := payload.(map[string]any); !ok || data["status"] != "1" {
		t.Errorf("unexpected payload %v", payload)
	}
}

func TestEtherscan_DateRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("startdate") != "2026-01-01" || q.Get("enddate") != "2026-02-01" {
			t.Errorf("date range not forwarded: %v", q)
		}
		if q.Get("sort") != "asc" {
			t.Errorf("sort not forwarded: %v", q)
		}
		w.Write([]byte(`{"status":"1","result":[]}`))
	}))
	defer srv.Close()

	e := NewEtherscan(testClient(false), srv.URL, "k")
	_, err := e.DailyNewAddresses(context.Background(), DailyNewAddressOptions{
		StartDate: "2026-01-01",
		EndDate:   "2026-02-01",
		Sort:      "asc",
	})
	if err != nil {
		t.Fatalf("daily new addresses: %v", err)
	}
}

func TestGitHub_WeeklyCommitActivity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/golang/go/stats/commit_activity" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/vnd.github+json" {
			t.Errorf("unexpected accept header %q", got)
		}
		w.Write([]byte(`[{"week":1700000000,"total":42,"days":[1,2,3,4,5,6,21]}]`))
	}))
	defer srv.Close()

	g := NewGitHub(testClient(false), srv.URL)
	payload, err := g.WeeklyCommitActivity(context.Background(), "golang", "go")
	if err != nil {
		t.Fatalf("commit activity: %v", err)
	}
	weeks, ok := payload.([]any)
	if !ok || len(weeks) != 1 {
		t.Errorf("unexpected payload %v", payload)
	}
}

func TestGitHub_StillGenerating(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	g := NewGitHub(testClient(false), srv.URL)
	payload, err := g.WeeklyCommitActivity(context.Background(), "o", "r")
	if err != nil {
		t.Fatalf("202 must not be an error: %v", err)
	}
	data, ok := payload.(map[string]any)
	if !ok || data["message"] == "" {
		t.Errorf("expected retry message, got %v", payload)
	}
}

func TestClient_CacheShortCircuitsSecondRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"symbol":"ETHUSDT"}`))
	}))
	defer srv.Close()

	b := NewBinance(testClient(true), srv.URL)
	for i := 0; i < 3; i++ {
		if _, err := b.Ticker24h(context.Background(), "ETHUSDT"); err != nil {
			t.Fatalf("ticker %d: %v", i, err)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("expected one upstream hit with caching on, got %d", got)
	}
}

func TestClient_ErrorResponsesNotCached(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	b := NewBinance(testClient(true), srv.URL)
	for i := 0; i < 2; i++ {
		if _, err := b.Ticker24h(context.Background(), "X"); err == nil {
			t.Fatal("expected error")
		}
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("error responses must not be cached, got %d hits", got)
	}
}
