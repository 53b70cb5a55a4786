package cache

import (
	"testing"
	"time"
)

func TestKey_StableAndPrefixed(t *testing.T) {
	k1 := Key("https://fapi.binance.com/fapi/v1/ticker/24hr?symbol=BTCUSDT")
	k2 := Key("https://fapi.binance.com/fapi/v1/ticker/24hr?symbol=BTCUSDT")
	k3 := Key("https://fapi.binance.com/fapi/v1/ticker/24hr?symbol=ETHUSDT")

	if k1 != k2 {
		t.Error("same URL must derive the same key")
	}
	if k1 == k3 {
		t.Error("different query parameters must derive different keys")
	}
	if len(k1) <= len("macrograph:v1:") || k1[:len("macrograph:v1:")] != "macrograph:v1:" {
		t.Errorf("unexpected key format %q", k1)
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("expected miss on empty cache")
	}
	if err := c.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("expected hit with v, got %q found=%v", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("expected miss after delete")
	}
}

func TestDiskCache_RoundTripAndExpiry(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Minute)

	if err := c.Set("fresh", []byte("data"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, found := c.Get("fresh")
	if !found || string(val) != "data" {
		t.Errorf("expected hit, got %q found=%v", val, found)
	}

	if err := c.Set("stale", []byte("old"), -time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, found := c.Get("stale"); found {
		t.Error("expected expired entry to miss")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Minute)

	// Seed the disk layer only.
	if err := c.disk.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("seed disk: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Fatalf("expected disk hit, got found=%v", found)
	}
	if _, found := c.memory.Get("k"); !found {
		t.Error("expected disk hit promoted into memory")
	}
}
