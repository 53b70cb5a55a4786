package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 3)

	url := "https://api.example.com/v1/thing"
	for i := 0; i < 3; i++ {
		if !l.Allow(url) {
			t.Fatalf("request %d should fit in the burst", i+1)
		}
	}
	if l.Allow(url) {
		t.Error("fourth immediate request should exceed the burst")
	}
}

func TestLimiter_HostsIndependent(t *testing.T) {
	l := NewLimiter(1, 1)

	if !l.Allow("https://a.example.com/x") {
		t.Fatal("first request to host a should pass")
	}
	if !l.Allow("https://b.example.com/x") {
		t.Error("host b must have its own budget")
	}
	if l.Allow("https://a.example.com/y") {
		t.Error("host a budget should be spent regardless of path")
	}
}

func TestLimiter_SetHostRate(t *testing.T) {
	l := NewLimiter(1, 1)
	l.SetHostRate("slow.example.com", 0.001, 1)

	if !l.Allow("https://slow.example.com/a") {
		t.Fatal("burst of 1 should pass once")
	}
	if l.Allow("https://slow.example.com/b") {
		t.Error("override rate should block the second request")
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)
	url := "https://api.example.com/v1/thing"

	// Spend the burst.
	if err := l.Wait(context.Background(), url); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx, url); err == nil {
		t.Error("expected wait to fail once the context deadline passed")
	}
}

func TestLimiter_InvalidURL(t *testing.T) {
	l := NewLimiter(1, 1)
	if l.Allow("://bad") {
		t.Error("invalid URLs must not pass the limiter")
	}
}
