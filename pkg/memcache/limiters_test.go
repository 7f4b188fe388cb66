package mem

import (
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestLimitersReuseLiveEntry(t *testing.T) {
	store := NewLimiters(time.Minute)
	created := 0
	factory := func() *rate.Limiter {
		created++
		return rate.NewLimiter(rate.Every(time.Minute), 1)
	}

	first := store.Get("user-1", factory)
	second := store.Get("user-1", factory)
	if first != second {
		t.Fatalf("expected the same limiter for a live key")
	}
	if created != 1 {
		t.Fatalf("expected 1 limiter, created %d", created)
	}
	store.Get("user-2", factory)
	if store.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", store.Len())
	}
}

func TestLimitersExpireAndSweep(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewLimiters(time.Minute)
	store.now = func() time.Time { return now }

	factory := func() *rate.Limiter { return rate.NewLimiter(1, 1) }
	first := store.Get("user-1", factory)

	now = now.Add(2 * time.Minute)
	if removed := store.Sweep(); removed != 1 {
		t.Fatalf("expected 1 expired entry, removed %d", removed)
	}
	if store.Get("user-1", factory) == first {
		t.Fatalf("expected a fresh limiter after expiry")
	}
}
