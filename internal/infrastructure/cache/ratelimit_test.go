package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeCounter struct {
	counts  map[string]int64
	expires map[string]time.Duration
	err     error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (f *fakeCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "incr", key)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.counts[key]++
	cmd.SetVal(f.counts[key])
	return cmd
}

func (f *fakeCounter) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx, "expire", key)
	f.expires[key] = expiration
	cmd.SetVal(true)
	return cmd
}

func TestRateLimiter_BlocksAfterMax(t *testing.T) {
	store := newFakeCounter()
	l := NewRateLimiter(store, 3, 15*time.Minute)
	l.now = func() time.Time { return time.Date(2025, 1, 1, 10, 5, 0, 0, time.UTC) }

	for i := 0; i < 3; i++ {
		d, err := l.Allow(context.Background(), "10.0.0.1")
		if err != nil || !d.Allowed {
			t.Fatalf("request %d: expected allowed, got %+v %v", i+1, d, err)
		}
	}
	d, _ := l.Allow(context.Background(), "10.0.0.1")
	if d.Allowed || d.Remaining != 0 {
		t.Fatalf("expected fourth request to be blocked, got %+v", d)
	}
	if d.ResetIn != 10*time.Minute {
		t.Fatalf("expected reset in 10m, got %s", d.ResetIn)
	}

	other, _ := l.Allow(context.Background(), "10.0.0.2")
	if !other.Allowed {
		t.Fatalf("expected other client to be allowed")
	}
	if len(store.expires) != 2 {
		t.Fatalf("expected one expire per key, got %d", len(store.expires))
	}
}

func TestRateLimiter_NewWindowResets(t *testing.T) {
	store := newFakeCounter()
	l := NewRateLimiter(store, 1, time.Minute)
	now := time.Date(2025, 1, 1, 10, 0, 30, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow(context.Background(), "c")
	if d, _ := l.Allow(context.Background(), "c"); d.Allowed {
		t.Fatalf("expected block within window")
	}
	now = now.Add(time.Minute)
	if d, _ := l.Allow(context.Background(), "c"); !d.Allowed {
		t.Fatalf("expected allow in next window")
	}
}

func TestRateLimiter_StoreErrorFailsOpen(t *testing.T) {
	store := newFakeCounter()
	store.err = errors.New("connection refused")
	l := NewRateLimiter(store, 1, time.Minute)

	d, err := l.Allow(context.Background(), "c")
	if err == nil {
		t.Fatalf("expected error to be reported")
	}
	if !d.Allowed {
		t.Fatalf("expected request to be allowed when redis is down")
	}
}
