package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRedis_UnavailableIsNoop(t *testing.T) {
	var r *Redis
	ctx := context.Background()

	var out []string
	hit, err := r.GetJSON(ctx, "jobs:search:x", &out)
	if err != nil || hit {
		t.Fatalf("expected miss without error, got hit=%v err=%v", hit, err)
	}
	if err := r.SetJSON(ctx, "k", []string{"a"}, time.Minute); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := r.Delete(ctx, "k"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := r.DeleteByPattern(ctx, "jobs:*"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.Available() {
		t.Fatalf("nil cache reported as available")
	}
	if err := r.Ping(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRedis_DefaultTTL(t *testing.T) {
	r := &Redis{}
	if r.ttl() != 10*time.Minute {
		t.Fatalf("unexpected default ttl %s", r.ttl())
	}
	r.defaultTTL = time.Minute
	if r.ttl() != time.Minute {
		t.Fatalf("unexpected ttl %s", r.ttl())
	}
}
