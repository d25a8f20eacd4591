package tenant

import (
	"context"
	"testing"
	"time"
)

func TestMemoryResolverCacheRoundTrip(t *testing.T) {
	cache := NewMemoryResolverCache(time.Minute)
	ctx := context.Background()

	if _, ok := cache.Get(ctx, "forum.example.com"); ok {
		t.Fatal("expected miss on empty cache")
	}

	cache.Set(ctx, "forum.example.com", &Tenant{ID: 1, Domain: "forum.example.com"})
	got, ok := cache.Get(ctx, "forum.example.com")
	if !ok || got.ID != 1 {
		t.Fatalf("expected hit, got %v %v", got, ok)
	}

	cache.Invalidate(ctx, "forum.example.com")
	if _, ok := cache.Get(ctx, "forum.example.com"); ok {
		t.Fatal("expected miss after invalidation")
	}
}

func TestMemoryResolverCacheExpires(t *testing.T) {
	cache := NewMemoryResolverCache(10 * time.Millisecond)
	ctx := context.Background()

	cache.Set(ctx, "forum.example.com", &Tenant{ID: 1})
	time.Sleep(25 * time.Millisecond)

	if _, ok := cache.Get(ctx, "forum.example.com"); ok {
		t.Fatal("expected entry to expire")
	}
}
