package tenant

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"backend/internal/common"
)

type fakeRepository struct {
	tenants       map[uint]*Tenant
	nextID        uint
	domainLookups int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{tenants: make(map[uint]*Tenant), nextID: 1}
}

func (r *fakeRepository) Insert(_ context.Context, t *Tenant) error {
	for _, existing := range r.tenants {
		if existing.Domain == t.Domain && existing.Status == StatusActive {
			return fmt.Errorf("tenant insert: %w: domain %q already active", common.ErrConflict, t.Domain)
		}
	}
	t.ID = r.nextID
	r.nextID++
	r.tenants[t.ID] = t
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id uint) (*Tenant, error) {
	if t, ok := r.tenants[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, fmt.Errorf("tenant %d: %w", id, common.ErrNotFound)
}

func (r *fakeRepository) FindActiveByDomain(_ context.Context, domain string) (*Tenant, error) {
	r.domainLookups++
	for _, t := range r.tenants {
		if t.Domain == domain && t.Status == StatusActive {
			copied := *t
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("tenant for domain %q: %w", domain, common.ErrNotFound)
}

func (r *fakeRepository) UpdateStatus(_ context.Context, id uint, status string) error {
	t, ok := r.tenants[id]
	if !ok {
		return fmt.Errorf("tenant %d: %w", id, common.ErrNotFound)
	}
	t.Status = status
	return nil
}

func (r *fakeRepository) UsageReport(_ context.Context) ([]UsageRow, error) {
	return nil, nil
}

func newTestService(repo Repository) *Service {
	clock := common.FixedClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	return NewService(repo, NewMemoryResolverCache(time.Minute), clock)
}

func TestServiceCreateRejectsMissingFields(t *testing.T) {
	svc := newTestService(newFakeRepository())

	cases := []struct {
		name   string
		domain string
	}{
		{"", "forum.example.com"},
		{"Example Forum", ""},
		{"   ", "forum.example.com"},
	}
	for _, tc := range cases {
		_, err := svc.Create(context.Background(), tc.name, tc.domain, 1)
		if !errors.Is(err, common.ErrValidation) {
			t.Fatalf("Create(%q, %q): expected validation error, got %v", tc.name, tc.domain, err)
		}
	}
}

func TestServiceCreateNormalizesDomainAndStampsClock(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), "  Example Forum ", "Forum.Example.COM", 7)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Domain != "forum.example.com" {
		t.Fatalf("expected lowercased domain, got %q", created.Domain)
	}
	if created.Name != "Example Forum" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Status != StatusActive {
		t.Fatalf("expected active status, got %q", created.Status)
	}
	want := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	if !created.CreatedAt.Equal(want) {
		t.Fatalf("expected CreatedAt %v, got %v", want, created.CreatedAt)
	}
}

func TestServiceCreateSurfacesDomainConflict(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	if _, err := svc.Create(context.Background(), "First", "forum.example.com", 1); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), "Second", "FORUM.example.com", 2)
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestServiceResolveByDomainUsesCache(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), "Example", "forum.example.com", 1)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	first, err := svc.ResolveByDomain(context.Background(), "forum.example.com")
	if err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}
	if first.ID != created.ID {
		t.Fatalf("resolved wrong tenant: %d", first.ID)
	}
	if repo.domainLookups != 1 {
		t.Fatalf("expected 1 store lookup, got %d", repo.domainLookups)
	}

	if _, err := svc.ResolveByDomain(context.Background(), "forum.example.com"); err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}
	if repo.domainLookups != 1 {
		t.Fatalf("expected cached resolve, store lookups = %d", repo.domainLookups)
	}
}

func TestServiceResolveByDomainUnknownDomain(t *testing.T) {
	svc := newTestService(newFakeRepository())

	_, err := svc.ResolveByDomain(context.Background(), "nowhere.example.com")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestServiceUpdateStatusValidatesTarget(t *testing.T) {
	svc := newTestService(newFakeRepository())

	_, err := svc.UpdateStatus(context.Background(), 1, "deleted")
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestServiceUpdateStatusUnknownTenant(t *testing.T) {
	svc := newTestService(newFakeRepository())

	_, err := svc.UpdateStatus(context.Background(), 42, StatusSuspended)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestServiceUpdateStatusInvalidatesResolverCache(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), "Example", "forum.example.com", 1)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.ResolveByDomain(context.Background(), created.Domain); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), created.ID, StatusSuspended)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != StatusSuspended {
		t.Fatalf("expected suspended status, got %q", updated.Status)
	}

	// The cache entry is gone, so the next resolve goes to the store and
	// no longer finds an active tenant.
	lookupsBefore := repo.domainLookups
	if _, err := svc.ResolveByDomain(context.Background(), created.Domain); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected not-found after suspension, got %v", err)
	}
	if repo.domainLookups != lookupsBefore+1 {
		t.Fatalf("expected store lookup after invalidation, lookups = %d", repo.domainLookups)
	}
}
