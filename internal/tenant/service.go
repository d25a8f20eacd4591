package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/internal/common"
	"backend/internal/metrics"
)

// Service implements the tenant directory: creation, domain resolution,
// status transitions, and the per-tenant usage report. It never pre-checks
// domain availability; the storage constraint is the only arbiter, so
// concurrent creates for the same domain cannot both win.
type Service struct {
	repo  Repository
	cache ResolverCache
	clock common.Clock
}

// NewService constructs a tenant directory Service. A nil cache falls back to
// a per-process cache, a nil clock to the system clock.
func NewService(repo Repository, cache ResolverCache, clock common.Clock) *Service {
	if cache == nil {
		cache = NewMemoryResolverCache(5 * time.Minute)
	}
	if clock == nil {
		clock = common.SystemClock()
	}
	return &Service{repo: repo, cache: cache, clock: clock}
}

// Create registers a new tenant. The domain is normalized to lower case
// before it becomes the routing key. Returns ErrValidation for missing
// fields and ErrConflict when another active tenant owns the domain.
func (s *Service) Create(ctx context.Context, name, domain string, adminUserID uint) (*Tenant, error) {
	name = strings.TrimSpace(name)
	domain = strings.ToLower(strings.TrimSpace(domain))
	if name == "" || domain == "" {
		return nil, fmt.Errorf("tenant.Create: %w: name and domain are required", common.ErrValidation)
	}

	t := &Tenant{
		Name:        name,
		Domain:      domain,
		AdminUserID: adminUserID,
		Status:      StatusActive,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, t); err != nil {
		return nil, err
	}

	metrics.TenantsCreatedTotal.Inc()
	return t, nil
}

// ResolveByDomain returns the unique active tenant owning domain, consulting
// the resolver cache first. Lookups are exact and case-sensitive; suspended
// tenants never resolve.
func (s *Service) ResolveByDomain(ctx context.Context, domain string) (*Tenant, error) {
	if t, ok := s.cache.Get(ctx, domain); ok {
		metrics.TenantResolutionsTotal.WithLabelValues("cache").Inc()
		return t, nil
	}

	t, err := s.repo.FindActiveByDomain(ctx, domain)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			metrics.TenantResolutionsTotal.WithLabelValues("miss").Inc()
		}
		return nil, err
	}

	metrics.TenantResolutionsTotal.WithLabelValues("store").Inc()
	s.cache.Set(ctx, domain, t)
	return t, nil
}

// UpdateStatus suspends or reactivates a tenant. Reactivation can fail with
// ErrConflict when the domain has been claimed by another active tenant in
// the meantime. The resolver cache entry for the tenant's domain is dropped
// either way.
func (s *Service) UpdateStatus(ctx context.Context, id uint, status string) (*Tenant, error) {
	if status != StatusActive && status != StatusSuspended {
		return nil, fmt.Errorf("tenant.UpdateStatus: %w: unknown status %q", common.ErrValidation, status)
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, t.Domain)
	t.Status = status
	return t, nil
}

// Analytics computes the per-tenant usage report: one row per tenant,
// including tenants without users, ordered by user count descending with the
// tenant id as tie-break.
func (s *Service) Analytics(ctx context.Context) ([]UsageRow, error) {
	return s.repo.UsageReport(ctx)
}
