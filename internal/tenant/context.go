package tenant

import "context"

// TenantContext carries the resolved tenant identity through the request
// lifecycle. It is populated once at the HTTP boundary by the resolver
// middleware and then passed down into services that are tenant-aware.
type TenantContext struct {
	TenantID uint
	Domain   string
}

type tenantContextKey struct{}

// WithTenantContext attaches the given TenantContext to the provided context
// and returns a derived context.
func WithTenantContext(ctx context.Context, tc TenantContext) context.Context {
	return context.WithValue(ctx, tenantContextKey{}, tc)
}

// FromContext attempts to retrieve a TenantContext from the given context.
// The second return value indicates whether one was present.
func FromContext(ctx context.Context) (TenantContext, bool) {
	value := ctx.Value(tenantContextKey{})
	if value == nil {
		return TenantContext{}, false
	}

	tc, ok := value.(TenantContext)
	if !ok {
		return TenantContext{}, false
	}

	return tc, true
}
