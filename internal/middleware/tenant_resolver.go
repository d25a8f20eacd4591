package middleware

import (
	"errors"
	"net"
	"strings"

	"backend/internal/common"
	"backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TenantResolverMiddleware resolves the tenant for each request from the HTTP
// Host header and attaches a tenant.TenantContext to the request context.
// Requests for unknown or suspended domains pass through without a tenant;
// handlers that require one reject them via tenant.FromContext.
func TenantResolverMiddleware(tenants *tenant.Service, logger *zap.Logger) gin.HandlerFunc {
	log := logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		domain := normalizeHost(c.Request.Host)
		if domain == "" {
			c.Next()
			return
		}

		t, err := tenants.ResolveByDomain(c.Request.Context(), domain)
		if err != nil {
			if !errors.Is(err, common.ErrNotFound) {
				log.Error("tenant resolution failed",
					zap.String("domain", domain),
					zap.Error(err))
			}
			c.Next()
			return
		}

		tc := tenant.TenantContext{TenantID: t.ID, Domain: t.Domain}
		c.Set("tenant_id", tc.TenantID)

		ctx := tenant.WithTenantContext(c.Request.Context(), tc)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// normalizeHost strips the port and lowercases the host name.
func normalizeHost(host string) string {
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(strings.TrimSpace(host))
}
