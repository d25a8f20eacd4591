package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"backend/internal/tenant"
	"backend/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupResolverRouter(t *testing.T) (*gin.Engine, *tenant.Tenant) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:resolver_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("init sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&tenant.Tenant{}, &user.User{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	svc := tenant.NewService(tenant.NewRepository(db), nil, nil)
	created, err := svc.Create(context.Background(), "Example", "forum.example.com", 1)
	if err != nil {
		t.Fatalf("seed tenant failed: %v", err)
	}

	router := gin.New()
	router.Use(TenantResolverMiddleware(svc, nil))
	router.GET("/whoami", func(c *gin.Context) {
		tc, ok := tenant.FromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusOK, gin.H{"tenant_id": 0})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tenant_id": tc.TenantID, "domain": tc.Domain})
	})
	return router, created
}

func TestTenantResolverAttachesContext(t *testing.T) {
	router, created := setupResolverRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Host = "Forum.Example.com:8080"
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	want := fmt.Sprintf(`"tenant_id":%d`, created.ID)
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), want) {
		t.Fatalf("expected resolved tenant, got %d %s", resp.Code, resp.Body.String())
	}
}

func TestTenantResolverUnknownHostPassesThrough(t *testing.T) {
	router, _ := setupResolverRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Host = "unknown.example.com"
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), `"tenant_id":0`) {
		t.Fatalf("expected pass-through without tenant, got %d %s", resp.Code, resp.Body.String())
	}
}

func TestNormalizeHost(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Forum.Example.com", "forum.example.com"},
		{"forum.example.com:8080", "forum.example.com"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizeHost(tc.in); got != tc.want {
			t.Fatalf("normalizeHost(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
