package tenant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/common"
	tenantSvc "backend/internal/tenant"
	"backend/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTenantRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:tenant_handler_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("init sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&tenantSvc.Tenant{}, &user.User{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	svc := tenantSvc.NewService(tenantSvc.NewRepository(db), nil, nil)
	h := NewHandler(svc)

	router := gin.New()
	router.POST("/api/tenants", h.Create)
	router.GET("/api/tenants/resolve", h.Resolve)
	router.PATCH("/api/tenants/:id/status", h.UpdateStatus)
	router.GET("/api/tenants/analytics", h.Analytics)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, common.APIResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var envelope common.APIResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope failed: %v (body %s)", err, resp.Body.String())
	}
	return resp, envelope
}

func TestCreateTenantReturnsCreatedEnvelope(t *testing.T) {
	router := setupTenantRouter(t)

	resp, envelope := doJSON(t, router, http.MethodPost, "/api/tenants", CreateRequest{
		Name:        "Example Forum",
		Domain:      "Forum.Example.com",
		AdminUserID: 1,
	})

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", resp.Code, resp.Body.String())
	}
	if !envelope.Success || envelope.Error != "" {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

func TestCreateTenantDuplicateDomainConflict(t *testing.T) {
	router := setupTenantRouter(t)

	doJSON(t, router, http.MethodPost, "/api/tenants", CreateRequest{Name: "First", Domain: "forum.example.com", AdminUserID: 1})
	resp, envelope := doJSON(t, router, http.MethodPost, "/api/tenants", CreateRequest{Name: "Second", Domain: "forum.example.com", AdminUserID: 2})

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%s)", resp.Code, resp.Body.String())
	}
	if envelope.Success || envelope.Error == "" {
		t.Fatalf("expected failed envelope with message, got %+v", envelope)
	}
}

func TestCreateTenantMissingFields(t *testing.T) {
	router := setupTenantRouter(t)

	resp, envelope := doJSON(t, router, http.MethodPost, "/api/tenants", map[string]any{"name": "No Domain"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if envelope.Success {
		t.Fatalf("expected failed envelope, got %+v", envelope)
	}
}

func TestResolveTenantUnknownDomain(t *testing.T) {
	router := setupTenantRouter(t)

	resp, envelope := doJSON(t, router, http.MethodGet, "/api/tenants/resolve?domain=nowhere.example.com", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if envelope.Success || envelope.Error == "" {
		t.Fatalf("expected failed envelope, got %+v", envelope)
	}
}

func TestUpdateStatusThenResolveFails(t *testing.T) {
	router := setupTenantRouter(t)

	_, created := doJSON(t, router, http.MethodPost, "/api/tenants", CreateRequest{Name: "Example", Domain: "forum.example.com", AdminUserID: 1})
	data, ok := created.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected create payload: %+v", created.Data)
	}
	id := int(data["id"].(float64))

	resp, envelope := doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/tenants/%d/status", id), StatusRequest{Status: "suspended"})
	if resp.Code != http.StatusOK || !envelope.Success {
		t.Fatalf("suspend failed: %d %+v", resp.Code, envelope)
	}

	resp, _ = doJSON(t, router, http.MethodGet, "/api/tenants/resolve?domain=forum.example.com", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after suspension, got %d", resp.Code)
	}
}

func TestUpdateStatusRejectsUnknownState(t *testing.T) {
	router := setupTenantRouter(t)

	resp, _ := doJSON(t, router, http.MethodPatch, "/api/tenants/1/status", StatusRequest{Status: "deleted"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown state, got %d", resp.Code)
	}
}

func TestTenantAnalyticsEmptyDirectory(t *testing.T) {
	router := setupTenantRouter(t)

	resp, envelope := doJSON(t, router, http.MethodGet, "/api/tenants/analytics", nil)
	if resp.Code != http.StatusOK || !envelope.Success {
		t.Fatalf("expected empty report to succeed, got %d %+v", resp.Code, envelope)
	}
}
