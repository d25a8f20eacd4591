package user

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"backend/internal/auth"
	"backend/internal/common"
	"backend/internal/language"
	userSvc "backend/internal/user"
)

func setupUserRouter(t *testing.T) (*gin.Engine, *userSvc.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:user_handler_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("init sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&userSvc.User{}, &language.Language{}, &language.Translation{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	languages := []language.Language{
		{Code: "en", Name: "English", NativeName: "English", IsActive: true},
		{Code: "ar", Name: "Arabic", NativeName: "العربية", IsRTL: true, IsActive: true},
	}
	if err := db.Create(&languages).Error; err != nil {
		t.Fatalf("seed languages failed: %v", err)
	}

	member := &userSvc.User{
		TenantID:     1,
		Username:     "member",
		Email:        "member@example.com",
		PasswordHash: "x",
		LanguageCode: "en",
		Status:       userSvc.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	langSvc := language.NewService(language.NewRepository(db), nil)
	h := NewHandler(userSvc.NewService(db, langSvc, nil))

	router := gin.New()
	// Stand-in for AuthMiddleware: inject the member's identity.
	router.Use(func(c *gin.Context) {
		c.Set("user", &auth.UserContext{UserID: member.ID, TenantID: member.TenantID})
		c.Next()
	})
	router.GET("/api/users/me/language", h.MyLanguage)
	router.PUT("/api/users/me/language", h.SetMyLanguage)
	router.PUT("/api/users/:id/language", h.SetLanguage)
	return router, member
}

func putJSON(t *testing.T, router *gin.Engine, path string, body any) (*httptest.ResponseRecorder, common.APIResponse) {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		t.Fatalf("encode body failed: %v", err)
	}
	req := httptest.NewRequest(http.MethodPut, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var envelope common.APIResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope failed: %v (body %s)", err, resp.Body.String())
	}
	return resp, envelope
}

func TestSetMyLanguage(t *testing.T) {
	router, _ := setupUserRouter(t)

	resp, envelope := putJSON(t, router, "/api/users/me/language", LanguageRequest{Code: "ar"})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, envelope.Success)

	// The effective language now resolves to the new binding.
	req := httptest.NewRequest(http.MethodGet, "/api/users/me/language", nil)
	get := httptest.NewRecorder()
	router.ServeHTTP(get, req)

	var current common.APIResponse
	assert.NoError(t, json.Unmarshal(get.Body.Bytes(), &current))
	data := current.Data.(map[string]any)
	assert.Equal(t, "ar", data["code"])
	assert.Equal(t, true, data["is_rtl"])
}

func TestSetLanguageUnknownUserReturnsNotFound(t *testing.T) {
	router, _ := setupUserRouter(t)

	resp, envelope := putJSON(t, router, "/api/users/999/language", LanguageRequest{Code: "en"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Error)
}

func TestSetMyLanguageRejectsMalformedCode(t *testing.T) {
	router, _ := setupUserRouter(t)

	resp, envelope := putJSON(t, router, "/api/users/me/language", map[string]any{"code": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.False(t, envelope.Success)
}

func TestMyLanguageDanglingBindingFallsBack(t *testing.T) {
	router, member := setupUserRouter(t)

	// Bind a code that was never registered.
	resp, _ := putJSON(t, router, fmt.Sprintf("/api/users/%d/language", member.ID), LanguageRequest{Code: "xx"})
	assert.Equal(t, http.StatusOK, resp.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me/language", nil)
	get := httptest.NewRecorder()
	router.ServeHTTP(get, req)

	var envelope common.APIResponse
	assert.NoError(t, json.Unmarshal(get.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	data := envelope.Data.(map[string]any)
	assert.Equal(t, "en", data["code"])
}
