package api

import (
	"backend/internal/auth"
	middlewarepkg "backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册所有 API 路由
func RegisterRoutes(router *gin.Engine, container *AppContainer, handlers *Handlers) {
	// 认证 API（公开，不需要 JWT，登录注册走限流）
	registerAuthRoutes(router, container, handlers)

	// 公开只读 API：语言注册表、翻译、域名解析
	registerPublicRoutes(router, handlers)

	// 需要认证的 API
	api := router.Group("/api")
	api.Use(auth.AuthMiddleware(container.JWTService))
	registerAPIRoutes(api, handlers)
}

// registerAuthRoutes 注册认证相关路由（公开）
func registerAuthRoutes(router *gin.Engine, c *AppContainer, h *Handlers) {
	authGroup := router.Group("/api/auth")
	authGroup.Use(middlewarepkg.RateLimitMiddleware(c.LoginLimiter))
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/register", h.Auth.Register)
	}
}

// registerPublicRoutes 注册无需认证的只读路由
func registerPublicRoutes(router *gin.Engine, h *Handlers) {
	public := router.Group("/api")
	{
		public.GET("/languages", h.Language.ListActive)
		public.GET("/languages/rtl", h.Language.ListRTL)
		public.GET("/languages/:code/direction", h.Language.Direction)
		public.GET("/translate", h.Language.Translate)
		public.GET("/tenants/resolve", h.Tenant.Resolve)
	}
}

// registerAPIRoutes 注册需要认证的 API 路由
func registerAPIRoutes(apiGroup *gin.RouterGroup, h *Handlers) {
	adminGuard := auth.RequireAdmin()

	// 租户管理
	tenants := apiGroup.Group("/tenants")
	{
		tenants.POST("", adminGuard, h.Tenant.Create)
		tenants.PATCH("/:id/status", adminGuard, h.Tenant.UpdateStatus)
		tenants.GET("/analytics", adminGuard, h.Tenant.Analytics)
	}

	// 语言管理
	languages := apiGroup.Group("/languages")
	{
		languages.POST("", adminGuard, h.Language.Create)
		languages.PATCH("/:code/active", adminGuard, h.Language.SetActive)
	}

	// 用户语言偏好
	users := apiGroup.Group("/users")
	{
		users.GET("/me/language", h.User.MyLanguage)
		users.PUT("/me/language", h.User.SetMyLanguage)
		users.PUT("/:id/language", adminGuard, h.User.SetLanguage)
	}

	// 统计
	analytics := apiGroup.Group("/analytics")
	{
		analytics.GET("/languages", adminGuard, h.Analytics.Languages)
		analytics.GET("/rtl", adminGuard, h.Analytics.RTL)
		analytics.GET("/signups", adminGuard, h.Analytics.Signups)
		analytics.GET("/stream", adminGuard, h.Analytics.Stream)
	}
}
