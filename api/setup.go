package api

import (
	"time"

	_ "backend/api/docs"
	analyticsHandlers "backend/api/handlers/analytics"
	authHandlers "backend/api/handlers/auth"
	languageHandlers "backend/api/handlers/language"
	tenantHandlers "backend/api/handlers/tenant"
	userHandlers "backend/api/handlers/user"

	"backend/internal/analytics"
	"backend/internal/auth"
	"backend/internal/common"
	"backend/internal/config"
	"backend/internal/infra"
	"backend/internal/language"
	"backend/internal/logger"
	"backend/internal/metrics"
	middlewarepkg "backend/internal/middleware"
	"backend/internal/tenant"
	"backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AppContainer 汇集所有已装配的服务，供路由注册使用
type AppContainer struct {
	DB         *gorm.DB
	Config     *config.Config
	JWTService *auth.JWTService

	TenantService    *tenant.Service
	LanguageService  *language.Service
	UserService      *user.Service
	AnalyticsService *analytics.Service

	LoginLimiter *middlewarepkg.RateLimiter
}

// Handlers 汇集所有 HTTP 处理器
type Handlers struct {
	Auth      *authHandlers.AuthHandler
	Tenant    *tenantHandlers.Handler
	Language  *languageHandlers.Handler
	User      *userHandlers.Handler
	Analytics *analyticsHandlers.Handler
}

// BuildContainer 装配服务依赖
func BuildContainer(db *gorm.DB, cfg *config.Config) *AppContainer {
	log := logger.Get()

	// 域名解析缓存：配置了 TTL 且 Redis 可用时走 Redis，否则进程内缓存
	var resolverCache tenant.ResolverCache
	if ttlRaw := cfg.Cache.ResolverTTL; ttlRaw != "" {
		ttl, err := time.ParseDuration(ttlRaw)
		if err != nil {
			log.Warn("invalid cache.resolver_ttl, falling back to in-process cache",
				zap.String("value", ttlRaw), zap.Error(err))
		} else if rdb := infra.RedisClient(); rdb != nil {
			resolverCache = tenant.NewRedisResolverCache(rdb, ttl, log)
		} else {
			resolverCache = tenant.NewMemoryResolverCache(ttl)
		}
	}

	tenantSvc := tenant.NewService(tenant.NewRepository(db), resolverCache, common.SystemClock())
	languageSvc := language.NewService(language.NewRepository(db), log)
	userSvc := user.NewService(db, languageSvc, log)
	analyticsSvc := analytics.NewService(db, cfg.Analytics.DefaultWindowDays)

	return &AppContainer{
		DB:               db,
		Config:           cfg,
		JWTService:       auth.NewJWTService(cfg.Auth.SigningKey, "forum-core", cfg.Auth.ExpirationHours),
		TenantService:    tenantSvc,
		LanguageService:  languageSvc,
		UserService:      userSvc,
		AnalyticsService: analyticsSvc,
		LoginLimiter:     middlewarepkg.NewRateLimiter(nil),
	}
}

// BuildHandlers 装配 HTTP 处理器
func BuildHandlers(c *AppContainer) *Handlers {
	log := logger.Get()
	streamInterval := time.Duration(c.Config.Analytics.StreamIntervalSec) * time.Second

	return &Handlers{
		Auth:      authHandlers.NewAuthHandler(c.JWTService, c.DB),
		Tenant:    tenantHandlers.NewHandler(c.TenantService),
		Language:  languageHandlers.NewHandler(c.LanguageService),
		User:      userHandlers.NewHandler(c.UserService),
		Analytics: analyticsHandlers.NewHandler(c.AnalyticsService, log, streamInterval),
	}
}

// SetupRouter 设置并返回 Gin 路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	container := BuildContainer(db, cfg)
	handlers := BuildHandlers(container)

	router.Use(gin.Recovery())
	router.Use(middlewarepkg.RequestIDMiddleware())
	router.Use(RequestLogger())
	router.Use(CORS())
	router.Use(metrics.PrometheusMiddleware())
	router.Use(middlewarepkg.TenantResolverMiddleware(container.TenantService, logger.Get()))

	// 系统端点
	router.GET("/health", HealthCheck())
	router.GET("/ready", ReadinessCheck(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	RegisterRoutes(router, container, handlers)

	return router
}
