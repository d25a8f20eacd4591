package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// API 指标
var (
	// APIRequestsTotal API 请求总数
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_api_requests_total",
			Help: "API 请求总数",
		},
		[]string{"method", "path", "status"},
	)

	// APIRequestDuration API 请求延迟（秒）
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forum_api_request_duration_seconds",
			Help:    "API 请求延迟分布",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// 业务指标
var (
	// TenantsCreatedTotal 创建成功的租户数
	TenantsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forum_tenants_created_total",
			Help: "创建成功的租户数",
		},
	)

	// TenantResolutionsTotal 域名解析次数，source=cache|store|miss
	TenantResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_tenant_resolutions_total",
			Help: "域名到租户解析次数",
		},
		[]string{"source"},
	)

	// LocaleUpdatesTotal 用户语言偏好更新次数
	LocaleUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_locale_updates_total",
			Help: "用户语言偏好更新次数",
		},
		[]string{"status"},
	)

	// DashboardConnectionsGauge 仪表盘 WebSocket 连接数
	DashboardConnectionsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "forum_dashboard_connections",
			Help: "仪表盘 WebSocket 连接数",
		},
	)
)
