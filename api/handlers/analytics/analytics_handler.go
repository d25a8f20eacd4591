package analytics

import (
	"net/http"
	"strconv"
	"time"

	"backend/internal/analytics"
	"backend/internal/common"
	"backend/internal/metrics"
	"backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handler serves the forum analytics endpoints.
type Handler struct {
	analytics      *analytics.Service
	log            *zap.Logger
	streamInterval time.Duration
	upgrader       websocket.Upgrader
}

func NewHandler(svc *analytics.Service, log *zap.Logger, streamInterval time.Duration) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if streamInterval <= 0 {
		streamInterval = 15 * time.Second
	}
	return &Handler{
		analytics:      svc,
		log:            log,
		streamInterval: streamInterval,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: 5 * time.Second,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Languages returns the per-language usage cross-tab.
// @Summary 语言使用统计
// @Description 按语言汇总用户数与发帖评论数，按用户数降序
// @Tags Analytics
// @Produce json
// @Success 200 {object} common.APIResponse
// @Router /api/analytics/languages [get]
func (h *Handler) Languages(c *gin.Context) {
	rows, err := h.analytics.LanguageUsage(c.Request.Context())
	if err != nil {
		common.ResponseError(c, err)
		return
	}
	common.ResponseSuccess(c, rows)
}

// RTL returns usage grouped by writing direction.
// @Summary RTL 与 LTR 使用对比
// @Tags Analytics
// @Produce json
// @Success 200 {object} common.APIResponse
// @Router /api/analytics/rtl [get]
func (h *Handler) RTL(c *gin.Context) {
	rows, err := h.analytics.RTLUsage(c.Request.Context())
	if err != nil {
		common.ResponseError(c, err)
		return
	}
	common.ResponseSuccess(c, rows)
}

// Signups returns the day-bucketed signup trend. Days without signups are
// omitted rather than zero-filled.
// @Summary 注册趋势
// @Tags Analytics
// @Produce json
// @Param days query int false "统计窗口天数"
// @Param tenant_id query int false "限定租户"
// @Success 200 {object} common.APIResponse
// @Router /api/analytics/signups [get]
func (h *Handler) Signups(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			common.ResponseBadRequest(c, "invalid days")
			return
		}
		days = v
	}

	tenantID := uint(0)
	if raw := c.Query("tenant_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			common.ResponseBadRequest(c, "invalid tenant_id")
			return
		}
		tenantID = uint(v)
	} else if tc, ok := tenant.FromContext(c.Request.Context()); ok {
		tenantID = tc.TenantID
	}

	var (
		points []analytics.TrendPoint
		err    error
	)
	if tenantID > 0 {
		points, err = h.analytics.TenantSignupTrend(c.Request.Context(), tenantID, days)
	} else {
		points, err = h.analytics.SignupTrend(c.Request.Context(), days)
	}
	if err != nil {
		common.ResponseError(c, err)
		return
	}
	common.ResponseSuccess(c, points)
}

// snapshot bundles the dashboard payload pushed over the stream.
type snapshot struct {
	Languages []analytics.LanguageUsageRow `json:"languages"`
	RTL       []analytics.RTLUsageRow      `json:"rtl"`
	Signups   []analytics.TrendPoint       `json:"signups"`
	At        time.Time                    `json:"at"`
}

// Stream upgrades the connection and pushes a dashboard snapshot on an
// interval until the client disconnects.
// @Summary 实时统计推送
// @Tags Analytics
// @Router /api/analytics/stream [get]
func (h *Handler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	metrics.DashboardConnectionsGauge.Inc()
	defer metrics.DashboardConnectionsGauge.Dec()

	ctx := c.Request.Context()

	// Reads are discarded; the read loop only notices the close frame.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.streamInterval)
	defer ticker.Stop()

	for {
		if err := h.pushSnapshot(c, conn); err != nil {
			return
		}
		select {
		case <-ticker.C:
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (h *Handler) pushSnapshot(c *gin.Context, conn *websocket.Conn) error {
	ctx := c.Request.Context()

	langs, err := h.analytics.LanguageUsage(ctx)
	if err != nil {
		h.log.Error("dashboard snapshot failed", zap.Error(err))
		return err
	}
	rtl, err := h.analytics.RTLUsage(ctx)
	if err != nil {
		h.log.Error("dashboard snapshot failed", zap.Error(err))
		return err
	}
	signups, err := h.analytics.SignupTrend(ctx, 0)
	if err != nil {
		h.log.Error("dashboard snapshot failed", zap.Error(err))
		return err
	}

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteJSON(snapshot{
		Languages: langs,
		RTL:       rtl,
		Signups:   signups,
		At:        time.Now().UTC(),
	})
}
