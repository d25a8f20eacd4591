package tenant

import (
	"strconv"

	"backend/internal/common"
	"backend/internal/tenant"

	"github.com/gin-gonic/gin"
)

// Handler serves the tenant directory endpoints.
type Handler struct {
	tenants *tenant.Service
}

func NewHandler(tenants *tenant.Service) *Handler {
	return &Handler{tenants: tenants}
}

// CreateRequest is the payload for registering a new tenant.
type CreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Domain      string `json:"domain" binding:"required"`
	AdminUserID uint   `json:"admin_user_id" binding:"required"`
}

// Create registers a new tenant.
// @Summary 创建租户
// @Description 注册一个新论坛租户，域名在活跃租户间唯一
// @Tags Tenant
// @Accept json
// @Produce json
// @Param request body CreateRequest true "租户信息"
// @Success 201 {object} common.APIResponse
// @Failure 400 {object} common.APIResponse "参数错误"
// @Failure 409 {object} common.APIResponse "域名已被占用"
// @Router /api/tenants [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ResponseBadRequest(c, "invalid request: "+err.Error())
		return
	}

	t, err := h.tenants.Create(c.Request.Context(), req.Name, req.Domain, req.AdminUserID)
	if err != nil {
		common.ResponseError(c, err)
		return
	}

	common.ResponseCreated(c, t)
}

// Resolve looks a tenant up by domain.
// @Summary 按域名解析租户
// @Tags Tenant
// @Produce json
// @Param domain query string true "租户域名"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse "域名未注册或租户已停用"
// @Router /api/tenants/resolve [get]
func (h *Handler) Resolve(c *gin.Context) {
	domain := c.Query("domain")
	if domain == "" {
		// Fall back to the tenant already resolved from the Host header.
		if tc, ok := tenant.FromContext(c.Request.Context()); ok {
			domain = tc.Domain
		}
	}
	if domain == "" {
		common.ResponseBadRequest(c, "domain is required")
		return
	}

	t, err := h.tenants.ResolveByDomain(c.Request.Context(), domain)
	if err != nil {
		common.ResponseError(c, err)
		return
	}

	common.ResponseSuccess(c, t)
}

// StatusRequest carries the target lifecycle state for a tenant.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus suspends or reactivates a tenant.
// @Summary 更新租户状态
// @Tags Tenant
// @Accept json
// @Produce json
// @Param id path int true "租户 ID"
// @Param request body StatusRequest true "目标状态"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse "租户不存在"
// @Failure 409 {object} common.APIResponse "域名已被其他活跃租户占用"
// @Router /api/tenants/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ResponseBadRequest(c, "invalid tenant id")
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ResponseBadRequest(c, "invalid request: "+err.Error())
		return
	}

	t, err := h.tenants.UpdateStatus(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		common.ResponseError(c, err)
		return
	}

	common.ResponseSuccess(c, t)
}

// Analytics returns the per-tenant usage report.
// @Summary 租户用量报表
// @Description 每个租户一行，含用户数与累计发帖评论数，按用户数降序
// @Tags Tenant
// @Produce json
// @Success 200 {object} common.APIResponse
// @Router /api/tenants/analytics [get]
func (h *Handler) Analytics(c *gin.Context) {
	rows, err := h.tenants.Analytics(c.Request.Context())
	if err != nil {
		common.ResponseError(c, err)
		return
	}

	common.ResponseSuccess(c, rows)
}
