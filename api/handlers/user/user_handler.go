package user

import (
	"strconv"

	"backend/internal/auth"
	"backend/internal/common"
	"backend/internal/user"

	"github.com/gin-gonic/gin"
)

// Handler serves the user locale endpoints.
type Handler struct {
	users *user.Service
}

func NewHandler(users *user.Service) *Handler {
	return &Handler{users: users}
}

// LanguageRequest carries the language code to bind to a user.
type LanguageRequest struct {
	Code string `json:"code" binding:"required,min=2,max=10"`
}

// SetMyLanguage updates the calling user's preferred language.
// @Summary 设置当前用户语言
// @Tags User
// @Accept json
// @Produce json
// @Param request body LanguageRequest true "语言代码"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse "用户不存在"
// @Security BearerAuth
// @Router /api/users/me/language [put]
func (h *Handler) SetMyLanguage(c *gin.Context) {
	uc, ok := auth.GetUserContext(c)
	if !ok {
		common.ResponseUnauthorized(c, "unauthenticated")
		return
	}
	h.setLanguage(c, uc.UserID)
}

// SetLanguage updates another user's preferred language. Admin only.
// @Summary 设置指定用户语言
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "用户 ID"
// @Param request body LanguageRequest true "语言代码"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse "用户不存在"
// @Security BearerAuth
// @Router /api/users/{id}/language [put]
func (h *Handler) SetLanguage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ResponseBadRequest(c, "invalid user id")
		return
	}
	h.setLanguage(c, uint(id))
}

func (h *Handler) setLanguage(c *gin.Context, userID uint) {
	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ResponseBadRequest(c, "invalid request: "+err.Error())
		return
	}

	if err := h.users.SetLanguage(c.Request.Context(), userID, req.Code); err != nil {
		common.ResponseError(c, err)
		return
	}
	common.ResponseSuccess(c, gin.H{"user_id": userID, "code": req.Code})
}

// MyLanguage returns the calling user's effective language. A stored code
// that no longer resolves falls back to the default language.
// @Summary 查询当前用户语言
// @Tags User
// @Produce json
// @Success 200 {object} common.APIResponse
// @Security BearerAuth
// @Router /api/users/me/language [get]
func (h *Handler) MyLanguage(c *gin.Context) {
	uc, ok := auth.GetUserContext(c)
	if !ok {
		common.ResponseUnauthorized(c, "unauthenticated")
		return
	}

	lang, err := h.users.PreferredLanguage(c.Request.Context(), uc.UserID)
	if err != nil {
		common.ResponseError(c, err)
		return
	}
	common.ResponseSuccess(c, lang)
}
