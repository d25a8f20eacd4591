package language

import (
	"backend/internal/common"
	"backend/internal/language"

	"github.com/gin-gonic/gin"
)

// Handler serves the language registry and translation endpoints.
type Handler struct {
	languages *language.Service
}

func NewHandler(languages *language.Service) *Handler {
	return &Handler{languages: languages}
}

// ListActive returns every active language.
// @Summary 活跃语言列表
// @Tags Language
// @Produce json
// @Success 200 {object} common.APIResponse
// @Router /api/languages [get]
func (h *Handler) ListActive(c *gin.Context) {
	langs, err := h.languages.ListActive(c.Request.Context())
	if err != nil {
		common.ResponseError(c, err)
		return
	}
	common.ResponseSuccess(c, langs)
}

// ListRTL returns the active right-to-left languages.
// @Summary 活跃 RTL 语言列表
// @Tags Language
// @Produce json
// @Success 200 {object} common.APIResponse
// @Router /api/languages/rtl [get]
func (h *Handler) ListRTL(c *gin.Context) {
	langs, err := h.languages.ListRTL(c.Request.Context())
	if err != nil {
		common.ResponseError(c, err)
		return
	}
	common.ResponseSuccess(c, langs)
}

// DirectionResponse reports the writing direction of one language.
type DirectionResponse struct {
	Code  string `json:"code"`
	IsRTL bool   `json:"is_rtl"`
}

// Direction reports whether a language is written right to left.
// @Summary 查询语言书写方向
// @Tags Language
// @Produce json
// @Param code path string true "语言代码"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse "语言不存在"
// @Router /api/languages/{code}/direction [get]
func (h *Handler) Direction(c *gin.Context) {
	code := c.Param("code")
	rtl, err := h.languages.IsRTL(c.Request.Context(), code)
	if err != nil {
		common.ResponseError(c, err)
		return
	}
	common.ResponseSuccess(c, DirectionResponse{Code: code, IsRTL: rtl})
}

// TranslateResponse carries one resolved translation.
type TranslateResponse struct {
	Key   string `json:"key"`
	Code  string `json:"code"`
	Value string `json:"value"`
}

// Translate resolves a translation key for a language. Missing keys fall
// back to the key itself, so this endpoint never fails on lookup misses.
// @Summary 翻译键值查询
// @Tags Language
// @Produce json
// @Param key query string true "翻译键"
// @Param lang query string false "语言代码，缺省为 en"
// @Success 200 {object} common.APIResponse
// @Router /api/translate [get]
func (h *Handler) Translate(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		common.ResponseBadRequest(c, "key is required")
		return
	}
	code := c.Query("lang")
	if code == "" {
		code = language.DefaultCode
	}

	value := h.languages.Translate(c.Request.Context(), key, code)
	common.ResponseSuccess(c, TranslateResponse{Key: key, Code: code, Value: value})
}

// CreateRequest is the payload for registering a language.
type CreateRequest struct {
	Code       string `json:"code" binding:"required,min=2,max=10"`
	Name       string `json:"name" binding:"required"`
	NativeName string `json:"native_name" binding:"required"`
	IsRTL      bool   `json:"is_rtl"`
}

// Create registers a new language. Direction is fixed at creation.
// @Summary 注册语言
// @Tags Language
// @Accept json
// @Produce json
// @Param request body CreateRequest true "语言信息"
// @Success 201 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse "语言代码已存在"
// @Router /api/languages [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ResponseBadRequest(c, "invalid request: "+err.Error())
		return
	}

	lang, err := h.languages.Create(c.Request.Context(), req.Code, req.Name, req.NativeName, req.IsRTL)
	if err != nil {
		common.ResponseError(c, err)
		return
	}
	common.ResponseCreated(c, lang)
}

// ActiveRequest toggles whether a language is offered to users.
type ActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SetActive enables or disables a language.
// @Summary 启用或停用语言
// @Tags Language
// @Accept json
// @Produce json
// @Param code path string true "语言代码"
// @Param request body ActiveRequest true "目标状态"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse "语言不存在"
// @Router /api/languages/{code}/active [patch]
func (h *Handler) SetActive(c *gin.Context) {
	var req ActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ResponseBadRequest(c, "invalid request: "+err.Error())
		return
	}

	code := c.Param("code")
	if err := h.languages.SetActive(c.Request.Context(), code, *req.IsActive); err != nil {
		common.ResponseError(c, err)
		return
	}
	common.ResponseSuccess(c, gin.H{"code": code, "is_active": *req.IsActive})
}
