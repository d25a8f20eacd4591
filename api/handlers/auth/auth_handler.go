package auth

import (
	"errors"

	"backend/internal/auth"
	"backend/internal/common"
	"backend/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	jwtService *auth.JWTService
	db         *gorm.DB
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(jwtService *auth.JWTService, db *gorm.DB) *AuthHandler {
	return &AuthHandler{jwtService: jwtService, db: db}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expires_in"`
	User      *UserInfo `json:"user"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	TenantID     uint   `json:"tenant_id"`
	IsAdmin      bool   `json:"is_admin"`
	LanguageCode string `json:"language_code"`
}

// Login 用户登录
// @Summary 用户登录
// @Description 使用邮箱和密码登录，获取访问令牌
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录请求参数"
// @Success 200 {object} common.APIResponse
// @Failure 400 {object} common.APIResponse "参数错误"
// @Failure 401 {object} common.APIResponse "认证失败"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ResponseBadRequest(c, "参数错误: "+err.Error())
		return
	}

	var u user.User
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ? AND status = ?", req.Email, user.StatusActive).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.ResponseUnauthorized(c, "邮箱或密码错误")
			return
		}
		common.ResponseError(c, err)
		return
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		common.ResponseUnauthorized(c, "邮箱或密码错误")
		return
	}

	token, err := h.jwtService.GenerateToken(u.ID, u.TenantID, u.IsAdmin)
	if err != nil {
		common.ResponseError(c, err)
		return
	}

	common.ResponseSuccess(c, LoginResponse{
		Token:     token,
		ExpiresIn: h.jwtService.ExpiresIn(),
		User:      userInfo(&u),
	})
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	TenantID uint   `json:"tenant_id" binding:"required"`
}

// Register 用户注册
// @Summary 用户注册
// @Description 在指定租户下创建新用户
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册请求参数"
// @Success 201 {object} common.APIResponse
// @Failure 400 {object} common.APIResponse "参数错误"
// @Failure 409 {object} common.APIResponse "邮箱已存在"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ResponseBadRequest(c, "参数错误: "+err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		common.ResponseError(c, err)
		return
	}

	u := user.User{
		TenantID:     req.TenantID,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Status:       user.StatusActive,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			common.ResponseError(c, common.ErrConflict)
			return
		}
		common.ResponseError(c, err)
		return
	}

	common.ResponseCreated(c, userInfo(&u))
}

func userInfo(u *user.User) *UserInfo {
	return &UserInfo{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		TenantID:     u.TenantID,
		IsAdmin:      u.IsAdmin,
		LanguageCode: u.LanguageCode,
	}
}
