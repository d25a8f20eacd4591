package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserContext 认证后的用户信息
type UserContext struct {
	UserID   uint
	TenantID uint
	IsAdmin  bool
}

const userContextKey = "user"

// AuthMiddleware JWT 认证中间件
func AuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "missing credentials"})
			c.Abort()
			return
		}

		token := ExtractTokenFromBearer(authHeader)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "malformed bearer token"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(userContextKey, &UserContext{
			UserID:   claims.UserID,
			TenantID: claims.TenantID,
			IsAdmin:  claims.IsAdmin,
		})

		c.Next()
	}
}

// RequireAdmin 平台管理员守卫，必须在 AuthMiddleware 之后使用
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		uc, ok := GetUserContext(c)
		if !ok || !uc.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "admin required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserContext 从 Gin 上下文取出用户信息
func GetUserContext(c *gin.Context) (*UserContext, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	uc, ok := value.(*UserContext)
	return uc, ok
}
