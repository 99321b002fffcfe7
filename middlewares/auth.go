// file: middlewares/auth.go
package middlewares

import (
	"DevOlympus/utils"
	"github.com/gin-gonic/gin"
	"strings"
)

// JWTAuthMiddleware 验证用户是否登录
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			utils.Error(c, 4001, "请求头中 Authorization 为空")
			c.Abort()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.Error(c, 4002, "Authorization 格式有误")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Error(c, 4003, "无效的 Token")
			c.Abort()
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("is_admin", claims.IsAdmin)
		c.Next()
	}
}

// AdminAuthMiddleware 验证管理员权限
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdminAny, exists := c.Get("is_admin")
		if !exists {
			utils.Error(c, 4003, "无法获取用户角色信息")
			c.Abort()
			return
		}
		if isAdmin, ok := isAdminAny.(bool); !ok || !isAdmin {
			utils.Error(c, 4003, "权限不足")
			c.Abort()
			return
		}
		c.Next()
	}
}
