// file: controllers/auth_controller.go
package controllers

import (
	"DevOlympus/database"
	"DevOlympus/models"
	"DevOlympus/services"
	"DevOlympus/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUser 从中间件写入的 user_id 取出完整用户
func currentUser(c *gin.Context) (*models.User, bool) {
	userIDAny, exists := c.Get("user_id")
	if !exists {
		utils.Error(c, 4001, "未登录")
		return nil, false
	}
	var user models.User
	if err := database.DB.First(&user, userIDAny.(uint32)).Error; err != nil {
		utils.Error(c, 4001, "用户不存在")
		return nil, false
	}
	if user.IsBlocked {
		utils.Error(c, 2005, "用户已被封禁")
		return nil, false
	}
	return &user, true
}

// GoogleLogin 返回身份提供方的授权地址，state 临时存入 Redis 防 CSRF
func GoogleLogin(c *gin.Context) {
	state := uuid.NewString()
	if err := database.RDB.Set(database.Ctx, "oauth:state:"+state, 1, 10*time.Minute).Err(); err != nil {
		utils.Error(c, 5000, "服务器开小差了，请稍后重试")
		return
	}

	conf := services.OAuthConfig(appConfig)
	utils.Success(c, "success", gin.H{
		"auth_url": conf.AuthCodeURL(state),
	})
}

// GoogleCallback 授权码回调：换取用户信息并登录（首次登录自动建档）
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		utils.Error(c, 1001, "缺少 state 或 code 参数")
		return
	}

	deleted, err := database.RDB.Del(database.Ctx, "oauth:state:"+state).Result()
	if err != nil || deleted == 0 {
		utils.Error(c, 4001, "无效的 state，请重新发起登录")
		return
	}

	conf := services.OAuthConfig(appConfig)
	profile, err := services.FetchGoogleProfile(c.Request.Context(), conf, code)
	if err != nil {
		utils.Error(c, 5000, "登录失败，请稍后重试")
		return
	}

	user, werr := services.LoginWithProfile(database.DB, *profile)
	if werr != nil {
		respondWorkflowError(c, werr)
		return
	}

	token, err := utils.GenerateToken(*user)
	if err != nil {
		utils.Error(c, 5002, "Token 生成失败")
		return
	}

	utils.Success(c, "Login success", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"name":     user.Name,
			"image":    user.Image,
			"is_admin": user.IsAdmin,
		},
	})
}

// AdminLogin 内置管理员账号密码登录
func AdminLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	user, werr := services.AdminLogin(database.DB, req.Email, req.Password)
	if werr != nil {
		respondWorkflowError(c, werr)
		return
	}

	token, err := utils.GenerateToken(*user)
	if err != nil {
		utils.Error(c, 5002, "Token 生成失败")
		return
	}

	utils.Success(c, "Login success", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"name":     user.Name,
			"is_admin": user.IsAdmin,
		},
	})
}

// GetMe 当前登录用户信息
func GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	utils.Success(c, "success", gin.H{
		"id":              user.ID,
		"email":           user.Email,
		"name":            user.Name,
		"image":           user.Image,
		"is_admin":        user.IsAdmin,
		"logged_in_times": user.LoggedInTimes,
		"last_login":      user.LastLogin,
	})
}
