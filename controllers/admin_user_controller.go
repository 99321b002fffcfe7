// file: controllers/admin_user_controller.go
package controllers

import (
	"DevOlympus/database"
	"DevOlympus/models"
	"DevOlympus/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetUserList 管理端用户列表（搜索 + 分页）
func GetUserList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 10
	}
	query := c.Query("query")

	var users []models.User
	var total int64
	db := database.DB.Model(&models.User{})
	if query != "" {
		db = db.Where("name LIKE ? OR email LIKE ?", "%"+query+"%", "%"+query+"%")
	}
	db.Count(&total)
	db.Offset((page - 1) * pageSize).Limit(pageSize).Order("id desc").Find(&users)

	resultUsers := make([]gin.H, 0, len(users))
	for _, user := range users {
		var teamCount int64
		database.DB.Model(&models.Team{}).Where("captain_id = ?", user.ID).Count(&teamCount)

		resultUsers = append(resultUsers, gin.H{
			"id":              user.ID,
			"email":           user.Email,
			"name":            user.Name,
			"image":           user.Image,
			"is_admin":        user.IsAdmin,
			"is_blocked":      user.IsBlocked,
			"logged_in_times": user.LoggedInTimes,
			"last_login":      user.LastLogin,
			"has_team":        teamCount > 0,
		})
	}

	utils.Success(c, "success", gin.H{
		"total": total,
		"users": resultUsers,
	})
}

// UpdateUserBlock 封禁/解封用户；管理员账号不能被封禁
func UpdateUserBlock(c *gin.Context) {
	targetUserID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的用户ID")
		return
	}

	var req struct {
		Blocked *bool `json:"blocked" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "无效的状态")
		return
	}

	var user models.User
	if err := database.DB.First(&user, targetUserID).Error; err != nil {
		utils.Error(c, 4004, "用户不存在")
		return
	}
	if user.IsAdmin {
		utils.Error(c, 2010, "管理员账号不能被封禁")
		return
	}

	if err := database.DB.Model(&user).Update("is_blocked", *req.Blocked).Error; err != nil {
		utils.Error(c, 5000, "更新用户状态失败")
		return
	}

	utils.Success(c, "User status updated", gin.H{
		"user_id":    user.ID,
		"is_blocked": *req.Blocked,
	})
}
