// file: controllers/team_controller.go
package controllers

import (
	"DevOlympus/database"
	"DevOlympus/dto"
	"DevOlympus/mappers"
	"DevOlympus/models"
	"DevOlympus/services"
	"DevOlympus/utils"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterTeam 队伍报名入口，业务规则全部在 service 里
func RegisterTeam(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.RegisterTeamReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	team, werr := services.RegisterTeam(database.DB, appConfig, *user, req)
	if werr != nil {
		respondWorkflowError(c, werr)
		return
	}

	// 报名成功后清掉报名页/管理端的队伍缓存
	database.InvalidateTeamCaches()

	utils.Success(c, "Team registered successfully", gin.H{
		"id":                  team.ID,
		"display_id":          team.DisplayID,
		"team_name":           team.TeamName,
		"theme":               team.Theme,
		"selected_for_round2": team.SelectedForRound2,
	})
}

// GetMyTeam 参赛者查看本队信息（含缴费、同意书提交状态）
func GetMyTeam(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var team models.Team
	err := database.DB.Preload("Members").Where("captain_id = ?", user.ID).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 非队长成员也能看到自己所在的队伍
		var member models.TeamMember
		if err := database.DB.Where("email = ?", user.Email).First(&member).Error; err != nil {
			utils.Error(c, 4004, "尚未报名")
			return
		}
		if err := database.DB.Preload("Members").First(&team, member.TeamID).Error; err != nil {
			utils.Error(c, 5000, "服务器开小差了，请稍后重试")
			return
		}
	} else if err != nil {
		utils.Error(c, 5000, "服务器开小差了，请稍后重试")
		return
	}

	var payment models.Payment
	hasPayment := database.DB.Where("team_id = ?", team.ID).First(&payment).Error == nil
	var consent models.ConsentLetter
	hasConsent := database.DB.Where("team_id = ?", team.ID).First(&consent).Error == nil

	resp := mappers.MapTeamToMyTeamResp(team, hasPayment, hasPayment && payment.Verified, hasConsent)
	utils.Success(c, "success", resp)
}
