// file: controllers/admin_team_controller.go
package controllers

import (
	"DevOlympus/database"
	"DevOlympus/dto"
	"DevOlympus/mappers"
	"DevOlympus/models"
	"DevOlympus/services"
	"DevOlympus/utils"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// 列表排序白名单，防 SQL 注入
var teamSortColumns = map[string]string{
	"created_at": "created_at",
	"team_name":  "team_name",
	"status":     "selected_for_round2",
}

type adminTeamListResp struct {
	Total int64                   `json:"total"`
	Teams []dto.AdminTeamItemResp `json:"teams"`
}

// AdminGetTeams 管理端队伍列表：搜索 + 主题/状态/缴费筛选 + 排序 + 分页，
// 结果短缓存 15 秒（写操作会统一清掉 teams:* 键）
func AdminGetTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	search := c.Query("search")
	theme := c.Query("theme")
	status := c.Query("status")
	payment := c.Query("payment")
	sortBy := c.DefaultQuery("sort", "created_at")
	order := c.DefaultQuery("order", "desc")
	if order != "asc" && order != "desc" {
		order = "desc"
	}
	sortColumn, ok := teamSortColumns[sortBy]
	if !ok {
		sortColumn = "created_at"
	}

	cacheKey := fmt.Sprintf("teams:admin:%d:%d:%s:%s:%s:%s:%s:%s", page, limit, search, theme, status, payment, sortColumn, order)
	if val, err := database.RDB.Get(database.Ctx, cacheKey).Result(); err == nil {
		var cached adminTeamListResp
		if json.Unmarshal([]byte(val), &cached) == nil {
			utils.Success(c, "success (from cache)", cached)
			return
		}
	}

	db := database.DB.Model(&models.Team{}).Preload("Captain").Preload("Members")

	if search != "" {
		like := "%" + search + "%"
		db = db.Where("team_name LIKE ? OR display_id LIKE ? OR captain_id IN (?)",
			like, like, database.DB.Model(&models.User{}).Select("id").Where("email LIKE ?", like))
	}
	if theme != "" {
		db = db.Where("theme = ?", theme)
	}
	if status != "" {
		db = db.Where("selected_for_round2 = ?", status)
	}
	switch payment {
	case "submitted":
		db = db.Where("id IN (?)", database.DB.Model(&models.Payment{}).Select("team_id"))
	case "verified":
		db = db.Where("id IN (?)", database.DB.Model(&models.Payment{}).Select("team_id").Where("verified = ?", true))
	case "missing":
		db = db.Where("id NOT IN (?)", database.DB.Model(&models.Payment{}).Select("team_id"))
	}

	var total int64
	db.Count(&total)

	var teams []models.Team
	db.Order(sortColumn + " " + order).Offset((page - 1) * limit).Limit(limit).Find(&teams)

	resultTeams := make([]dto.AdminTeamItemResp, 0, len(teams))
	for _, team := range teams {
		var pay models.Payment
		hasPayment := database.DB.Where("team_id = ?", team.ID).First(&pay).Error == nil
		var consentCount int64
		database.DB.Model(&models.ConsentLetter{}).Where("team_id = ?", team.ID).Count(&consentCount)

		resultTeams = append(resultTeams, mappers.MapTeamToAdminItemResp(team, hasPayment, hasPayment && pay.Verified, consentCount > 0))
	}

	resp := adminTeamListResp{Total: total, Teams: resultTeams}
	if jsonData, err := json.Marshal(resp); err == nil {
		database.RDB.Set(database.Ctx, cacheKey, jsonData, 15*time.Second)
	}

	utils.Success(c, "success", resp)
}

// AdminGetTeamDetail 队伍详情：成员、状态日志、缴费与同意书
func AdminGetTeamDetail(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	var team models.Team
	if err := database.DB.Preload("Captain").Preload("Members").First(&team, teamID).Error; err != nil {
		utils.Error(c, 4004, "队伍不存在")
		return
	}

	var payment models.Payment
	hasPayment := database.DB.Where("team_id = ?", team.ID).First(&payment).Error == nil
	var consent models.ConsentLetter
	hasConsent := database.DB.Where("team_id = ?", team.ID).First(&consent).Error == nil

	data := gin.H{
		"team": team,
	}
	if hasPayment {
		data["payment"] = payment
	}
	if hasConsent {
		data["consent_letter"] = consent
	}
	utils.Success(c, "success", data)
}

// AdminUpdateRound2Status 修改晋级状态并追加变更日志
func AdminUpdateRound2Status(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	admin, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.UpdateRound2StatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	newStatus := services.NormalizeRound2Status(req.Status)
	team, werr := services.UpdateRound2Status(database.DB, uint32(teamID), newStatus, *admin)
	if werr != nil {
		respondWorkflowError(c, werr)
		return
	}

	database.InvalidateTeamCaches()

	utils.Success(c, "Team status updated successfully", gin.H{
		"team_id":             team.ID,
		"selected_for_round2": team.SelectedForRound2,
		"log_count":           len(team.StatusChangeLogs),
	})
}

// AdminGetStatusLogs 查看状态变更历史
func AdminGetStatusLogs(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	admin, ok := currentUser(c)
	if !ok {
		return
	}

	status, logs, werr := services.GetStatusLogs(database.DB, uint32(teamID), *admin)
	if werr != nil {
		respondWorkflowError(c, werr)
		return
	}

	utils.Success(c, "success", gin.H{
		"selected_for_round2": status,
		"logs":                logs,
	})
}

// AdminVerifyPayment 核验缴费记录
func AdminVerifyPayment(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "无效的队伍ID")
		return
	}

	admin, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.VerifyPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	payment, werr := services.VerifyPayment(database.DB, appConfig, *admin, uint32(teamID), *req.Verified)
	if werr != nil {
		respondWorkflowError(c, werr)
		return
	}

	database.InvalidateTeamCaches()

	utils.Success(c, "Payment verification updated", gin.H{
		"team_id":  payment.TeamID,
		"verified": payment.Verified,
	})
}
