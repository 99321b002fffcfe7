// file: controllers/event_controller.go
package controllers

import (
	"DevOlympus/database"
	"DevOlympus/models"
	"DevOlympus/utils"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// GetEventInfo 活动主页信息：基础资料 + 报名窗口状态 + 报名队伍数，短缓存 60 秒
func GetEventInfo(c *gin.Context) {
	if val, err := database.RDB.Get(database.Ctx, "event:info").Result(); err == nil {
		var cached gin.H
		if json.Unmarshal([]byte(val), &cached) == nil {
			utils.Success(c, "success (from cache)", cached)
			return
		}
	}

	var event models.EventInfo
	if err := database.DB.First(&event, 1).Error; err != nil {
		utils.Error(c, 4004, "No active event found")
		return
	}

	var teamCount int64
	database.DB.Model(&models.Team{}).Count(&teamCount)

	now := time.Now()
	data := gin.H{
		"event_name":            event.EventName,
		"tagline":               event.Tagline,
		"description":           event.Description,
		"venue":                 event.Venue,
		"cover_image":           event.CoverImage,
		"start_time":            event.StartTime.Format("2006-01-02 15:04:05"),
		"end_time":              event.EndTime.Format("2006-01-02 15:04:05"),
		"organizer_url":         event.OrganizerURL,
		"status":                event.CurrentStatus(now),
		"registration_open":     appConfig.RegistrationWindowOpen(now),
		"registration_deadline": appConfig.RegistrationDeadline.Format("2006-01-02 15:04:05"),
		"team_count":            teamCount,
	}

	if jsonData, err := json.Marshal(data); err == nil {
		database.RDB.Set(database.Ctx, "event:info", jsonData, 60*time.Second)
	}

	utils.Success(c, "success", data)
}

// UpsertEventInfo 创建或修改活动信息（固定 ID=1 单行）
func UpsertEventInfo(c *gin.Context) {
	var req models.EventInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "参数无效: "+err.Error())
		return
	}

	req.ID = 1
	if err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"event_name", "tagline", "description", "venue", "cover_image", "start_time", "end_time", "organizer_url"}),
	}).Create(&req).Error; err != nil {
		utils.Error(c, 5000, "Failed to create/update event: "+err.Error())
		return
	}

	database.RDB.Del(database.Ctx, "event:info")
	utils.Success(c, "Event created/updated successfully", nil)
}
