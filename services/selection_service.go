// file: services/selection_service.go
package services

import (
	"errors"
	"time"

	"DevOlympus/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NormalizeRound2Status null 按 not_decided 处理
func NormalizeRound2Status(status *string) models.Round2Status {
	if status == nil || *status == "" {
		return models.Round2NotDecided
	}
	return models.Round2Status(*status)
}

// UpdateRound2Status 管理员修改队伍的 Round 2 晋级状态。
// 任意状态之间都允许切换（包括改回 not_decided）。
// 状态覆写和日志追加放在同一条 UPDATE 里，行锁防止并发管理员互相丢日志
func UpdateRound2Status(db *gorm.DB, teamID uint32, newStatus models.Round2Status, admin models.User) (*models.Team, *WorkflowError) {
	if !admin.IsAdmin {
		return nil, unauthorizedError("权限不足")
	}
	if !models.IsValidRound2Status(newStatus) {
		return nil, validationError("无效的晋级状态", map[string]string{"status": "必须是 not_decided / selected / rejected 之一"})
	}

	var team models.Team
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&team, teamID).Error; err != nil {
			return err
		}

		entry := models.StatusChangeLog{
			ChangedAt:      time.Now(),
			AdminID:        admin.ID,
			AdminName:      admin.Name,
			AdminEmail:     admin.Email,
			PreviousStatus: team.SelectedForRound2,
			NewStatus:      newStatus,
		}
		logs := append(team.StatusChangeLogs, entry)

		if err := tx.Model(&team).
			Select("SelectedForRound2", "StatusChangeLogs").
			Updates(models.Team{SelectedForRound2: newStatus, StatusChangeLogs: logs}).Error; err != nil {
			return err
		}

		team.SelectedForRound2 = newStatus
		team.StatusChangeLogs = logs
		return nil
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("队伍不存在")
		}
		return nil, upstreamError(err)
	}
	return &team, nil
}

// GetStatusLogs 返回队伍当前状态及完整变更历史，仅管理员可读
func GetStatusLogs(db *gorm.DB, teamID uint32, admin models.User) (models.Round2Status, []models.StatusChangeLog, *WorkflowError) {
	if !admin.IsAdmin {
		return "", nil, unauthorizedError("权限不足")
	}

	var team models.Team
	if err := db.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, notFoundError("队伍不存在")
		}
		return "", nil, upstreamError(err)
	}

	logs := team.StatusChangeLogs
	if logs == nil {
		logs = []models.StatusChangeLog{}
	}
	return team.SelectedForRound2, logs, nil
}
