// file: models/team.go
package models

import (
	"time"
)

// 自定义主题与晋级状态类型
type TeamTheme string
type Round2Status string

const (
	ThemeFintech        TeamTheme = "fintech"
	ThemeHealthtech     TeamTheme = "healthtech"
	ThemeEdtech         TeamTheme = "edtech"
	ThemeSustainability TeamTheme = "sustainability"
	ThemeOpenInnovation TeamTheme = "open-innovation"

	Round2NotDecided Round2Status = "not_decided"
	Round2Selected   Round2Status = "selected"
	Round2Rejected   Round2Status = "rejected"
)

// AllThemes 注册表单主题的固定取值
var AllThemes = []TeamTheme{
	ThemeFintech,
	ThemeHealthtech,
	ThemeEdtech,
	ThemeSustainability,
	ThemeOpenInnovation,
}

// IsValidTheme 校验主题是否在固定枚举内
func IsValidTheme(t TeamTheme) bool {
	for _, v := range AllThemes {
		if v == t {
			return true
		}
	}
	return false
}

// IsValidRound2Status 校验晋级状态取值
func IsValidRound2Status(s Round2Status) bool {
	return s == Round2NotDecided || s == Round2Selected || s == Round2Rejected
}

// StatusChangeLog 晋级状态变更记录，以 JSON 数组内嵌在队伍行中，只追加不修改
type StatusChangeLog struct {
	ChangedAt      time.Time    `json:"changed_at"`
	AdminID        uint32       `json:"admin_id"`
	AdminName      string       `json:"admin_name"`
	AdminEmail     string       `json:"admin_email"`
	PreviousStatus Round2Status `json:"previous_status"`
	NewStatus      Round2Status `json:"new_status"`
}

type Team struct {
	ID                uint32            `gorm:"primarykey" json:"id"`
	DisplayID         string            `gorm:"size:64;unique;not null" json:"display_id"`
	TeamName          string            `gorm:"size:100;not null" json:"team_name"`
	PresentationURL   string            `gorm:"size:2048;not null" json:"presentation_url"`
	Theme             TeamTheme         `gorm:"type:enum('fintech','healthtech','edtech','sustainability','open-innovation');not null" json:"theme"`
	SelectedForRound2 Round2Status      `gorm:"type:enum('not_decided','selected','rejected');not null;default:'not_decided'" json:"selected_for_round2"`
	StatusChangeLogs  []StatusChangeLog `gorm:"type:json;serializer:json" json:"status_change_logs"`
	CaptainID         uint32            `gorm:"uniqueIndex;not null" json:"captain_id"` // 每个用户至多一支队伍，由唯一索引兜底
	Captain           User              `gorm:"foreignKey:CaptainID" json:"captain"`
	Members           []TeamMember      `gorm:"foreignKey:TeamID" json:"members"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func (Team) TableName() string {
	return "devolympus_team"
}
