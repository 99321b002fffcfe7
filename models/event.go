// file: models/event.go
package models

import (
	"time"
)

// EventStatus 活动状态
type EventStatus string

const (
	EventStatusPreparing EventStatus = "preparing"
	EventStatusRunning   EventStatus = "running"
	EventStatusEnded     EventStatus = "ended"
)

// EventInfo 对应 devolympus_event 表，固定使用 ID=1 的单行保存活动主页信息
type EventInfo struct {
	ID           uint        `gorm:"primarykey" json:"id,omitempty"`
	EventName    string      `gorm:"size:100;not null" json:"event_name"`
	Tagline      string      `gorm:"size:255" json:"tagline"`
	Description  string      `gorm:"type:text" json:"description"`
	Venue        string      `gorm:"size:255" json:"venue"`
	CoverImage   string      `gorm:"size:255" json:"cover_image"`
	StartTime    time.Time   `gorm:"not null" json:"start_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime      time.Time   `gorm:"not null" json:"end_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	OrganizerURL string      `gorm:"size:255" json:"organizer_url"`
	Status       EventStatus `gorm:"type:enum('preparing','running','ended');default:'preparing'" json:"status,omitempty"`
	CreatedAt    time.Time   `json:"created_at,omitempty"`
	UpdatedAt    time.Time   `json:"updated_at,omitempty"`
}

func (EventInfo) TableName() string {
	return "devolympus_event"
}

// CurrentStatus 按当前时间计算活动状态
func (e EventInfo) CurrentStatus(now time.Time) EventStatus {
	if now.Before(e.StartTime) {
		return EventStatusPreparing
	}
	if now.After(e.EndTime) {
		return EventStatusEnded
	}
	return EventStatusRunning
}
