// file: models/payment.go
package models

import "time"

// Payment 对应 devolympus_payment 表，每队至多一条（team_id 唯一索引兜底）
type Payment struct {
	ID                 uint32    `gorm:"primarykey" json:"id"`
	TeamID             uint32    `gorm:"uniqueIndex;not null" json:"team_id"`
	SenderName         string    `gorm:"size:100;not null" json:"sender_name"`
	MobileNumber       string    `gorm:"size:15;not null" json:"mobile_number"`
	ScreenshotURL      string    `gorm:"size:2048;not null" json:"screenshot_url"`
	ScreenshotPublicID string    `gorm:"size:255;not null" json:"screenshot_public_id"`
	Verified           bool      `gorm:"not null;default:0" json:"verified"` // 仅管理员可修改
	CreatedAt          time.Time `json:"created_at"`
}

func (Payment) TableName() string {
	return "devolympus_payment"
}
