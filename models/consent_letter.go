// file: models/consent_letter.go
package models

import "time"

// ConsentLetter 同意书，按队伍归属（每队一条，可重复上传覆盖）
type ConsentLetter struct {
	ID           uint32    `gorm:"primarykey" json:"id"`
	TeamID       uint32    `gorm:"uniqueIndex;not null" json:"team_id"`
	UploadedBy   uint32    `gorm:"not null" json:"uploaded_by"` // 最近一次上传者
	FileURL      string    `gorm:"size:2048;not null" json:"file_url"`
	FilePublicID string    `gorm:"size:255;not null" json:"file_public_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ConsentLetter) TableName() string {
	return "devolympus_consent_letter"
}
