// file: models/team_member.go
package models

import "time"

type TeamMember struct {
	ID        uint32    `gorm:"primarykey" json:"id"`
	TeamID    uint32    `gorm:"index;not null" json:"team_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"` // 全局唯一，一个成员只能出现在一支队伍
	RollNo    string    `gorm:"size:50;not null" json:"roll_no"`
	Phone     string    `gorm:"size:15;not null" json:"phone"`
	IsLead    bool      `gorm:"not null;default:0" json:"is_lead"` // 每队恰好一个 true
	CreatedAt time.Time `json:"created_at"`
}

func (TeamMember) TableName() string {
	return "devolympus_team_members"
}
