// file: models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"time"
)

type User struct {
	ID            uint32     `gorm:"primarykey" json:"id"`
	Email         string     `gorm:"size:100;unique;not null" json:"email"`
	Name          string     `gorm:"size:100;not null" json:"name"`
	Image         string     `gorm:"size:512" json:"image,omitempty"`
	Password      string     `gorm:"size:255" json:"-"` // 仅内置管理员账号使用，OAuth 用户为空
	IsAdmin       bool       `gorm:"not null;default:0" json:"is_admin"`
	IsBlocked     bool       `gorm:"not null;default:0" json:"is_blocked"`
	LoggedInTimes uint       `gorm:"not null;default:0" json:"logged_in_times"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "devolympus_user"
}

// BeforeSave GORM Hook，管理员账号保存前自动哈希密码
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.Password == "" {
		return nil
	}
	if u.ID == 0 || tx.Statement.Changed("Password") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return
}

// CheckPassword 校验密码是否正确
func (u *User) CheckPassword(password string) bool {
	if u.Password == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
