// file: services/auth_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"DevOlympus/config"
	"DevOlympus/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleProfile 身份提供方在登录成功后给到的信息
type GoogleProfile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// OAuthConfig 构造 Google OAuth 配置
func OAuthConfig(cfg config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.OAuthClientID,
		ClientSecret: cfg.OAuthClientSecret,
		RedirectURL:  cfg.OAuthRedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// FetchGoogleProfile 用授权码换取 token 并拉取用户信息
func FetchGoogleProfile(ctx context.Context, conf *oauth2.Config, code string) (*GoogleProfile, error) {
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	resp, err := conf.Client(ctx, token).Get(googleUserinfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("userinfo endpoint returned " + resp.Status)
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	if profile.Email == "" {
		return nil, errors.New("userinfo response missing email")
	}
	return &profile, nil
}

// LoginWithProfile 首次登录建档，之后每次登录累加计数并刷新时间；封禁用户拒绝登录
func LoginWithProfile(db *gorm.DB, profile GoogleProfile) (*models.User, *WorkflowError) {
	now := time.Now()

	var user models.User
	err := db.Where("email = ?", profile.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Email:         profile.Email,
			Name:          profile.Name,
			Image:         profile.Picture,
			LoggedInTimes: 1,
			LastLogin:     &now,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, upstreamError(err)
		}
		return &user, nil
	}
	if err != nil {
		return nil, upstreamError(err)
	}

	if user.IsBlocked {
		return nil, &WorkflowError{Kind: KindUnauthorized, Code: 2005, Msg: "用户已被封禁"}
	}

	updates := map[string]interface{}{
		"logged_in_times": gorm.Expr("logged_in_times + 1"),
		"last_login":      now,
		"name":            profile.Name,
		"image":           profile.Picture,
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return nil, upstreamError(err)
	}
	user.LoggedInTimes++
	user.LastLogin = &now
	return &user, nil
}

// AdminLogin 内置管理员的邮箱密码登录（OAuth 之外的兜底入口）
func AdminLogin(db *gorm.DB, email, password string) (*models.User, *WorkflowError) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, &WorkflowError{Kind: KindUnauthorized, Code: 2002, Msg: "用户不存在或密码错误"}
	}
	if !user.CheckPassword(password) {
		return nil, &WorkflowError{Kind: KindUnauthorized, Code: 2002, Msg: "用户不存在或密码错误"}
	}
	if !user.IsAdmin {
		return nil, unauthorizedError("权限不足")
	}
	if user.IsBlocked {
		return nil, &WorkflowError{Kind: KindUnauthorized, Code: 2005, Msg: "用户已被封禁"}
	}

	now := time.Now()
	db.Model(&user).Updates(map[string]interface{}{
		"logged_in_times": gorm.Expr("logged_in_times + 1"),
		"last_login":      now,
	})
	return &user, nil
}
