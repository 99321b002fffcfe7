// file: services/submission_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"DevOlympus/config"
	"DevOlympus/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxConsentFileSize = 5 << 20 // 5 MiB

// 同意书允许的文件类型
var consentAllowedTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// PaymentResult AlreadySubmitted 为 true 表示此前已交过，本次为幂等短路
type PaymentResult struct {
	Payment          *models.Payment
	AlreadySubmitted bool
}

// findTeamOfPrincipal 找到用户所属队伍：优先按队长，其次按成员邮箱
func findTeamOfPrincipal(db *gorm.DB, principal models.User) (*models.Team, *WorkflowError) {
	var team models.Team
	err := db.Where("captain_id = ?", principal.ID).First(&team).Error
	if err == nil {
		return &team, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, upstreamError(err)
	}

	var member models.TeamMember
	if err := db.Where("email = ?", principal.Email).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("尚未报名，找不到所属队伍")
		}
		return nil, upstreamError(err)
	}
	if err := db.First(&team, member.TeamID).Error; err != nil {
		return nil, upstreamError(err)
	}
	return &team, nil
}

// SubmitPayment 缴费提交：队伍必须已入选 Round 2，每队只允许一次。
// 截图先上传到资源存储（key 由队伍 ID 推导），成功后再写缴费行，
// 两步串行执行，保证行里引用的 URL 一定存在
func SubmitPayment(db *gorm.DB, uploader AssetUploader, principal models.User, senderName, mobileNumber, contentType string, screenshot []byte) (*PaymentResult, *WorkflowError) {
	team, werr := findTeamOfPrincipal(db, principal)
	if werr != nil {
		return nil, werr
	}

	if team.SelectedForRound2 != models.Round2Selected {
		return nil, conflictError(3011, "队伍未入选 Round 2，暂不能缴费")
	}

	var existing models.Payment
	if err := db.Where("team_id = ?", team.ID).First(&existing).Error; err == nil {
		return &PaymentResult{Payment: &existing, AlreadySubmitted: true}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, upstreamError(err)
	}

	fields := make(map[string]string)
	if strings.TrimSpace(senderName) == "" {
		fields["sender_name"] = "该字段不能为空"
	}
	if strings.TrimSpace(mobileNumber) == "" {
		fields["mobile_number"] = "该字段不能为空"
	}
	if len(screenshot) == 0 {
		fields["screenshot"] = "缴费截图不能为空"
	}
	if len(fields) > 0 {
		return nil, validationError("表单校验未通过", fields)
	}

	result, err := uploader.Upload(context.Background(), "payments", fmt.Sprintf("team_%d", team.ID), contentType, screenshot)
	if err != nil {
		return nil, upstreamError(err)
	}

	payment := models.Payment{
		TeamID:             team.ID,
		SenderName:         senderName,
		MobileNumber:       mobileNumber,
		ScreenshotURL:      result.URL,
		ScreenshotPublicID: result.PublicID,
	}
	if err := db.Create(&payment).Error; err != nil {
		// 并发下撞上 team_id 唯一索引：按已提交处理，不覆盖已有记录
		if isDuplicateKeyError(err) {
			if db.Where("team_id = ?", team.ID).First(&existing).Error == nil {
				return &PaymentResult{Payment: &existing, AlreadySubmitted: true}, nil
			}
		}
		return nil, upstreamError(err)
	}

	return &PaymentResult{Payment: &payment, AlreadySubmitted: false}, nil
}

// VerifyPayment 管理员核验缴费，受配置总闸控制
func VerifyPayment(db *gorm.DB, cfg config.Config, admin models.User, teamID uint32, verified bool) (*models.Payment, *WorkflowError) {
	if !admin.IsAdmin {
		return nil, unauthorizedError("权限不足")
	}
	if !cfg.PaymentVerificationEnabled {
		return nil, unauthorizedError("缴费核验功能当前已关闭")
	}

	var payment models.Payment
	if err := db.Where("team_id = ?", teamID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("该队伍尚未提交缴费记录")
		}
		return nil, upstreamError(err)
	}

	if err := db.Model(&payment).Update("verified", verified).Error; err != nil {
		return nil, upstreamError(err)
	}
	payment.Verified = verified
	return &payment, nil
}

// UploadConsentLetter 同意书上传：与缴费不同，允许重复上传覆盖旧文件
func UploadConsentLetter(db *gorm.DB, uploader AssetUploader, principal models.User, contentType string, size int64, file []byte) (*models.ConsentLetter, *WorkflowError) {
	if !consentAllowedTypes[contentType] {
		return nil, validationError("表单校验未通过", map[string]string{"file": "仅支持 PDF / JPEG / PNG"})
	}
	if size <= 0 || int64(len(file)) == 0 {
		return nil, validationError("表单校验未通过", map[string]string{"file": "文件不能为空"})
	}
	if size > maxConsentFileSize || int64(len(file)) > maxConsentFileSize {
		return nil, validationError("表单校验未通过", map[string]string{"file": "文件大小不能超过 5MB"})
	}

	team, werr := findTeamOfPrincipal(db, principal)
	if werr != nil {
		return nil, werr
	}
	if team.SelectedForRound2 != models.Round2Selected {
		return nil, conflictError(3011, "队伍未入选 Round 2，暂不能上传同意书")
	}

	result, err := uploader.Upload(context.Background(), "consents", fmt.Sprintf("team_%d", team.ID), contentType, file)
	if err != nil {
		return nil, upstreamError(err)
	}

	letter := models.ConsentLetter{
		TeamID:       team.ID,
		UploadedBy:   principal.ID,
		FileURL:      result.URL,
		FilePublicID: result.PublicID,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "team_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"uploaded_by", "file_url", "file_public_id", "updated_at"}),
	}).Create(&letter).Error; err != nil {
		return nil, upstreamError(err)
	}

	if err := db.Where("team_id = ?", team.ID).First(&letter).Error; err != nil {
		return nil, upstreamError(err)
	}
	return &letter, nil
}
