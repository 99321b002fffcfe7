// file: services/registration_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"DevOlympus/config"
	"DevOlympus/dto"
	"DevOlympus/models"
	"DevOlympus/utils"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var registrationValidator = validator.New()

// ValidateRegistration 对报名表单做逐字段校验，返回 字段 -> 错误描述 的映射。
// 映射为空表示校验通过
func ValidateRegistration(cfg config.Config, req dto.RegisterTeamReq) map[string]string {
	fields := make(map[string]string)

	if err := registrationValidator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fieldKey(fe)] = fieldMessage(fe)
			}
		} else {
			fields["_"] = "参数无效"
		}
	}

	if len(req.Members) < cfg.MinTeamSize || len(req.Members) > cfg.MaxTeamSize {
		fields["members"] = fmt.Sprintf("团队人数必须在 %d 到 %d 之间", cfg.MinTeamSize, cfg.MaxTeamSize)
	}

	if req.Theme != "" && !models.IsValidTheme(models.TeamTheme(req.Theme)) {
		fields["theme"] = "主题不在可选范围内"
	}

	for i, m := range req.Members {
		if m.Phone != "" && strings.HasPrefix(m.Phone, "-") {
			fields[fmt.Sprintf("members[%d].phone", i)] = "手机号必须为正数"
		}
	}

	return fields
}

// fieldKey 把 validator 的命名空间转成前端可用的字段名，
// 如 RegisterTeamReq.Members[0].Email -> members[0].email
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	parts := strings.Split(ns, ".")
	for i, p := range parts {
		parts[i] = snakeCase(p)
	}
	return strings.Join(parts, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "该字段不能为空"
	case "email":
		return "邮箱格式不正确"
	case "url":
		return "必须是合法的 URL"
	case "number":
		return "必须是数字"
	default:
		return "该字段不合法"
	}
}

func snakeCase(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '[' {
				prev := rune(s[i-1])
				if prev < 'A' || prev > 'Z' {
					sb.WriteByte('_')
				}
			}
			sb.WriteRune(r - 'A' + 'a')
			continue
		}
		sb.WriteRune(r)
	}
	return strings.TrimPrefix(sb.String(), "_")
}

// summarizeFieldErrors 汇总出一条给用户看的整体提示
func summarizeFieldErrors(fields map[string]string) string {
	return fmt.Sprintf("表单校验未通过，共 %d 处错误", len(fields))
}

// RegisterTeam 队伍报名工作流。按顺序检查：报名窗口、表单、重复报名、
// 队内邮箱互斥、跨队邮箱占用，全部通过后在单个事务里创建队伍与成员。
// 唯一索引兜底并发下的重复提交
func RegisterTeam(db *gorm.DB, cfg config.Config, principal models.User, req dto.RegisterTeamReq) (*models.Team, *WorkflowError) {
	if !cfg.RegistrationWindowOpen(time.Now()) {
		return nil, conflictError(3010, "报名已截止")
	}

	if fields := ValidateRegistration(cfg, req); len(fields) > 0 {
		return nil, validationError(summarizeFieldErrors(fields), fields)
	}

	// 队长邮箱必须出现在成员名单里，对应行标记为 lead
	leadIndex := -1
	for i, m := range req.Members {
		if strings.EqualFold(m.Email, principal.Email) {
			leadIndex = i
			break
		}
	}
	if leadIndex < 0 {
		return nil, validationError("表单校验未通过", map[string]string{
			"members": "成员名单必须包含队长本人的邮箱",
		})
	}

	// 是否已拥有或已加入队伍
	var count int64
	if err := db.Model(&models.Team{}).Where("captain_id = ?", principal.ID).Count(&count).Error; err != nil {
		return nil, upstreamError(err)
	}
	if count == 0 {
		if err := db.Model(&models.TeamMember{}).Where("email = ?", principal.Email).Count(&count).Error; err != nil {
			return nil, upstreamError(err)
		}
	}
	if count > 0 {
		return nil, conflictError(3001, "该账号已完成报名")
	}

	// 队内邮箱互斥
	seen := make(map[string]bool, len(req.Members))
	for _, m := range req.Members {
		email := strings.ToLower(m.Email)
		if seen[email] {
			return nil, conflictError(3002, "成员邮箱重复: "+m.Email)
		}
		seen[email] = true
	}

	// 跨队邮箱占用
	emails := make([]string, 0, len(req.Members))
	for _, m := range req.Members {
		emails = append(emails, m.Email)
	}
	var taken models.TeamMember
	if err := db.Where("email IN ?", emails).First(&taken).Error; err == nil {
		var other models.Team
		teamName := ""
		if db.First(&other, taken.TeamID).Error == nil {
			teamName = other.TeamName
		}
		return nil, conflictError(3003, fmt.Sprintf("成员 %s 已属于队伍 %s", taken.Email, teamName))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, upstreamError(err)
	}

	displayID := utils.DeriveDisplayID(principal.Email)
	var existing models.Team
	if err := db.Where("display_id = ?", displayID).First(&existing).Error; err == nil {
		displayID = utils.WithCollisionSuffix(displayID)
	}

	newTeam := models.Team{
		DisplayID:         displayID,
		TeamName:          req.TeamName,
		PresentationURL:   req.PresentationURL,
		Theme:             models.TeamTheme(req.Theme),
		SelectedForRound2: models.Round2NotDecided,
		StatusChangeLogs:  []models.StatusChangeLog{},
		CaptainID:         principal.ID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newTeam).Error; err != nil {
			return err
		}
		for i, m := range req.Members {
			member := models.TeamMember{
				TeamID: newTeam.ID,
				Name:   m.Name,
				Email:  m.Email,
				RollNo: m.RollNo,
				Phone:  m.Phone,
				IsLead: i == leadIndex,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		// 并发提交撞上唯一索引时归类为冲突，而不是服务器错误
		if isDuplicateKeyError(err) {
			return nil, conflictError(3001, "该账号已完成报名")
		}
		return nil, upstreamError(err)
	}

	if err := db.Preload("Members").First(&newTeam, newTeam.ID).Error; err != nil {
		return nil, upstreamError(err)
	}
	return &newTeam, nil
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
