// file: utils/display_id.go
package utils

import (
	"github.com/google/uuid"
	"strings"
)

const displayIDCharsetLimit = 20

// DeriveDisplayID 由队长邮箱生成人类可读的队伍编号：
// 取 @ 前的本地部分，去掉非字母数字字符并转大写
func DeriveDisplayID(captainEmail string) string {
	local := captainEmail
	if i := strings.Index(captainEmail, "@"); i >= 0 {
		local = captainEmail[:i]
	}

	var sb strings.Builder
	for _, r := range strings.ToUpper(local) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
		if sb.Len() >= displayIDCharsetLimit {
			break
		}
	}
	if sb.Len() == 0 {
		return "TEAM-" + strings.ToUpper(uuid.NewString()[:8])
	}
	return sb.String()
}

// WithCollisionSuffix 编号撞车时追加短随机后缀
func WithCollisionSuffix(displayID string) string {
	return displayID + "-" + strings.ToUpper(uuid.NewString()[:4])
}
