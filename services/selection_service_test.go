// file: services/selection_service_test.go
package services

/*
晋级状态工作流测试：
	1. 每次变更日志长度恰好 +1，previous_status 等于变更前的状态
	2. rejected -> selected 的往返切换（任意状态可达）
	3. 非管理员拒绝，队伍不存在返回 not found
	4. null 状态归一化为 not_decided
*/

import (
	"testing"

	"DevOlympus/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTeam(t *testing.T, db *gorm.DB, captain models.User) models.Team {
	t.Helper()
	team := models.Team{
		DisplayID:         "ALPHA",
		TeamName:          "Alpha",
		PresentationURL:   "https://slides.example.com/alpha",
		Theme:             models.ThemeFintech,
		SelectedForRound2: models.Round2NotDecided,
		StatusChangeLogs:  []models.StatusChangeLog{},
		CaptainID:         captain.ID,
	}
	require.NoError(t, db.Create(&team).Error)
	return team
}

func TestUpdateRound2Status_AppendsLog(t *testing.T) {
	db := setupTestDB(t)
	admin := seedUser(t, db, "admin@devolympus.in", "Admin", true)
	captain := seedUser(t, db, "rohan@college.edu", "Rohan Mehta", false)
	team := seedTeam(t, db, captain)

	updated, werr := UpdateRound2Status(db, team.ID, models.Round2Rejected, admin)
	require.Nil(t, werr)
	require.Len(t, updated.StatusChangeLogs, 1)
	assert.Equal(t, models.Round2NotDecided, updated.StatusChangeLogs[0].PreviousStatus)
	assert.Equal(t, models.Round2Rejected, updated.StatusChangeLogs[0].NewStatus)
	assert.Equal(t, admin.Email, updated.StatusChangeLogs[0].AdminEmail)

	updated, werr = UpdateRound2Status(db, team.ID, models.Round2Selected, admin)
	require.Nil(t, werr)
	require.Len(t, updated.StatusChangeLogs, 2)
	assert.Equal(t, models.Round2Rejected, updated.StatusChangeLogs[1].PreviousStatus)
	assert.Equal(t, models.Round2Selected, updated.StatusChangeLogs[1].NewStatus)

	// 重新读库确认状态和日志都持久化了
	var fresh models.Team
	require.NoError(t, db.First(&fresh, team.ID).Error)
	assert.Equal(t, models.Round2Selected, fresh.SelectedForRound2)
	assert.Len(t, fresh.StatusChangeLogs, 2)
}

func TestUpdateRound2Status_NonAdmin(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "rohan@college.edu", "Rohan Mehta", false)
	team := seedTeam(t, db, user)

	_, werr := UpdateRound2Status(db, team.ID, models.Round2Selected, user)
	require.NotNil(t, werr)
	assert.Equal(t, KindUnauthorized, werr.Kind)
	assert.Equal(t, 4003, werr.Code)
}

func TestUpdateRound2Status_TeamNotFound(t *testing.T) {
	db := setupTestDB(t)
	admin := seedUser(t, db, "admin@devolympus.in", "Admin", true)

	_, werr := UpdateRound2Status(db, 9999, models.Round2Selected, admin)
	require.NotNil(t, werr)
	assert.Equal(t, KindNotFound, werr.Kind)
}

func TestUpdateRound2Status_InvalidStatus(t *testing.T) {
	db := setupTestDB(t)
	admin := seedUser(t, db, "admin@devolympus.in", "Admin", true)
	captain := seedUser(t, db, "rohan@college.edu", "Rohan Mehta", false)
	team := seedTeam(t, db, captain)

	_, werr := UpdateRound2Status(db, team.ID, models.Round2Status("maybe"), admin)
	require.NotNil(t, werr)
	assert.Equal(t, KindValidationFailed, werr.Kind)
}

func TestNormalizeRound2Status(t *testing.T) {
	assert.Equal(t, models.Round2NotDecided, NormalizeRound2Status(nil))

	empty := ""
	assert.Equal(t, models.Round2NotDecided, NormalizeRound2Status(&empty))

	selected := "selected"
	assert.Equal(t, models.Round2Selected, NormalizeRound2Status(&selected))
}

func TestGetStatusLogs(t *testing.T) {
	db := setupTestDB(t)
	admin := seedUser(t, db, "admin@devolympus.in", "Admin", true)
	user := seedUser(t, db, "rohan@college.edu", "Rohan Mehta", false)
	team := seedTeam(t, db, user)

	_, werr := UpdateRound2Status(db, team.ID, models.Round2Selected, admin)
	require.Nil(t, werr)

	status, logs, werr := GetStatusLogs(db, team.ID, admin)
	require.Nil(t, werr)
	assert.Equal(t, models.Round2Selected, status)
	require.Len(t, logs, 1)
	assert.Equal(t, models.Round2NotDecided, logs[0].PreviousStatus)

	_, _, werr = GetStatusLogs(db, team.ID, user)
	require.NotNil(t, werr)
	assert.Equal(t, KindUnauthorized, werr.Kind)
}
