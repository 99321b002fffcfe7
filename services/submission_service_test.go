// file: services/submission_service_test.go
package services

/*
缴费与同意书工作流测试：
	1. 入选后缴费成功，verified 默认 false
	2. 重复缴费幂等短路：返回 already_submitted，不新增行、不覆盖、不再上传
	3. 未入选不能缴费/传同意书
	4. 管理员核验：开关关闭拒绝、非管理员拒绝、无缴费记录 not found
	5. 同意书：类型白名单、大小上限、重复上传覆盖同一行
*/

import (
	"testing"

	"DevOlympus/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSelectedTeam(t *testing.T, db *gorm.DB, captain models.User) models.Team {
	t.Helper()
	team := seedTeam(t, db, captain)
	require.NoError(t, db.Model(&team).Update("selected_for_round2", models.Round2Selected).Error)
	team.SelectedForRound2 = models.Round2Selected
	return team
}

func TestSubmitPayment_SuccessAndIdempotent(t *testing.T) {
	db := setupTestDB(t)
	captain := seedUser(t, db, "rohan@college.edu", "Rohan Mehta", false)
	team := seedSelectedTeam(t, db, captain)
	uploader := &fakeUploader{}

	screenshot := []byte("fake-png-bytes")
	result, werr := SubmitPayment(db, uploader, captain, "A B", "9999999999", "image/png", screenshot)
	require.Nil(t, werr)
	assert.False(t, result.AlreadySubmitted)
	assert.False(t, result.Payment.Verified)
	assert.Equal(t, team.ID, result.Payment.TeamID)
	assert.Equal(t, "https://assets.example.com/payments/team_1", result.Payment.ScreenshotURL)
	assert.Equal(t, 1, uploader.calls)

	// 重复提交：返回已提交标记，原行不变，不再触发上传
	again, werr := SubmitPayment(db, uploader, captain, "Someone Else", "1111111111", "image/png", screenshot)
	require.Nil(t, werr)
	assert.True(t, again.AlreadySubmitted)
	assert.Equal(t, result.Payment.ID, again.Payment.ID)
	assert.Equal(t, "A B", again.Payment.SenderName)
	assert.Equal(t, 1, uploader.calls)

	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitPayment_NotSelected(t *testing.T) {
	db := setupTestDB(t)
	captain := seedUser(t, db, "rohan@college.edu", "Rohan Mehta", false)
	seedTeam(t, db, captain) // 仍是 not_decided

	_, werr := SubmitPayment(db, &fakeUploader{}, captain, "A B", "9999999999", "image/png", []byte("x"))
	require.NotNil(t, werr)
	assert.Equal(t, 3011, werr.Code)
}

func TestSubmitPayment_MissingFields(t *testing.T) {
	db := setupTestDB(t)
	captain := seedUser(t, db, "rohan@college.edu", "Rohan Mehta", false)
	seedSelectedTeam(t, db, captain)

	_, werr := SubmitPayment(db, &fakeUploader{}, captain, "", "", "image/png", nil)
	require.NotNil(t, werr)
	assert.Equal(t, KindValidationFailed, werr.Kind)
	assert.Contains(t, werr.Fields, "sender_name")
	assert.Contains(t, werr.Fields, "mobile_number")
	assert.Contains(t, werr.Fields, "screenshot")
}

func TestSubmitPayment_NoTeam(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "nobody@college.edu", "Nobody", false)

	_, werr := SubmitPayment(db, &fakeUploader{}, user, "A B", "9999999999", "image/png", []byte("x"))
	require.NotNil(t, werr)
	assert.Equal(t, KindNotFound, werr.Kind)
}

func TestSubmitPayment_UploadFailure(t *testing.T) {
	db := setupTestDB(t)
	captain := seedUser(t, db, "rohan@college.edu", "Rohan Mehta", false)
	seedSelectedTeam(t, db, captain)

	_, werr := SubmitPayment(db, &fakeUploader{fail: true}, captain, "A B", "9999999999", "image/png", []byte("x"))
	require.NotNil(t, werr)
	assert.Equal(t, KindUpstreamFailure, werr.Kind)

	// 上传失败时不能留下半截缴费行
	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.Zero(t, count)
}

func TestVerifyPayment(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	admin := seedUser(t, db, "admin@devolympus.in", "Admin", true)
	captain := seedUser(t, db, "rohan@college.edu", "Rohan Mehta", false)
	team := seedSelectedTeam(t, db, captain)

	// 尚无缴费记录
	_, werr := VerifyPayment(db, cfg, admin, team.ID, true)
	require.NotNil(t, werr)
	assert.Equal(t, KindNotFound, werr.Kind)

	_, werr = SubmitPayment(db, &fakeUploader{}, captain, "A B", "9999999999", "image/png", []byte("x"))
	require.Nil(t, werr)

	// 非管理员
	_, werr = VerifyPayment(db, cfg, captain, team.ID, true)
	require.NotNil(t, werr)
	assert.Equal(t, KindUnauthorized, werr.Kind)

	// 开关关闭
	cfgOff := cfg
	cfgOff.PaymentVerificationEnabled = false
	_, werr = VerifyPayment(db, cfgOff, admin, team.ID, true)
	require.NotNil(t, werr)
	assert.Equal(t, KindUnauthorized, werr.Kind)

	payment, werr := VerifyPayment(db, cfg, admin, team.ID, true)
	require.Nil(t, werr)
	assert.True(t, payment.Verified)
}

func TestUploadConsentLetter_Validation(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "rohan@college.edu", "Rohan Mehta", false)

	_, werr := UploadConsentLetter(db, &fakeUploader{}, user, "application/zip", 10, []byte("0123456789"))
	require.NotNil(t, werr)
	assert.Equal(t, KindValidationFailed, werr.Kind)
	assert.Contains(t, werr.Fields, "file")

	big := make([]byte, maxConsentFileSize+1)
	_, werr = UploadConsentLetter(db, &fakeUploader{}, user, "application/pdf", int64(len(big)), big)
	require.NotNil(t, werr)
	assert.Equal(t, KindValidationFailed, werr.Kind)
}

func TestUploadConsentLetter_UpsertOverwrites(t *testing.T) {
	db := setupTestDB(t)
	captain := seedUser(t, db, "rohan@college.edu", "Rohan Mehta", false)
	other := seedUser(t, db, "isha@college.edu", "Isha Rao", false)
	team := seedSelectedTeam(t, db, captain)
	require.NoError(t, db.Create(&models.TeamMember{
		TeamID: team.ID, Name: other.Name, Email: other.Email, RollNo: "21CS002", Phone: "8888888888",
	}).Error)

	first, werr := UploadConsentLetter(db, &fakeUploader{}, captain, "application/pdf", 12, []byte("pdf-contents"))
	require.Nil(t, werr)
	assert.Equal(t, team.ID, first.TeamID)
	assert.Equal(t, captain.ID, first.UploadedBy)

	// 队员重传覆盖同一行（支持修正传错的文件）
	second, werr := UploadConsentLetter(db, &fakeUploader{}, other, "image/png", 9, []byte("png-bytes"))
	require.Nil(t, werr)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, other.ID, second.UploadedBy)

	var count int64
	db.Model(&models.ConsentLetter{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUploadConsentLetter_NotSelected(t *testing.T) {
	db := setupTestDB(t)
	captain := seedUser(t, db, "rohan@college.edu", "Rohan Mehta", false)
	seedTeam(t, db, captain)

	_, werr := UploadConsentLetter(db, &fakeUploader{}, captain, "application/pdf", 4, []byte("data"))
	require.NotNil(t, werr)
	assert.Equal(t, 3011, werr.Code)
}
