// file: controllers/payment_controller.go
package controllers

import (
	"DevOlympus/database"
	"DevOlympus/dto"
	"DevOlympus/services"
	"DevOlympus/utils"
	"io"

	"github.com/gin-gonic/gin"
)

// readUploadedFile 读出 multipart 文件内容与 Content-Type
func readUploadedFile(c *gin.Context, field string, limit int64) ([]byte, string, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		utils.Error(c, 1001, "获取文件失败")
		return nil, "", false
	}
	if fileHeader.Size <= 0 {
		utils.Error(c, 1001, "文件不能为空")
		return nil, "", false
	}
	if limit > 0 && fileHeader.Size > limit {
		utils.Error(c, 1001, "文件过大")
		return nil, "", false
	}

	f, err := fileHeader.Open()
	if err != nil {
		utils.Error(c, 5000, "读取文件失败")
		return nil, "", false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		utils.Error(c, 5000, "读取文件失败")
		return nil, "", false
	}
	return data, fileHeader.Header.Get("Content-Type"), true
}

// SubmitPayment 缴费提交（截图 multipart 上传）
func SubmitPayment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var form dto.SubmitPaymentForm
	if err := c.ShouldBind(&form); err != nil {
		utils.Error(c, 1001, "参数无效")
		return
	}

	screenshot, contentType, ok := readUploadedFile(c, "screenshot", 10<<20)
	if !ok {
		return
	}

	result, werr := services.SubmitPayment(database.DB, assets, *user, form.SenderName, form.MobileNumber, contentType, screenshot)
	if werr != nil {
		respondWorkflowError(c, werr)
		return
	}

	database.InvalidateTeamCaches()

	msg := "Payment submitted successfully"
	if result.AlreadySubmitted {
		msg = "Payment already submitted"
	}
	utils.Success(c, msg, gin.H{
		"already_submitted": result.AlreadySubmitted,
		"payment": gin.H{
			"team_id":        result.Payment.TeamID,
			"sender_name":    result.Payment.SenderName,
			"mobile_number":  result.Payment.MobileNumber,
			"screenshot_url": result.Payment.ScreenshotURL,
			"verified":       result.Payment.Verified,
			"created_at":     result.Payment.CreatedAt,
		},
	})
}

// UploadConsentLetter 同意书上传，可重复上传覆盖
func UploadConsentLetter(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	file, contentType, ok := readUploadedFile(c, "file", 5<<20)
	if !ok {
		return
	}

	letter, werr := services.UploadConsentLetter(database.DB, assets, *user, contentType, int64(len(file)), file)
	if werr != nil {
		respondWorkflowError(c, werr)
		return
	}

	database.InvalidateTeamCaches()

	utils.Success(c, "Consent letter uploaded successfully", gin.H{
		"team_id":     letter.TeamID,
		"file_url":    letter.FileURL,
		"uploaded_by": letter.UploadedBy,
		"updated_at":  letter.UpdatedAt,
	})
}
