// file: dto/team.go
package dto

// RegisterMemberReq 报名表单里的单个成员
type RegisterMemberReq struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	RollNo string `json:"roll_no" validate:"required"`
	Phone  string `json:"phone" validate:"required,number"`
}

// RegisterTeamReq 队伍报名表单
type RegisterTeamReq struct {
	TeamName        string              `json:"team_name" validate:"required"`
	PresentationURL string              `json:"presentation_url" validate:"required,url"`
	Theme           string              `json:"theme" validate:"required"`
	Members         []RegisterMemberReq `json:"members" validate:"required,dive"`
}

// UpdateRound2StatusReq 管理员修改晋级状态；Status 为 null 时按 not_decided 处理
type UpdateRound2StatusReq struct {
	Status *string `json:"status"`
}

// VerifyPaymentReq 管理员核验缴费
type VerifyPaymentReq struct {
	Verified *bool `json:"verified" binding:"required"`
}

// SubmitPaymentForm 缴费表单的文本字段（文件走 multipart）
type SubmitPaymentForm struct {
	SenderName   string `form:"sender_name"`
	MobileNumber string `form:"mobile_number"`
}

// TeamMemberResp 对外返回的成员信息
type TeamMemberResp struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	RollNo string `json:"roll_no"`
	Phone  string `json:"phone"`
	IsLead bool   `json:"is_lead"`
}

// MyTeamResp 参赛者视角的本队信息
type MyTeamResp struct {
	ID                uint32           `json:"id"`
	DisplayID         string           `json:"display_id"`
	TeamName          string           `json:"team_name"`
	PresentationURL   string           `json:"presentation_url"`
	Theme             string           `json:"theme"`
	SelectedForRound2 string           `json:"selected_for_round2"`
	Members           []TeamMemberResp `json:"members"`
	PaymentSubmitted  bool             `json:"payment_submitted"`
	PaymentVerified   bool             `json:"payment_verified"`
	ConsentSubmitted  bool             `json:"consent_submitted"`
}

// AdminTeamItemResp 管理员列表页的单行
type AdminTeamItemResp struct {
	ID                uint32 `json:"id"`
	DisplayID         string `json:"display_id"`
	TeamName          string `json:"team_name"`
	CaptainName       string `json:"captain_name"`
	CaptainEmail      string `json:"captain_email"`
	Theme             string `json:"theme"`
	SelectedForRound2 string `json:"selected_for_round2"`
	MemberCount       int    `json:"member_count"`
	PaymentSubmitted  bool   `json:"payment_submitted"`
	PaymentVerified   bool   `json:"payment_verified"`
	ConsentSubmitted  bool   `json:"consent_submitted"`
	CreatedAt         string `json:"created_at"`
}
