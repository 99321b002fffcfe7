// file: mappers/team_mapper.go
package mappers

import (
	"DevOlympus/dto"
	"DevOlympus/models"
)

func mapMembers(members []models.TeamMember) []dto.TeamMemberResp {
	resp := make([]dto.TeamMemberResp, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.TeamMemberResp{
			Name:   m.Name,
			Email:  m.Email,
			RollNo: m.RollNo,
			Phone:  m.Phone,
			IsLead: m.IsLead,
		})
	}
	return resp
}

func MapTeamToMyTeamResp(team models.Team, paymentSubmitted, paymentVerified, consentSubmitted bool) dto.MyTeamResp {
	return dto.MyTeamResp{
		ID:                team.ID,
		DisplayID:         team.DisplayID,
		TeamName:          team.TeamName,
		PresentationURL:   team.PresentationURL,
		Theme:             string(team.Theme),
		SelectedForRound2: string(team.SelectedForRound2),
		Members:           mapMembers(team.Members),
		PaymentSubmitted:  paymentSubmitted,
		PaymentVerified:   paymentVerified,
		ConsentSubmitted:  consentSubmitted,
	}
}

func MapTeamToAdminItemResp(team models.Team, paymentSubmitted, paymentVerified, consentSubmitted bool) dto.AdminTeamItemResp {
	return dto.AdminTeamItemResp{
		ID:                team.ID,
		DisplayID:         team.DisplayID,
		TeamName:          team.TeamName,
		CaptainName:       team.Captain.Name,
		CaptainEmail:      team.Captain.Email,
		Theme:             string(team.Theme),
		SelectedForRound2: string(team.SelectedForRound2),
		MemberCount:       len(team.Members),
		PaymentSubmitted:  paymentSubmitted,
		PaymentVerified:   paymentVerified,
		ConsentSubmitted:  consentSubmitted,
		CreatedAt:         team.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
