package mapper

import (
	"time"

	"pet-house-be/internal/dto"
	"pet-house-be/internal/entity"
	"pet-house-be/internal/pkg/logger"
)

// UserToProfileResponse converts entity to profile response DTO
func UserToProfileResponse(u *entity.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		Id:          u.Id,
		Email:       u.Email,
		Name:        u.Name,
		PhotoURL:    u.PhotoURL,
		Role:        string(u.Role),
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

func UsersToProfileResponse(users []*entity.User) []dto.UserProfileResponse {
	res := make([]dto.UserProfileResponse, 0, len(users))
	for _, u := range users {
		res = append(res, UserToProfileResponse(u))
	}
	return res
}

func PetToResponse(p *entity.Pet) dto.PetResponse {
	return dto.PetResponse{
		Id:               p.Id,
		PetName:          p.PetName,
		PetImg:           p.PetImg,
		Age:              p.Age,
		Location:         p.Location,
		Category:         p.Category,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		AuthorEmail:      p.AuthorEmail,
		AuthorName:       p.AuthorName,
		Adopted:          p.Adopted,
		CreatedAt:        p.CreatedAt,
	}
}

func PetsToResponse(pets []*entity.Pet) []dto.PetResponse {
	res := make([]dto.PetResponse, 0, len(pets))
	for _, p := range pets {
		res = append(res, PetToResponse(p))
	}
	return res
}

func AdoptionToResponse(r *entity.AdoptionRequest) dto.AdoptionRequestResponse {
	return dto.AdoptionRequestResponse{
		Id:          r.Id,
		PetId:       r.PetId,
		PetName:     r.PetName,
		PetImg:      r.PetImg,
		AdoptEmail:  r.AdoptEmail,
		AdoptName:   r.AdoptName,
		Phone:       r.Phone,
		Address:     r.Address,
		AuthorEmail: r.AuthorEmail,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
}

func AdoptionsToResponse(reqs []*entity.AdoptionRequest) []dto.AdoptionRequestResponse {
	res := make([]dto.AdoptionRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		res = append(res, AdoptionToResponse(r))
	}
	return res
}

func CampaignToResponse(c *entity.DonationCampaign) dto.CampaignResponse {
	return dto.CampaignResponse{
		Id:               c.Id,
		PetName:          c.PetName,
		DonationImg:      c.DonationImg,
		MaxDonation:      c.MaxDonation,
		DonationLastDate: c.DonationLastDate.Format(entity.CampaignDateLayout),
		Pause:            c.Pause,
		ShortDescription: c.ShortDescription,
		LongDescription:  c.LongDescription,
		AuthorEmail:      c.AuthorEmail,
		AuthorName:       c.AuthorName,
		CreatedAt:        c.CreatedAt,
	}
}

func CampaignsToResponse(campaigns []*entity.DonationCampaign) []dto.CampaignResponse {
	res := make([]dto.CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		res = append(res, CampaignToResponse(c))
	}
	return res
}

func CampaignProgressToResponse(items []*entity.CampaignProgress) []dto.CampaignProgressResponse {
	res := make([]dto.CampaignProgressResponse, 0, len(items))
	for _, c := range items {
		res = append(res, dto.CampaignProgressResponse{
			CampaignResponse: CampaignToResponse(&c.DonationCampaign),
			Raised:           c.Raised,
			Progress:         c.Progress,
		})
	}
	return res
}

func DonationToResponse(p *entity.DonationPayment) dto.DonationResponse {
	return dto.DonationResponse{
		Id:             p.Id,
		DonationItemId: p.DonationItemId,
		UserEmail:      p.UserEmail,
		UserName:       p.UserName,
		Amount:         p.Amount,
		Date:           p.Date,
		TransactionId:  p.TransactionId,
	}
}

func DonationsToResponse(payments []*entity.DonationPayment) []dto.DonationResponse {
	res := make([]dto.DonationResponse, 0, len(payments))
	for _, p := range payments {
		res = append(res, DonationToResponse(p))
	}
	return res
}

func MyDonationsToResponse(items []*entity.DonationWithCampaign) []dto.MyDonationResponse {
	res := make([]dto.MyDonationResponse, 0, len(items))
	for _, d := range items {
		res = append(res, dto.MyDonationResponse{
			DonationResponse: DonationToResponse(&d.DonationPayment),
			PetName:          d.PetName,
			DonationImg:      d.DonationImg,
		})
	}
	return res
}

func RefundToResponse(r *entity.Refund) dto.RefundResponse {
	return dto.RefundResponse{
		Id:             r.Id,
		PaymentId:      r.PaymentId,
		DonationItemId: r.DonationItemId,
		UserEmail:      r.UserEmail,
		UserName:       r.UserName,
		Amount:         r.Amount,
		Date:           r.Date,
		TransactionId:  r.TransactionId,
		Refund:         r.Refund,
		RefundId:       r.RefundId,
		RefundedAt:     r.RefundedAt,
	}
}

func RefundsToResponse(refunds []*entity.Refund) []dto.RefundResponse {
	res := make([]dto.RefundResponse, 0, len(refunds))
	for _, r := range refunds {
		res = append(res, RefundToResponse(r))
	}
	return res
}

// LogEntryToDetailResponse tolerates unparsable timestamps by leaving CreatedAt zero.
func LogEntryToDetailResponse(e logger.LogEntry) dto.LogDetailResponse {
	createdAt, _ := time.Parse("2006-01-02T15:04:05.000Z0700", e.Timestamp)
	if createdAt.IsZero() {
		createdAt, _ = time.Parse(time.RFC3339Nano, e.Timestamp)
	}
	return dto.LogDetailResponse{
		LogListResponse: dto.LogListResponse{
			Id:        e.Id,
			Level:     e.Level,
			Module:    e.Module,
			Message:   e.Message,
			CreatedAt: createdAt,
		},
		Details: e.Details,
	}
}

func LogEntriesToListResponse(entries []logger.LogEntry) []dto.LogListResponse {
	res := make([]dto.LogListResponse, 0, len(entries))
	for _, e := range entries {
		res = append(res, LogEntryToDetailResponse(e).LogListResponse)
	}
	return res
}
