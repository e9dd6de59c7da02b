package mapper

import (
	"pet-house-be/internal/entity"
	"pet-house-be/internal/model"
)

type DonationMapper struct{}

func NewDonationMapper() *DonationMapper {
	return &DonationMapper{}
}

func (m *DonationMapper) PaymentToEntity(p *model.DonationPayment) *entity.DonationPayment {
	if p == nil {
		return nil
	}
	return &entity.DonationPayment{
		Id:             p.Id,
		DonationItemId: p.DonationItemId,
		UserEmail:      p.UserEmail,
		UserName:       p.UserName,
		Amount:         p.Amount,
		Date:           p.Date,
		TransactionId:  p.TransactionId,
	}
}

func (m *DonationMapper) PaymentToModel(p *entity.DonationPayment) *model.DonationPayment {
	if p == nil {
		return nil
	}
	return &model.DonationPayment{
		Id:             p.Id,
		DonationItemId: p.DonationItemId,
		UserEmail:      p.UserEmail,
		UserName:       p.UserName,
		Amount:         p.Amount,
		Date:           p.Date,
		TransactionId:  p.TransactionId,
	}
}

func (m *DonationMapper) PaymentsToEntities(payments []*model.DonationPayment) []*entity.DonationPayment {
	entities := make([]*entity.DonationPayment, len(payments))
	for i, p := range payments {
		entities[i] = m.PaymentToEntity(p)
	}
	return entities
}

// PaymentToLedger projects a payment for history building.
func (m *DonationMapper) PaymentToLedger(p *model.DonationPayment) entity.LedgerRecord {
	return entity.LedgerRecord{
		CampaignId: p.DonationItemId,
		Amount:     p.Amount,
		Name:       p.UserName,
		Timestamp:  p.Date,
	}
}

func (m *DonationMapper) RefundToEntity(r *model.Refund) *entity.Refund {
	if r == nil {
		return nil
	}
	return &entity.Refund{
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

func (m *DonationMapper) RefundToModel(r *entity.Refund) *model.Refund {
	if r == nil {
		return nil
	}
	return &model.Refund{
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

func (m *DonationMapper) RefundsToEntities(refunds []*model.Refund) []*entity.Refund {
	entities := make([]*entity.Refund, len(refunds))
	for i, r := range refunds {
		entities[i] = m.RefundToEntity(r)
	}
	return entities
}

// RefundToLedger keys the refund by the date of the donation it reverses.
func (m *DonationMapper) RefundToLedger(r *model.Refund) entity.LedgerRecord {
	return entity.LedgerRecord{
		CampaignId: r.DonationItemId,
		Amount:     r.Amount,
		Name:       r.UserName,
		Timestamp:  r.Date,
		Refund:     true,
	}
}
