package service

import (
	"context"
	"errors"

	"pet-house-be/internal/entity"
	"pet-house-be/pkg/payment"
)

type recordingPublisher struct {
	registered []*entity.User
	received   []*entity.DonationPayment
}

func (p *recordingPublisher) PublishUserRegistered(_ context.Context, u *entity.User) {
	p.registered = append(p.registered, u)
}

func (p *recordingPublisher) PublishDonationReceived(_ context.Context, d *entity.DonationPayment) {
	p.received = append(p.received, d)
}

func (p *recordingPublisher) PublishDonationRefunded(context.Context, *entity.Refund) {}

func (p *recordingPublisher) PublishAdoptionAccepted(context.Context, *entity.AdoptionOutcome) {}

type recordingInvalidator struct {
	authors []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, authorEmail string) {
	r.authors = append(r.authors, authorEmail)
}

var errGatewayDown = errors.New("gateway down")

type stubGateway struct {
	fail     bool
	err      error
	requests []payment.PaymentRequest
}

func (g *stubGateway) CreatePayment(_ context.Context, req payment.PaymentRequest) (*payment.PaymentIntent, error) {
	g.requests = append(g.requests, req)
	if g.err != nil {
		return nil, g.err
	}
	if g.fail {
		return nil, errGatewayDown
	}
	return &payment.PaymentIntent{
		OrderID:     req.OrderID,
		ClientToken: "snap-" + req.OrderID,
		RedirectURL: "https://pay.example.com/" + req.OrderID,
	}, nil
}

func (g *stubGateway) Refund(context.Context, string, int64, string) (*payment.RefundReceipt, error) {
	return &payment.RefundReceipt{RefundKey: "rk", Status: "200"}, nil
}
