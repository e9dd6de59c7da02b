package uowtest

import (
	"context"
	"sort"
	"time"

	"pet-house-be/internal/entity"
	"pet-house-be/internal/repository/contract"
	"pet-house-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The fakes embed the contract so unimplemented methods panic loudly if a test reaches them.

type userRepo struct {
	contract.UserRepository
	store *Store
}

func (r *userRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	u := *user
	r.store.Users[user.Email] = &u
	return nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.Users[email]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (r *userRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, s := range specs {
		if byEmail, ok := s.(specification.ByEmail); ok {
			return r.FindByEmail(ctx, byEmail.Email)
		}
	}
	return nil, nil
}

func (r *userRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, u := range r.store.Users {
		if userMatches(u, specs) {
			n++
		}
	}
	return n, nil
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByEmail:
			if u.Email != v.Email {
				return false
			}
		case specification.ExcludeEmail:
			if u.Email == v.Email {
				return false
			}
		case specification.ByRole:
			if string(u.Role) != v.Role {
				return false
			}
		case specification.ByStatus:
			if string(u.Status) != v.Status {
				return false
			}
		case specification.LastLoginBefore:
			if u.LastLoginAt != nil && !u.LastLoginAt.Before(v.Time) {
				return false
			}
		}
	}
	return true
}

func (r *userRepo) UpdateRole(ctx context.Context, email string, role entity.UserRole) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.Users[email]; ok {
		u.Role = role
	}
	return nil
}

func (r *userRepo) UpdateStatus(ctx context.Context, email string, status entity.UserStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.Users[email]; ok {
		u.Status = status
	}
	return nil
}

func (r *userRepo) TouchLastLogin(ctx context.Context, email string, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if u, ok := r.store.Users[email]; ok {
		u.LastLoginAt = &at
	}
	return nil
}

type petRepo struct {
	contract.PetRepository
	store *Store
}

func (r *petRepo) Create(ctx context.Context, pet *entity.Pet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p := *pet
	r.store.Pets[pet.Id] = &p
	return nil
}

func (r *petRepo) Update(ctx context.Context, pet *entity.Pet) error {
	return r.Create(ctx, pet)
}

func (r *petRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.Pets, id)
	return nil
}

func (r *petRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p, ok := r.store.Pets[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

func (r *petRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Pet, error) {
	r.store.mu.Lock()
	r.store.Locks = append(r.store.Locks, id)
	r.store.mu.Unlock()
	return r.FindByID(ctx, id)
}

func (r *petRepo) SetAdopted(ctx context.Context, id uuid.UUID, adopted bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p, ok := r.store.Pets[id]; ok {
		p.Adopted = adopted
	}
	return nil
}

type campaignRepo struct {
	contract.CampaignRepository
	store *Store
}

func (r *campaignRepo) Create(ctx context.Context, campaign *entity.DonationCampaign) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *campaign
	r.store.Campaigns[campaign.Id] = &c
	return nil
}

func (r *campaignRepo) Update(ctx context.Context, campaign *entity.DonationCampaign) error {
	return r.Create(ctx, campaign)
}

func (r *campaignRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.DonationCampaign, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if c, ok := r.store.Campaigns[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *campaignRepo) FindIDs(ctx context.Context, specs ...specification.Specification) ([]uuid.UUID, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var ids []uuid.UUID
	for id, c := range r.store.Campaigns {
		keep := true
		for _, s := range specs {
			if a, ok := s.(specification.AuthoredBy); ok && c.AuthorEmail != a.Email {
				keep = false
			}
		}
		if keep {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *campaignRepo) SetPause(ctx context.Context, id uuid.UUID, pause bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if c, ok := r.store.Campaigns[id]; ok {
		c.Pause = pause
	}
	return nil
}

type paymentRepo struct {
	contract.DonationPaymentRepository
	store *Store
}

func (r *paymentRepo) Create(ctx context.Context, payment *entity.DonationPayment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p := *payment
	r.store.Payments[payment.Id] = &p
	return nil
}

func (r *paymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.FailPaymentDelete != nil {
		return r.store.FailPaymentDelete
	}
	if _, ok := r.store.Payments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.store.Payments, id)
	return nil
}

func (r *paymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.DonationPayment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p, ok := r.store.Payments[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

func (r *paymentRepo) SumByCampaigns(ctx context.Context, campaignIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.FailSum != nil {
		return nil, r.store.FailSum
	}
	wanted := make(map[uuid.UUID]bool, len(campaignIDs))
	for _, id := range campaignIDs {
		wanted[id] = true
	}
	totals := map[uuid.UUID]int64{}
	for _, p := range r.store.Payments {
		if wanted[p.DonationItemId] {
			totals[p.DonationItemId] += p.Amount
		}
	}
	return totals, nil
}

func inScope(campaignID uuid.UUID, specs []specification.Specification) bool {
	for _, s := range specs {
		if byCampaigns, ok := s.(specification.ByCampaigns); ok {
			for _, id := range byCampaigns.CampaignIDs {
				if id == campaignID {
					return true
				}
			}
			return false
		}
	}
	return true
}

func (r *paymentRepo) FindLedger(ctx context.Context, specs ...specification.Specification) ([]entity.LedgerRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.FailLedger != nil {
		return nil, r.store.FailLedger
	}
	var records []entity.LedgerRecord
	for _, p := range r.store.Payments {
		if inScope(p.DonationItemId, specs) {
			records = append(records, entity.LedgerRecord{
				CampaignId: p.DonationItemId,
				Amount:     p.Amount,
				Name:       p.UserName,
				Timestamp:  p.Date,
			})
		}
	}
	sort.SliceStable(records, func(i, j int) bool { return records[i].Timestamp.Before(records[j].Timestamp) })
	return records, nil
}

type refundRepo struct {
	contract.RefundRepository
	store *Store
}

func (r *refundRepo) Create(ctx context.Context, refund *entity.Refund) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.FailRefundCreate != nil {
		return r.store.FailRefundCreate
	}
	c := *refund
	r.store.Refunds = append(r.store.Refunds, &c)
	return nil
}

func (r *refundRepo) FindLedger(ctx context.Context, specs ...specification.Specification) ([]entity.LedgerRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.FailLedger != nil {
		return nil, r.store.FailLedger
	}
	var records []entity.LedgerRecord
	for _, rf := range r.store.Refunds {
		if inScope(rf.DonationItemId, specs) {
			records = append(records, entity.LedgerRecord{
				CampaignId: rf.DonationItemId,
				Amount:     rf.Amount,
				Name:       rf.UserName,
				Timestamp:  rf.Date,
				Refund:     true,
			})
		}
	}
	return records, nil
}

type requestRepo struct {
	contract.AdoptionRequestRepository
	store *Store
}

func (r *requestRepo) Create(ctx context.Context, request *entity.AdoptionRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *request
	r.store.Requests[request.Id] = &c
	return nil
}

func (r *requestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.Requests, id)
	return nil
}

func (r *requestRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdoptionRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if req, ok := r.store.Requests[id]; ok {
		c := *req
		return &c, nil
	}
	return nil, nil
}

func (r *requestRepo) FindByPet(ctx context.Context, petID uuid.UUID) ([]*entity.AdoptionRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.AdoptionRequest
	for _, req := range r.store.Requests {
		if req.PetId == petID {
			c := *req
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func requestMatches(req *entity.AdoptionRequest, specs []specification.Specification) bool {
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByPet:
			if req.PetId != v.PetID {
				return false
			}
		case specification.ByAdoptionStatus:
			if string(req.Status) != v.Status {
				return false
			}
		case specification.ByAdopter:
			if req.AdoptEmail != v.Email {
				return false
			}
		case specification.AuthoredBy:
			if req.AuthorEmail != v.Email {
				return false
			}
		}
	}
	return true
}

// FindAll ignores ordering and pagination specs and returns matches oldest first.
func (r *requestRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AdoptionRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := []*entity.AdoptionRequest{}
	for _, req := range r.store.Requests {
		if requestMatches(req, specs) {
			c := *req
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *requestRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdoptionRequest, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *requestRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAll(ctx, specs...)
	return int64(len(all)), err
}

func (r *requestRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AdoptionStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	req, ok := r.store.Requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	req.Status = status
	return nil
}

func (r *requestRepo) RejectOthers(ctx context.Context, petID, exceptID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.FailRejectOthers != nil {
		return 0, r.store.FailRejectOthers
	}
	var n int64
	for id, req := range r.store.Requests {
		if req.PetId == petID && id != exceptID && req.Status != entity.AdoptionStatusRejected {
			req.Status = entity.AdoptionStatusRejected
			n++
		}
	}
	return n, nil
}
