package handlers

import (
	"context"
	"errors"

	"server/internal/domain"
	"server/internal/workflow"
)

// fakeWorkflow lets each test wire only the calls it expects. Unwired calls
// fail loudly instead of returning zero values.
type fakeWorkflow struct {
	submit            func(ctx context.Context, donor *domain.User, in workflow.SubmitInput) (*domain.Donation, error)
	assign            func(ctx context.Context, donationID, ngoID int64, needID *int64) (*domain.Donation, error)
	reject            func(ctx context.Context, donationID int64, reason string) (*domain.Donation, error)
	track             func(ctx context.Context, trackingID string, donorID int64) (*domain.Donation, error)
	donation          func(ctx context.Context, id int64) (*domain.Donation, error)
	donationsByStatus func(ctx context.Context, status domain.DonationStatus) ([]domain.Donation, error)
	ngos              func(ctx context.Context) ([]domain.NGO, error)
	addNeed           func(ctx context.Context, ngoID int64, in workflow.NeedInput) (*domain.Need, error)
	needsFor          func(ctx context.Context, ngoID int64) ([]domain.Need, error)
	activeNeedFor     func(ctx context.Context, ngoID int64) (*domain.Need, error)
	toggleNeed        func(ctx context.Context, needID int64) (*domain.Need, error)
}

var errNotWired = errors.New("call not wired in test")

func (f *fakeWorkflow) Submit(ctx context.Context, donor *domain.User, in workflow.SubmitInput) (*domain.Donation, error) {
	if f.submit == nil {
		return nil, errNotWired
	}
	return f.submit(ctx, donor, in)
}

func (f *fakeWorkflow) Assign(ctx context.Context, donationID, ngoID int64, needID *int64) (*domain.Donation, error) {
	if f.assign == nil {
		return nil, errNotWired
	}
	return f.assign(ctx, donationID, ngoID, needID)
}

func (f *fakeWorkflow) Reject(ctx context.Context, donationID int64, reason string) (*domain.Donation, error) {
	if f.reject == nil {
		return nil, errNotWired
	}
	return f.reject(ctx, donationID, reason)
}

func (f *fakeWorkflow) Track(ctx context.Context, trackingID string, donorID int64) (*domain.Donation, error) {
	if f.track == nil {
		return nil, errNotWired
	}
	return f.track(ctx, trackingID, donorID)
}

func (f *fakeWorkflow) Donation(ctx context.Context, id int64) (*domain.Donation, error) {
	if f.donation == nil {
		return nil, errNotWired
	}
	return f.donation(ctx, id)
}

func (f *fakeWorkflow) DonationsByStatus(ctx context.Context, status domain.DonationStatus) ([]domain.Donation, error) {
	if f.donationsByStatus == nil {
		return nil, errNotWired
	}
	return f.donationsByStatus(ctx, status)
}

func (f *fakeWorkflow) NGOs(ctx context.Context) ([]domain.NGO, error) {
	if f.ngos == nil {
		return nil, errNotWired
	}
	return f.ngos(ctx)
}

func (f *fakeWorkflow) AddNeed(ctx context.Context, ngoID int64, in workflow.NeedInput) (*domain.Need, error) {
	if f.addNeed == nil {
		return nil, errNotWired
	}
	return f.addNeed(ctx, ngoID, in)
}

func (f *fakeWorkflow) NeedsFor(ctx context.Context, ngoID int64) ([]domain.Need, error) {
	if f.needsFor == nil {
		return nil, errNotWired
	}
	return f.needsFor(ctx, ngoID)
}

func (f *fakeWorkflow) ActiveNeedFor(ctx context.Context, ngoID int64) (*domain.Need, error) {
	if f.activeNeedFor == nil {
		return nil, errNotWired
	}
	return f.activeNeedFor(ctx, ngoID)
}

func (f *fakeWorkflow) ToggleNeed(ctx context.Context, needID int64) (*domain.Need, error) {
	if f.toggleNeed == nil {
		return nil, errNotWired
	}
	return f.toggleNeed(ctx, needID)
}

var _ Workflow = (*fakeWorkflow)(nil)

// fakeUsers is an in-memory domain.UserRepository.
type fakeUsers struct {
	nextID int64
	users  []*domain.User
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) error {
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUsers) GetByPhone(_ context.Context, phone string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Phone == phone {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

var _ domain.UserRepository = (*fakeUsers)(nil)
