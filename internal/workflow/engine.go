// Package workflow implements the donation lifecycle: submission with
// tracking-code issuance, the one-way pending -> assigned/rejected
// transitions, and the need-fulfillment accounting.
package workflow

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"server/internal/domain"
)

// Engine coordinates donation lifecycle operations over the repositories.
// Callers resolve and pass the acting user explicitly; the engine holds no
// session state and performs no role checks.
type Engine struct {
	donations domain.DonationRepository
	ngos      domain.NGORepository
	needs     domain.NeedRepository
	log       zerolog.Logger
	now       func() time.Time
}

// NewEngine wires an Engine over the given repositories.
func NewEngine(donations domain.DonationRepository, ngos domain.NGORepository, needs domain.NeedRepository, logger zerolog.Logger) *Engine {
	return &Engine{
		donations: donations,
		ngos:      ngos,
		needs:     needs,
		log:       logger,
		now:       time.Now,
	}
}

// Submit validates and stores a new pending donation for the donor. The
// repository issues the tracking code atomically with the insert; the donor's
// zone is snapshotted onto the donation.
func (e *Engine) Submit(ctx context.Context, donor *domain.User, in SubmitInput) (*domain.Donation, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, &domain.ValidationError{Msgs: errs}
	}

	d := &domain.Donation{
		ItemName:     strings.TrimSpace(in.ItemName),
		CategoryHint: domain.NormalizeLabel(in.CategoryHint),
		Quantity:     in.Quantity,
		Condition:    domain.NormalizeLabel(in.Condition),
		Description:  strings.TrimSpace(in.Description),
		DonorZone:    donor.Zone,
		Status:       domain.DonationPending,
		DonorID:      donor.ID,
	}
	if err := e.donations.Create(ctx, d); err != nil {
		return nil, err
	}

	e.log.Info().Str("tracking_id", d.TrackingID).Int64("donor_id", donor.ID).Msg("donation submitted")
	return d, nil
}

// Assign links a pending donation to an NGO and optionally credits one of its
// needs. The transition, the load bump and the need credit apply atomically;
// the donation must still be pending when the write lands.
func (e *Engine) Assign(ctx context.Context, donationID, ngoID int64, needID *int64) (*domain.Donation, error) {
	d, err := e.donations.GetByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if !d.IsPending() {
		return nil, domain.Conflictf("donation %s is already %s", d.TrackingID, d.Status)
	}

	ngo, err := e.ngos.GetByID(ctx, ngoID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.Validationf("please choose a valid NGO")
		}
		return nil, err
	}

	// A stale need reference is a soft failure: the assignment proceeds
	// without a need link.
	if needID != nil {
		if _, err := e.needs.GetByID(ctx, *needID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			e.log.Warn().Int64("need_id", *needID).Int64("donation_id", donationID).Msg("need not found, assigning without need link")
			needID = nil
		}
	}

	at := e.now().UTC()
	err = e.donations.Assign(ctx, domain.Assignment{
		DonationID: donationID,
		NGOID:      ngo.ID,
		NeedID:     needID,
		Quantity:   d.Quantity,
		At:         at,
	})
	if err != nil {
		return nil, err
	}

	d.Status = domain.DonationAssigned
	d.NGOID = &ngo.ID
	d.NeedID = needID
	d.AssignedAt = &at
	d.UpdatedAt = at
	e.log.Info().Str("tracking_id", d.TrackingID).Str("ngo", ngo.Name).Msg("donation assigned")
	return d, nil
}

// Reject moves a pending donation to the rejected state, recording the
// trimmed reason. No NGO or need state is touched.
func (e *Engine) Reject(ctx context.Context, donationID int64, reason string) (*domain.Donation, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.Validationf("reject reason is required")
	}

	d, err := e.donations.GetByID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if !d.IsPending() {
		return nil, domain.Conflictf("donation %s is already %s", d.TrackingID, d.Status)
	}

	at := e.now().UTC()
	if err := e.donations.Reject(ctx, donationID, reason, at); err != nil {
		return nil, err
	}

	d.Status = domain.DonationRejected
	d.RejectedReason = reason
	d.RejectedAt = &at
	d.UpdatedAt = at
	e.log.Info().Str("tracking_id", d.TrackingID).Msg("donation rejected")
	return d, nil
}

// Track returns a donation by tracking code, scoped so donors only ever see
// their own donations.
func (e *Engine) Track(ctx context.Context, trackingID string, donorID int64) (*domain.Donation, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, domain.Validationf("please enter your tracking ID")
	}
	return e.donations.GetByTracking(ctx, trackingID, donorID)
}

// Donation fetches a single donation by id.
func (e *Engine) Donation(ctx context.Context, id int64) (*domain.Donation, error) {
	return e.donations.GetByID(ctx, id)
}

// DonationsByStatus lists donations for the admin triage views.
func (e *Engine) DonationsByStatus(ctx context.Context, status domain.DonationStatus) ([]domain.Donation, error) {
	return e.donations.ListByStatus(ctx, status)
}

// NGOs lists every distribution partner.
func (e *Engine) NGOs(ctx context.Context) ([]domain.NGO, error) {
	return e.ngos.List(ctx)
}

// AddNeed declares a new active need for an NGO.
func (e *Engine) AddNeed(ctx context.Context, ngoID int64, in NeedInput) (*domain.Need, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, &domain.ValidationError{Msgs: errs}
	}
	if _, err := e.ngos.GetByID(ctx, ngoID); err != nil {
		return nil, err
	}

	n := &domain.Need{
		NGOID:           ngoID,
		ItemName:        strings.TrimSpace(in.ItemName),
		Category:        domain.NormalizeLabel(in.Category),
		Details:         strings.TrimSpace(in.Details),
		ConditionNeeded: domain.NormalizeLabel(in.ConditionNeeded),
		QtyRequired:     in.QtyRequired,
	}
	if err := e.needs.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// NeedsFor lists all needs declared by an NGO.
func (e *Engine) NeedsFor(ctx context.Context, ngoID int64) ([]domain.Need, error) {
	if _, err := e.ngos.GetByID(ctx, ngoID); err != nil {
		return nil, err
	}
	return e.needs.ListByNGO(ctx, ngoID)
}

// ActiveNeedFor returns the most recently created active need for an NGO,
// used as the default suggestion in the assignment screen.
func (e *Engine) ActiveNeedFor(ctx context.Context, ngoID int64) (*domain.Need, error) {
	return e.needs.LatestActiveByNGO(ctx, ngoID)
}

// ToggleNeed flips a need's active flag; no other field changes.
func (e *Engine) ToggleNeed(ctx context.Context, needID int64) (*domain.Need, error) {
	return e.needs.ToggleActive(ctx, needID)
}
