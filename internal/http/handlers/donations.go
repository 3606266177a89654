package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"server/internal/domain"
	"server/internal/middleware"
	"server/internal/workflow"
)

type donationDTO struct {
	ID             int64      `json:"id"`
	TrackingID     string     `json:"tracking_id"`
	ItemName       string     `json:"item_name"`
	CategoryHint   string     `json:"category_hint,omitempty"`
	Quantity       int        `json:"quantity"`
	Condition      string     `json:"condition,omitempty"`
	Description    string     `json:"description,omitempty"`
	DonorZone      string     `json:"donor_zone,omitempty"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	AssignedAt     *time.Time `json:"assigned_at,omitempty"`
	RejectedAt     *time.Time `json:"rejected_at,omitempty"`
	RejectedReason string     `json:"rejected_reason,omitempty"`
	NGOID          *int64     `json:"ngo_id,omitempty"`
	NeedID         *int64     `json:"need_id,omitempty"`
}

type trackRequest struct {
	TrackingID string `json:"tracking_id"`
}

// DonationsCreate registers a new pending donation for the authenticated donor.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var in workflow.SubmitInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	donor, err := a.Users.GetByID(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		a.fail(w, err)
		return
	}

	d, err := a.Workflow.Submit(r.Context(), donor, in)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"tracking_id": d.TrackingID, "donation": toDonationDTO(d)})
}

// DonationsTrack returns the donor's own donation for a tracking code.
func (a *App) DonationsTrack(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	d, err := a.Workflow.Track(r.Context(), req.TrackingID, middleware.UserIDFromContext(r.Context()))
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"donation": toDonationDTO(d)})
}

func toDonationDTO(d *domain.Donation) donationDTO {
	return donationDTO{
		ID:             d.ID,
		TrackingID:     d.TrackingID,
		ItemName:       d.ItemName,
		CategoryHint:   d.CategoryHint,
		Quantity:       d.Quantity,
		Condition:      d.Condition,
		Description:    d.Description,
		DonorZone:      d.DonorZone,
		Status:         string(d.Status),
		CreatedAt:      d.CreatedAt,
		AssignedAt:     d.AssignedAt,
		RejectedAt:     d.RejectedAt,
		RejectedReason: d.RejectedReason,
		NGOID:          d.NGOID,
		NeedID:         d.NeedID,
	}
}
