package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
	"server/internal/sqlinline"
	"server/internal/workflow"
)

type assignRequest struct {
	NGOID  int64  `json:"ngo_id"`
	NeedID *int64 `json:"need_id"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type ngoDTO struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	City               string `json:"city"`
	Zone               string `json:"zone,omitempty"`
	AcceptedCategories string `json:"accepted_categories,omitempty"`
	IsVerified         bool   `json:"is_verified"`
	HasPickup          bool   `json:"has_pickup"`
	CurrentLoad        int    `json:"current_load"`
}

type needDTO struct {
	ID              int64  `json:"id"`
	NGOID           int64  `json:"ngo_id"`
	ItemName        string `json:"item_name"`
	Category        string `json:"category,omitempty"`
	Details         string `json:"details,omitempty"`
	ConditionNeeded string `json:"condition_needed,omitempty"`
	QtyRequired     int    `json:"qty_required"`
	QtyFulfilled    int    `json:"qty_fulfilled"`
	QtyRemaining    int    `json:"qty_remaining"`
	IsActive        bool   `json:"is_active"`
}

// AdminDonationsList returns donations in one lifecycle state for triage.
func (a *App) AdminDonationsList(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		raw = string(domain.DonationPending)
	}
	status, ok := domain.ParseDonationStatus(raw)
	if !ok {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown status "+strconv.Quote(raw))
		return
	}

	items, err := a.Workflow.DonationsByStatus(r.Context(), status)
	if err != nil {
		a.fail(w, err)
		return
	}
	dtos := make([]donationDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, toDonationDTO(&items[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": dtos})
}

// AdminDonationDetail returns one donation plus the NGO directory for the
// assignment screen.
func (a *App) AdminDonationDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	d, err := a.Workflow.Donation(r.Context(), id)
	if err != nil {
		a.fail(w, err)
		return
	}
	ngos, err := a.Workflow.NGOs(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	ngoDTOs := make([]ngoDTO, 0, len(ngos))
	for i := range ngos {
		ngoDTOs = append(ngoDTOs, toNGODTO(&ngos[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"donation": toDonationDTO(d), "ngos": ngoDTOs})
}

// AdminAssign links a pending donation to an NGO and optionally a need.
func (a *App) AdminAssign(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	d, err := a.Workflow.Assign(r.Context(), id, req.NGOID, req.NeedID)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"donation": toDonationDTO(d)})
}

// AdminReject moves a pending donation to rejected with a reason.
func (a *App) AdminReject(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	d, err := a.Workflow.Reject(r.Context(), id, req.Reason)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"donation": toDonationDTO(d)})
}

// AdminNeedsList returns every need declared by an NGO, newest first.
func (a *App) AdminNeedsList(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	items, err := a.Workflow.NeedsFor(r.Context(), ngoID)
	if err != nil {
		a.fail(w, err)
		return
	}
	dtos := make([]needDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, toNeedDTO(&items[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": dtos})
}

// AdminNeedCreate declares a new need for an NGO.
func (a *App) AdminNeedCreate(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	var in workflow.NeedInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	n, err := a.Workflow.AddNeed(r.Context(), ngoID, in)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"need": toNeedDTO(n)})
}

// AdminNeedSuggestion returns the default need suggestion for an NGO: its
// most recently created active need.
func (a *App) AdminNeedSuggestion(w http.ResponseWriter, r *http.Request) {
	ngoID, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	n, err := a.Workflow.ActiveNeedFor(r.Context(), ngoID)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"need": toNeedDTO(n)})
}

// AdminNeedToggle flips a need's active flag and reports the new state.
func (a *App) AdminNeedToggle(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r, "id")
	if !ok {
		return
	}
	n, err := a.Workflow.ToggleNeed(r.Context(), id)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"need": toNeedDTO(n), "is_active": n.IsActive})
}

// AdminStats summarizes the pipeline for the dashboard header.
func (a *App) AdminStats(w http.ResponseWriter, r *http.Request) {
	row := a.SQL.QueryRow(r.Context(), sqlinline.QStatsSummary)
	var pending, assigned, rejected, ngos, activeNeeds, totalLoad int64
	if err := row.Scan(&pending, &assigned, &rejected, &ngos, &activeNeeds, &totalLoad); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"pending":      pending,
		"assigned":     assigned,
		"rejected":     rejected,
		"ngos":         ngos,
		"active_needs": activeNeeds,
		"total_load":   totalLoad,
	})
}

func (a *App) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid "+name)
		return 0, false
	}
	return id, true
}

func toNGODTO(n *domain.NGO) ngoDTO {
	return ngoDTO{
		ID:                 n.ID,
		Name:               n.Name,
		City:               n.City,
		Zone:               n.Zone,
		AcceptedCategories: n.AcceptedCategories,
		IsVerified:         n.IsVerified,
		HasPickup:          n.HasPickup,
		CurrentLoad:        n.CurrentLoad,
	}
}

func toNeedDTO(n *domain.Need) needDTO {
	return needDTO{
		ID:              n.ID,
		NGOID:           n.NGOID,
		ItemName:        n.ItemName,
		Category:        n.Category,
		Details:         n.Details,
		ConditionNeeded: n.ConditionNeeded,
		QtyRequired:     n.QtyRequired,
		QtyFulfilled:    n.QtyFulfilled,
		QtyRemaining:    n.QtyRemaining(),
		IsActive:        n.IsActive,
	}
}
