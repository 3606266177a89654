package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/infra/geoip"
	"server/internal/token"
	"server/internal/workflow"
)

// Workflow is the slice of the donation engine the handlers invoke. The
// request layer resolves identity and role before calling in; the engine
// assumes authorization already passed.
type Workflow interface {
	Submit(ctx context.Context, donor *domain.User, in workflow.SubmitInput) (*domain.Donation, error)
	Assign(ctx context.Context, donationID, ngoID int64, needID *int64) (*domain.Donation, error)
	Reject(ctx context.Context, donationID int64, reason string) (*domain.Donation, error)
	Track(ctx context.Context, trackingID string, donorID int64) (*domain.Donation, error)
	Donation(ctx context.Context, id int64) (*domain.Donation, error)
	DonationsByStatus(ctx context.Context, status domain.DonationStatus) ([]domain.Donation, error)
	NGOs(ctx context.Context) ([]domain.NGO, error)
	AddNeed(ctx context.Context, ngoID int64, in workflow.NeedInput) (*domain.Need, error)
	NeedsFor(ctx context.Context, ngoID int64) ([]domain.Need, error)
	ActiveNeedFor(ctx context.Context, ngoID int64) (*domain.Need, error)
	ToggleNeed(ctx context.Context, needID int64) (*domain.Need, error)
}

// App is the handler container.
type App struct {
	Workflow    Workflow
	Users       domain.UserRepository
	SQL         infra.SQLExecutor
	Tokens      *token.Service
	Geo         geoip.CityResolver
	Logger      zerolog.Logger
	DefaultCity string
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, codeStr, msg string) {
	a.json(w, code, map[string]any{
		"error": map[string]any{"code": codeStr, "message": msg},
	})
}

// fail maps the domain error taxonomy onto HTTP statuses. Nothing in the
// taxonomy is fatal; everything is reported back to the caller.
func (a *App) fail(w http.ResponseWriter, err error) {
	if ve, ok := domain.AsValidation(err); ok {
		a.json(w, http.StatusBadRequest, map[string]any{
			"error": map[string]any{"code": "validation", "message": ve.Error(), "errors": ve.Msgs},
		})
		return
	}
	if domain.IsStateConflict(err) {
		a.error(w, http.StatusConflict, "state_conflict", err.Error())
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		a.error(w, http.StatusNotFound, "not_found", "not found")
		return
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		a.error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}
	a.Logger.Error().Err(err).Msg("request failed")
	a.error(w, http.StatusInternalServerError, "internal", "internal error")
}
