package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"server/internal/domain"
	"server/internal/http/handlers"
	"server/internal/infra"
	"server/internal/middleware"
	"server/internal/token"
)

// NewRouter builds the full route tree. Role checks live here, at the
// request boundary; the workflow engine below assumes authorization passed.
func NewRouter(app *handlers.App, cfg *infra.Config, tokens *token.Service) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	// Public
	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/ngos", app.NGOsPublicList)
	r.Route("/v1/auth", func(r chi.Router) {
		r.Post("/register", app.AuthRegister)
		r.Post("/login", app.AuthLogin)
		r.Post("/admin/login", app.AuthAdminLogin)
		r.Get("/zone-suggestion", app.ZoneSuggestion)
	})

	// Donor
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens), middleware.RequireRole(string(domain.UserRoleDonor)))
		r.Post("/v1/donations", app.DonationsCreate)
		r.Post("/v1/donations/track", app.DonationsTrack)
	})

	// Admin
	r.Route("/v1/admin", func(r chi.Router) {
		r.Use(middleware.Auth(tokens), middleware.RequireRole(string(domain.UserRoleAdmin)))
		r.Get("/stats", app.AdminStats)
		r.Get("/donations", app.AdminDonationsList)
		r.Route("/donations/{id}", func(r chi.Router) {
			r.Get("/", app.AdminDonationDetail)
			r.Post("/assign", app.AdminAssign)
			r.Post("/reject", app.AdminReject)
		})
		r.Route("/ngos/{id}/needs", func(r chi.Router) {
			r.Get("/", app.AdminNeedsList)
			r.Post("/", app.AdminNeedCreate)
			r.Get("/active", app.AdminNeedSuggestion)
		})
		r.Post("/needs/{id}/toggle", app.AdminNeedToggle)
	})

	return r
}
