package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ads-manager/internal/config/configs"
	"ads-manager/internal/core/port"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Sessions  port.SessionUseCase
	Accounts  port.AccountUseCase
	Connect   port.ConnectUseCase
	Campaigns port.CampaignUseCase
	Analytics port.AnalyticsUseCase
	Builder   port.BuilderUseCase
	MetaApps  port.MetaAppUseCase
	Pages     port.PageUseCase
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP serving the dashboard's JSON API under /api/v1.
type Handler struct {
	svc     Services
	session configs.Session
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, session configs.Session, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, session: session, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, h.logRequests)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/session/login", h.handleLogin)
		r.Post("/session/register", h.handleRegister)
		r.Post("/session/logout", h.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)

			r.Get("/session/me", h.handleMe)
			r.Put("/session/profile", h.handleUpdateProfile)
			r.Post("/session/password", h.handleChangePassword)

			r.Get("/meta-apps", h.handleListMetaApps)
			r.Post("/meta-apps", h.handleCreateMetaApp)
			r.Get("/meta-apps/{id}", h.handleGetMetaApp)
			r.Put("/meta-apps/{id}", h.handleUpdateMetaApp)
			r.Delete("/meta-apps/{id}", h.handleDeleteMetaApp)
			r.Post("/meta-apps/{id}/verify", h.handleVerifyMetaApp)

			r.Get("/accounts", h.handleListAccounts)
			r.Get("/accounts/connect", h.handleConnect)
			r.Get("/accounts/callback", h.handleConnectCallback)
			r.Delete("/accounts/{id}", h.handleDisconnectAccount)
			r.Post("/accounts/{id}/sync", h.handleSyncAccount)

			r.Get("/campaigns", h.handleListCampaigns)
			r.Post("/campaigns/bulk-status", h.handleBulkStatus)
			r.Get("/campaigns/{id}", h.handleGetCampaign)
			r.Patch("/campaigns/{id}/status", h.handleUpdateStatus)

			r.Post("/drafts", h.handleStartDraft)
			r.Route("/drafts/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetDraft)
				r.Put("/basics", h.handleUpdateBasics)
				r.Put("/budget", h.handleUpdateBudget)
				r.Put("/targeting", h.handleUpdateTargeting)
				r.Put("/creative", h.handleUpdateCreative)
				r.Post("/next", h.handleNextStep)
				r.Post("/previous", h.handlePreviousStep)
				r.Post("/submit", h.handleSubmitDraft)
			})

			r.Get("/analytics/metrics", h.handleMetrics)
			r.Get("/analytics/summary", h.handleSummary)

			r.Get("/pages", h.handleListPages)
			r.Get("/pages/{id}/insights", h.handlePageInsights)
			r.Post("/pages/{id}/posts", h.handlePublishPost)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
