package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"drivead/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter:
// driver endpoints sit behind the driver JWT middleware, admin endpoints
// behind the admin one, and the payment webhook is open (the gateway signs
// its own calls upstream).
type Handler struct {
	telemetry   port.TelemetryUseCase
	assignments port.AssignmentUseCase
	admin       port.AdminUseCase
	webhooks    port.PaymentWebhookUseCase
	auth        *AuthMiddleware
	logger      *slog.Logger
	router      chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	telemetry port.TelemetryUseCase,
	assignments port.AssignmentUseCase,
	admin port.AdminUseCase,
	webhooks port.PaymentWebhookUseCase,
	auth *AuthMiddleware,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		telemetry:   telemetry,
		assignments: assignments,
		admin:       admin,
		webhooks:    webhooks,
		auth:        auth,
		logger:      logger,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.auth.RequireRole(RoleDriver))

			r.Post("/positions/batch", h.handlePositionsBatch)

			r.Route("/drivers/me", func(r chi.Router) {
				r.Get("/campaigns", h.handleEligibleCampaigns)
				r.Post("/campaigns/{id}/apply", h.handleApply)
				r.Get("/assignment", h.handleCurrentAssignment)
				r.Post("/assignment/schedule", h.handleScheduleInstall)
				r.Post("/assignment/confirm-installation", h.handleConfirmInstallation)
				r.Post("/assignment/proofs", h.handleSubmitProof)
				r.Post("/assignment/removal", h.handleRequestRemoval)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.auth.RequireRole(RoleAdmin))

			r.Get("/proofs/installations/pending", h.handlePendingInstallProofs)
			r.Post("/proofs/installations/{id}/review", h.handleReviewInstallProof)
			r.Get("/proofs/periodic/pending", h.handlePendingPeriodicProofs)
			r.Post("/proofs/periodic/{id}/review", h.handleReviewPeriodicProof)
			r.Post("/fraud-alerts/{id}/resolve", h.handleResolveFraudAlert)
			r.Post("/campaigns/{id}/approve", h.handleApproveCampaign)
			r.Post("/campaigns/{id}/reject", h.handleRejectCampaign)
			r.Post("/assignments/{id}/remove", h.handleConfirmRemoval)
		})

		r.Post("/webhooks/payment", h.handlePaymentWebhook)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
