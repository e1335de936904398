package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "threadline/web/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"threadline/web/internal/interfaces"
	"threadline/web/internal/routing"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     interfaces.AuthService
	Contact  *ContactHandler
	Session  *SessionHandler
	Designs  *DesignHandler
	Messages *MessageHandler
	Supplier *SupplierHandler
	Billing  *BillingHandler
	Admin    *AdminHandler
	Validate *ValidationHandler
}

// NewRouter creates the chi router with all of the application's routes.
func NewRouter(h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(BearerToken)

	r.MethodNotAllowed(methodNotAllowed)
	r.NotFound(notFound)

	r.Get("/api/swagger/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// The contact form is public and lives outside the versioned API.
	r.Post("/api/contact", h.Contact.HandleSubmit)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Post("/session", h.Session.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(RequireSession)

			r.Get("/session", h.Session.HandleCurrent)
			r.Delete("/session", h.Session.HandleLogout)

			r.Get("/designs", h.Designs.HandleList)
			r.Get("/designs/{designID}", h.Designs.HandleGet)
			r.Get("/designs/{designID}/analysis", h.Designs.HandleAnalysis)
			r.Post("/designs/{designID}/analysis", h.Designs.HandleTrackAnalysis)
			r.Delete("/designs/{designID}/analysis", h.Designs.HandleStopAnalysis)
			r.Get("/designs/{designID}/validations", h.Validate.HandleList)

			r.Get("/validations/{validationID}", h.Validate.HandleGet)
			r.Post("/validations/{validationID}/track", h.Validate.HandleTrack)
			r.Delete("/validations/{validationID}/track", h.Validate.HandleStopTrack)

			r.Get("/conversations", h.Messages.HandleConversations)
			r.Get("/conversations/{conversationID}/messages", h.Messages.HandleThread)
			r.Post("/conversations/{conversationID}/messages", h.Messages.HandleSend)
			r.Post("/conversations/{conversationID}/read", h.Messages.HandleMarkRead)
			r.Get("/messages/unread-count", h.Messages.HandleUnreadCount)
			r.Patch("/inquiries/{inquiryID}", h.Messages.HandleInquiryStatus)

			r.Get("/suppliers", h.Supplier.HandleSearch)
			r.Get("/suppliers/{supplierID}", h.Supplier.HandleGet)
			r.Post("/suppliers/{supplierID}/save", h.Supplier.HandleToggleSaved)

			r.Get("/billing/plans", h.Billing.HandlePlans)
			r.Get("/billing/subscription", h.Billing.HandleSubscription)
			r.Get("/billing/invoices", h.Billing.HandleInvoices)

			r.Route("/admin", func(r chi.Router) {
				r.Use(RequireArea(h.Auth, routing.PathAdminDashboard))

				r.Get("/users", h.Admin.HandleUsers)
				r.Patch("/users/{userID}/status", h.Admin.HandleUserStatus)
				r.Get("/stats", h.Admin.HandleStats)
				r.Get("/contact-submissions", h.Contact.HandleList)
				r.Get("/contact-submissions/{submissionID}", h.Contact.HandleGet)
			})
		})
	})

	return r
}
