package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"invitedesk/internal/delivery/http/controllers"
	"invitedesk/internal/delivery/http/middleware"
	"invitedesk/internal/domain"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth          *controllers.AuthController
	Accounts      *controllers.AccountController
	Invitations   *controllers.InvitationController
	Registrations *controllers.RegistrationController
	Imports       *controllers.ImportController
	Slots         *controllers.SlotController
	Notifications *controllers.NotificationController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Public: self-registration with an invitation code
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("GET /invitations/{code}", c.Invitations.Validate)
	mux.HandleFunc("POST /registrations/invitation", c.Registrations.RegisterViaInvitation)

	// Staff accounts
	mux.HandleFunc("POST /accounts", auth(c.Accounts.Create))
	mux.HandleFunc("GET /accounts", auth(c.Accounts.List))
	mux.HandleFunc("PUT /accounts/{accountID}/role", auth(c.Accounts.ChangeRole))
	mux.HandleFunc("PUT /accounts/{accountID}/slots", auth(c.Slots.Grant))

	// Invitations
	mux.HandleFunc("POST /invitations", auth(c.Invitations.Generate))
	mux.HandleFunc("GET /invitations", auth(c.Invitations.List))

	// Registrations
	mux.HandleFunc("POST /registrations", auth(c.Registrations.RegisterManually))
	mux.HandleFunc("POST /registrations/import", auth(c.Imports.ImportBatch))
	mux.HandleFunc("PUT /attendees/{attendeeID}/status", auth(c.Registrations.UpdateStatus))

	// Slots
	mux.HandleFunc("GET /slots", auth(c.Slots.GetSlots))
	mux.HandleFunc("POST /slots/requests", auth(c.Slots.RequestSlots))
	mux.HandleFunc("POST /slots/requests/{requestID}/resolve", auth(c.Slots.ResolveRequest))

	// Notifications
	mux.HandleFunc("GET /notifications", auth(c.Notifications.List))
	mux.HandleFunc("POST /notifications/{notificationID}/read", auth(c.Notifications.MarkRead))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
