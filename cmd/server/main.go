package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"invitedesk/config"
	_ "invitedesk/docs"
	"invitedesk/internal/adapters/auth"
	"invitedesk/internal/adapters/email"
	httpdelivery "invitedesk/internal/delivery/http"
	"invitedesk/internal/delivery/http/controllers"
	"invitedesk/internal/delivery/http/middleware"
	"invitedesk/internal/repository/postgres"
	"invitedesk/internal/services"

	"golang.org/x/crypto/bcrypt"
)

// @title InviteDesk API
// @version 1.0
// @description Invitation redemption, slot accounting, and registration administration.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	accountRepo := postgres.NewAccountRepository(db)
	invitationRepo := postgres.NewInvitationRepository(db)
	attendeeRepo := postgres.NewAttendeeRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	slotRequestRepo := postgres.NewSlotRequestRepository(db)

	mailer, err := email.NewMailer(cfg.Email)
	if err != nil {
		log.Fatalf("mailer: %v", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := auth.NewJWTCodec(cfg.JWTSecret)

	notifier := services.NewNotifier(notificationRepo, accountRepo, logger)
	accountService := services.NewAccountService(accountRepo, hasher, tokens, cfg.TokenExpiry, notifier)
	quotaService := services.NewQuotaService(accountRepo, slotRequestRepo, notifier)
	invitationService := services.NewInvitationService(invitationRepo, notifier)
	registrationService := services.NewRegistrationService(invitationService, quotaService, attendeeRepo, notifier, emailService, logger)
	importService := services.NewBulkImportService(quotaService, attendeeRepo, notifier, emailService, logger)

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Auth:          controllers.NewAuthController(logger, accountService),
		Accounts:      controllers.NewAccountController(logger, accountService),
		Invitations:   controllers.NewInvitationController(logger, invitationService, accountService),
		Registrations: controllers.NewRegistrationController(logger, registrationService, accountService),
		Imports:       controllers.NewImportController(logger, importService, accountService),
		Slots:         controllers.NewSlotController(logger, quotaService, accountService),
		Notifications: controllers.NewNotificationController(logger, notifier, accountService),
	}, tokens, logger)
	handler := middleware.LoggingMiddleware(logger, mux)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
