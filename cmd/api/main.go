package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"commute-notice/internal/api"
	"commute-notice/internal/config"
	"commute-notice/internal/modules/auth"
	"commute-notice/internal/modules/contacts"
	"commute-notice/internal/modules/notify"
	"commute-notice/internal/modules/places"
	"commute-notice/internal/modules/routing"
	"commute-notice/internal/modules/trips"
	emailSvc "commute-notice/pkg/email"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// 1. --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	e := echo.New()

	// 2. --- Middleware ---
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:5173", cfg.ClientOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// 3. --- Optional database (notification audit trail) ---
	var auditRepo notify.AuditRepositoryInterface
	if cfg.DatabaseURL != "" {
		dbPool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Unable to create connection pool: %v", err)
		}
		defer dbPool.Close()

		if err := dbPool.Ping(context.Background()); err != nil {
			log.Fatalf("Unable to ping database: %v", err)
		}
		auditRepo = notify.NewAuditRepository(dbPool)
		e.Logger.Info("Notification audit trail enabled")
	}

	// 4. --- Dependency Injection (Wiring everything up) ---
	// --- Auth Module ---
	authService := auth.NewService(cfg.Users, cfg.JWTSecret)
	authHandler := auth.NewHandler(authService)

	// --- Places Module ---
	placesRepo := places.NewRepository(cfg.PlacesTable)
	placesService := places.NewService(placesRepo)
	placesHandler := places.NewHandler(placesService)

	// --- Routing + Trips Modules ---
	var provider routing.ProviderInterface
	provider, err = routing.NewDirectionsClient(cfg.Routing)
	if err != nil {
		// Only the routing tab is lost; table lookups keep working.
		log.Printf("Routing provider not configured: %v", err)
		provider = routing.UnconfiguredProvider{}
	}
	estimator := routing.NewEstimator(provider, cfg.Routing)
	tripsService := trips.NewService(placesService, estimator)
	tripsHandler := trips.NewHandler(tripsService)

	// --- Contacts Module ---
	contactsRepo := contacts.NewRepository(cfg.ContactsTable)
	contactsHandler := contacts.NewHandler(contactsRepo)

	// --- Notification Module ---
	templateManager, err := emailSvc.NewTemplateManager()
	if err != nil {
		log.Fatalf("Failed to parse email templates: %v", err)
	}
	sender := buildSender(cfg.Mail)
	notifyService := notify.NewService(sender, templateManager, auditRepo)
	notifyHandler := notify.NewHandler(notifyService)

	// 5. --- Initialize Router ---
	api.SetupRoutes(e,
		authHandler,
		placesHandler,
		tripsHandler,
		contactsHandler,
		notifyHandler,
		cfg.JWTSecret,
	)

	// 6. --- Start Server with graceful shutdown logic ---
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server, an error occurred:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exiting")
}

// buildSender picks the configured mail transport. A nil sender disables
// the notification feature; the service reports it as unconfigured.
func buildSender(cfg config.MailConfig) emailSvc.Sender {
	switch cfg.Provider {
	case "ses":
		if cfg.SESRegion == "" || cfg.From == "" {
			log.Println("SES transport not configured; notifications disabled")
			return nil
		}
		sender, err := emailSvc.NewSESV2Sender(context.Background(), cfg.SESRegion, cfg.From)
		if err != nil {
			log.Printf("Failed to initialize SES sender: %v; notifications disabled", err)
			return nil
		}
		return sender
	default:
		if cfg.SMTPHost == "" || cfg.From == "" {
			log.Println("SMTP transport not configured; notifications disabled")
			return nil
		}
		return emailSvc.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.From)
	}
}
