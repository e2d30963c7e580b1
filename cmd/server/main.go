// Command server wires the layers together and runs the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventbooking/config"
	"eventbooking/internal/adapters/email"
	delivery "eventbooking/internal/delivery/http"
	"eventbooking/internal/delivery/http/controllers"
	"eventbooking/internal/delivery/http/middleware"
	"eventbooking/internal/repository/jsonfile"
	"eventbooking/internal/services"
)

// @title Event Booking API
// @version 1.0
// @description REST API for managing events and their seat reservations, backed by flat JSON files.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	// Repositories
	eventRepo := jsonfile.NewEventRepository(cfg.EventsFile(), logger)
	reservationRepo := jsonfile.NewReservationRepository(cfg.ReservationsFile(), logger)

	// Email
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		log.Fatalf("mailer: %v", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	// Services
	eventService := services.NewEventService(eventRepo)
	reservationService := services.NewReservationService(eventRepo, reservationRepo, emailService, logger)

	// Controllers and router
	eventController := controllers.NewEventController(logger, eventService)
	reservationController := controllers.NewReservationController(logger, reservationService)
	mux := delivery.NewRouter(eventController, reservationController)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.LoggingMiddleware(logger, mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment, "data_dir", cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Block until SIGINT or SIGTERM, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	logger.Info("server stopped")
}
