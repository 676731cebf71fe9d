package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devevents/config"
	_ "devevents/docs"
	"devevents/internal/adapters/auth"
	"devevents/internal/adapters/email"
	deliveryhttp "devevents/internal/delivery/http"
	"devevents/internal/delivery/http/controllers"
	"devevents/internal/repository/postgres"
	"devevents/internal/services"
)

// @title Dev Events API
// @version 1.0
// @description Developer event catalog and bookings.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Organizer token: "Bearer <token>"
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The store connects lazily; a failed first connection is retried on the next request.
	store := postgres.NewStore(cfg.DBDriver, cfg.DBUrl)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("close store", "err", err)
		}
	}()
	if err := store.Ping(ctx); err != nil {
		logger.Warn("database not reachable at startup", "driver", cfg.DBDriver, "err", err)
	}

	eventRepo := postgres.NewEventRepository(store)
	bookingRepo := postgres.NewBookingRepository(store)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:           cfg.Mail.SESRegion,
			AccessKeyID:      cfg.Mail.SESAccessKeyID,
			SecretAccessKey:  cfg.Mail.SESSecretAccessKey,
			ConfigurationSet: cfg.Mail.SESConfigSet,
		},
	}, logger)
	if err != nil {
		return err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, renderer, logger)

	eventService := services.NewEventService(eventRepo, cfg.RequestTimeout)
	bookingService := services.NewBookingService(eventRepo, bookingRepo, emailService, logger, cfg.RequestTimeout)

	expose := cfg.IsDevelopment()
	routerCfg := deliveryhttp.RouterConfig{
		Logger:         logger,
		Events:         controllers.NewEventController(logger, eventService, expose),
		Bookings:       controllers.NewBookingController(logger, bookingService, expose),
		Health:         &controllers.HealthController{Logger: logger, Store: store},
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.OrganizerTokenSecret != "" {
		routerCfg.Organizer = auth.NewOrganizer(cfg.OrganizerTokenSecret)
	} else {
		logger.Warn("ORGANIZER_TOKEN_SECRET not set, event creation is unauthenticated")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           deliveryhttp.NewRouter(routerCfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment, "driver", cfg.DBDriver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
