package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/arina-sh/contact-api/internal/api"
	"github.com/arina-sh/contact-api/internal/config"
	"github.com/arina-sh/contact-api/internal/contact"
	"github.com/arina-sh/contact-api/internal/notify"
	"github.com/arina-sh/contact-api/internal/pkg/logger"
	"github.com/arina-sh/contact-api/internal/recaptcha"
	"github.com/arina-sh/contact-api/internal/store"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.SetLevel(logger.ParseLevel(cfg.App.LogLevel))

	if cfg.Database.URL == "" {
		log.Fatal("database.url (or DATABASE_URL) is required")
	}
	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		pingCancel()
		log.Fatalf("Database unreachable: %v", err)
	}
	pingCancel()

	messages := store.New(db)
	if err := messages.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	verifier := recaptcha.New(cfg.Recaptcha)

	var notifier contact.Notifier
	switch cfg.Mail.Provider {
	case "ses":
		notifier, err = notify.NewSES(ctx, cfg.Mail, cfg.SES)
		if err != nil {
			log.Fatalf("Failed to initialize SES notifier: %v", err)
		}
	default:
		notifier = notify.NewSMTP(cfg.Mail)
	}
	log.Printf("Mail notifications via %s (recipient %s)", cfg.Mail.Provider, cfg.Mail.Recipient)

	pipeline := contact.NewPipeline(verifier, messages, notifier)

	handlers := api.NewHandlers(pipeline)
	healthChecker := api.NewHealthChecker(db)
	server := api.NewServer(handlers, healthChecker, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.Server.GetHost(), cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Contact API listening on %s", addr)
		errCh <- server.ListenAndServe(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server error: %v", err)
	case sig := <-sigCh:
		log.Printf("Received %v, shutting down", sig)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
