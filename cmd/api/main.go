package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CTF179/photocomp/internal/cache"
	"github.com/CTF179/photocomp/internal/config"
	"github.com/CTF179/photocomp/internal/handler"
	"github.com/CTF179/photocomp/internal/notifier"
	"github.com/CTF179/photocomp/internal/repository"
	"github.com/CTF179/photocomp/internal/router"
	"github.com/CTF179/photocomp/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := repository.NewPostgresDB(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	cache.Initialize(cfg.Cache.RedisURL)
	defer cache.Close()

	requestRepo := repository.NewRequestRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)

	users := service.NewCachedUserDirectory(userRepo)
	membershipService := service.NewMembershipService(
		requestRepo, memberRepo, orgRepo, users,
		cfg.Membership.AllowReapplyAfterDenial,
	)

	queue := notifier.NewQueue(notifier.NewLogSender(), 64)
	defer queue.Close()

	membershipHandler := handler.NewMembershipHandler(membershipService, queue)

	r := router.SetupRoutes(membershipHandler, memberRepo, cfg.Auth.JWTSecret)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout; the notification queue drains after the
	// server stops accepting requests.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
