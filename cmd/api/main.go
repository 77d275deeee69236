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

	"github.com/breakdesk/breakdesk-backend-go/internal/config"
	appHTTP "github.com/breakdesk/breakdesk-backend-go/internal/handler/http"
	"github.com/breakdesk/breakdesk-backend-go/internal/pkg/database"
	"github.com/breakdesk/breakdesk-backend-go/internal/pkg/storage"
	"github.com/breakdesk/breakdesk-backend-go/internal/repository/keyvalue"
	"github.com/breakdesk/breakdesk-backend-go/internal/repository/postgresql"
	analyticsService "github.com/breakdesk/breakdesk-backend-go/internal/service/analytics"
	registryService "github.com/breakdesk/breakdesk-backend-go/internal/service/registry"
	timerService "github.com/breakdesk/breakdesk-backend-go/internal/service/timer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	var store storage.Store
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		defer db.Close()

		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			log.Fatal("Failed to ensure storage schema: ", err)
		}
		store = postgresql.NewStorage(db)
	case "memory":
		store = storage.NewMemoryStore()
	default:
		log.Fatal("Unsupported storage driver: ", cfg.Storage.Driver)
	}

	registryRepo := keyvalue.NewRegistryRepository(store)
	sessionRepo := keyvalue.NewSessionRepository(store)
	stateRepo := keyvalue.NewAppStateRepository(store)

	registrySvc := registryService.NewRegistryService(
		registryRepo,
		sessionRepo,
		cfg.Breaks.AdminEmployeeID,
		cfg.Breaks.RetentionDays,
	)
	timerSvc := timerService.NewTimerService(
		registrySvc,
		sessionRepo,
		stateRepo,
		cfg.Breaks.DailyLimitSeconds,
	)
	analyticsSvc := analyticsService.NewAnalyticsService(
		registryRepo,
		sessionRepo,
		cfg.Breaks.RetentionDays,
	)

	// A break that was running when the previous process died keeps
	// counting from where it left off.
	if err := timerSvc.Rehydrate(ctx); err != nil {
		log.Fatal("Failed to rehydrate timer state: ", err)
	}

	authHandler := appHTTP.NewAuthHandler(registrySvc)
	registryHandler := appHTTP.NewRegistryHandler(registrySvc)
	timerHandler := appHTTP.NewTimerHandler(timerSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		cfg,
		registrySvc,
		authHandler,
		registryHandler,
		timerHandler,
		analyticsHandler,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
	// Stop the tick goroutine after the HTTP surface is drained; the
	// persisted state survives for the next rehydration.
	timerSvc.Shutdown()
}
