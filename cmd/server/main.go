package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/config"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/data"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/database"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/logger"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/scheduler"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/service"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open preference database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}
	log.Info("connected to database", zap.String("path", cfg.Database.Path))

	if len(cfg.Entitlement.PreferenceKeys) == 0 {
		log.Warn("PREFERENCE_KEY not set, preferences are stored unsealed")
	}

	// Create repositories
	prefRepo := repository.NewPreferenceRepository(db, cfg.Entitlement.PreferenceKeys)

	// Create services
	preferenceService := service.NewPreferenceService(prefRepo, log)
	entitlementService, err := service.NewEntitlementService(ctx, preferenceService, cfg.Entitlement.FreeLimit, log)
	if err != nil {
		return err
	}
	loader := service.NewDataLoaderService(data.NewSource(cfg.Data.Path), log)
	etfService := service.NewETFService(loader, entitlementService)
	stalenessService := service.NewStalenessService(loader, cfg.Staleness.StaleAfter, log)
	contactService := service.NewContactService(service.SupportAddress, log)
	systemService := service.NewSystemService(db, loader)

	// Load the analysis off the main goroutine; handlers answer 503 until it is published.
	loader.LoadAsync()

	sched, err := scheduler.New(log, scheduler.Job{
		Name:     "staleness-check",
		Schedule: cfg.Staleness.Schedule,
		Run:      stalenessService.Check,
	})
	if err != nil {
		return err
	}

	router := api.NewRouter(api.Services{
		System:      systemService,
		Loader:      loader,
		ETF:         etfService,
		Entitlement: entitlementService,
		Preference:  preferenceService,
		Contact:     contactService,
	}, cfg, log)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", zap.String("addr", cfg.Server.Addr), zap.String("version", version.Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return sched.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("server exited")
	return nil
}
