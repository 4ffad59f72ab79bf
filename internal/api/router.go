package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/middleware"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/config"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/service"
)

// Services groups the services the router exposes.
type Services struct {
	System      *service.SystemService
	Loader      *service.DataLoaderService
	ETF         *service.ETFService
	Entitlement *service.EntitlementService
	Preference  *service.PreferenceService
	Contact     *service.ContactService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(logger))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/etf", func(r chi.Router) {
			etfHandler := handlers.NewETFHandler(svc.ETF, svc.Loader)
			r.Get("/", etfHandler.ETFs)
			r.Get("/status", etfHandler.Status)
			r.Post("/reload", etfHandler.Reload)
			r.Get("/calendar", etfHandler.Calendar)

			r.Route("/{ticker}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateTickerMiddleware)
				r.Get("/", etfHandler.ETF)
			})
		})

		r.Route("/entitlement", func(r chi.Router) {
			entitlementHandler := handlers.NewEntitlementHandler(svc.Entitlement)
			r.Get("/", entitlementHandler.Entitlement)
			r.Post("/upgrade", entitlementHandler.Upgrade)
			r.Post("/restore", entitlementHandler.Restore)
			r.Post("/toggle", entitlementHandler.Toggle)
		})

		r.Route("/preference", func(r chi.Router) {
			preferenceHandler := handlers.NewPreferenceHandler(svc.Preference)
			r.Get("/", preferenceHandler.Preferences)
			r.Put("/dark-mode", preferenceHandler.SetDarkMode)
		})

		r.Route("/contact", func(r chi.Router) {
			contactHandler := handlers.NewContactHandler(svc.Contact)
			r.Post("/", contactHandler.Submit)
		})
	})

	return r
}
