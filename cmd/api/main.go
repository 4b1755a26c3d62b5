// Package main implements the HTTP API server for the cocktail catalog.
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	apihttp "github.com/dsjohal14/cocktailstack/internal/http"
	"github.com/dsjohal14/cocktailstack/internal/libs/config"
	"github.com/dsjohal14/cocktailstack/internal/libs/obs"
	"github.com/dsjohal14/cocktailstack/internal/streamlite"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

func main() {
	_ = godotenv.Load()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init logger
	obs.InitLogger(cfg.LogLevel)
	logger := obs.Logger("api")

	// The catalog is loaded once; a partial store is never served
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := streamlite.Load(ctx, streamlite.Options{
		Kind:        streamlite.Kind(cfg.CatalogSource),
		Path:        cfg.CatalogPath,
		DatabaseURL: cfg.DatabaseURL,
	})
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Str("source", cfg.CatalogSource).Msg("failed to load catalog")
	}

	logger.Info().
		Str("source", store.Source()).
		Int("drink_count", store.Count()).
		Msg("catalog loaded")

	handler := apihttp.NewHandler(store, logger)
	r := setupRouter(handler, cfg)

	addr := cfg.Addr()
	logger.Info().Str("addr", addr).Msg("starting API server")

	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

func setupRouter(h *apihttp.Handler, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apihttp.Metrics)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	// Operational routes are not rate limited
	r.Get("/health", h.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(apihttp.RateLimit(rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst)))

		// Pages
		r.Get("/", h.HandleIndex)
		r.Get("/drinks/{id}", h.HandleDrinkPage)

		// JSON API
		r.Post("/search", h.HandleSearch)
		r.Get("/api/drinks/{id}", h.HandleGetDrink)
		r.Get("/api/featured", h.HandleFeatured)
	})

	return r
}
