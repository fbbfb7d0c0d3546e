package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/username/feecompare/backend/src/config"
	"github.com/username/feecompare/backend/src/handlers"
	"github.com/username/feecompare/backend/src/logger"
	"github.com/username/feecompare/backend/src/processors"
	"github.com/username/feecompare/backend/src/services"
	"golang.org/x/time/rate"
)

var limiter *rate.Limiter

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded", "path", r.URL.Path)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if allowed[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Requested-With")
			} else if origin == "" {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			}

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)

	logger.L.Info("FeeCompare backend server starting...")

	limiter = rate.NewLimiter(rate.Every(config.Cfg.RateLimitInterval), config.Cfg.RateLimitBurst)

	comparisonProcessor := processors.NewComparisonProcessor()
	comparisonService := services.NewComparisonService(
		comparisonProcessor,
		config.Cfg.SessionTTL,
		config.Cfg.SessionCleanupInterval,
		config.Cfg.MaxAccountsPerClass,
	)

	sessionHandler := handlers.NewSessionHandler(comparisonService)
	comparisonHandler := handlers.NewComparisonHandler(comparisonService)
	exportHandler := handlers.NewExportHandler(comparisonService)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(handlers.ContextualLoggerMiddleware)
	r.Use(enableCORS(config.Cfg.AllowedOrigins))
	r.Use(rateLimitMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "FeeCompare Backend is running"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/platforms", comparisonHandler.HandleListPlatforms)

		r.Post("/session", sessionHandler.HandleCreateSession)
		r.Route("/session/{id}", func(r chi.Router) {
			r.Get("/", sessionHandler.HandleGetSession)
			r.Put("/accounts", sessionHandler.HandleSetAccountCounts)
			r.Put("/balance", sessionHandler.HandleUpdateBalance)
			r.Put("/current-platforms", sessionHandler.HandleSetCurrentPlatforms)
			r.Put("/preference", sessionHandler.HandleSetPreference)
			r.Get("/comparison", comparisonHandler.HandleGetComparison)
			r.Get("/breakdown", comparisonHandler.HandleGetBreakdown)
			r.Get("/export/csv", exportHandler.HandleExportCSV)
			r.Get("/export/pdf", exportHandler.HandleExportPDF)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
		}
	})

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		stdlog.Fatalf("Failed to start server: %v", err)
	}
}
