package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nomina/internal/domain/payroll"
	"nomina/internal/domain/tariff"
	"nomina/internal/platform/config"
	"nomina/internal/platform/metrics"
	payrollhandler "nomina/internal/transport/http/handlers/payroll"
	"nomina/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	activeTariff := tariff.Tariff2025()
	if cfg.TariffFile != "" {
		loaded, err := tariff.LoadFile(cfg.TariffFile)
		if err != nil {
			log.Fatalf("load tariff: %v", err)
		}
		activeTariff = loaded
	}
	if err := activeTariff.Validate(); err != nil {
		log.Fatalf("invalid tariff: %v", err)
	}

	calc := payroll.NewCalculator(activeTariff)
	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(collector.Snapshot())
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		payrollHandler := payrollhandler.NewHandler(calc, collector)
		payrollHandler.RegisterRoutes(r)
	})

	log.Printf("payroll server listening on %s (env %s, tariff year %d)", cfg.Addr, cfg.Environment, activeTariff.Year)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
