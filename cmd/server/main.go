// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Engine logic lives in internal packages.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"consulta/internal/lookup"
	"consulta/internal/lookup/handler"
	"consulta/internal/lookup/metrics"
	"consulta/internal/platform/config"
	"consulta/internal/platform/httpserver"
	"consulta/internal/platform/logger"
)

func main() {
	log := logger.New(slog.LevelInfo)

	cfg, err := config.Load("")
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	m := metrics.New(nil)
	svc, err := lookup.NewFromConfig(cfg, log, m)
	if err != nil {
		log.Error("build lookup service", "error", err)
		os.Exit(1)
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())
	handler.New(svc, log).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting consulta server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
