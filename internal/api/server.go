// Package api exposes the service's small HTTP surface: liveness and a
// manual report trigger for external cron services.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// TriggerFunc runs one report generation+delivery cycle.
type TriggerFunc func(ctx context.Context, now time.Time)

// Run serves until ctx is done, then shuts the server down gracefully.
func Run(ctx context.Context, addr string, readHeaderTimeout time.Duration, trigger TriggerFunc) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"status": "ok", "message": "pronosbot running"})
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})

	// Manual trigger, also used by external cron/uptime services.
	r.Post("/run_report", func(w http.ResponseWriter, req *http.Request) {
		go trigger(ctx, time.Now())
		writeJSON(w, map[string]string{"status": "ok", "message": "report triggered"})
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("HTTP server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("HTTP server failed", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
