package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/groupsplit/internal/config"
	"github.com/mmynk/groupsplit/internal/ledger"
	"github.com/mmynk/groupsplit/internal/middleware"
	"github.com/mmynk/groupsplit/internal/service"
	"github.com/mmynk/groupsplit/internal/storage/sqlite"
	"github.com/mmynk/groupsplit/pkg/api/apiconnect"
)

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests for at most cfg.ShutdownTimeout.
func serve(ctx context.Context, cfg *config.Config) error {
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Wrap with h2c for HTTP/2 without TLS (required for Connect gRPC clients)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(newHandler(ledger.New(store), reg, cfg.CORSOrigin), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server", "timeout", cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newHandler mounts the Connect services plus /health and /metrics.
// RPC metrics are registered on reg.
func newHandler(l *ledger.Ledger, reg *prometheus.Registry, corsOrigin string) http.Handler {
	metrics := middleware.NewMetrics(reg)
	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		metrics.Interceptor(),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewGroupServiceHandler(service.NewGroupService(l), interceptors))
	mux.Handle(apiconnect.NewMemberServiceHandler(service.NewMemberService(l), interceptors))
	mux.Handle(apiconnect.NewExpenseServiceHandler(service.NewExpenseService(l), interceptors))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return middleware.Logging(middleware.CORS(corsOrigin)(mux))
}
