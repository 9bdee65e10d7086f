package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/pflag"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/meetnmeal/internal/auth"
	"github.com/mmynk/meetnmeal/internal/config"
	"github.com/mmynk/meetnmeal/internal/expiry"
	"github.com/mmynk/meetnmeal/internal/httpapi"
	"github.com/mmynk/meetnmeal/internal/metrics"
	"github.com/mmynk/meetnmeal/internal/middleware"
	"github.com/mmynk/meetnmeal/internal/platform/otel"
	"github.com/mmynk/meetnmeal/internal/recommend"
	"github.com/mmynk/meetnmeal/internal/service"
	"github.com/mmynk/meetnmeal/internal/storage/sqlite"
	"github.com/mmynk/meetnmeal/pkg/logging"
	"github.com/mmynk/meetnmeal/pkg/proto/protoconnect"
)

const serviceName = "meetnmeal"

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	if err := seedCatalog(ctx, store, cfg); err != nil {
		return err
	}

	tokens, err := auth.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to create token manager: %w", err)
	}
	if cfg.TokenSecret == "" {
		slog.Warn("No token secret configured, member tokens will not survive a restart")
	}

	m := metrics.New()
	coord := service.NewCoordinator(service.Options{
		Engine: recommend.NewEngine(store, recommend.Config{
			TopK:          cfg.TopK,
			Candidates:    cfg.Candidates,
			MaxDistanceKm: cfg.MaxDistanceKm,
		}),
		ComputeTimeout: cfg.ComputeTimeout,
		Expiry: expiry.Config{
			SessionTTL:    cfg.SessionTTL,
			SweepInterval: cfg.SweepInterval,
			IdleGrace:     cfg.IdleGrace,
			MaxGrace:      cfg.MaxGrace,
		},
		QueueSize: cfg.QueueSize,
		Archive:   store,
		Tokens:    tokens,
		Metrics:   m,
	})

	mux := http.NewServeMux()

	// REST and push routes
	httpapi.New(coord, httpapi.Options{
		Tokens:        tokens,
		RequireTokens: cfg.RequireTokens,
		AllowOrigin:   cfg.CORSOrigin,
		Push:          httpapi.PushConfig{PingInterval: cfg.PingInterval},
	}).Register(mux)

	// Connect service
	sessionPath, sessionHandler := protoconnect.NewSessionServiceHandler(
		service.NewSessionService(coord),
		connect.WithInterceptors(
			middleware.LoggingInterceptor(),
			middleware.RequireMemberToken(tokens, cfg.RequireTokens),
		),
	)
	mux.Handle(sessionPath, sessionHandler)

	mux.Handle("GET /metrics", m.Handler())

	handler := middleware.Logging(m)(middleware.CORS(cfg.CORSOrigin)(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server starting", "address", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return coord.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")

		// End sessions first so push connections get their close frames,
		// then drain the remaining requests.
		coord.Shutdown()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// seedCatalog imports the configured CSV files into the catalog.
func seedCatalog(ctx context.Context, store *sqlite.SQLiteStore, cfg config.Config) error {
	imports := []struct {
		kind string
		path string
		fn   func(context.Context, io.Reader) (int, error)
	}{
		{"locations", cfg.LocationsCSV, store.ImportLocationsCSV},
		{"restaurants", cfg.RestaurantsCSV, store.ImportRestaurantsCSV},
	}

	for _, imp := range imports {
		if imp.path == "" {
			continue
		}
		f, err := os.Open(imp.path)
		if err != nil {
			return fmt.Errorf("failed to open %s csv: %w", imp.kind, err)
		}
		n, err := imp.fn(ctx, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("failed to import %s from %s: %w", imp.kind, imp.path, err)
		}
		slog.Info("Catalog seeded", "kind", imp.kind, "rows", n, "path", imp.path)
	}
	return nil
}
