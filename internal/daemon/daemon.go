package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sugarshield/sugarshield/internal/api"
	"github.com/sugarshield/sugarshield/internal/app/insight"
	"github.com/sugarshield/sugarshield/internal/health"
	_ "github.com/sugarshield/sugarshield/internal/infra/metrics" // Register Prometheus metrics
	"github.com/sugarshield/sugarshield/internal/infra/sqlite"
)

// Daemon is the core SugarShield runtime. It wires storage, the insight
// engine, health checks, and the HTTP API together.
type Daemon struct {
	Config  Config
	DB      *sqlite.DB
	Tracker *insight.Tracker
	Health  *health.Checker
	Server  *api.Server
	cancel  context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	dataDir := cfg.Data.Dir
	if dataDir == "" {
		dataDir = shieldHome()
	}

	db, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	tracker := insight.NewTracker(db)
	checker := health.NewChecker(db, dataDir)

	srv := api.NewServer(tracker, checker)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:  cfg,
		DB:      db,
		Tracker: tracker,
		Health:  checker,
		Server:  srv,
	}, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	// Health checker runs for the lifetime of the daemon
	go d.Health.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("SugarShield serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
