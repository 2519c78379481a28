package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
)

const DefaultListen = ":8080"

// Module runs the flow API inside a mono application.
type Module struct {
	cfg     Config
	logger  *slog.Logger
	app     *fiber.App
	started time.Time
}

// Compile-time interface check
var _ mono.HealthCheckableModule = (*Module)(nil)

func NewModule(cfg Config, log *slog.Logger) *Module {
	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	if log == nil {
		log = slog.Default()
	}
	return &Module{
		cfg:    cfg,
		logger: log,
	}
}

// Name returns the module name
func (m *Module) Name() string {
	return "compflow-api"
}

// Start builds the fiber app and listens until Stop
func (m *Module) Start(ctx context.Context) error {
	m.app = NewApp(m.cfg, m.logger)

	errChan := make(chan error, 1)
	go func() {
		if err := m.app.Listen(m.cfg.Listen); err != nil {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("failed to start HTTP server on %s: %w", m.cfg.Listen, err)
	case <-time.After(100 * time.Millisecond):
		m.started = time.Now()
		m.logger.Info("HTTP server started", "listen", m.cfg.Listen, "requestTimeout", m.cfg.RequestTimeout)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop waits for in-flight requests to complete
func (m *Module) Stop(ctx context.Context) error {
	if m.app == nil {
		return nil
	}
	m.logger.Info("shutting down HTTP server")
	if err := m.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	m.logger.Info("HTTP server stopped")
	return nil
}

func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if m.app == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "HTTP server not initialized",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"listen": m.cfg.Listen,
			"uptime": time.Since(m.started).Round(time.Second).String(),
		},
	}
}
