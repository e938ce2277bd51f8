// Package api serves the analysis engine over a JSON HTTP API.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/distil/internal/core/domain"
	"github.com/custodia-labs/distil/internal/core/ports/driving"
	"github.com/custodia-labs/distil/internal/logger"
)

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 5 * time.Second

// Config configures the API server.
type Config struct {
	Addr string

	// RateLimit is the sustained request rate per second. Zero or
	// negative disables limiting.
	RateLimit float64

	// Burst is the bucket size. Values below 1 use the rounded-up rate.
	Burst int

	Defaults domain.AnalyzeOptions
	Version  string
}

// Server is the HTTP API server.
type Server struct {
	cfg     Config
	handler http.Handler
}

// NewServer builds the route tree for analysis.
func NewServer(analysis driving.AnalysisService, cfg Config) *Server {
	mux := http.NewServeMux()
	RegisterRoutes(mux, NewHandler(analysis, cfg.Defaults, cfg.Version))

	return &Server{
		cfg:     cfg,
		handler: WithRequestID(WithRateLimit(newLimiter(cfg), mux)),
	}
}

func newLimiter(cfg Config) *rate.Limiter {
	if cfg.RateLimit <= 0 {
		return nil
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = max(1, int(cfg.RateLimit+0.999))
	}
	return rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
}

// Handler returns the root handler, including middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	logger.Info("API listening on %s", ln.Addr())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
