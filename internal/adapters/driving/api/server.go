package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/strindex/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may take on shutdown.
const shutdownTimeout = 5 * time.Second

// Options configures the HTTP server.
type Options struct {
	// AllowedOrigins lists origins allowed by CORS. "*" allows any origin.
	AllowedOrigins []string

	// RateLimit is the sustained request rate per second. Zero disables limiting.
	RateLimit float64

	// RateBurst is the maximum burst size.
	RateBurst int
}

// Server serves the string API over HTTP.
type Server struct {
	ports   *Ports
	origins []string
	limiter *rate.Limiter
	handler http.Handler

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewServer creates a new HTTP server with the given ports.
func NewServer(ports *Ports, opts Options) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports:   ports,
		origins: opts.AllowedOrigins,
		limiter: rate.NewLimiter(limitFor(opts.RateLimit), opts.RateBurst),
	}
	s.handler = s.routes()

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// SetRateLimit changes the limiter in place; requests already waiting see
// the new values immediately.
func (s *Server) SetRateLimit(perSecond float64, burst int) {
	s.limiter.SetLimit(limitFor(perSecond))
	s.limiter.SetBurst(burst)
	logger.Info("rate limit set to %g/s burst %d", perSecond, burst)
}

// Addr returns the address the server is listening on, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Start binds addr and serves in the background.
// Use ":0" to pick a free port; Addr reports the one chosen.
func (s *Server) Start(addr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	s.server = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server: %v", err)
		}
	}()

	logger.Info("listening on %s", listener.Addr())
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv := s.server
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	if err := s.Start(addr); err != nil {
		return err
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Stop(shutdownCtx)
}

// limitFor maps a zero rate to an unlimited limiter.
func limitFor(perSecond float64) rate.Limit {
	if perSecond <= 0 {
		return rate.Inf
	}
	return rate.Limit(perSecond)
}
