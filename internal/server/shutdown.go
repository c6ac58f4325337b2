package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

// shutdownTimeout bounds graceful shutdown once the run context is done.
const shutdownTimeout = 30 * time.Second

// httpServer holds the HTTP server instance and its listener.
type httpServer struct {
	server   *http.Server
	listener net.Listener
	mu       sync.RWMutex
}

// Shutdown gracefully shuts down the server.
// If the server hasn't been started, this is a no-op.
func (s *Server) Shutdown(ctx context.Context) error {
	s.httpServerMu.RLock()
	hs := s.httpServer
	s.httpServerMu.RUnlock()

	if hs == nil {
		return nil
	}

	hs.mu.RLock()
	server := hs.server
	hs.mu.RUnlock()

	if server == nil {
		return nil
	}

	return server.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
// Returns empty string if the server hasn't been started.
func (s *Server) Addr() string {
	s.httpServerMu.RLock()
	hs := s.httpServer
	s.httpServerMu.RUnlock()

	if hs == nil {
		return ""
	}

	hs.mu.RLock()
	defer hs.mu.RUnlock()

	if hs.listener == nil {
		return ""
	}
	return hs.listener.Addr().String()
}

// Run listens on the configured address and serves until ctx is done, then
// shuts down gracefully. A programmatic Shutdown also ends Run.
// Returns nil on clean shutdown, or an error if the server fails to start.
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort(s.cfg.Server.Host, strconv.Itoa(s.cfg.Server.Port))

	// Create listener first so we know the actual address (important for port 0)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	hs := &httpServer{
		server: &http.Server{
			Handler:           s.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		listener: listener,
	}

	s.httpServerMu.Lock()
	s.httpServer = hs
	s.httpServerMu.Unlock()

	serverDone := make(chan error, 1)
	go func() {
		if err := hs.server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			serverDone <- err
			return
		}
		serverDone <- nil
	}()

	s.logger.Info("Server started", zap.String("addr", listener.Addr().String()))

	// Signal that server is ready
	close(s.ready)

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
	case err := <-serverDone:
		// Server stopped on its own (error or Shutdown called)
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := hs.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Shutdown error", zap.Error(err))
		return err
	}

	// Wait for Serve to return
	<-serverDone
	s.logger.Info("Server shutdown complete")
	return nil
}
