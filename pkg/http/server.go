package http

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/shuldan/errorhandler/pkg/contracts"
	"github.com/shuldan/errorhandler/pkg/errors"
)

const defaultAddr = ":8080"

type Server struct {
	server  *http.Server
	handler http.Handler
	addr    string
	logger  contracts.Logger
	running bool
	mu      sync.RWMutex
}

func NewServer(addr string, handler http.Handler, logger contracts.Logger) (*Server, error) {
	if handler == nil {
		return nil, ErrInvalidHandler
	}
	if addr == "" {
		addr = defaultAddr
	}

	return &Server{
		addr:    addr,
		handler: handler,
		logger:  logger,
	}, nil
}

func (s *Server) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrServerAlreadyRunning
	}

	s.server = &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 30 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return ErrServerStart.WithCause(err).WithDetail("addr", s.addr)
	}

	s.addr = listener.Addr().String()
	s.running = true

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log(contracts.LevelError, "server error", map[string]any{"error": err})
		}
	}()

	s.log(contracts.LevelInfo, "HTTP server started", map[string]any{"addr": s.addr})

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.server == nil {
		return nil
	}

	if err := s.server.Shutdown(ctx); err != nil {
		return ErrServerStop.WithCause(err)
	}

	s.running = false
	s.log(contracts.LevelInfo, "HTTP server stopped", nil)

	return nil
}

func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) log(level contracts.LogLevel, message string, context map[string]any) {
	if s.logger != nil {
		s.logger.Log(level, message, context)
	}
}
