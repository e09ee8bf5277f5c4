package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/solvetrack/solvetrack/internal/config"
	httphandler "github.com/solvetrack/solvetrack/internal/handler/http"
	"github.com/solvetrack/solvetrack/internal/logger"
)

// server owns the HTTP transport and ties its lifetime to OS stop signals.
type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the transport server from the handler and config.
// A config without an HTTP address is an error: there would be nothing
// to serve.
func NewServer(handler *httphandler.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(cfg.RequestTimeout), cfg.HTTPAddress),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	idleConnectionsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
