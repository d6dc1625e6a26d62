package server

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/share-favorites/internal/config"
	handlerhttp "github.com/MKhiriev/share-favorites/internal/handler/http"
	"github.com/MKhiriev/share-favorites/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the tube hub server for handler.
func NewServer(handler *handlerhttp.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), handler.Close, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	l, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		s.logger.Error().Err(err).Str("address", s.httpServer.server.Addr).Msg("HTTP server Listen")
		return
	}

	s.logger.Info().Str("address", l.Addr().String()).Msg("Launching HTTP server")
	s.runOn(ctx, l)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// runOn serves on l until ctx is done.
func (s *server) runOn(ctx context.Context, l net.Listener) {
	go s.httpServer.serve(l)
	s.wait(ctx)
}

func (s *server) wait(ctx context.Context) {
	<-ctx.Done()

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")
}
