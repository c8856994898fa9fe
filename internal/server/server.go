package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-pass-auth/internal/config"
	"github.com/MKhiriev/go-pass-auth/internal/handler"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	var serves []func() error
	if s.httpServer != nil {
		serves = append(serves, s.httpServer.serve)
	}
	if s.gRPCServer != nil {
		serves = append(serves, s.gRPCServer.serve)
	}
	return s.run(ctx, serves)
}

// run starts every serve function and waits for ctx or the first failure.
// Either way all transports are shut down before it returns.
func (s *server) run(ctx context.Context, serves []func() error) error {
	if len(serves) == 0 {
		return errNoServersToRun
	}

	errCh := make(chan error, len(serves))
	var wg sync.WaitGroup
	for _, serve := range serves {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := serve(); err != nil {
				errCh <- err
			}
		}()
	}

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err = <-errCh:
		s.logger.Err(err).Msg("server failed, shutting down")
	}

	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}
