package server

import (
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-pass-auth/internal/config"
	myGRPC "github.com/MKhiriev/go-pass-auth/internal/handler/grpc"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server
	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) serve() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("grpc listen on %s: %w", g.address, err)
	}
	return g.serveOn(lis)
}

func (g *grpcServer) serveOn(lis net.Listener) error {
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(lis); err != nil {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.SetServing(false)
	g.server.GracefulStop()
}
