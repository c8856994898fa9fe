// Package grpc exposes the standard gRPC health service of the auth server.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/service"
)

// ServiceName is the health-check service name reported next to the
// overall ("") status.
const ServiceName = "gopassauth.Auth"

// Handler is the root gRPC transport handler. It is created once at startup
// and shared by the gRPC server.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health service to s and marks it serving.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	h.SetServing(true)
}

// SetServing flips the reported status of the whole server. It is switched
// off before a graceful stop so that load balancers drain first.
func (h *Handler) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus("", st)
	h.health.SetServingStatus(ServiceName, st)
}

// UnaryLoggingInterceptor logs every unary call with its status code and
// duration.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := next(ctx, req)

	h.logger.Debug().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
