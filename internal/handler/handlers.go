package handler

import (
	"github.com/MKhiriev/go-pass-auth/internal/config"
	"github.com/MKhiriev/go-pass-auth/internal/handler/grpc"
	"github.com/MKhiriev/go-pass-auth/internal/handler/http"
	"github.com/MKhiriev/go-pass-auth/internal/logger"
	"github.com/MKhiriev/go-pass-auth/internal/service"
)

// Handlers holds one transport handler per configured listen address. A nil
// field means the transport is disabled.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc_health", handlers.GRPC != nil).
		Msg("handlers created")

	return handlers, nil
}

// SetServing propagates the serving state to the health service, if any.
func (h *Handlers) SetServing(serving bool) {
	if h.GRPC != nil {
		h.GRPC.SetServing(serving)
	}
}
