package http

import (
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services
	registry prometheus.Registerer

	logger *logger.Logger
}

// NewHandler builds the API handler. Request metrics are registered on
// registry when it is non-nil.
func NewHandler(services *service.Services, registry prometheus.Registerer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		registry: registry,
		logger:   logger,
	}
}
