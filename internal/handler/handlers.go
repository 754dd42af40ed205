package handler

import (
	nethttp "net/http"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/handler/http"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	HTTP    *http.Handler
	Metrics nethttp.Handler
}

// NewHandlers builds the API handler and, when a metrics address is
// configured, the /metrics handler exposing registry.
func NewHandlers(services *service.Services, registry *prometheus.Registry, cfg config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Address == "" {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{}

	if cfg.MetricsAddress != "" && registry != nil {
		mux := nethttp.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
		handlers.Metrics = mux

		handlers.HTTP = http.NewHandler(services, registry, logger)
	} else {
		handlers.HTTP = http.NewHandler(services, nil, logger)
	}

	return handlers, nil
}
