package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/handler"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/workers"
)

const shutdownTimeout = 5 * time.Second

type server struct {
	servers []*httpServer
	workers *workers.Workers

	stop     chan struct{}
	stopOnce sync.Once

	// ready is closed once every listener is bound
	ready chan struct{}

	logger *logger.Logger
}

// NewServer builds the API server and, when the handlers carry one, the
// metrics server. workers may be nil.
func NewServer(handlers *handler.Handlers, workers *workers.Workers, cfg config.ServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{
		workers: workers,
		stop:    make(chan struct{}),
		ready:   make(chan struct{}),
		logger:  logger,
	}

	if handlers != nil && handlers.HTTP != nil && cfg.Address != "" {
		s.servers = append(s.servers, newHTTPServer("api", cfg.Address, handlers.HTTP.Init(), logger))
	}
	if handlers != nil && handlers.Metrics != nil && cfg.MetricsAddress != "" {
		s.servers = append(s.servers, newHTTPServer("metrics", cfg.MetricsAddress, handlers.Metrics, logger))
	}

	if len(s.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

func (s *server) run(ctx context.Context) error {
	if s.workers != nil {
		if err := s.workers.Run(); err != nil {
			return err
		}
		defer s.workers.Stop()
	}

	// bind everything first so a busy port fails before anything serves
	var started []*httpServer
	errCh := make(chan error, len(s.servers))
	for _, srv := range s.servers {
		ln, err := srv.listen()
		if err != nil {
			s.shutdownAll(started)
			return err
		}
		started = append(started, srv)

		go func(srv *httpServer) {
			errCh <- srv.serve(ln)
		}(srv)
	}
	close(s.ready)

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case <-s.stop:
	case err = <-errCh:
	}

	s.shutdownAll(started)
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) shutdownAll(servers []*httpServer) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, srv := range servers {
		wg.Add(1)
		go func(srv *httpServer) {
			defer wg.Done()
			srv.shutdown(ctx)
		}(srv)
	}
	wg.Wait()
}
