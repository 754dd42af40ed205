// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/handler"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/workers"
	"github.com/MKhiriev/go-notes/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	messagebus "github.com/vardius/message-bus"
)

func newTestServer(t *testing.T, cfg config.ServerConfig) *server {
	t.Helper()
	storages, err := store.NewStorages(context.Background(), "", logger.Nop())
	require.NoError(t, err)

	bus := messagebus.New(8)
	reg := prometheus.NewRegistry()
	services := service.NewServices(storages, bus, models.NewAppBuildInfo("", "", ""), logger.Nop())
	handlers, err := handler.NewHandlers(services, reg, cfg, logger.Nop())
	require.NoError(t, err)

	ws := workers.NewWorkers(workers.NewNoteEventsWorker(bus, reg, logger.Nop()))
	srv, err := NewServer(handlers, ws, cfg, logger.Nop())
	require.NoError(t, err)

	return srv.(*server)
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

// fetch is safe to call off the test goroutine: errors read as empty body.
func fetch(url string) string {
	resp, err := http.Get(url)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return string(body)
}

func TestServer_ServesAPIAndMetrics(t *testing.T) {
	s := newTestServer(t, config.ServerConfig{Address: "127.0.0.1:0", MetricsAddress: "127.0.0.1:0"})

	done := make(chan error, 1)
	go func() { done <- s.run(context.Background()) }()
	<-s.ready

	require.Len(t, s.servers, 2)
	apiURL := "http://" + s.servers[0].addr
	metricsURL := "http://" + s.servers[1].addr

	resp, err := http.Post(apiURL+"/notes", "application/json", strings.NewReader(`{"title":"t","content":"c"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	status, body := get(t, apiURL+"/notes")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"title":"t"`)

	assert.Eventually(t, func() bool {
		metrics := fetch(metricsURL + "/metrics")
		return strings.Contains(metrics, "notes_created_total 1") &&
			strings.Contains(metrics, "notes_api_http_requests_total")
	}, 2*time.Second, 20*time.Millisecond)

	s.Shutdown()
	s.Shutdown()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_StopsOnContextCancel(t *testing.T) {
	s := newTestServer(t, config.ServerConfig{Address: "127.0.0.1:0"})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()
	<-s.ready
	require.Len(t, s.servers, 1)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err := http.Get("http://" + s.servers[0].addr + "/notes")
	assert.Error(t, err, "listener must be closed")
}

func TestServer_BusyPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := newTestServer(t, config.ServerConfig{Address: ln.Addr().String()})

	err = s.run(context.Background())

	var opErr *net.OpError
	assert.True(t, errors.As(err, &opErr), "got %v", err)
}

func TestNewServer_NoServers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.ServerConfig{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}
