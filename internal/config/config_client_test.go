// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredConfig_TUI(t *testing.T) {
	tests := []struct {
		name        string
		cfg         StructuredConfig
		wantBaseURL string
		wantErr     error
	}{
		{
			name:        "local preset",
			cfg:         StructuredConfig{Adapter: Adapter{Target: TargetLocal}},
			wantBaseURL: "http://localhost:4000",
		},
		{
			name:        "emulator preset",
			cfg:         StructuredConfig{Adapter: Adapter{Target: TargetEmulator}},
			wantBaseURL: "http://10.0.2.2:4000",
		},
		{
			name:        "explicit base url wins over target",
			cfg:         StructuredConfig{Adapter: Adapter{BaseURL: "notes.lan:4000/", Target: TargetProxied}},
			wantBaseURL: "http://notes.lan:4000",
		},
		{
			name:    "proxied without web client",
			cfg:     StructuredConfig{Adapter: Adapter{Target: TargetProxied}},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "unknown target",
			cfg:     StructuredConfig{Adapter: Adapter{Target: "mars"}},
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.TUI()

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBaseURL, got.Adapter.BaseURL)
		})
	}
}

func TestStructuredConfig_WebClient(t *testing.T) {
	t.Run("proxied target resolves to own origin", func(t *testing.T) {
		cfg := StructuredConfig{
			Adapter: Adapter{Target: TargetProxied, RequestTimeout: time.Second},
			Web:     Web{Address: ":3000", ProxyUpstream: "localhost:4000/"},
		}

		got, err := cfg.WebClient()

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3000/api", got.Adapter.BaseURL)
		assert.Equal(t, time.Second, got.Adapter.RequestTimeout)
		assert.Equal(t, "http://localhost:4000", got.ProxyUpstream)
		assert.Equal(t, ":3000", got.Address)
	})

	t.Run("proxied target without upstream", func(t *testing.T) {
		cfg := StructuredConfig{
			Adapter: Adapter{Target: TargetProxied},
			Web:     Web{Address: "localhost:3000"},
		}

		_, err := cfg.WebClient()

		assert.ErrorIs(t, err, ErrInvalidWebConfigs)
	})

	t.Run("missing address", func(t *testing.T) {
		cfg := StructuredConfig{Adapter: Adapter{Target: TargetLocal}}

		_, err := cfg.WebClient()

		assert.ErrorIs(t, err, ErrInvalidWebConfigs)
	})

	t.Run("local preset without proxy", func(t *testing.T) {
		cfg := StructuredConfig{
			Adapter: Adapter{Target: TargetLocal},
			Web:     Web{Address: "127.0.0.1:3000"},
		}

		got, err := cfg.WebClient()

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:4000", got.Adapter.BaseURL)
		assert.Empty(t, got.ProxyUpstream)
	})
}

func TestGetServerConfig(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := GetServerConfig([]string{"-a", ":5000", "-metrics-address", ":9100", "-seed", "notes.yaml"})

	require.NoError(t, err)
	assert.Equal(t, &ServerConfig{Address: ":5000", MetricsAddress: ":9100", SeedFile: "notes.yaml"}, cfg)
}

func TestGetTUIConfig(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("APP_LOG_FILE", "/tmp/notes-tui.log")

	cfg, err := GetTUIConfig([]string{"-target", "emulator", "-request-timeout", "4s"})

	require.NoError(t, err)
	assert.Equal(t, "http://10.0.2.2:4000", cfg.Adapter.BaseURL)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/notes-tui.log", cfg.LogFile)
}

func TestDialAddress(t *testing.T) {
	assert.Equal(t, "localhost:3000", dialAddress(":3000"))
	assert.Equal(t, "localhost:3000", dialAddress("0.0.0.0:3000"))
	assert.Equal(t, "127.0.0.1:3000", dialAddress("127.0.0.1:3000"))
	assert.Equal(t, "garbage", dialAddress("garbage"))
}
