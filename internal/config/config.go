// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Target presets for the notes API base URL.
const (
	// TargetEmulator reaches the host machine from an Android emulator.
	TargetEmulator = "emulator"
	// TargetLocal reaches a notes API running on the same machine.
	TargetLocal = "local"
	// TargetProxied routes through the web client's own /api reverse proxy.
	TargetProxied = "proxied"
)

// ProxyPrefix is the path the web client mounts its reverse proxy on.
const ProxyPrefix = "/api"

var targetBaseURLs = map[string]string{
	TargetEmulator: "http://10.0.2.2:4000",
	TargetLocal:    "http://localhost:4000",
}

// StructuredConfig is the top-level configuration container shared by the
// terminal client, the web client and the development API server. It is
// populated by merging defaults, an optional config file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the outbound notes API transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Web holds settings of the web client's HTTP listener.
	Web Web `envPrefix:"WEB_"`

	// Server holds settings of the development notes API server.
	Server Server `envPrefix:"SERVER_"`

	// FilePath is the optional path to a JSON or YAML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds process-level configuration values.
type App struct {
	// LogFile is where the terminal client writes its log. Empty means a
	// file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// EnvFile is the dotenv file loaded before environment parsing.
	// Env: APP_ENV_FILE
	EnvFile string `env:"ENV_FILE"`
}

// Adapter holds configuration of the notes API transport.
type Adapter struct {
	// BaseURL is the notes API base URL (e.g. "http://localhost:4000").
	// Takes precedence over Target.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Target selects a base URL preset: "emulator", "local" or "proxied".
	// Env: ADAPTER_TARGET
	Target string `env:"TARGET"`

	// RequestTimeout bounds a single outbound request. Zero disables the
	// timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Web holds configuration of the web client.
type Web struct {
	// Address is the TCP address the web client listens on, "host:port".
	// Env: WEB_ADDRESS
	Address string `env:"ADDRESS"`

	// ProxyUpstream is the notes API the /api reverse proxy forwards to.
	// Empty disables the proxy.
	// Env: WEB_PROXY_UPSTREAM
	ProxyUpstream string `env:"PROXY_UPSTREAM"`
}

// Server holds configuration of the development notes API server.
type Server struct {
	// Address is the TCP address the API listens on, "host:port".
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// MetricsAddress is where /metrics is served. Empty disables metrics.
	// Env: SERVER_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`

	// SeedFile is an optional YAML or JSON file of notes loaded into the
	// empty store on start.
	// Env: SERVER_SEED_FILE
	SeedFile string `env:"SEED_FILE"`
}

// defaults are merged first; every other source overrides them.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{EnvFile: ".env"},
		Adapter: Adapter{
			Target: TargetLocal,
		},
		Web: Web{
			Address: "localhost:3000",
		},
		Server: Server{
			Address: ":4000",
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources,
// lowest priority first:
//  1. built-in defaults
//  2. config file (path resolved from env and flags)
//  3. environment variables (after loading the dotenv file)
//  4. command-line flags
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
