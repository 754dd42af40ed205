// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"
)

// ClientAdapter holds the resolved transport settings handed to the notes
// API adapter.
type ClientAdapter struct {
	// BaseURL is the absolute notes API base URL, without trailing slash.
	BaseURL string
	// RequestTimeout bounds a single request; zero means no timeout.
	RequestTimeout time.Duration
}

// TUIConfig is the terminal client configuration.
type TUIConfig struct {
	Adapter ClientAdapter
	// LogFile is the client log destination; empty means next to the binary.
	LogFile string
}

// WebConfig is the web client configuration.
type WebConfig struct {
	Adapter ClientAdapter
	// Address is the listen address, "host:port".
	Address string
	// ProxyUpstream is the absolute URL the /api proxy forwards to, or empty.
	ProxyUpstream string
}

// ServerConfig is the development API server configuration.
type ServerConfig struct {
	// Address is the API listen address.
	Address string
	// MetricsAddress is the /metrics listen address, or empty.
	MetricsAddress string
	// SeedFile is the notes seed file, or empty.
	SeedFile string
}

// GetTUIConfig builds and validates the terminal client view of the merged
// configuration. args are the command-line arguments without program name.
func GetTUIConfig(args []string) (*TUIConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.TUI()
}

// GetWebConfig builds and validates the web client view of the merged
// configuration.
func GetWebConfig(args []string) (*WebConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.WebClient()
}

// GetServerConfig builds and validates the API server view of the merged
// configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Address:        cfg.Server.Address,
		MetricsAddress: cfg.Server.MetricsAddress,
		SeedFile:       cfg.Server.SeedFile,
	}

	return serverCfg, serverCfg.validate()
}

// TUI maps cfg to a [TUIConfig]. The proxied target is meaningless without
// a web client, so it is rejected here.
func (cfg *StructuredConfig) TUI() (*TUIConfig, error) {
	if cfg.Adapter.BaseURL == "" && cfg.Adapter.Target == TargetProxied {
		return nil, fmt.Errorf("%w: target %q needs the web client", ErrInvalidAdapterConfigs, TargetProxied)
	}

	baseURL, err := cfg.Adapter.resolveBaseURL("")
	if err != nil {
		return nil, err
	}

	return &TUIConfig{
		Adapter: ClientAdapter{BaseURL: baseURL, RequestTimeout: cfg.Adapter.RequestTimeout},
		LogFile: cfg.App.LogFile,
	}, nil
}

// WebClient maps cfg to a [WebConfig].
func (cfg *StructuredConfig) WebClient() (*WebConfig, error) {
	webCfg := &WebConfig{
		Address:       cfg.Web.Address,
		ProxyUpstream: strings.TrimRight(strings.TrimSpace(cfg.Web.ProxyUpstream), "/"),
	}
	if err := webCfg.validate(cfg.Adapter); err != nil {
		return nil, err
	}

	baseURL, err := cfg.Adapter.resolveBaseURL(webCfg.Address)
	if err != nil {
		return nil, err
	}
	webCfg.Adapter = ClientAdapter{BaseURL: baseURL, RequestTimeout: cfg.Adapter.RequestTimeout}

	return webCfg, nil
}

// resolveBaseURL turns the explicit base URL or the target preset into an
// absolute URL. webAddress is used by the proxied preset only.
func (a Adapter) resolveBaseURL(webAddress string) (string, error) {
	if strings.TrimSpace(a.BaseURL) != "" {
		return normalizeBaseURL(a.BaseURL)
	}

	if a.Target == TargetProxied {
		return normalizeBaseURL(dialAddress(webAddress) + ProxyPrefix)
	}

	preset, ok := targetBaseURLs[a.Target]
	if !ok {
		return "", fmt.Errorf("%w: unknown target %q", ErrInvalidAdapterConfigs, a.Target)
	}
	return preset, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty base url", ErrInvalidAdapterConfigs)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: base url must include host and scheme", ErrInvalidAdapterConfigs)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// dialAddress turns a listen address into something a client can dial:
// an empty host becomes localhost.
func dialAddress(listen string) string {
	host, port, err := net.SplitHostPort(listen)
	if err != nil {
		return listen
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
