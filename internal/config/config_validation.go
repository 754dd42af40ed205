// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the invariants shared by every binary: a known target
// preset and a non-negative request timeout.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	switch cfg.Adapter.Target {
	case TargetEmulator, TargetLocal, TargetProxied:
	default:
		return fmt.Errorf("%w: unknown target %q", ErrInvalidAdapterConfigs, cfg.Adapter.Target)
	}

	return nil
}

func (cfg *WebConfig) validate(adapter Adapter) error {
	if cfg.Address == "" {
		return ErrInvalidWebConfigs
	}

	if cfg.ProxyUpstream != "" {
		upstream, err := normalizeBaseURL(cfg.ProxyUpstream)
		if err != nil {
			return fmt.Errorf("%w: proxy upstream: %v", ErrInvalidWebConfigs, err)
		}
		cfg.ProxyUpstream = upstream
	}

	if adapter.BaseURL == "" && adapter.Target == TargetProxied && cfg.ProxyUpstream == "" {
		return fmt.Errorf("%w: target %q needs a proxy upstream", ErrInvalidWebConfigs, TargetProxied)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Address == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
