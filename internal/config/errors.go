// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates an unusable notes API base URL,
	// an unknown target preset or a negative request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWebConfigs indicates a missing web listen address or a
	// proxied target without a proxy upstream.
	ErrInvalidWebConfigs = errors.New("invalid web configuration")
	// ErrInvalidServerConfigs indicates a missing API server listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrUnsupportedConfigFile is returned for config files that are
	// neither JSON nor YAML.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
