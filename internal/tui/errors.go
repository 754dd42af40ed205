// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes/internal/adapter"
)

const serverUnavailableHint = "No network connection or the notes server is unavailable"

// humanizeServerUnavailableError returns an extra line shown under a failed request
// when the failure looks like an unreachable server, or "".
func humanizeServerUnavailableError(err error) string {
	if err == nil || !errors.Is(err, adapter.ErrTransport) {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return serverUnavailableHint
	}

	return ""
}
