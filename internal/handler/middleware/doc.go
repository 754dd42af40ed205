// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package middleware holds the net/http middleware shared by the notes API
// server and the web client: request tracing, access logging, panic
// recovery, CORS, gzip compression and Prometheus request metrics.
//
// WithTraceID must run before WithLogging and Recoverer: both read the
// request-scoped logger it attaches to the context.
package middleware
