// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package middleware

import (
	"net/http"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/rs/zerolog"
)

// TraceIDHeader carries the trace id in both directions.
const TraceIDHeader = "X-Trace-ID"

// WithTraceID takes the trace id from the X-Trace-ID request header or
// generates a new one, echoes it in the response header and stores it in
// the request context together with a child of log tagged "trace_id".
func WithTraceID(log *logger.Logger) func(http.Handler) http.Handler {
	generator := utils.NewUUIDGenerator()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			traceID := r.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = generator.Generate()
			}

			l := log.GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("trace_id", traceID)
			})
			ctx = utils.WithTraceID(l.WithContext(ctx), traceID)

			w.Header().Set(TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
