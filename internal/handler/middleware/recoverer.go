// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-notes/internal/logger"
)

// Recoverer turns a handler panic into a logged error and a response
// written by respond. http.ErrAbortHandler is re-panicked so the server
// aborts the connection as usual.
func Recoverer(respond http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				logger.FromRequest(r).Error().
					Interface("panic", rvr).
					Bytes("stack", debug.Stack()).
					Msg("handler panicked")

				respond(w, r)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
