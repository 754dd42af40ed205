// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes/models"
)

// routeNotFound replaces chi's plain-text 404 with an error envelope.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeAPIError(w, r, &models.APIError{
		Code:    ErrorRouteNotFound,
		Message: fmt.Sprintf(msgRouteNotFound, r.URL.Path),
	})
}

// methodNotAllowed replaces chi's bare 405 with an error envelope.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeAPIError(w, r, &models.APIError{
		Code:    ErrorMethodNotAllowed,
		Message: fmt.Sprintf(msgMethodNotAllowed, r.Method),
	})
}
