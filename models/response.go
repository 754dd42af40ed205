// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrAPI matches every *APIError with errors.Is.
var ErrAPI = errors.New("api error")

// Response is the envelope every notes API response is wrapped in. When
// Error is non-nil the response is a failure, whatever Data holds.
type Response[T any] struct {
	Data  T         `json:"data"`
	Error *APIError `json:"error,omitempty"`
}

// APIError is the error descriptor of a failed response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements error. Both fields are reproduced verbatim.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s - %s", e.Code, e.Message)
}

// Is makes errors.Is(err, ErrAPI) true for any envelope error.
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}
