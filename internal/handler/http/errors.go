// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// API error codes carried in the "code" field of the error envelope.
const (
	ErrorBodyInvalid        = "body_invalid"
	ErrorInternal           = "internal"
	ErrorNoteContentInvalid = "note_content_invalid"
	ErrorNoteIDInvalid      = "note_id_invalid"
	ErrorNoteNotFound       = "note_not_found"
	ErrorNoteTitleInvalid   = "note_title_invalid"
	ErrorRouteNotFound      = "route_not_found"
	ErrorMethodNotAllowed   = "method_not_allowed"
)

// Messages of the error envelope. Those taking the raw id are format strings.
const (
	msgBodyInvalid        = "Request body is not valid JSON"
	msgInternal           = "Internal error"
	msgNoteContentInvalid = "Note content can not be empty"
	msgNoteIDInvalid      = "Note ID is invalid: %s"
	msgNoteNotFound       = "Note not found: %s"
	msgNoteTitleInvalid   = "Note title can not be empty"
	msgRouteNotFound      = "Route not found: %s"
	msgMethodNotAllowed   = "Method not allowed: %s"
)
