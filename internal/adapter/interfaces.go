// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the front-ends and the
// notes API.
//
// The primary abstraction is [NotesAdapter], which hides the HTTP exchange
// and the {data, error} envelope from the view state. The package ships one
// HTTP/JSON implementation ([NewHTTPNotesAdapter]) built on resty.
//
// Every failure is reported as one of four kinds, so callers can use
// [errors.Is] / [errors.As] when they care and err.Error() when they only
// display it:
//   - [ErrTransport] — the request never produced a response body
//   - [ErrDecode] — the body is not a JSON envelope
//   - [*models.APIError] — the envelope carried an error (also [ErrAPI])
//   - [ErrInvalidPayload] — data does not match the expected schema
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_adapter_mock.go -package=mock

// NotesAdapter defines communication with the notes API. Each method is
// exactly one network call; nothing is retried or cached.
type NotesAdapter interface {
	// ListNotes fetches every note in the order the server returns them.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// GetNote fetches a single note by id. Returns [ErrNoteNotFound] when the
	// server answers with an empty sequence.
	GetNote(ctx context.Context, id int) (models.Note, error)

	// CreateNote sends params and returns the created note as echoed by the
	// server.
	CreateNote(ctx context.Context, params models.NoteCreateParams) (models.Note, error)
}
