// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_storage_mock.go -package=mock

// NotesStorage holds notes in insertion order.
type NotesStorage interface {
	// List returns a copy of all notes, oldest first.
	List(ctx context.Context) ([]models.Note, error)
	// Get returns the note with the given id or ErrNoteNotFound.
	Get(ctx context.Context, id int) (models.Note, error)
	// Save stores note under the next free id and returns it with the id set.
	Save(ctx context.Context, note models.Note) (models.Note, error)
}
