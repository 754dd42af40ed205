// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-notes/models"
)

type memoryNotesStorage struct {
	mu    sync.RWMutex
	notes []models.Note
}

// NewMemoryNotesStorage returns an empty in-memory [NotesStorage].
func NewMemoryNotesStorage() NotesStorage {
	return &memoryNotesStorage{}
}

func (s *memoryNotesStorage) List(ctx context.Context) ([]models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]models.Note, len(s.notes))
	copy(notes, s.notes)

	return notes, nil
}

func (s *memoryNotesStorage) Get(ctx context.Context, id int) (models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// ids are positions: notes are never deleted
	if id < 0 || id >= len(s.notes) {
		return models.Note{}, fmt.Errorf("%w: id %d", ErrNoteNotFound, id)
	}

	return s.notes[id], nil
}

func (s *memoryNotesStorage) Save(ctx context.Context, note models.Note) (models.Note, error) {
	if err := ctx.Err(); err != nil {
		return models.Note{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	note.ID = len(s.notes)
	s.notes = append(s.notes, note)

	return note, nil
}
