// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

type notesService struct {
	notesStorage store.NotesStorage
	bus          EventBus
	now          func() time.Time

	logger *logger.Logger
}

// NewNotesService builds a NotesService over notesStorage. bus may be nil,
// in which case no events are published.
func NewNotesService(notesStorage store.NotesStorage, bus EventBus, logger *logger.Logger) NotesService {
	return &notesService{
		notesStorage: notesStorage,
		bus:          bus,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *notesService) ListNotes(ctx context.Context) ([]models.Note, error) {
	notes, err := s.notesStorage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}

	return notes, nil
}

func (s *notesService) GetNote(ctx context.Context, id int) (models.Note, error) {
	note, err := s.notesStorage.Get(ctx, id)
	if errors.Is(err, store.ErrNoteNotFound) {
		return models.Note{}, fmt.Errorf("%w: %w", ErrNoteNotFound, err)
	}
	if err != nil {
		return models.Note{}, fmt.Errorf("error getting note %d: %w", id, err)
	}

	return note, nil
}

func (s *notesService) CreateNote(ctx context.Context, params models.NoteCreateParams) (models.Note, error) {
	note, err := s.notesStorage.Save(ctx, models.Note{
		Title:     params.Title,
		Content:   params.Content,
		CreatedAt: s.now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("error saving note: %w", err)
	}

	if s.bus != nil {
		s.bus.Publish(TopicNoteCreated, note)
	}
	logger.FromContext(ctx).Debug().Int("note_id", note.ID).Msg("note created")

	return note, nil
}
