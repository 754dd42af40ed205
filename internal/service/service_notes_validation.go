// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

type NotesValidationService struct {
	inner     NotesService
	validator validators.Validator
}

func NewNotesValidationService() NotesServiceWrapper {
	return &NotesValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NotesValidationService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return v.inner.ListNotes(ctx)
}

func (v *NotesValidationService) GetNote(ctx context.Context, id int) (models.Note, error) {
	if id < 0 {
		return models.Note{}, fmt.Errorf("%w: negative id %d", ErrNoteNotFound, id)
	}

	return v.inner.GetNote(ctx, id)
}

func (v *NotesValidationService) CreateNote(ctx context.Context, params models.NoteCreateParams) (models.Note, error) {
	if err := v.validator.Validate(ctx, params); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateNote(ctx, params)
}

func (v *NotesValidationService) Wrap(wrapper NotesService) NotesService {
	v.inner = wrapper
	return v
}
