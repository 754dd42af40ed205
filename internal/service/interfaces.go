// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_service_mock.go -package=mock

// NotesService is the notes use-case layer.
type NotesService interface {
	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, id int) (models.Note, error)
	CreateNote(ctx context.Context, params models.NoteCreateParams) (models.Note, error)
}

// NotesServiceWrapper defines middleware composition for NotesService.
// Implementations wrap an existing NotesService to add behavior such as
// validating.
type NotesServiceWrapper interface {
	Wrap(NotesService) NotesService // returns a decorated NotesService applying additional behavior
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// EventBus publishes domain events. Satisfied by messagebus.MessageBus.
type EventBus interface {
	Publish(topic string, args ...any)
}
