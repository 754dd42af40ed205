// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// Storages aggregates the storages of the API server.
type Storages struct {
	NotesStorage NotesStorage
}

// NewStorages builds the in-memory storages. When seedFile is set its notes
// are saved in file order, each stamped with now.
func NewStorages(ctx context.Context, seedFile string, log *logger.Logger) (*Storages, error) {
	notes := NewMemoryNotesStorage()

	if seedFile != "" {
		seed, err := LoadSeedFile(seedFile)
		if err != nil {
			return nil, err
		}

		createdAt := time.Now().UTC().Format(time.RFC3339Nano)
		for _, params := range seed {
			if _, err = notes.Save(ctx, models.Note{
				Title:     params.Title,
				Content:   params.Content,
				CreatedAt: createdAt,
			}); err != nil {
				return nil, fmt.Errorf("error seeding notes: %w", err)
			}
		}

		log.Info().Str("file", seedFile).Int("count", len(seed)).Msg("notes seeded")
	}

	return &Storages{NotesStorage: notes}, nil
}
