// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal notes client built on bubbletea. One screen
// holds the new-note form above the note list; a note opens in a detail
// screen fetched by id.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	adapter   adapter.NotesAdapter
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(notesAdapter adapter.NotesAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{adapter: notesAdapter, buildInfo: buildInfo, logger: logger.WithComponent("tui")}
}

// Run shows the notes screen until the user quits or ctx is cancelled.
// Requests still running at that point are cancelled.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	root := NewRootModel(newMainLoopModel(ctx, t.adapter, time.Local), t.buildInfo)

	t.logger.Info().Msg("starting terminal client")
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		t.logger.Err(err).Msg("terminal client stopped with error")
		return err
	}

	t.logger.Info().Msg("terminal client stopped")
	return nil
}
