// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NoteEventsWorker consumes service.TopicNoteCreated events: it logs every
// created note and keeps the notes metrics current.
type NoteEventsWorker struct {
	bus EventBus

	// handler is stored once so Unsubscribe sees the same func value
	handler func(models.Note)

	createdTotal prometheus.Counter
	stored       prometheus.Gauge

	logger *logger.Logger
}

// NewNoteEventsWorker registers the notes metrics on reg.
func NewNoteEventsWorker(bus EventBus, reg prometheus.Registerer, logger *logger.Logger) *NoteEventsWorker {
	w := &NoteEventsWorker{
		bus: bus,
		createdTotal: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "notes_created_total",
				Help: "Notes created since the server started.",
			},
		),
		stored: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Name: "notes_stored",
				Help: "Notes currently held in memory.",
			},
		),
		logger: logger.WithComponent("note-events"),
	}
	w.handler = w.noteCreated

	return w
}

func (w *NoteEventsWorker) Run() error {
	return w.bus.Subscribe(service.TopicNoteCreated, w.handler)
}

func (w *NoteEventsWorker) Stop() {
	if err := w.bus.Unsubscribe(service.TopicNoteCreated, w.handler); err != nil {
		w.logger.Warn().Err(err).Msg("error unsubscribing from note events")
	}
}

func (w *NoteEventsWorker) noteCreated(note models.Note) {
	w.createdTotal.Inc()
	// ids are assigned densely from zero
	w.stored.Set(float64(note.ID + 1))

	w.logger.Info().
		Int("note_id", note.ID).
		Str("title", note.Title).
		Str("created_at", note.CreatedAt).
		Msg("note created")
}
