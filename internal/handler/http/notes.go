// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NotesService.ListNotes(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	h.writeData(w, r, notes)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "id")
	id, err := strconv.Atoi(rawID)
	if err != nil {
		writeAPIError(w, r, &models.APIError{
			Code:    ErrorNoteIDInvalid,
			Message: fmt.Sprintf(msgNoteIDInvalid, rawID),
		})
		return
	}

	note, err := h.services.NotesService.GetNote(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, rawID)
		return
	}

	h.writeData(w, r, note)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var params models.NoteCreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		writeAPIError(w, r, &models.APIError{Code: ErrorBodyInvalid, Message: msgBodyInvalid})
		return
	}

	note, err := h.services.NotesService.CreateNote(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, err, "")
		return
	}

	h.writeData(w, r, note)
}

func (h *Handler) writeData(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteData(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
