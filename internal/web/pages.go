// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/notes"
	"github.com/MKhiriev/go-notes/models"
	"github.com/go-chi/chi/v5"
)

const pageTitle = "Notes App"

// notFoundCode is the API error code of an unknown note id.
const notFoundCode = "note_not_found"

type indexPage struct {
	Title   string
	Version string
	List    notes.ListView
	Create  notes.CreateView
}

type notePage struct {
	Title   string
	Version string
	Note    models.Note
	Err     error
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	list := notes.NewListFlow(r.Context(), h.adapter)
	defer list.Close()

	h.render(w, r, http.StatusOK, "index.gohtml", indexPage{
		Title:   pageTitle,
		Version: h.buildInfo.BuildVersion(),
		List:    list.Load(),
	})
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderStatus(w, r, http.StatusBadRequest)
		return
	}

	list := notes.NewListFlow(r.Context(), h.adapter)
	defer list.Close()

	refreshed := false
	create := notes.NewCreateFlow(r.Context(), h.adapter, func() {
		list.Load()
		refreshed = true
	})
	defer create.Close()

	create.SetTitle(r.PostFormValue("title"))
	create.SetContent(r.PostFormValue("content"))

	// a fresh flow is never in flight; a refused empty form is in createView.Err
	createView, _ := create.SubmitAndWait()
	if !refreshed {
		list.Load()
	}

	if createView.Err != nil {
		logger.FromRequest(r).Warn().Err(createView.Err).Msg("error creating note")
	}

	h.render(w, r, http.StatusOK, "index.gohtml", indexPage{
		Title:   pageTitle,
		Version: h.buildInfo.BuildVersion(),
		List:    list.View(),
		Create:  createView,
	})
}

func (h *Handler) showNote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.renderStatus(w, r, http.StatusNotFound)
		return
	}

	page := notePage{Title: pageTitle, Version: h.buildInfo.BuildVersion()}
	status := http.StatusOK

	note, err := h.adapter.GetNote(r.Context(), id)
	if err != nil {
		page.Err = err
		status = statusFromAdapterError(err)
		logger.FromRequest(r).Warn().Err(err).Int("note_id", id).Msg("error loading note")
	} else {
		page.Note = note
		page.Title = notes.Heading(note)
	}

	h.render(w, r, status, "note.gohtml", page)
}

// statusFromAdapterError picks the page status for a failed note lookup.
func statusFromAdapterError(err error) int {
	var apiErr *models.APIError
	switch {
	case errors.Is(err, adapter.ErrNoteNotFound):
		return http.StatusNotFound
	case errors.As(err, &apiErr) && apiErr.Code == notFoundCode:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	if err := h.renderer.HTML(w, status, name, data); err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering page")
		h.renderStatus(w, r, http.StatusInternalServerError)
	}
}

// renderStatus writes a bare status page.
func (h *Handler) renderStatus(w http.ResponseWriter, r *http.Request, status int) {
	http.Error(w, http.StatusText(status), status)
}
