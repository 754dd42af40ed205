package tui

import (
	"github.com/MKhiriev/go-notes/internal/notes"
	"github.com/MKhiriev/go-notes/models"
)

type listLoadedMsg struct {
	result notes.ListResult
}

type noteCreatedMsg struct {
	result notes.CreateResult
}

type noteLoadedMsg struct {
	seq  int
	note models.Note
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
