package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-notes/internal/notes"
	"github.com/MKhiriev/go-notes/models"
)

// detailModel is the single-note screen opened from the list.
type detailModel struct {
	id      int
	note    *models.Note
	err     error
	loading bool
}

func (m detailModel) View(loc *time.Location, spinnerView, status string) string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(spinnerView + " " + mutedStyle.Render("Loading..."))
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error loading note: " + m.err.Error()))
		if hint := humanizeServerUnavailableError(m.err); hint != "" {
			b.WriteString("\n" + mutedStyle.Render(hint))
		}
	case m.note != nil:
		b.WriteString(titleStyle.Render(notes.Heading(*m.note)))
		b.WriteString("\n\n")
		b.WriteString(contentStyle.Render(m.note.Content))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render(notes.FormatCreatedAt(*m.note, loc)))
	}

	if status != "" {
		b.WriteString("\n\n" + status)
	}

	hotKeys := "esc: back"
	if m.note != nil {
		hotKeys = "c: copy content │ esc: back"
	}

	return renderPage("NOTE", b.String(), hotKeys)
}
