package web

import (
	"time"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// Handler serves the HTML pages.
type Handler struct {
	adapter   adapter.NotesAdapter
	renderer  *TemplateRenderer
	buildInfo models.AppBuildInfo

	// proxyUpstream is the notes API the /api prefix forwards to, or empty.
	proxyUpstream string

	logger *logger.Logger
}

// NewHandler parses the page templates. Note timestamps are shown in loc,
// or in the local time zone when loc is nil.
func NewHandler(notesAdapter adapter.NotesAdapter, proxyUpstream string, loc *time.Location, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handler, error) {
	if notesAdapter == nil {
		return nil, ErrNoAdapter
	}
	if loc == nil {
		loc = time.Local
	}

	tpl, err := parseTemplates(loc)
	if err != nil {
		return nil, err
	}

	return &Handler{
		adapter:       notesAdapter,
		renderer:      NewTemplateRenderer(tpl),
		buildInfo:     buildInfo,
		proxyUpstream: proxyUpstream,
		logger:        logger.WithComponent("web"),
	}, nil
}
