// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes/internal/notes"
	"github.com/MKhiriev/go-notes/models"
)

// TemplateInstance is implemented by *html/template.Template.
type TemplateInstance interface {
	ExecuteTemplate(wr io.Writer, name string, data any) error
}

// TemplateRenderer renders named templates as HTML responses.
type TemplateRenderer struct {
	t TemplateInstance
}

func NewTemplateRenderer(t TemplateInstance) *TemplateRenderer {
	return &TemplateRenderer{t: t}
}

// parseTemplates loads the embedded templates. Timestamps are shown in loc.
func parseTemplates(loc *time.Location) (*template.Template, error) {
	funcs := template.FuncMap{
		"heading": notes.Heading,
		"createdAt": func(note models.Note) string {
			return notes.FormatCreatedAt(note, loc)
		},
		"isError": func(line string) bool {
			return strings.HasPrefix(line, "Error")
		},
	}

	tpl, err := template.New("notes").Funcs(funcs).ParseFS(templateFiles, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	return tpl, nil
}

// HTML renders the template into a buffer first, so a failing template
// yields a clean error instead of a half-written page.
func (r *TemplateRenderer) HTML(w http.ResponseWriter, code int, name string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("error rendering template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html;charset=utf-8")
	w.WriteHeader(code)
	_, err := buf.WriteTo(w)

	return err
}
