// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a single record returned by the notes API. Notes are immutable from
// the client's point of view: they are only listed, viewed and created.
type Note struct {
	// ID is the server-assigned identifier, unique and stable.
	ID int `json:"id" yaml:"id"`

	// Title is the short heading of the note.
	Title string `json:"title" yaml:"title" validate:"required"`

	// Content is the note body.
	Content string `json:"content" yaml:"content" validate:"required"`

	// CreatedAt is the creation timestamp as received from the server,
	// an ISO-8601 / RFC 3339 string.
	CreatedAt string `json:"createdAt" yaml:"createdAt" validate:"required"`
}

// CreatedTime parses CreatedAt. The zero time is returned together with the
// parse error when the server sent something that is not RFC 3339.
func (n Note) CreatedTime() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, n.CreatedAt)
}

// NoteCreateParams is the body of a create request.
type NoteCreateParams struct {
	Title   string `json:"title" yaml:"title" validate:"required"`
	Content string `json:"content" yaml:"content" validate:"required"`
}
