// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes/models"
)

// TimestampLayout is how creation times are shown: ISO-like, in the
// viewer's time zone.
const TimestampLayout = "2006-01-02 15:04:05"

// Heading renders "#<id> <title>".
func Heading(note models.Note) string {
	return fmt.Sprintf("#%d %s", note.ID, note.Title)
}

// FormatCreatedAt renders the creation time in loc. A timestamp that does
// not parse is shown as received.
func FormatCreatedAt(note models.Note, loc *time.Location) string {
	t, err := note.CreatedTime()
	if err != nil {
		return note.CreatedAt
	}

	return t.In(loc).Format(TimestampLayout)
}
