// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-notes/models"
	"github.com/stretchr/testify/assert"
)

func TestHeading(t *testing.T) {
	assert.Equal(t, "#0 first", Heading(models.Note{ID: 0, Title: "first"}))
}

func TestFormatCreatedAt(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)

	assert.Equal(t, "2024-01-01 05:00:00", FormatCreatedAt(models.Note{CreatedAt: "2024-01-01T00:00:00Z"}, loc))
	assert.Equal(t, "not a date", FormatCreatedAt(models.Note{CreatedAt: "not a date"}, loc))
}
