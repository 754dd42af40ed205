// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNote_JSONFieldNames(t *testing.T) {
	var n Note
	err := json.Unmarshal([]byte(`{"id":2,"title":"b","content":"y","createdAt":"2024-05-01T10:00:00.000Z"}`), &n)

	require.NoError(t, err)
	assert.Equal(t, Note{ID: 2, Title: "b", Content: "y", CreatedAt: "2024-05-01T10:00:00.000Z"}, n)
}

func TestNote_CreatedTime(t *testing.T) {
	got, err := Note{CreatedAt: "2024-05-01T10:00:00.123Z"}.CreatedTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 123_000_000, time.UTC), got)

	_, err = Note{CreatedAt: "yesterday"}.CreatedTime()
	assert.Error(t, err)
}

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "", "abc123")

	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}
