// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Code: "note_title_invalid", Message: "Note title can not be empty"}

	assert.Equal(t, "API error: note_title_invalid - Note title can not be empty", err.Error())
}

func TestAPIError_Is(t *testing.T) {
	var err error = fmt.Errorf("create: %w", &APIError{Code: "internal"})

	assert.True(t, errors.Is(err, ErrAPI))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "internal", apiErr.Code)
}

func TestResponse_DecodeErrorWithData(t *testing.T) {
	var resp Response[[]Note]
	err := json.Unmarshal([]byte(`{"data":[{"id":1}],"error":{"code":"c","message":"m"}}`), &resp)

	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Len(t, resp.Data, 1)
}
