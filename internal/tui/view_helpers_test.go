package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "заметк...", fitText("заметка длинная", 9))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("Notes App", "line one\nline two", "r: reload")

	assert.Contains(t, page, "Notes App")
	assert.Contains(t, page, "  line one\n  line two\n")
	assert.Contains(t, page, "r: reload")
	assert.Contains(t, page, "ctrl+c: quit")
}

func TestHumanizeServerUnavailableError(t *testing.T) {
	assert.Empty(t, humanizeServerUnavailableError(nil))
	assert.Empty(t, humanizeServerUnavailableError(errors.New("connection refused")))
	assert.Equal(t, serverUnavailableHint,
		humanizeServerUnavailableError(fmt.Errorf("%w: dial tcp: connection refused", adapter.ErrTransport)))
	assert.Empty(t, humanizeServerUnavailableError(fmt.Errorf("%w: tls: bad certificate", adapter.ErrTransport)))
}
