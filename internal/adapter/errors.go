package adapter

import (
	"errors"

	"github.com/MKhiriev/go-notes/models"
)

var (
	ErrTransport      = errors.New("transport error")
	ErrDecode         = errors.New("decoding error")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrNoteNotFound   = errors.New("note not found")

	// ErrAPI matches any envelope error returned by the server.
	ErrAPI = models.ErrAPI
)
