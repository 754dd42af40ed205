package validators

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTitle targets the note title.
	FieldTitle = "title"

	// FieldContent targets the note body.
	FieldContent = "content"
)

// NoteValidator implements the Validator interface for note creation
// input: models.NoteCreateParams and models.Note, by value or pointer.
//
// Title is checked before content, so a request with both fields empty
// reports ErrEmptyTitle. Whitespace is content: only the empty string fails.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator and returns it as the
// Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for anything else.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NoteCreateParams:
		return v.validateNote(value.Title, value.Content, fields...)
	case *models.NoteCreateParams:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNote(value.Title, value.Content, fields...)
	case models.Note:
		return v.validateNote(value.Title, value.Content, fields...)
	case *models.Note:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNote(value.Title, value.Content, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(title, content string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if title == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if content == "" {
				return ErrEmptyContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
