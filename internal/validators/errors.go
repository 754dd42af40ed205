package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle   = errors.New("note title is empty")
	ErrEmptyContent = errors.New("note content is empty")
)
