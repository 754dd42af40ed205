package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

var errorsStatusCodes = map[string]int{
	ErrorBodyInvalid:        http.StatusBadRequest,
	ErrorInternal:           http.StatusInternalServerError,
	ErrorNoteContentInvalid: http.StatusUnprocessableEntity,
	ErrorNoteIDInvalid:      http.StatusBadRequest,
	ErrorNoteNotFound:       http.StatusNotFound,
	ErrorNoteTitleInvalid:   http.StatusUnprocessableEntity,
	ErrorRouteNotFound:      http.StatusNotFound,
	ErrorMethodNotAllowed:   http.StatusMethodNotAllowed,
}

// apiErrorFromService classifies a service error. rawID is the id path
// segment as requested, echoed in not-found messages. Unknown errors become
// the generic internal error.
func apiErrorFromService(err error, rawID string) *models.APIError {
	switch {
	case errors.Is(err, validators.ErrEmptyTitle):
		return &models.APIError{Code: ErrorNoteTitleInvalid, Message: msgNoteTitleInvalid}
	case errors.Is(err, validators.ErrEmptyContent):
		return &models.APIError{Code: ErrorNoteContentInvalid, Message: msgNoteContentInvalid}
	case errors.Is(err, service.ErrNoteNotFound):
		return &models.APIError{Code: ErrorNoteNotFound, Message: fmt.Sprintf(msgNoteNotFound, rawID)}
	default:
		return &models.APIError{Code: ErrorInternal, Message: msgInternal}
	}
}

func statusFromCode(code string) int {
	if status, ok := errorsStatusCodes[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeAPIError logs apiErr and writes it as an error envelope.
func writeAPIError(w http.ResponseWriter, r *http.Request, apiErr *models.APIError) {
	status := statusFromCode(apiErr.Code)

	logger.FromRequest(r).Warn().
		Str("code", apiErr.Code).
		Int("status", status).
		Msg(apiErr.Message)

	if _, err := utils.WriteError(w, apiErr.Code, apiErr.Message, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}

// writeServiceError classifies err and writes it. Internal errors are
// logged with their cause; the client only sees the generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, rawID string) {
	apiErr := apiErrorFromService(err, rawID)
	if apiErr.Code == ErrorInternal {
		logger.FromRequest(r).Err(err).Msg("internal error")
	}

	writeAPIError(w, r, apiErr)
}

// writeInternalError is the panic response of the recoverer.
func writeInternalError(w http.ResponseWriter, r *http.Request) {
	writeAPIError(w, r, &models.APIError{Code: ErrorInternal, Message: msgInternal})
}
