package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
	"github.com/go-playground/validator/v10"
)

const (
	notesEndpoint = "/notes"
	traceIDHeader = "X-Trace-ID"
)

type httpNotesAdapter struct {
	client   *utils.HTTPClient
	validate *validator.Validate

	logger *logger.Logger
}

// NewHTTPNotesAdapter constructs the HTTP/JSON implementation of
// [NotesAdapter]. adapterCfg.BaseURL must already be resolved and normalised
// by the config package; endpoints are appended to it verbatim.
func NewHTTPNotesAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (NotesAdapter, error) {
	if adapterCfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: empty base url", config.ErrInvalidAdapterConfigs)
	}

	return &httpNotesAdapter{
		client:   utils.NewHTTPClient(adapterCfg.BaseURL, adapterCfg.RequestTimeout),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.WithComponent("notes-adapter"),
	}, nil
}

// ListNotes implements [NotesAdapter]. GET /notes.
func (h *httpNotesAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	data, err := h.do(ctx, http.MethodGet, notesEndpoint, nil)
	if err != nil {
		return nil, err
	}

	notes, err := decodeData[[]models.Note](data)
	if err != nil {
		return nil, err
	}

	if err = h.validatePayload(notes); err != nil {
		return nil, err
	}

	return notes, nil
}

// GetNote implements [NotesAdapter]. GET /notes/{id}.
//
// The data payload is accepted either as a single note or as a sequence; for
// a sequence the first element is the answer and an empty one means the note
// does not exist.
func (h *httpNotesAdapter) GetNote(ctx context.Context, id int) (models.Note, error) {
	data, err := h.do(ctx, http.MethodGet, notesEndpoint+"/"+strconv.Itoa(id), nil)
	if err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if bytes.HasPrefix(data, []byte("[")) {
		notes, err := decodeData[[]models.Note](data)
		if err != nil {
			return models.Note{}, err
		}
		if len(notes) == 0 {
			return models.Note{}, fmt.Errorf("%w: #%d", ErrNoteNotFound, id)
		}
		note = notes[0]
	} else {
		note, err = decodeData[models.Note](data)
		if err != nil {
			return models.Note{}, err
		}
	}

	if err = h.validatePayload(note); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// CreateNote implements [NotesAdapter]. POST /notes with a JSON body.
func (h *httpNotesAdapter) CreateNote(ctx context.Context, params models.NoteCreateParams) (models.Note, error) {
	data, err := h.do(ctx, http.MethodPost, notesEndpoint, params)
	if err != nil {
		return models.Note{}, err
	}

	note, err := decodeData[models.Note](data)
	if err != nil {
		return models.Note{}, err
	}

	if err = h.validatePayload(note); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// do performs exactly one request and returns the envelope's data. A nil
// body sends no body and no Content-Type.
func (h *httpNotesAdapter) do(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: encode request body: %w", ErrTransport, err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	start := time.Now()
	resp, err := req.Execute(method, endpoint)
	if err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("endpoint", endpoint).Msg("request failed")
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Int("size", len(resp.Body())).
		Send()

	return unwrapEnvelope(resp.Body())
}

// validatePayload checks decoded data against the `validate` tags of its
// element type. Slices are validated element by element.
func (h *httpNotesAdapter) validatePayload(payload any) error {
	var err error
	if reflect.ValueOf(payload).Kind() == reflect.Slice {
		err = h.validate.Var(payload, "dive")
	} else {
		err = h.validate.Struct(payload)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return nil
}
