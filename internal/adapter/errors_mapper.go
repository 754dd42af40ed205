package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-notes/models"
)

var jsonNull = []byte("null")

// unwrapEnvelope decodes body as a {data, error} envelope and returns the raw
// data. A present error wins over data, whatever data holds.
func unwrapEnvelope(body []byte) (json.RawMessage, error) {
	var envelope models.Response[json.RawMessage]
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if envelope.Error != nil {
		return nil, envelope.Error
	}

	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil, fmt.Errorf("%w: response has no data", ErrInvalidPayload)
	}

	return data, nil
}

// decodeData decodes raw envelope data into T. Type mismatches are schema
// errors, not decoding errors: the body itself was valid JSON.
func decodeData[T any](data json.RawMessage) (T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return result, nil
}
