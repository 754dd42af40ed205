// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	gr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer gr.Close()
	out, err := io.ReadAll(gr)
	require.NoError(t, err)
	return string(out)
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name                 string
		acceptEncoding       string
		requestBody          []byte
		compressRequestBody  bool
		expectedResponseBody string
		checkResponseGzipped bool
	}{
		{
			name:                 "compress response when client accepts gzip",
			acceptEncoding:       "gzip",
			expectedResponseBody: "Hello, notes!",
			checkResponseGzipped: true,
		},
		{
			name:                 "no compression when client doesn't accept gzip",
			expectedResponseBody: "Hello, notes!",
		},
		{
			name:                 "accept-encoding with multiple values including gzip",
			acceptEncoding:       "deflate, gzip, br",
			expectedResponseBody: "Hello, notes!",
			checkResponseGzipped: true,
		},
		{
			name:                 "decompress gzipped request body",
			requestBody:          []byte("Request data"),
			compressRequestBody:  true,
			expectedResponseBody: "Processed: Request data",
		},
		{
			name:                 "decompress request and compress response",
			acceptEncoding:       "gzip",
			requestBody:          []byte("Request data"),
			compressRequestBody:  true,
			expectedResponseBody: "Processed: Request data",
			checkResponseGzipped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Body != nil && r.ContentLength != 0 {
					body, err := io.ReadAll(r.Body)
					assert.NoError(t, err)
					if len(body) > 0 {
						_, _ = w.Write([]byte("Processed: " + string(body)))
						return
					}
				}
				_, _ = w.Write([]byte("Hello, notes!"))
			})

			var body io.Reader
			if tt.requestBody != nil {
				data := tt.requestBody
				if tt.compressRequestBody {
					data = gzipBytes(t, data)
				}
				body = bytes.NewReader(data)
			}

			req := httptest.NewRequest(http.MethodPost, "/", body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.compressRequestBody {
				req.Header.Set("Content-Encoding", "gzip")
			}
			rr := httptest.NewRecorder()

			WithGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			if tt.checkResponseGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.expectedResponseBody, gunzip(t, rr.Body.Bytes()))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.expectedResponseBody, rr.Body.String())
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next must not be called")
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	WithGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGZip_NoContentIsNotEncoded(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	WithGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}
