// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

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

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	_, err := writer.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()

	reader, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer reader.Close()

	out, err := io.ReadAll(reader)
	require.NoError(t, err)
	return string(out)
}

func writeTyped(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", "999")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, body)
	}
}

func TestWithGZip_Responses(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		contentType    string
		wantGzipped    bool
	}{
		{name: "json for gzip client", acceptEncoding: "gzip", contentType: "application/json", wantGzipped: true},
		{name: "yaml among several encodings", acceptEncoding: "deflate, gzip, br", contentType: "application/yaml", wantGzipped: true},
		{name: "html with charset", acceptEncoding: "gzip", contentType: "text/html; charset=utf-8", wantGzipped: true},
		{name: "client without gzip", acceptEncoding: "", contentType: "application/json", wantGzipped: false},
		{name: "binary payload", acceptEncoding: "gzip", contentType: "image/png", wantGzipped: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const body = `{"name":"Soup","price":450}`

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptEncoding != "" {
				r.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := serve(withGZip(writeTyped(tt.contentType, body)), r)

			require.Equal(t, http.StatusOK, rr.Code)
			if !tt.wantGzipped {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, body, rr.Body.String())
				return
			}

			assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
			assert.Contains(t, rr.Header().Values("Vary"), "Accept-Encoding")
			assert.Empty(t, rr.Header().Get("Content-Length"))
			assert.Equal(t, body, gunzip(t, rr.Body.Bytes()))
		})
	}
}

func TestWithGZip_NoContent(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNoContent)
	}))

	r := httptest.NewRequest(http.MethodDelete, "/", nil)
	r.Header.Set("Accept-Encoding", "gzip")
	rr := serve(handler, r)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Empty(t, rr.Body.Bytes())
}

func TestWithGZip_DecodesRequestBody(t *testing.T) {
	var received string
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, r.Body.Close())
		received = string(data)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	}))

	r := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader(gzipBytes(t, "name: Soup\n")))
	r.Header.Set("Content-Encoding", "gzip")
	serve(handler, r)

	assert.Equal(t, "name: Soup\n", received)
}

func TestWithGZip_RejectsBrokenRequestBody(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	}))

	r := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader("not gzip at all"))
	r.Header.Set("Content-Encoding", "gzip")
	rr := serve(handler, r)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "malformed_body", decodeError(t, rr.Body).Code)
}
