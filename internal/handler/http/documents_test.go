// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-restaurant-api/internal/config"
	"github.com/MKhiriev/go-restaurant-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func getDocument(t *testing.T, router http.Handler, target, accept string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, target, nil)
	if accept != "" {
		r.Header.Set("Accept", accept)
	}
	return serve(router, r)
}

// documentSubstance decodes a JSON or YAML document into generic values so
// that both renderings can be compared.
func documentSubstance(t *testing.T, body []byte, isYAML bool) map[string]any {
	t.Helper()

	var generic any
	if isYAML {
		require.NoError(t, yaml.Unmarshal(body, &generic))
		raw, err := json.Marshal(generic)
		require.NoError(t, err)
		body = raw
	}

	var substance map[string]any
	require.NoError(t, json.Unmarshal(body, &substance))
	return substance
}

func TestNegotiatedDocument(t *testing.T) {
	tests := []struct {
		name            string
		accept          string
		wantContentType string
	}{
		{name: "no accept header", accept: "", wantContentType: "application/json"},
		{name: "wildcard", accept: "*/*", wantContentType: "application/json"},
		{name: "application/yaml", accept: "application/yaml", wantContentType: "application/yaml"},
		{name: "text/yml", accept: "text/yml", wantContentType: "text/yml"},
		{name: "yaml preferred by quality", accept: "application/json;q=0.5, text/yaml", wantContentType: "text/yaml"},
		{name: "unsupported falls back to json", accept: "application/xml", wantContentType: "application/json"},
	}

	_, router := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := getDocument(t, router, "/openapi", tt.accept)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantContentType, rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Header().Values("Vary"), "Accept")
		})
	}
}

func TestDocuments_SameSubstance(t *testing.T) {
	_, router := newTestRouter(t)

	jsonDoc := getDocument(t, router, "/openapi", "application/json")
	yamlDoc := getDocument(t, router, "/openapi", "application/yaml")
	require.Equal(t, http.StatusOK, jsonDoc.Code)
	require.Equal(t, http.StatusOK, yamlDoc.Code)

	assert.Equal(t,
		documentSubstance(t, jsonDoc.Body.Bytes(), false),
		documentSubstance(t, yamlDoc.Body.Bytes(), true))

	fixedJSON := getDocument(t, router, "/openapi/json", "")
	fixedYAML := getDocument(t, router, "/openapi/yaml", "")
	assert.Equal(t, jsonDoc.Body.Bytes(), fixedJSON.Body.Bytes())
	assert.Equal(t, yamlDoc.Body.Bytes(), fixedYAML.Body.Bytes())
	assert.Equal(t, "application/yaml", fixedYAML.Header().Get("Content-Type"))
}

func TestDocument_DescribesRoutes(t *testing.T) {
	_, router := newTestRouter(t)

	rr := getDocument(t, router, "/openapi/json", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var document struct {
		OpenAPI string                    `json:"openapi"`
		Info    map[string]any            `json:"info"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &document))

	assert.Equal(t, "3.0.3", document.OpenAPI)
	assert.Equal(t, "Restaurant API", document.Info["title"])
	assert.Equal(t, "1.0.0", document.Info["version"])

	for path, method := range map[string]string{
		"/items":              "get",
		"/items/{id}":         "delete",
		"/items/best-seller":  "get",
		"/items/worst-seller": "get",
		"/items/{id}/sales":   "post",
		"/auth/register":      "post",
		"/restaurants/me":     "get",
		"/openapi":            "get",
		"/health":             "get",
	} {
		require.Contains(t, document.Paths, path)
		assert.Contains(t, document.Paths[path], method, path)
	}
	assert.Contains(t, document.Paths["/items"], "post")
}

func TestLiveOnlyRoutes(t *testing.T) {
	_, router := newTestRouter(t)

	live := getDocument(t, router, "/openapi.json", "")
	require.Equal(t, http.StatusOK, live.Code)
	assert.Equal(t, getDocument(t, router, "/openapi/json", "").Body.Bytes(), live.Body.Bytes())

	assert.Equal(t, http.StatusOK, getDocument(t, router, "/openapi.yaml", "").Code)

	ui := getDocument(t, router, "/docs", "")
	require.Equal(t, http.StatusOK, ui.Code)
	assert.Equal(t, "text/html; charset=utf-8", ui.Header().Get("Content-Type"))
	assert.Contains(t, ui.Body.String(), "/openapi.json")
}

func TestPrecomputedDocuments(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")

	_, services := newServiceMocks(t)
	options := testOptions(config.PhaseProduction)
	options.DocsDir = dir
	h := NewHandler(services, options, logger.Nop())

	router, err := h.Init()
	require.NoError(t, err)

	onDisk, err := os.ReadFile(filepath.Join(dir, "openapi.json"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "openapi.yaml"))
	require.NoError(t, err)

	served := getDocument(t, router, "/openapi/json", "")
	require.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, onDisk, served.Body.Bytes())

	for _, target := range []string{"/openapi.json", "/openapi.yaml", "/docs"} {
		assert.Equal(t, http.StatusNotFound, getDocument(t, router, target, "").Code, target)
	}

	var document struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(onDisk, &document))
	assert.NotContains(t, document.Paths, "/docs")
}

func TestPrecomputedDocuments_UnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, services := newServiceMocks(t)
	options := testOptions(config.PhaseProduction)
	options.DocsDir = filepath.Join(file, "docs")

	_, err := NewHandler(services, options, logger.Nop()).Init()
	assert.Error(t, err)
}
