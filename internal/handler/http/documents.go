// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-restaurant-api/internal/docs"
	"github.com/MKhiriev/go-restaurant-api/internal/negotiate"
	"github.com/MKhiriev/go-restaurant-api/internal/utils"
)

const liveJSONDocumentPath = "/openapi.json"

// negotiatedDocument serves the API document in the format the Accept header
// prefers, JSON when nothing matches.
func (h *Handler) negotiatedDocument(w http.ResponseWriter, r *http.Request) {
	mediaType := negotiate.Negotiate(r.Header.Get("Accept"), negotiate.DocumentTypes)

	format := docs.YAML
	if mediaType == negotiate.MIMEApplicationJSON {
		format = docs.JSON
	}

	w.Header().Add("Vary", "Accept")
	h.writeDocument(w, r, format, mediaType)
}

func (h *Handler) jsonDocument(w http.ResponseWriter, r *http.Request) {
	h.writeDocument(w, r, docs.JSON, docs.JSON.ContentType())
}

func (h *Handler) yamlDocument(w http.ResponseWriter, r *http.Request) {
	h.writeDocument(w, r, docs.YAML, docs.YAML.ContentType())
}

func (h *Handler) writeDocument(w http.ResponseWriter, r *http.Request, format docs.Format, contentType string) {
	body, err := h.publisher.Document(r.Context(), format)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteBytes(w, body, contentType, http.StatusOK)
}

// docsUI serves the interactive documentation page. It is mounted in
// development only.
func (h *Handler) docsUI(w http.ResponseWriter, r *http.Request) {
	page, err := docs.UIPage(h.options.DocsTitle, liveJSONDocumentPath)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteBytes(w, page, "text/html; charset=utf-8", http.StatusOK)
}
