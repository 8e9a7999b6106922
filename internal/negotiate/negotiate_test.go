// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package negotiate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{name: "no header", accept: "", want: MIMEApplicationJSON},
		{name: "json", accept: "application/json", want: MIMEApplicationJSON},
		{name: "text yaml", accept: "text/yaml", want: MIMETextYAML},
		{name: "text yml", accept: "text/yml", want: MIMETextYML},
		{name: "application yaml", accept: "application/yaml", want: MIMEApplicationYAML},
		{name: "wildcard", accept: "*/*", want: MIMEApplicationJSON},
		{name: "text wildcard ties go to first listed", accept: "text/*", want: MIMETextYAML},
		{name: "quality wins", accept: "application/json;q=0.5, text/yaml", want: MIMETextYAML},
		{name: "equal quality goes to first listed", accept: "text/yaml, application/json", want: MIMEApplicationJSON},
		{name: "zero quality excludes", accept: "application/json;q=0, */*;q=0.1", want: MIMEApplicationYAML},
		{name: "specific range overrides wildcard", accept: "*/*;q=0.9, application/json;q=0.2", want: MIMEApplicationYAML},
		{name: "unsupported only falls back", accept: "image/png", want: MIMEApplicationJSON},
		{name: "everything excluded falls back", accept: "*/*;q=0", want: MIMEApplicationJSON},
		{name: "malformed entries skipped", accept: "garbage;;, text/yaml;q=abc, text/yml;q=0.3", want: MIMETextYML},
		{name: "case insensitive", accept: "TEXT/YAML", want: MIMETextYAML},
		{name: "extension parameters keep full quality", accept: "text/yaml;q=0.5, application/json;charset=utf-8", want: MIMEApplicationJSON},
		{name: "bare asterisk", accept: "*", want: MIMEApplicationJSON},
		{name: "browser header", accept: "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8", want: MIMEApplicationJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.accept, DocumentTypes))
		})
	}
}

func TestNegotiate_EmptySupported(t *testing.T) {
	assert.Empty(t, Negotiate("application/json", nil))
}

func TestClassifyBody(t *testing.T) {
	tests := []struct {
		contentType string
		want        BodyKind
	}{
		{contentType: "", want: BodyJSON},
		{contentType: "application/json", want: BodyJSON},
		{contentType: "application/json; charset=utf-8", want: BodyJSON},
		{contentType: "application/yaml", want: BodyYAML},
		{contentType: "application/yml", want: BodyYAML},
		{contentType: "text/yaml", want: BodyYAML},
		{contentType: "text/yml", want: BodyYAML},
		{contentType: "application/x-www-form-urlencoded", want: BodyForm},
		{contentType: "multipart/form-data; boundary=xyz", want: BodyMultipart},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			kind, err := ClassifyBody(tt.contentType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestClassifyBody_Unsupported(t *testing.T) {
	for _, contentType := range []string{"text/plain", "application/xml", ";;"} {
		_, err := ClassifyBody(contentType)
		assert.ErrorIs(t, err, ErrUnsupportedMediaType, contentType)
	}
}

func TestBodyKind_String(t *testing.T) {
	assert.Equal(t, "yaml", BodyYAML.String())
	assert.Equal(t, "BodyKind(9)", BodyKind(9).String())
}
