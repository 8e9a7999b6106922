// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package negotiate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elnormous/contenttype"
)

var ErrUnsupportedMediaType = errors.New("unsupported media type")

// BodyKind is the decoder family of a request body.
type BodyKind int

const (
	BodyJSON BodyKind = iota
	BodyYAML
	BodyForm
	BodyMultipart
)

func (k BodyKind) String() string {
	switch k {
	case BodyJSON:
		return "json"
	case BodyYAML:
		return "yaml"
	case BodyForm:
		return "form"
	case BodyMultipart:
		return "multipart"
	default:
		return fmt.Sprintf("BodyKind(%d)", int(k))
	}
}

var bodyKinds = map[string]BodyKind{
	MIMEApplicationJSON: BodyJSON,
	MIMEApplicationYAML: BodyYAML,
	MIMEApplicationYML:  BodyYAML,
	MIMETextYAML:        BodyYAML,
	MIMETextYML:         BodyYAML,
	MIMEForm:            BodyForm,
	MIMEMultipartForm:   BodyMultipart,
}

// ClassifyBody maps a Content-Type header onto a BodyKind. A missing header
// is treated as JSON.
func ClassifyBody(contentType string) (BodyKind, error) {
	if contentType == "" {
		return BodyJSON, nil
	}

	mediaType, err := contenttype.ParseMediaType(contentType)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnsupportedMediaType, err)
	}

	essence := strings.ToLower(mediaType.Type + "/" + mediaType.Subtype)
	kind, ok := bodyKinds[essence]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, essence)
	}

	return kind, nil
}
