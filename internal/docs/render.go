// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docs

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"
)

// Format is a serialization of the API document.
type Format int

const (
	JSON Format = iota
	YAML
)

// FileName is the name the format is persisted under.
func (f Format) FileName() string {
	switch f {
	case JSON:
		return "openapi.json"
	case YAML:
		return "openapi.yaml"
	default:
		return ""
	}
}

// ContentType is the media type responses in the format are sent with.
func (f Format) ContentType() string {
	switch f {
	case JSON:
		return "application/json"
	case YAML:
		return "application/yaml"
	default:
		return ""
	}
}

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Render serializes doc. The YAML rendering is derived from the JSON one,
// so both carry the same content in the same key order.
func Render(doc *openapi3.T, format Format) ([]byte, error) {
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderingDocument, err)
	}

	switch format {
	case JSON:
		return body, nil
	case YAML:
		return jsonToYAML(body)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// jsonToYAML re-emits a JSON document in block style. Scalars that would
// change type when unquoted, such as "200", keep their quotes.
func jsonToYAML(body []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(body, &node); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderingDocument, err)
	}
	blockStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderingDocument, err)
	}
	return out, nil
}

func blockStyle(node *yaml.Node) {
	node.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle | yaml.SingleQuotedStyle
	for _, child := range node.Content {
		blockStyle(child)
	}
}
