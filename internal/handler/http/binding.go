// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-restaurant-api/internal/negotiate"
	"github.com/MKhiriev/go-restaurant-api/internal/validators"
	"github.com/gorilla/schema"
	"gopkg.in/yaml.v3"
)

const maxBodySize = 1 << 20

// formDecoder reads form fields by the json names of the target struct and
// reports keys the struct does not declare.
var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.SetAliasTag("json")
	decoder.IgnoreUnknownKeys(false)
	return decoder
}

// bind decodes the request body into dst and validates the result.
//
// JSON and YAML bodies are first decoded into a generic map, which is then
// re-encoded as JSON and decoded into dst with unknown fields disallowed. A
// YAML body therefore yields exactly what the equivalent JSON body would.
// Form bodies are decoded into dst directly under the same field names.
func (h *Handler) bind(w http.ResponseWriter, r *http.Request, dst any) error {
	kind, err := negotiate.ClassifyBody(r.Header.Get("Content-Type"))
	if err != nil {
		return err
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	switch kind {
	case negotiate.BodyForm:
		if err = r.ParseForm(); err != nil {
			return bodyError(err)
		}
		err = decodeForm(r.PostForm, dst)
	case negotiate.BodyMultipart:
		if err = r.ParseMultipartForm(maxBodySize); err != nil {
			return bodyError(err)
		}
		err = decodeForm(r.MultipartForm.Value, dst)
	default:
		var fields map[string]any
		if kind == negotiate.BodyYAML {
			fields, err = decodeYAMLBody(r.Body)
		} else {
			fields, err = decodeJSONBody(r.Body)
		}
		if err != nil {
			return bodyError(err)
		}
		err = decodeFields(fields, dst)
	}
	if err != nil {
		return err
	}

	return h.validator.Validate(r.Context(), dst)
}

// decodeJSONBody reads exactly one JSON object. An empty body yields nil.
func decodeJSONBody(body io.Reader) (map[string]any, error) {
	decoder := json.NewDecoder(body)
	decoder.UseNumber()

	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	switch err := decoder.Decode(new(json.RawMessage)); {
	case err == nil:
		return nil, ErrTrailingData
	case !errors.Is(err, io.EOF):
		return nil, err
	}
	return fields, nil
}

// decodeYAMLBody reads exactly one YAML document. An empty body yields nil.
func decodeYAMLBody(body io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))

	var fields map[string]any
	if err = decoder.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	switch err = decoder.Decode(new(yaml.Node)); {
	case err == nil:
		return nil, ErrTrailingData
	case !errors.Is(err, io.EOF):
		return nil, err
	}
	return fields, nil
}

// decodeForm decodes form values into dst, reporting unknown and
// unconvertible fields as validation errors.
func decodeForm(values map[string][]string, dst any) error {
	err := formDecoder.Decode(dst, values)
	if err == nil {
		return nil
	}

	var multiErr schema.MultiError
	if !errors.As(err, &multiErr) {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	fields := make(map[string]string, len(multiErr))
	for key, fieldErr := range multiErr {
		var (
			unknownErr    schema.UnknownKeyError
			conversionErr schema.ConversionError
		)
		switch {
		case errors.As(fieldErr, &unknownErr):
			fields[key] = "is not allowed"
		case errors.As(fieldErr, &conversionErr):
			fields[key] = "has the wrong type"
		default:
			fields[key] = "is invalid"
		}
	}
	return &validators.ValidationError{Fields: fields}
}

// decodeFields decodes the generic body into dst, reporting unknown and
// mistyped fields as validation errors.
func decodeFields(fields map[string]any, dst any) error {
	if fields == nil {
		fields = map[string]any{}
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()

	err = decoder.Decode(dst)
	if err == nil {
		return nil
	}

	if name, ok := unknownField(err); ok {
		return &validators.ValidationError{Fields: map[string]string{name: "is not allowed"}}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return &validators.ValidationError{Fields: map[string]string{typeErr.Field: "has the wrong type"}}
	}

	return fmt.Errorf("%w: %w", ErrMalformedBody, err)
}

// unknownField extracts the field name from encoding/json's
// DisallowUnknownFields error, which has no exported type.
func unknownField(err error) (string, bool) {
	quoted, ok := strings.CutPrefix(err.Error(), "json: unknown field ")
	if !ok {
		return "", false
	}

	name, err := strconv.Unquote(quoted)
	if err != nil {
		return quoted, true
	}
	return name, true
}

func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return ErrBodyTooLarge
	}
	return fmt.Errorf("%w: %w", ErrMalformedBody, err)
}
