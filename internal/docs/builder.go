// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docs

import (
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-restaurant-api/models"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// CookieAuth names the security scheme of the token cookie.
const CookieAuth = "cookieAuth"

// BearerAuth names the security scheme of the Authorization header.
const BearerAuth = "bearerAuth"

const (
	errorSchemaName = "ErrorResponse"
	errorSchemaRef  = "#/components/schemas/" + errorSchemaName
)

// Info is the top-level metadata of the document.
type Info struct {
	Title   string
	Version string
}

// Route describes one registered endpoint.
//
// Request and Response are zero values of the body types; their schemas are
// derived from json and validate struct tags. A nil Request means the
// operation takes no body.
type Route struct {
	Method  string
	Path    string
	Summary string
	Tag     string

	// Auth marks operations behind the token check.
	Auth bool

	Request      any
	RequestTypes []string

	Response        any
	ResponseTypes   []string
	Status          int
	ErrorStatuses   []int
	ResponseSummary string
}

var pathParam = regexp.MustCompile(`\{([^}:]+)(:[^}]*)?\}`)

// Build assembles an OpenAPI 3.0 document from routes. Operations are
// emitted in path order, so equal inputs yield byte-identical documents.
func Build(info Info, routes []Route) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   info.Title,
			Version: info.Version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{},
			SecuritySchemes: openapi3.SecuritySchemes{
				CookieAuth: &openapi3.SecuritySchemeRef{Value: &openapi3.SecurityScheme{
					Type: "apiKey",
					In:   "cookie",
					Name: "token",
				}},
				BearerAuth: &openapi3.SecuritySchemeRef{Value: openapi3.NewJWTSecurityScheme()},
			},
		},
	}

	errorSchema, err := schemaFor(models.ErrorResponse{})
	if err != nil {
		return nil, err
	}
	doc.Components.Schemas[errorSchemaName] = errorSchema
	errorRef := openapi3.NewSchemaRef(errorSchemaRef, errorSchema.Value)

	sorted := make([]Route, len(routes))
	copy(sorted, routes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Path != sorted[j].Path {
			return sorted[i].Path < sorted[j].Path
		}
		return sorted[i].Method < sorted[j].Method
	})

	for _, route := range sorted {
		path := NormalizePath(route.Path)
		operation, err := newOperation(route, path, errorRef)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s: %w", ErrBuildingDocument, route.Method, route.Path, err)
		}
		doc.AddOperation(path, strings.ToUpper(route.Method), operation)
	}

	return doc, nil
}

func newOperation(route Route, path string, errorRef *openapi3.SchemaRef) (*openapi3.Operation, error) {
	operation := openapi3.NewOperation()
	operation.Summary = route.Summary
	operation.OperationID = operationID(route.Method, path)
	if route.Tag != "" {
		operation.Tags = []string{route.Tag}
	}

	for _, match := range pathParam.FindAllStringSubmatch(path, -1) {
		operation.AddParameter(openapi3.NewPathParameter(match[1]).WithSchema(openapi3.NewStringSchema()))
	}

	if route.Auth {
		operation.Security = &openapi3.SecurityRequirements{
			openapi3.NewSecurityRequirement().Authenticate(CookieAuth),
			openapi3.NewSecurityRequirement().Authenticate(BearerAuth),
		}
	}

	if route.Request != nil {
		schema, err := schemaFor(route.Request)
		if err != nil {
			return nil, err
		}
		operation.RequestBody = &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithContent(openapi3.NewContentWithSchemaRef(schema, orDefault(route.RequestTypes)))}
	}

	errorResponse := openapi3.NewResponse().
		WithDescription("error").
		WithContent(openapi3.NewContentWithJSONSchemaRef(errorRef))
	operation.Responses = openapi3.NewResponses(openapi3.WithName("default", errorResponse))

	status := route.Status
	if status == 0 {
		status = http.StatusOK
	}
	description := route.ResponseSummary
	if description == "" {
		description = http.StatusText(status)
	}
	response := openapi3.NewResponse().WithDescription(description)
	if route.Response != nil {
		schema, err := schemaFor(route.Response)
		if err != nil {
			return nil, err
		}
		response = response.WithContent(openapi3.NewContentWithSchemaRef(schema, orDefault(route.ResponseTypes)))
	}
	operation.AddResponse(status, response)

	for _, errorStatus := range route.ErrorStatuses {
		operation.AddResponse(errorStatus, openapi3.NewResponse().
			WithDescription(http.StatusText(errorStatus)).
			WithContent(openapi3.NewContentWithJSONSchemaRef(errorRef)))
	}

	return operation, nil
}

// schemaFor derives the schema of value. The validate tag bounds land on
// the properties, required fields on the enclosing object.
func schemaFor(value any) (*openapi3.SchemaRef, error) {
	ref, err := openapi3gen.NewSchemaRefForValue(value, openapi3.Schemas{},
		openapi3gen.SchemaCustomizer(applyValidateTag))
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %w", ErrBuildingDocument, value, err)
	}
	if ref.Value == nil {
		return ref, nil
	}

	typ := reflect.TypeOf(value)
	for typ.Kind() == reflect.Pointer || typ.Kind() == reflect.Slice {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return ref, nil
	}

	object := ref.Value
	if object.Items != nil && object.Items.Value != nil {
		object = object.Items.Value
	}
	object.AdditionalProperties = openapi3.AdditionalProperties{Has: openapi3.BoolPtr(false)}
	object.Required = requiredFields(typ)

	return ref, nil
}

func applyValidateTag(_ string, _ reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
	for _, rule := range strings.Split(tag.Get("validate"), ",") {
		key, param, _ := strings.Cut(rule, "=")
		switch key {
		case "min":
			applyBound(schema, param, true)
		case "max":
			applyBound(schema, param, false)
		}
	}
	return nil
}

func requiredFields(typ reflect.Type) []string {
	var required []string
	for i := range typ.NumField() {
		field := typ.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		for _, rule := range strings.Split(field.Tag.Get("validate"), ",") {
			if rule == "required" {
				required = append(required, name)
			}
		}
	}
	return required
}

func applyBound(schema *openapi3.Schema, param string, lower bool) {
	bound, err := strconv.ParseUint(param, 10, 64)
	if err != nil {
		return
	}

	if schema.Type.Is(openapi3.TypeString) {
		if lower {
			schema.MinLength = bound
		} else {
			schema.MaxLength = openapi3.Uint64Ptr(bound)
		}
		return
	}

	value := float64(bound)
	if lower {
		schema.Min = &value
	} else {
		schema.Max = &value
	}
}

// NormalizePath converts a chi pattern such as "/items/{id:[0-9a-f]+}/" to
// "/items/{id}".
func NormalizePath(pattern string) string {
	path := pathParam.ReplaceAllString(pattern, "{$1}")
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

func operationID(method, path string) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(method))
	for _, part := range strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '{' || r == '}' || r == '-'
	}) {
		part = strings.ReplaceAll(part, ".", "_")
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

func orDefault(types []string) []string {
	if len(types) == 0 {
		return []string{"application/json"}
	}
	return types
}
