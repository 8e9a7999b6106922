// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator validates structs by their `validate` tags.
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() *StructValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &StructValidator{validate: validate}
}

// Validate checks value, a struct or a pointer to one. When fields are given
// only those JSON fields are checked.
func (v *StructValidator) Validate(ctx context.Context, value any, fields ...string) error {
	structType := reflect.TypeOf(value)
	if structType != nil && structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}
	if structType == nil || structType.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, value)
	} else {
		names, lookupErr := structFieldNames(structType, fields)
		if lookupErr != nil {
			return lookupErr
		}
		err = v.validate.StructPartialCtx(ctx, value, names...)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		result := &ValidationError{Fields: make(map[string]string, len(validationErrors))}
		for _, fieldErr := range validationErrors {
			result.Fields[fieldErr.Field()] = describe(fieldErr)
		}
		return result
	}

	return err
}

// describe renders a failed rule as a short phrase following the field name.
func describe(fieldErr validator.FieldError) string {
	unit := ""
	if fieldErr.Kind() == reflect.String {
		unit = " characters"
	}

	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		if unit != "" {
			return fmt.Sprintf("must be at least %s%s long", fieldErr.Param(), unit)
		}
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		if unit != "" {
			return fmt.Sprintf("must be at most %s%s long", fieldErr.Param(), unit)
		}
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed the %q rule", fieldErr.Tag())
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}

// structFieldNames maps JSON field names onto Go field names for
// StructPartial.
func structFieldNames(structType reflect.Type, fields []string) ([]string, error) {
	names := make([]string, 0, len(fields))
	for _, field := range fields {
		found := false
		for i := range structType.NumField() {
			structField := structType.Field(i)
			if jsonFieldName(structField) == field {
				names = append(names, structField.Name)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return names, nil
}
