// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docs

import "errors"

var (
	ErrUnknownFormat      = errors.New("unknown document format")
	ErrBuildingDocument   = errors.New("error building api document")
	ErrRenderingDocument  = errors.New("error rendering api document")
	ErrPersistingDocument = errors.New("error persisting api document")
)
