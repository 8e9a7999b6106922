// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers in production when no
// HTTP address is configured: nothing would ever serve the handler.
var errNoHandlersAreCreated = errors.New("no handlers are created")
