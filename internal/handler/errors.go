// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServicesProvided is returned by NewHandlers when it is called without
// the service layer. The application cannot serve any route without it and
// fails at startup.
var errNoServicesProvided = errors.New("no services provided")
