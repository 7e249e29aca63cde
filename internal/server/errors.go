// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// ErrListen wraps failures to bind the configured address.
	ErrListen = errors.New("error binding listener")
	// ErrNotListening is returned by Serve when Listen was not called.
	ErrNotListening = errors.New("server is not listening")
)
