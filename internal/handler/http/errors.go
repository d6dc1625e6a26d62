// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyPeer is returned when a request does not name the calling peer.
	ErrEmptyPeer = errors.New("empty peer name")

	// ErrInvalidRequestBody is returned when a REST body cannot be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")

	errHijackUnsupported = errors.New("response writer does not support hijacking")
)
