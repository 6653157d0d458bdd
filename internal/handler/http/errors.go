// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP layer. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidRequestBody is returned when a submitted site document cannot
	// be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrInvalidQueryParam is returned for a malformed query parameter.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
