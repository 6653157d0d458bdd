// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the site server.
//
// The primary abstraction is [ServerAdapter], which decouples the sitectl
// commands from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error responses are mapped by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401). A rejected configuration (422) comes back
// as a [*validators.ConfigError] holding the server-side violations.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-site-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the site
// server.
type ServerAdapter interface {
	// SetToken stores the publisher token attached to Publish requests.
	SetToken(token string)

	// Token returns the stored publisher token, or an empty string.
	Token() string

	// Version returns the version string of the server.
	Version(ctx context.Context) (string, error)

	// Validate asks the server to assemble sections without storing them.
	Validate(ctx context.Context, sections models.Sections) (models.Configuration, error)

	// Publish stores sections as a new revision. created is false when the
	// server already had an identical latest revision.
	Publish(ctx context.Context, sections models.Sections) (rev models.Revision, created bool, err error)

	Latest(ctx context.Context) (models.Revision, error)
	Revision(ctx context.Context, id string) (models.Revision, error)
	History(ctx context.Context, limit int) ([]models.Revision, error)

	// Head fetches the rendered head parts of a revision; an empty id
	// selects the latest one.
	Head(ctx context.Context, id string) (models.RenderedHead, error)

	// Preview fetches the HTML preview document of the latest revision.
	Preview(ctx context.Context) (string, error)
}
