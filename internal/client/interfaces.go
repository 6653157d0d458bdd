// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-site-keeper/internal/tui"
)

// UI is an interactive front end that blocks until the operator leaves it.
type UI interface {
	Run(ctx context.Context) error
}

// UIFactory builds the preview UI for a document. publisher is nil when no
// publisher token is configured.
type UIFactory func(source tui.Source, publisher tui.Publisher) (UI, error)
