// Package tui implements the interactive preview of `sitectl preview`.
//
// The preview shows the assembled configuration of a local site document
// together with the rendered head fragments, lets the operator reload the
// file, copy the head fragment and publish the document to the server.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/models"
)

var ErrNoSource = errors.New("preview requires a document source")

// Snapshot is one successful load of a site document.
type Snapshot struct {
	Path     string
	Sections models.Sections
	Config   models.Configuration
	Head     models.RenderedHead
}

// Source loads the previewed site document. A rejected configuration is
// reported as a [*validators.ConfigError].
type Source interface {
	Load(ctx context.Context) (Snapshot, error)
}

// Publisher stores sections on the server.
type Publisher interface {
	Publish(ctx context.Context, sections models.Sections) (rev models.Revision, created bool, err error)
}

type TUI struct {
	source    Source
	publisher Publisher
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New returns the preview UI. A nil publisher disables the publish key.
func New(source Source, publisher Publisher, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if source == nil {
		return nil, ErrNoSource
	}
	return &TUI{source: source, publisher: publisher, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the operator quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newPreviewModel(ctx, t.source, t.publisher, t.buildInfo)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Debug().Msg("preview stopped by context")
		return nil
	}
	return err
}
