package client

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-site-keeper/internal/assembler"
	"github.com/MKhiriev/go-site-keeper/internal/render"
	"github.com/MKhiriev/go-site-keeper/internal/sitefile"
	"github.com/MKhiriev/go-site-keeper/internal/tui"
)

// fileSource assembles and renders a site document from disk on every Load.
type fileSource struct {
	path      string
	assembler *assembler.Assembler
}

func (s fileSource) Load(ctx context.Context) (tui.Snapshot, error) {
	sections, err := sitefile.Load(s.path)
	if err != nil {
		return tui.Snapshot{}, err
	}

	cfg, err := s.assembler.Build(ctx, sections)
	if err != nil {
		return tui.Snapshot{}, err
	}

	head, err := render.Render(cfg)
	if err != nil {
		return tui.Snapshot{}, fmt.Errorf("render head: %w", err)
	}

	return tui.Snapshot{
		Path:     filepath.Clean(s.path),
		Sections: sections,
		Config:   cfg,
		Head:     head,
	}, nil
}
