// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-site-keeper/internal/assembler"
	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/render"
	"github.com/MKhiriev/go-site-keeper/internal/store"
	"github.com/MKhiriev/go-site-keeper/internal/utils"
	"github.com/MKhiriev/go-site-keeper/models"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100

	maxPublishAttempts = 3
)

type siteConfigService struct {
	assembler    *assembler.Assembler
	revisions    store.RevisionRepository
	ids          *utils.UUIDGenerator
	previewTitle string
	now          func() time.Time

	logger *logger.Logger
}

// NewSiteConfigService wires the assembler to the revision repository.
func NewSiteConfigService(asm *assembler.Assembler, revisions store.RevisionRepository, cfg config.Site, logger *logger.Logger) SiteConfigService {
	return &siteConfigService{
		assembler:    asm,
		revisions:    revisions,
		ids:          utils.NewUUIDGenerator(),
		previewTitle: cfg.PreviewTitle,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *siteConfigService) Validate(ctx context.Context, sections models.Sections) (models.Configuration, error) {
	return s.assembler.Build(ctx, sections)
}

// Publish stores the assembled document as the next revision.
//
// Publishing the same document twice is a no-op: when its checksum equals the
// checksum of the latest revision, that revision is returned with created set
// to false. A save that loses the race for the next revision number is
// retried, re-checking the latest revision each time.
func (s *siteConfigService) Publish(ctx context.Context, sections models.Sections, author string) (models.Revision, bool, error) {
	log := logger.FromContext(ctx)

	author = strings.TrimSpace(author)
	if author == "" {
		return models.Revision{}, false, fmt.Errorf("%w: empty author", ErrInvalidDataProvided)
	}

	cfg, err := s.assembler.Build(ctx, sections)
	if err != nil {
		return models.Revision{}, false, err
	}

	checksum, err := utils.Checksum(cfg)
	if err != nil {
		return models.Revision{}, false, fmt.Errorf("error computing config checksum: %w", err)
	}

	for attempt := 1; attempt <= maxPublishAttempts; attempt++ {
		latest, err := s.revisions.Latest(ctx)
		switch {
		case err == nil && latest.Checksum == checksum:
			log.Info().Str("revision_id", latest.ID).Int64("number", latest.Number).Msg("site config unchanged, publish skipped")
			return latest, false, nil
		case err != nil && !errors.Is(err, store.ErrRevisionNotFound):
			return models.Revision{}, false, fmt.Errorf("error reading latest revision: %w", err)
		}

		saved, err := s.revisions.Save(ctx, models.Revision{
			ID:        s.ids.Generate(),
			Checksum:  checksum,
			Author:    author,
			Config:    cfg,
			CreatedAt: s.now().UTC(),
		})
		if errors.Is(err, store.ErrRevisionConflict) {
			log.Warn().Int("attempt", attempt).Msg("revision conflict, retrying publish")
			continue
		}
		if err != nil {
			return models.Revision{}, false, fmt.Errorf("error saving revision: %w", err)
		}

		log.Info().
			Str("revision_id", saved.ID).
			Int64("number", saved.Number).
			Str("author", author).
			Msg("site config published")
		return saved, true, nil
	}

	return models.Revision{}, false, ErrPublishConflict
}

func (s *siteConfigService) Latest(ctx context.Context) (models.Revision, error) {
	rev, err := s.revisions.Latest(ctx)
	if err != nil {
		return models.Revision{}, fmt.Errorf("error getting latest revision: %w", err)
	}
	return rev, nil
}

func (s *siteConfigService) Revision(ctx context.Context, id string) (models.Revision, error) {
	if err := utils.ValidateID(id); err != nil {
		return models.Revision{}, fmt.Errorf("%w: %w", ErrInvalidRevisionID, err)
	}

	rev, err := s.revisions.GetByID(ctx, id)
	if err != nil {
		return models.Revision{}, fmt.Errorf("error getting revision %s: %w", id, err)
	}
	return rev, nil
}

func (s *siteConfigService) History(ctx context.Context, limit int) ([]models.Revision, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	revisions, err := s.revisions.List(ctx, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("error listing revisions: %w", err)
	}
	return revisions, nil
}

func (s *siteConfigService) RenderHead(ctx context.Context, id string) (models.RenderedHead, error) {
	var (
		rev models.Revision
		err error
	)
	if id == "" {
		rev, err = s.Latest(ctx)
	} else {
		rev, err = s.Revision(ctx, id)
	}
	if err != nil {
		return models.RenderedHead{}, err
	}

	head, err := render.Render(rev.Config)
	if err != nil {
		return models.RenderedHead{}, fmt.Errorf("error rendering revision %s: %w", rev.ID, err)
	}
	head.RevisionID = rev.ID

	return head, nil
}

func (s *siteConfigService) Preview(ctx context.Context) (string, error) {
	rev, err := s.Latest(ctx)
	if err != nil {
		return "", err
	}

	doc, err := render.Document(rev.Config, s.previewTitle)
	if err != nil {
		return "", fmt.Errorf("error rendering preview of revision %s: %w", rev.ID, err)
	}
	return doc, nil
}
