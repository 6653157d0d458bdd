// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/models"
)

// revisionRepository is the SQL implementation of [RevisionRepository]. The
// configuration is stored as JSON text in the "config" column.
type revisionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewRevisionRepository constructs a [RevisionRepository] over db.
func NewRevisionRepository(db *DB, logger *logger.Logger) RevisionRepository {
	logger.Debug().Msg("creating revision repository")
	return &revisionRepository{
		db:     db,
		logger: logger,
	}
}

// Save allocates the next revision number and inserts rev inside a single
// transaction. A uniqueness violation (duplicate ID, or a concurrent writer
// taking the same number) is reported as [ErrRevisionConflict].
func (r *revisionRepository) Save(ctx context.Context, rev models.Revision) (models.Revision, error) {
	log := logger.FromContext(ctx)

	config, err := json.Marshal(rev.Config)
	if err != nil {
		return models.Revision{}, fmt.Errorf("%w: %w", ErrEncodingConfig, err)
	}

	nextQuery, nextArgs, err := r.buildNextNumberQuery()
	if err != nil {
		return models.Revision{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*revisionRepository.Save").Msg("error beginning transaction")
		return models.Revision{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = tx.QueryRowContext(ctx, nextQuery, nextArgs...).Scan(&rev.Number); err != nil {
		log.Err(err).Str("func", "*revisionRepository.Save").Msg("error allocating revision number")
		return models.Revision{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	insertQuery, insertArgs, err := r.buildInsertQuery(rev, string(config))
	if err != nil {
		return models.Revision{}, err
	}

	if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).Str("func", "*revisionRepository.Save").Msg("error inserting revision")
		if r.db.classify(err) == Conflict {
			return models.Revision{}, ErrRevisionConflict
		}
		return models.Revision{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*revisionRepository.Save").Msg("error committing transaction")
		if r.db.classify(err) == Conflict {
			return models.Revision{}, ErrRevisionConflict
		}
		return models.Revision{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "*revisionRepository.Save").
		Str("id", rev.ID).Int64("number", rev.Number).Msg("revision saved")
	return rev, nil
}

func (r *revisionRepository) Latest(ctx context.Context) (models.Revision, error) {
	query, args, err := r.buildLatestQuery()
	if err != nil {
		return models.Revision{}, err
	}
	return r.getOne(ctx, "*revisionRepository.Latest", query, args)
}

func (r *revisionRepository) GetByID(ctx context.Context, id string) (models.Revision, error) {
	query, args, err := r.buildGetByIDQuery(id)
	if err != nil {
		return models.Revision{}, err
	}
	return r.getOne(ctx, "*revisionRepository.GetByID", query, args)
}

func (r *revisionRepository) List(ctx context.Context, limit uint64) ([]models.Revision, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListQuery(limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*revisionRepository.List").Msg("error listing revisions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	revisions := make([]models.Revision, 0, limit)
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			log.Err(err).Str("func", "*revisionRepository.List").Msg("error scanning revision")
			return nil, err
		}
		revisions = append(revisions, rev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return revisions, nil
}

func (r *revisionRepository) getOne(ctx context.Context, fn, query string, args []any) (models.Revision, error) {
	rev, err := scanRevision(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Revision{}, ErrRevisionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error fetching revision")
		return models.Revision{}, err
	}
	return rev, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRevision(row rowScanner) (models.Revision, error) {
	var (
		rev    models.Revision
		config string
	)
	if err := row.Scan(&rev.ID, &rev.Number, &rev.Checksum, &rev.Author, &config, &rev.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Revision{}, err
		}
		return models.Revision{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal([]byte(config), &rev.Config); err != nil {
		return models.Revision{}, fmt.Errorf("%w: %w", ErrEncodingConfig, err)
	}
	rev.CreatedAt = rev.CreatedAt.UTC()

	return rev, nil
}
