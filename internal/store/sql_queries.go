package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-site-keeper/models"
)

const revisionsTable = "site_config_revisions"

var revisionColumns = []string{"id", "number", "checksum", "author", "config", "created_at"}

func (r *revisionRepository) selectRevisions() sq.SelectBuilder {
	return r.db.builder().Select(revisionColumns...).From(revisionsTable)
}

// buildNextNumberQuery selects the number the next saved revision gets.
func (r *revisionRepository) buildNextNumberQuery() (string, []any, error) {
	query, args, err := r.db.builder().
		Select("COALESCE(MAX(number), 0) + 1").
		From(revisionsTable).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (r *revisionRepository) buildInsertQuery(rev models.Revision, config string) (string, []any, error) {
	query, args, err := r.db.builder().
		Insert(revisionsTable).
		Columns(revisionColumns...).
		Values(rev.ID, rev.Number, rev.Checksum, rev.Author, config, rev.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (r *revisionRepository) buildLatestQuery() (string, []any, error) {
	query, args, err := r.selectRevisions().OrderBy("number DESC").Limit(1).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (r *revisionRepository) buildGetByIDQuery(id string) (string, []any, error) {
	query, args, err := r.selectRevisions().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (r *revisionRepository) buildListQuery(limit uint64) (string, []any, error) {
	query, args, err := r.selectRevisions().OrderBy("number DESC").Limit(limit).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
