package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-site-keeper/internal/config"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/migrations"
)

// Storages groups the repositories used by the service layer.
type Storages struct {
	RevisionRepository RevisionRepository

	db *DB
}

// DialectOf picks the backend for dsn. An empty DSN means in-memory storage
// and yields an empty dialect.
func DialectOf(dsn string) (migrations.Dialect, error) {
	lower := strings.ToLower(dsn)
	switch {
	case dsn == "":
		return "", nil
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"),
		strings.Contains(lower, "host="):
		return migrations.DialectPostgres, nil
	case strings.HasPrefix(lower, "file:"), strings.HasSuffix(lower, ".db"),
		strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"),
		lower == ":memory:":
		return migrations.DialectSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	}
}

// NewStorages connects the backend selected by cfg.DB.DSN, applies the
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	dialect, err := DialectOf(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	var db *DB
	switch dialect {
	case "":
		log.Warn().Msg("no database DSN configured, revisions are kept in memory")
		return &Storages{RevisionRepository: NewMemoryRevisionRepository()}, nil
	case migrations.DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case migrations.DialectSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", dialect, err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		RevisionRepository: NewRevisionRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
