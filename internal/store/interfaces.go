//go:generate mockgen -source=interfaces.go -destination=../mock/revision_repository_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-site-keeper/models"
)

// RevisionRepository persists published site configuration revisions.
type RevisionRepository interface {
	// Save stores rev and returns it with the next revision number assigned.
	Save(ctx context.Context, rev models.Revision) (models.Revision, error)
	// Latest returns the revision with the highest number.
	Latest(ctx context.Context) (models.Revision, error)
	// GetByID returns the revision with the given ID.
	GetByID(ctx context.Context, id string) (models.Revision, error)
	// List returns at most limit revisions, newest first.
	List(ctx context.Context, limit uint64) ([]models.Revision, error)
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
