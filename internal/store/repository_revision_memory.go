package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-site-keeper/models"
)

// memoryRevisionRepository keeps revisions in process memory. It is used
// when no DSN is configured; everything is lost on restart.
type memoryRevisionRepository struct {
	mu        sync.RWMutex
	revisions []models.Revision
	byID      map[string]int
}

// NewMemoryRevisionRepository returns an empty in-memory [RevisionRepository].
func NewMemoryRevisionRepository() RevisionRepository {
	return &memoryRevisionRepository{byID: make(map[string]int)}
}

func (m *memoryRevisionRepository) Save(_ context.Context, rev models.Revision) (models.Revision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[rev.ID]; ok {
		return models.Revision{}, ErrRevisionConflict
	}

	rev.Number = int64(len(m.revisions)) + 1
	rev.Config = rev.Config.Clone()
	m.byID[rev.ID] = len(m.revisions)
	m.revisions = append(m.revisions, rev)

	return rev, nil
}

func (m *memoryRevisionRepository) Latest(_ context.Context) (models.Revision, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.revisions) == 0 {
		return models.Revision{}, ErrRevisionNotFound
	}
	return cloneRevision(m.revisions[len(m.revisions)-1]), nil
}

func (m *memoryRevisionRepository) GetByID(_ context.Context, id string) (models.Revision, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byID[id]
	if !ok {
		return models.Revision{}, ErrRevisionNotFound
	}
	return cloneRevision(m.revisions[i]), nil
}

func (m *memoryRevisionRepository) List(_ context.Context, limit uint64) ([]models.Revision, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := uint64(len(m.revisions))
	if limit < n {
		n = limit
	}

	out := make([]models.Revision, 0, n)
	for i := len(m.revisions) - 1; i >= 0 && uint64(len(out)) < n; i-- {
		out = append(out, cloneRevision(m.revisions[i]))
	}
	return out, nil
}

func cloneRevision(rev models.Revision) models.Revision {
	rev.Config = rev.Config.Clone()
	return rev
}
