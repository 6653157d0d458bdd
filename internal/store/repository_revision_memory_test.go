package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRevisionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRevisionRepository()

	_, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, ErrRevisionNotFound)

	rev := testRevision()
	saved, err := repo.Save(ctx, rev)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Number)

	_, err = repo.Save(ctx, rev)
	assert.ErrorIs(t, err, ErrRevisionConflict)

	// stored copy is detached from the caller
	rev.Config.Modules[0] = "changed"
	got, err := repo.GetByID(ctx, rev.ID)
	require.NoError(t, err)
	assert.Equal(t, "vueuse", got.Config.Modules[0])

	got.Config.Modules[0] = "changed"
	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "vueuse", latest.Config.Modules[0])

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrRevisionNotFound)
}

func TestMemoryRevisionRepository_ListAndConcurrency(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRevisionRepository()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rev := testRevision()
			rev.ID = fmt.Sprintf("rev-%02d", i)
			_, err := repo.Save(ctx, rev)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := repo.List(ctx, 100)
	require.NoError(t, err)
	require.Len(t, all, 20)
	for i, rev := range all {
		assert.Equal(t, int64(20-i), rev.Number)
	}

	some, err := repo.List(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, some, 5)

	none, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}
