package workers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
)

const testDebounce = 50 * time.Millisecond

func startWatcher(t *testing.T, path string, onChange ChangeHandler) (stop func()) {
	t.Helper()

	w, err := NewFileWatcher(path, testDebounce, onChange, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- w.Run(ctx) }()

	return func() {
		cancel()
		require.NoError(t, <-done)
	}
}

func TestFileWatcher_DebouncesBurst(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	var calls atomic.Int32
	var gotPath atomic.Value
	stop := startWatcher(t, path, func(_ context.Context, p string) error {
		calls.Add(1)
		gotPath.Store(p)
		return nil
	})

	for i := range 5 {
		require.NoError(t, os.WriteFile(path, []byte{'{', byte('0' + i), '}'}, 0o600))
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	time.Sleep(3 * testDebounce)
	assert.EqualValues(t, 1, calls.Load())

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, gotPath.Load())

	stop()
}

func TestFileWatcher_IgnoresSiblingFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("modules: []"), 0o600))

	var calls atomic.Int32
	stop := startWatcher(t, path, func(context.Context, string) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o600))
	time.Sleep(4 * testDebounce)
	assert.Zero(t, calls.Load())

	stop()
}

func TestFileWatcher_HandlerErrorKeepsWatching(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	var calls atomic.Int32
	stop := startWatcher(t, path, func(context.Context, string) error {
		calls.Add(1)
		return errors.New("publish failed")
	})

	require.NoError(t, os.WriteFile(path, []byte(`{"modules":[]}`), 0o600))
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(`{"css":[]}`), 0o600))
	assert.Eventually(t, func() bool { return calls.Load() == 2 }, 2*time.Second, 5*time.Millisecond)

	stop()
}

func TestNewFileWatcher_Errors(t *testing.T) {
	_, err := NewFileWatcher("site.json", 0, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidDebounce)

	_, err = NewFileWatcher(filepath.Join(t.TempDir(), "missing", "site.json"), time.Second, nil, logger.Nop())
	assert.Error(t, err)
}
