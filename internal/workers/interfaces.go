// Package workers provides abstractions for managing and running
// background workers in the sitectl client.
// It defines the Worker interface, a Workers aggregate that runs several
// workers under one context, and the FileWatcher used by `sitectl watch`.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker fails. A worker stopped by
// cancellation returns nil.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// ChangeHandler is invoked by [FileWatcher] once per debounced burst of file
// changes.
type ChangeHandler func(ctx context.Context, path string) error
