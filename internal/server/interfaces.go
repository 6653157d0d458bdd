package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives.
	RunServer()

	// Run serves requests until ctx is done, then shuts every transport
	// down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the servers and frees associated resources.
	Shutdown()
}
