// Package server wires and runs the transport servers of the site server.
//
// It owns the HTTP and gRPC listeners, starts both transports, and shuts
// them down gracefully when a stop signal arrives or the run context ends.
package server
