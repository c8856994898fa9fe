package server

import "context"

// Server defines the lifecycle contract of the transport servers managed by
// this package.
type Server interface {
	// Run serves until ctx is done or a listener fails, then shuts every
	// transport down gracefully.
	Run(ctx context.Context) error

	// RunServer is Run bound to SIGTERM, SIGINT and SIGQUIT.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
