package server

import "context"

// Server defines the lifecycle contract for the transport server managed by
// this package.
type Server interface {
	// Run serves requests until ctx is done, then shuts down gracefully.
	// It returns an error only if the listener fails or the drain times out.
	Run(ctx context.Context) error
}
