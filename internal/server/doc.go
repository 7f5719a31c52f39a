// Package server runs the development catalog server.
//
// It owns the HTTP listener lifecycle: startup, shutdown when the run context
// ends, and a bounded graceful drain of in-flight requests.
package server
