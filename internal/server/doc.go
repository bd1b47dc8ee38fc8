// Package server runs the application's HTTP transport.
//
// It owns the server lifecycle: startup, signal handling, and graceful
// shutdown so in-flight requests finish before the process exits.
package server
