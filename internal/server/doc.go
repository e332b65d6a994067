// Package server runs the HTTP transport of the auth service.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
