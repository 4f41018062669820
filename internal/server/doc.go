// Package server runs the HTTP transport of the retail API.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown on SIGTERM, SIGINT or SIGQUIT.
package server
