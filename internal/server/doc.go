// Package server owns the lifecycle of the transport servers: construction
// from configuration, startup, and signal-driven graceful shutdown.
package server
