// Package server wires and runs the transport servers of the development
// notes API.
//
// It owns the lifecycle of the API listener, the optional /metrics listener
// and the background workers: startup, signal handling and graceful
// shutdown of everything that was started.
package server
