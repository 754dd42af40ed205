package server

// Server defines the lifecycle contract of the API server process.
//
// [RunServer] blocks until SIGINT, SIGTERM or SIGQUIT arrives, Shutdown is
// called, or a listener fails. Everything started is stopped before it
// returns.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown asks a running RunServer to stop gracefully.
	Shutdown()
}
