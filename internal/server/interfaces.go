package server

// Server is the lifecycle contract of a transport server owned by this
// package. [RunServer] blocks until a shutdown signal arrives; [Shutdown]
// releases whatever the server holds.
type Server interface {
	// RunServer starts accepting requests and blocks until the server stops.
	RunServer()

	// Shutdown stops the server gracefully and frees its resources.
	Shutdown()
}
