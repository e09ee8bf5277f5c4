package server

import (
	"context"
	"fmt"
	"net/http"
)

// httpServer adapts [http.Server] to the [Server] lifecycle contract.
type httpServer struct {
	server *http.Server
}

func newHTTPServer(handler http.Handler, address string) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:    address,
			Handler: handler,
		},
	}
}

// RunServer blocks in ListenAndServe. http.ErrServerClosed after a graceful
// Shutdown is reported the same way as any other listen error.
func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil {
		fmt.Printf("HTTP server ListenAndServe: %v\n", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		fmt.Printf("HTTP server Shutdown: %v\n", err)
	}
}
