package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/websum"
)

// ShutdownTimeout is the time given for outstanding requests to finish before shutdown.
const ShutdownTimeout = 20 * time.Second

// Server serves the summarizer form over HTTP.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *http.ServeMux

	// Bind address for the server's listener, e.g. "0.0.0.0:5000".
	Addr string

	// Digester turns submitted URLs into summaries.
	Digester websum.Digester

	// Logger receives request and failure logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewServer returns a new instance of Server.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{
			ReadHeaderTimeout: 10 * time.Second,
		},
		router: http.NewServeMux(),
		Logger: slog.Default(),
	}

	s.router.HandleFunc("GET /{$}", s.handleIndex)
	s.router.HandleFunc("POST /{$}", s.handleSummarize)

	s.server.Handler = s.requestID(s.recoverPanic(s.router))

	return s
}

// Open begins listening on the bind address.
func (s *Server) Open() (err error) {
	if s.Digester == nil {
		return fmt.Errorf("digester required")
	}
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	return nil
}

// Serve accepts connections until Close is called. Returns nil after a
// graceful shutdown.
func (s *Server) Serve() error {
	if s.ln == nil {
		return fmt.Errorf("server not open")
	}
	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Port returns the TCP port for the running server.
// This is useful in tests where we allocate a random port by using ":0".
func (s *Server) Port() int {
	if s.ln == nil {
		return 0
	}
	return s.ln.Addr().(*net.TCPAddr).Port
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.Port())
}

// ServeHTTP dispatches to the router wrapped in the server's middleware.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}
