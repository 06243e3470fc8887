// Package server runs the admin API over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dtroode/chessacademy-server/internal/model"
)

var _ model.Server = (*HTTPServer)(nil)

// HTTPServer wraps http.Server with the lifecycle the application expects.
type HTTPServer struct {
	server *http.Server
}

// Timeouts bound reading a request and writing its response.
type Timeouts struct {
	Read  time.Duration
	Write time.Duration
}

func NewHTTPServer(handler http.Handler, addr string, timeouts Timeouts) *HTTPServer {
	return &HTTPServer{server: &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       timeouts.Read,
		ReadHeaderTimeout: timeouts.Read,
		WriteTimeout:      timeouts.Write,
	}}
}

// Start listens through securityLayer and serves until Stop. A graceful
// stop is not reported as an error.
func (s *HTTPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop waits for in-flight requests until ctx is done.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) Address() string {
	return s.server.Addr
}
