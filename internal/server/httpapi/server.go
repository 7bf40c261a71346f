// Package httpapi exposes the credential service over HTTP/JSON using chi.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/server/services"
)

// UserService is the part of services.UserService the handlers need.
type UserService interface {
	Authenticate(ctx context.Context, email, password string) services.AuthResult
	Create(ctx context.Context, email, password string) services.AuthResult
	ListAll(ctx context.Context) services.AuthResult
}

type Server struct {
	address         string
	users           UserService
	logger          logging.Logger
	corsOrigin      string
	shutdownTimeout time.Duration
}

// NewServer builds a Server listening on address. An empty corsOrigin
// disables the CORS headers.
func NewServer(address string, l logging.Logger, us UserService, corsOrigin string, shutdownTimeout time.Duration) *Server {
	return &Server{
		address:         address,
		users:           us,
		logger:          l.With("module", "http_server"),
		corsOrigin:      corsOrigin,
		shutdownTimeout: shutdownTimeout,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
