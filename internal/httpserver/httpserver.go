package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
)

// Addr returns the listen address.
func (srv *HTTPServer) Addr() string {
	return net.JoinHostPort(srv.host, strconv.Itoa(srv.port))
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully within
// the configured timeout.
func (srv *HTTPServer) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:    srv.Addr(),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	srv.logger.Infof(ctx, "HTTP server started on %s", srv.Addr())

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("httpserver.Run.ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	srv.logger.Info(context.Background(), "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("httpserver.Run.Shutdown: %w", err)
	}
	return nil
}
