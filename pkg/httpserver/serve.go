// Package httpserver runs an http.Server until its context ends.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Serve listens on srv.Addr until ctx is done, then shuts down gracefully,
// giving in-flight requests up to shutdownTimeout. A failure to listen is
// returned right away instead of waiting for ctx.
func Serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
