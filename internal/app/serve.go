package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/samvad-hq/storefront-console/internal/config"
	"github.com/samvad-hq/storefront-console/internal/demoapi"
	"github.com/samvad-hq/storefront-console/internal/logger"
)

// serve runs srv until ctx is cancelled, then shuts it down within timeout.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration, log logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.InfoObj("server shutting down", "reason", ctx.Err().Error())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown %s: %w", srv.Addr, err)
	}
	log.InfoObj("server stopped gracefully", "listen_addr", srv.Addr)
	return nil
}

// RunDemoAPI serves the in-memory storefront API on cfg.DemoAPIAddr until ctx is cancelled.
func RunDemoAPI(ctx context.Context, cfg *config.Config, seed bool, log logger.Logger) error {
	if cfg == nil {
		return fmt.Errorf("config must not be nil")
	}
	log = logger.Ensure(log)

	store := demoapi.NewStore()
	if seed {
		store.Seed()
	}
	srv := &http.Server{
		Addr:              cfg.DemoAPIAddr,
		Handler:           demoapi.NewRouter(store, log),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	log.InfoObj("demo api listening", "demo_api", map[string]any{
		"listen_addr": cfg.DemoAPIAddr,
		"seeded":      seed,
	})
	return serve(ctx, srv, cfg.ShutdownTimeout, log)
}
