package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 15 * time.Second

// Run starts the HTTP server and all background services, then blocks until shutdown signal.
//  1. Map HTTP handlers and routes (Initialize wiring)
//  2. Start Redis subscriber and RabbitMQ consumer
//  3. Start HTTP server
//  4. Wait for shutdown signal, then stop in reverse order
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(ctx); err != nil {
		srv.l.Errorf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	if err := srv.wsSubscriber.Start(ctx); err != nil {
		srv.l.Errorf(ctx, "Failed to start Redis subscriber: %v", err)
		return err
	}

	if srv.consumer != nil {
		if err := srv.consumer.Start(ctx); err != nil {
			srv.l.Errorf(ctx, "Failed to start RabbitMQ consumer: %v", err)
			_ = srv.wsSubscriber.Shutdown(ctx)
			return err
		}
	}

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	srv.l.Infof(ctx, "HTTP server started on %s", httpSrv.Addr)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-ch:
		srv.l.Infof(ctx, "Received signal %s, shutting down", sig)
	case runErr = <-errCh:
		srv.l.Errorf(ctx, "HTTP server error: %v", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Hijacked websocket connections are not tracked by http.Server, so the
	// hub closes them itself.
	if err := srv.hub.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "Hub shutdown error: %v", err)
	}
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "HTTP server shutdown error: %v", err)
	}
	if srv.consumer != nil {
		if err := srv.consumer.Close(); err != nil {
			srv.l.Errorf(ctx, "RabbitMQ consumer shutdown error: %v", err)
		}
	}
	if err := srv.wsSubscriber.Shutdown(shutdownCtx); err != nil {
		srv.l.Errorf(ctx, "Redis subscriber shutdown error: %v", err)
	}

	return runErr
}
