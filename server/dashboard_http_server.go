package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"weather-dashboard/config"
)

type DashboardHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	port      string
}

func NewDashboardHttpServer(router *Router, muxRouter *mux.Router, port string) *DashboardHttpServer {
	return &DashboardHttpServer{
		router:    router,
		muxRouter: muxRouter,
		port:      port,
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *DashboardHttpServer) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-stop:
			cancel()
		case <-ctx.Done():
		}
	}()
	defer cancel()

	return s.Serve(ctx)
}

// Serve runs the server until ctx is done.
func (s *DashboardHttpServer) Serve(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	// Start the server in a goroutine so it doesn't block
	go func() {
		log.Printf("[DashboardHttpServer] Starting server on :%s", s.port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on :%s: %w", s.port, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("[DashboardHttpServer] Shutting down the server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("[DashboardHttpServer] Server exiting")
	return nil
}
