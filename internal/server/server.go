package server

import (
	"context"
	"net/http"
	"time"

	v1 "github.com/Xunop/gutenshelf/internal/api/v1"
	"github.com/Xunop/gutenshelf/internal/config"
	"github.com/Xunop/gutenshelf/internal/log"
	"github.com/Xunop/gutenshelf/internal/middleware"
	"github.com/Xunop/gutenshelf/internal/ui"
	"github.com/Xunop/gutenshelf/internal/version"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BookSource is what both the pages and the API read from.
type BookSource interface {
	ui.BookSource
	v1.BookSource
}

// StartServer starts the HTTP server
func StartServer(opts *config.Options, books BookSource) (*http.Server, error) {
	handler, err := setupHandler(opts, books)
	if err != nil {
		return nil, err
	}

	server := &http.Server{
		Addr:              opts.ListenAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	startHTTPServer(server)

	return server, nil
}

// Shutdown drains in-flight requests, waiting at most opts.ShutdownTimeout.
func Shutdown(server *http.Server, timeout time.Duration) error {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return errors.Wrap(server.Shutdown(ctx), "shutdown http server")
}

func startHTTPServer(server *http.Server) {
	go func() {
		log.Info("Starting HTTP server", zap.String("listen_address", server.Addr))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()
}

func setupHandler(opts *config.Options, books BookSource) (http.Handler, error) {
	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery)
	router.Use(middleware.LoggingRequest)

	// Setup the API routes
	v1.Server(router, v1.NewHandler(books))

	router.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("OK"))
	}).Name("healthcheck")

	router.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(version.GetCurrentVersion()))
	}).Name("version")

	uiHandler, err := ui.NewHandler(books, opts)
	if err != nil {
		return nil, errors.Wrap(err, "setup pages")
	}
	if err := ui.Serve(router, uiHandler); err != nil {
		return nil, err
	}

	return router, nil
}
