// shared/api/server.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type BaseServer struct {
	Router *mux.Router
	Server *http.Server
	Logger zerolog.Logger
}

func NewBaseServer(addr string, logger zerolog.Logger) *BaseServer {
	router := mux.NewRouter()

	// Apply common middleware
	router.Use(RequestLogging(logger))
	router.Use(CORSMiddleware)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &BaseServer{
		Router: router,
		Server: server,
		Logger: logger,
	}
}

func (bs *BaseServer) Start() error {
	bs.Logger.Info().Str("addr", bs.Server.Addr).Msg("starting HTTP server")
	// ListenAndServe returns http.ErrServerClosed on graceful shutdown
	if err := bs.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

func (bs *BaseServer) Shutdown(ctx context.Context) error {
	bs.Logger.Info().Msg("shutting down HTTP server")
	return bs.Server.Shutdown(ctx)
}
