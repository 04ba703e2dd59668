package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/collide/pkg/api/handlers"
	"github.com/cbodonnell/collide/pkg/api/middleware"
	"github.com/cbodonnell/collide/pkg/log"
	"github.com/cbodonnell/collide/pkg/repositories"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port       int
	TLS        *TLSConfig
	Repository repositories.Repository
}

// NewRouter routes the scene and overlap endpoints
func NewRouter(repository repositories.Repository) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.NewLoggingMiddleware(), middleware.NewCORSMiddleware())

	router.HandleFunc("/scenes", handlers.HandleListScenes(repository)).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/scenes", handlers.HandleCreateScene(repository)).Methods(http.MethodPost)
	router.HandleFunc("/scenes/{sceneID}", handlers.HandleGetScene(repository)).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/scenes/{sceneID}", handlers.HandleDeleteScene(repository)).Methods(http.MethodDelete)
	router.HandleFunc("/scenes/{sceneID}/overlaps", handlers.HandleSceneOverlaps(repository)).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/overlaps", handlers.HandleOverlaps()).Methods(http.MethodPost, http.MethodOptions)

	return router
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts.Repository),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
