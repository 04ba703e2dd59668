package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/collide/pkg/api"
	"github.com/cbodonnell/collide/pkg/log"
	"github.com/cbodonnell/collide/pkg/repositories"
	"github.com/cbodonnell/collide/pkg/version"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Serve the scene and overlap API.

Environment:
  COLLIDE_DATABASE_URL          sqlite://<path> (default sqlite://collide.db) or postgresql://...
  COLLIDE_API_TLS_CERT_FILE     TLS certificate, used together with the key file
  COLLIDE_API_TLS_KEY_FILE      TLS private key`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			log.Info("Starting api server version %s", version.Get())
			ctx := context.Background()

			connStr := os.Getenv("COLLIDE_DATABASE_URL")
			if connStr == "" {
				connStr = "sqlite://collide.db"
			}
			repository, err := newRepository(ctx, connStr)
			if err != nil {
				panic(fmt.Sprintf("Failed to create repository: %v", err))
			}
			defer repository.Close(ctx)

			apiServerOpts := api.NewAPIServerOptions{
				Port:       port,
				Repository: repository,
			}
			tlsCertFile := os.Getenv("COLLIDE_API_TLS_CERT_FILE")
			tlsKeyFile := os.Getenv("COLLIDE_API_TLS_KEY_FILE")
			if tlsCertFile != "" && tlsKeyFile != "" {
				apiServerOpts.TLS = &api.TLSConfig{
					CertFile: tlsCertFile,
					KeyFile:  tlsKeyFile,
				}
			}
			server := api.NewAPIServer(apiServerOpts)
			go server.Start()

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
			<-interrupt

			log.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			if err := server.Stop(shutdownCtx); err != nil {
				log.Error("Failed to stop server: %v", err)
			}
		},
	}
	cmd.Flags().IntVar(&port, "port", 9090, "Port to listen on")
	return cmd
}

// newRepository picks the repository from the connection string's scheme
func newRepository(ctx context.Context, connStr string) (repositories.Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		repository, err := repositories.NewSQLiteRepository(ctx, u.Host+u.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to create SQLite repository: %v", err)
		}
		return repository, nil
	case "postgres", "postgresql":
		repository, err := repositories.NewPostgresRepository(ctx, u.String())
		if err != nil {
			return nil, fmt.Errorf("failed to create Postgres repository: %v", err)
		}
		return repository, nil
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}
