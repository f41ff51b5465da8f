package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/depositodopitty/pit/auth"
	"github.com/depositodopitty/pit/internal/apiclient"
	"github.com/depositodopitty/pit/internal/config"
	"github.com/depositodopitty/pit/internal/db"
	"github.com/depositodopitty/pit/internal/logger"
	"github.com/depositodopitty/pit/internal/server"
	"github.com/depositodopitty/pit/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard web server",
	Long: `Run the dashboard web server.

With BACKEND=remote (default) every record is read from and written to the REST
API at API_URL using the signed in user's bearer token. With BACKEND=database
the dashboard works directly against DATABASE_DSN.`,
	Example: `  # Talk to the API on another host
  API_URL=https://api.example.com pit serve

  # Standalone, against a local SQLite file
  BACKEND=database DATABASE_DSN=file:pit.db DB_SEED=true pit serve --port 9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("port", "", "Port to listen on (default: PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("serve")
	port, _ := cmd.Flags().GetString("port")
	if port == "" {
		port = cfg.Port
	}

	auth.SetSecret(cfg.SessionSecret)
	auth.SetSecureCookies(cfg.Production())

	deps := server.Deps{Log: logger.WithComponent("http"), Now: time.Now}
	switch cfg.Backend {
	case config.BackendDatabase:
		conn, err := db.ConnectAndMigrate(db.OptionsFromConfig(cfg))
		if err != nil {
			return err
		}
		users := store.NewGormUsers(conn)
		deps.Repos = store.NewGormSet(conn)
		deps.Repos.Users = users
		deps.Auth = auth.Local{Users: users}
		deps.Ping = pinger(conn)
	default:
		client := apiclient.New(cfg.APIURL,
			apiclient.WithTimeout(cfg.HTTPTimeout),
			apiclient.WithLogger(logger.WithComponent("apiclient")))
		deps.Repos = store.NewRemoteSet(client)
		deps.Auth = auth.Remote{API: client}
		log.Info().Str("api_url", cfg.APIURL).Msg("using remote API")
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      server.New(deps),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return listen(srv, log.With().Str("backend", string(cfg.Backend)).Str("env", cfg.Env).Logger())
}

func pinger(conn *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

// listen serves until SIGINT or SIGTERM, then shuts down gracefully.
func listen(srv *http.Server, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-quit:
	}
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server stopped gracefully")
	return nil
}
