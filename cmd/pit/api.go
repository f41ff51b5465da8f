package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/depositodopitty/pit/internal/backend"
	"github.com/depositodopitty/pit/internal/db"
	"github.com/depositodopitty/pit/internal/logger"
	"github.com/depositodopitty/pit/internal/store"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the reference REST API backed by DATABASE_DSN",
	Long: `Run a local implementation of the business REST API the dashboard consumes
(/User/login, /auth/register and the get-all/create/update/delete routes of
every resource). Useful for development and for running the dashboard with
BACKEND=remote without the production API.`,
	Example: `  DATABASE_DSN=file:pit.db DB_SEED=true pit api --port 8081`,
	RunE:    runAPI,
}

func init() {
	rootCmd.AddCommand(apiCmd)
	apiCmd.Flags().String("port", "", "Port to listen on (default: API_PORT)")
	apiCmd.Flags().StringSlice("allow-origin", nil, "Allowed CORS origins, repeatable (default: any)")
}

func runAPI(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetString("port")
	if port == "" {
		port = cfg.APIPort
	}
	origins, _ := cmd.Flags().GetStringSlice("allow-origin")

	conn, err := db.ConnectAndMigrate(db.OptionsFromConfig(cfg))
	if err != nil {
		return err
	}
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	users := store.NewGormUsers(conn)
	repos := store.NewGormSet(conn)
	repos.Users = users

	handler := backend.New(backend.Options{
		Repos:          repos,
		Users:          users,
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: origins,
		Log:            logger.WithComponent("api"),
	})
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return listen(srv, logger.WithComponent("api"))
}
