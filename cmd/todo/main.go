package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"todo-list/internal/api"
	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/web"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	overrides := &config.ConfigOverrides{}

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Serve the todo list web application",
		Long: `todo serves a small todo list over HTTP and stores it in a SQLite file.

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  TODO_ENV                                 development | testing | production (default: production)
  TODO_DB_DIR                              Database directory (default: .)
  TODO_DB_FILENAME                         Database filename (default: todos.db)
  TODO_DB_BUSY_TIMEOUT                     Lock wait before a write fails (default: 5s)
  TODO_SERVER_HOST                         Listen host (default: 0.0.0.0)
  TODO_SERVER_PORT                         Listen port (default: 8000)
  TODO_SERVER_MODE                         gin mode: debug | release | test
  TODO_STATIC_DIR                          Front-end directory (default: static)
  TODO_STATIC_CACHE_CONTROL                Cache-Control for static assets
  TODO_APP_DEBUG                           Enable debug output (default: false)
  TODO_APP_SHUTDOWN_TIMEOUT                Grace period on shutdown (default: 10s)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			collectFlags(cmd, overrides)
			return serve(overrides)
		},
	}

	flags := cmd.Flags()
	flags.String("host", "", "Listen host (overrides TODO_SERVER_HOST)")
	flags.Int("port", 0, "Listen port (overrides TODO_SERVER_PORT)")
	flags.String("mode", "", "gin mode (overrides TODO_SERVER_MODE)")
	flags.String("db-dir", "", "Database directory (overrides TODO_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TODO_DB_FILENAME)")
	flags.String("static-dir", "", "Front-end directory (overrides TODO_STATIC_DIR)")
	flags.Bool("debug", false, "Enable debug output (overrides TODO_APP_DEBUG)")

	return cmd
}

// collectFlags copies only the flags given on the command line into overrides
func collectFlags(cmd *cobra.Command, overrides *config.ConfigOverrides) {
	flags := cmd.Flags()

	if flags.Changed("host") {
		v, _ := flags.GetString("host")
		overrides.Host = &v
	}
	if flags.Changed("port") {
		v, _ := flags.GetInt("port")
		overrides.Port = &v
	}
	if flags.Changed("mode") {
		v, _ := flags.GetString("mode")
		overrides.Mode = &v
	}
	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		overrides.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		overrides.DBFilename = &v
	}
	if flags.Changed("static-dir") {
		v, _ := flags.GetString("static-dir")
		overrides.StaticDir = &v
	}
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		overrides.Debug = &v
	}
}

func loadConfig(overrides *config.ConfigOverrides) (*config.Config, error) {
	return config.NewLoaderWithDefaults(defaultsFor(getEnvironment())).LoadWithOverrides(overrides)
}

func serve(overrides *config.ConfigOverrides) error {
	cfg, err := loadConfig(overrides)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logging.SetDebug(cfg.Application.Debug)

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()
	log.Printf("[WEB]: Database %s initialized.", repo.Path())

	server := web.NewServer(api.New(repo), cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	log.Printf("[WEB]: Server started on %s. Press Ctrl+C to gracefully shutdown...", cfg.GetListenAddr())

	select {
	case <-sigChan:
		log.Printf("[WEB]: Received shutdown signal, initiating graceful shutdown...")
	case err := <-serverErrChan:
		return fmt.Errorf("web server failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[WEB]: Error during shutdown: %v", err)
	}

	log.Printf("[WEB]: Graceful shutdown completed")
	return nil
}
