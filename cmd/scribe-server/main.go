package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ehr/scribe/internal/app"
	"github.com/ehr/scribe/internal/config"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "scribe-server",
		Short:   "Consultation dashboard demo API server",
		Version: app.Version,
	}
	rootCmd.SetOut(out)

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(routesCmd())
	return rootCmd
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
	cmd.Flags().String("port", "", "Listen port (overrides PORT)")
	cmd.Flags().String("static-dir", "", "Frontend build directory (overrides STATIC_DIR)")
	return cmd
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the registered HTTP routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e := app.NewServer(cfg, zerolog.Nop(), afero.NewMemMapFs())
			printRoutes(cmd.OutOrStdout(), e.Routes())
			return nil
		},
	}
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}
	if dir, _ := cmd.Flags().GetString("static-dir"); dir != "" {
		cfg.StaticDir = dir
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	if cfg.IsDev() {
		out = zerolog.ConsoleWriter{Out: out}
	}
	return zerolog.New(out).Level(cfg.Level()).With().Timestamp().Logger()
}

// printRoutes writes one "METHOD PATH" line per route, skipping the
// not-found catch-alls echo registers for groups.
func printRoutes(w io.Writer, routes []*echo.Route) {
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	for _, r := range routes {
		if r.Method == echo.RouteNotFound {
			continue
		}
		fmt.Fprintf(w, "%-7s %s\n", r.Method, r.Path)
	}
}

func runServer(cfg *config.Config) error {
	logger := newLogger(cfg, os.Stdout)

	if _, err := os.Stat(cfg.StaticDir); err != nil {
		logger.Warn().Err(err).Str("static_dir", cfg.StaticDir).Msg("frontend build directory not readable; non-API paths will 404")
	}

	e := app.NewServer(cfg, logger, nil)

	go func() {
		addr := cfg.Addr()
		logger.Info().Str("addr", addr).Str("static_dir", cfg.StaticDir).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
