package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/strindex/internal/adapters/driving/api"
	"github.com/custodia-labs/strindex/internal/core/domain"
	"github.com/custodia-labs/strindex/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the HTTP API.

The listen address comes from --addr, then the PORT environment variable,
then server.addr in the config file. Rate-limit edits in the config file
apply without a restart.

Routes:
  POST   /strings
  GET    /strings
  GET    /strings/filter-by-natural-language?query=...
  GET    /strings/{value}
  DELETE /strings/{value}
  GET    /health`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides PORT and config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if stringService == nil {
		return errNoStringService
	}

	settings, err := currentSettings()
	if err != nil {
		return err
	}

	server, err := api.NewServer(&api.Ports{Strings: stringService}, api.Options{
		AllowedOrigins: settings.Server.AllowedOrigins,
		RateLimit:      settings.Server.RateLimit,
		RateBurst:      settings.Server.RateBurst,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if configWatcher != nil && settingsService != nil {
		go watchRateLimit(ctx, server)
	}

	addr := listenAddr(serveAddr, os.Getenv("PORT"), settings.Server.Addr)
	cmd.Printf("strindex API listening on %s\n", addr)
	return server.Run(ctx, addr)
}

// watchRateLimit applies rate-limit edits from the config file until ctx ends.
func watchRateLimit(ctx context.Context, server *api.Server) {
	err := configWatcher.Watch(ctx, func() {
		settings, err := settingsService.Get()
		if err != nil {
			logger.Warn("reading reloaded settings: %v", err)
			return
		}
		server.SetRateLimit(settings.Server.RateLimit, settings.Server.RateBurst)
	})
	if err != nil {
		logger.Warn("config watcher stopped: %v", err)
	}
}

// currentSettings returns stored settings, or defaults without a settings service.
func currentSettings() (*domain.AppSettings, error) {
	if settingsService == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// listenAddr picks the first non-empty of flag, PORT and configured.
// A bare PORT keeps the host from configured.
func listenAddr(flag, port, configured string) string {
	if flag != "" {
		return flag
	}
	if port != "" {
		host, _, err := net.SplitHostPort(configured)
		if err != nil {
			host = ""
		}
		return net.JoinHostPort(host, port)
	}
	return configured
}
