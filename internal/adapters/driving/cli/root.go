// Package cli provides the strindex command-line interface.
// It is a driving adapter: every command talks to the core through the
// driving ports set by main before Execute.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/strindex/internal/core/ports/driven"
	"github.com/custodia-labs/strindex/internal/core/ports/driving"
	"github.com/custodia-labs/strindex/internal/logger"
)

// version is set from main, normally through -ldflags.
var version = "dev"

var (
	verbose    bool
	jsonOutput bool
)

// Services injected by main.
var (
	stringService   driving.StringService
	settingsService driving.SettingsService
	configWatcher   driven.ConfigWatcher
)

var rootCmd = &cobra.Command{
	Use:   "strindex",
	Short: "Analyse, store and query strings",
	Long: `strindex analyses strings and keeps them with their derived properties:
length, palindrome flag, unique characters, word count, SHA-256 and a
character frequency map.

Stored strings can be filtered by property or with a small set of
recognised English phrases, over HTTP, MCP, the terminal UI or this CLI.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON instead of text")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetStringService sets the service used by the string commands.
func SetStringService(svc driving.StringService) {
	stringService = svc
}

// SetSettingsService sets the service used by the settings commands.
func SetSettingsService(svc driving.SettingsService) {
	settingsService = svc
}

// SetConfigWatcher sets the watcher serve uses to pick up config edits.
func SetConfigWatcher(w driven.ConfigWatcher) {
	configWatcher = w
}
