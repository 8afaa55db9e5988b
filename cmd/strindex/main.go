// Command strindex analyses, stores and queries strings over HTTP, MCP,
// a terminal UI and the command line.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/strindex/internal/adapters/driven/config/file"
	"github.com/custodia-labs/strindex/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/strindex/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/strindex/internal/adapters/driving/cli"
	"github.com/custodia-labs/strindex/internal/core/domain"
	"github.com/custodia-labs/strindex/internal/core/ports/driven"
	"github.com/custodia-labs/strindex/internal/core/services"
	"github.com/custodia-labs/strindex/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// configDirEnv overrides the config directory (default ~/.strindex).
const configDirEnv = "STRINDEX_CONFIG_DIR"

func main() {
	os.Exit(run())
}

func run() int {
	configStore, err := file.NewConfigStore(os.Getenv(configDirEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading settings: %v\n", err)
		return 1
	}

	store, closeStore, err := openStringStore(settings.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening storage: %v\n", err)
		return 1
	}
	defer closeStore()

	cli.SetVersion(version)
	cli.SetSettingsService(settingsService)
	cli.SetConfigWatcher(configStore)
	cli.SetStringService(services.NewStringService(store, services.NewAnalyzer()))

	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}

// openStringStore opens the configured backend and returns its close func.
func openStringStore(cfg domain.StorageSettings) (driven.StringStore, func(), error) {
	switch cfg.Backend {
	case domain.StorageMemory:
		logger.Debug("using in-memory string store")
		return memory.NewStringStore(), func() {}, nil
	case domain.StorageSQLite, "":
		store, err := sqlite.NewStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("using sqlite string store at %s", store.Path())
		return store.StringStore(), func() {
			if err := store.Close(); err != nil {
				logger.Warn("closing store: %v", err)
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
