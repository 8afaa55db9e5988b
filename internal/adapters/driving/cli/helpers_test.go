package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/custodia-labs/strindex/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/strindex/internal/core/domain"
	"github.com/custodia-labs/strindex/internal/core/services"
	"github.com/custodia-labs/strindex/internal/logger"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	m.Run()
}

// setupTestServices wires in-memory services and returns a cleanup func.
func setupTestServices() func() {
	origStrings, origSettings, origWatcher := stringService, settingsService, configWatcher

	stringService = services.NewStringService(memory.NewStringStore(), services.NewAnalyzer())
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	configWatcher = nil

	return func() {
		stringService, settingsService, configWatcher = origStrings, origSettings, origWatcher
	}
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	listParams = domain.QueryParams{}
	jsonOutput = false
	serveAddr = ""

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// seed stores values through the current string service.
func seed(t *testing.T, values ...string) {
	t.Helper()
	for _, v := range values {
		if _, err := stringService.Create(context.Background(), v); err != nil {
			t.Fatalf("seeding %q: %v", v, err)
		}
	}
}
