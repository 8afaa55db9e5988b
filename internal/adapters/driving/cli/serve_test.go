package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/strindex/internal/adapters/driving/api"
)

// fakeWatcher fires onChange once and then waits for cancellation.
type fakeWatcher struct {
	fired chan struct{}
}

func (w *fakeWatcher) Watch(ctx context.Context, onChange func()) error {
	onChange()
	close(w.fired)
	<-ctx.Done()
	return nil
}

func TestListenAddr(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		port       string
		configured string
		want       string
	}{
		{"config only", "", "", ":8080", ":8080"},
		{"port overrides config", "", "3000", ":8080", ":3000"},
		{"port keeps configured host", "", "3000", "127.0.0.1:8080", "127.0.0.1:3000"},
		{"port with malformed config", "", "3000", "nonsense", ":3000"},
		{"flag wins", "localhost:9000", "3000", ":8080", "localhost:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listenAddr(tt.flag, tt.port, tt.configured))
		})
	}
}

func TestServeCmd_StopsWhenContextCancelled(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	serveAddr = ""

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"serve", "--addr", "127.0.0.1:0"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.ExecuteContext(ctx)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "strindex API listening on 127.0.0.1:0")
}

func TestServeCmd_InvalidAddress(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "serve", "--addr", "256.0.0.1:bad")

	assert.Error(t, err)
}

func TestWatchRateLimit_AppliesReloadedSettings(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	w := &fakeWatcher{fired: make(chan struct{})}
	configWatcher = w

	server, err := api.NewServer(&api.Ports{Strings: stringService}, api.Options{RateLimit: 1, RateBurst: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		watchRateLimit(ctx, server)
		close(done)
	}()

	<-w.fired
	cancel()
	<-done
}

func TestCurrentSettings_DefaultsWithoutService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	settingsService = nil

	settings, err := currentSettings()

	require.NoError(t, err)
	assert.Equal(t, ":8080", settings.Server.Addr)
}
