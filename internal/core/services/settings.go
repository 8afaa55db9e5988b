package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/strindex/internal/core/domain"
	"github.com/custodia-labs/strindex/internal/core/ports/driven"
	"github.com/custodia-labs/strindex/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyServerAddr     = "server.addr"
	keyAllowedOrigins = "server.allowed_origins"
	keyRateLimit      = "server.rate_limit"
	keyRateBurst      = "server.rate_burst"
	keyStorageBackend = "storage.backend"
	keyStorageDataDir = "storage.data_dir"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Server: domain.ServerSettings{
			Addr:           s.getString(keyServerAddr, defaults.Server.Addr),
			AllowedOrigins: s.getStringSlice(keyAllowedOrigins, defaults.Server.AllowedOrigins),
			RateLimit:      s.getRateLimit(defaults.Server.RateLimit),
			RateBurst:      s.getInt(keyRateBurst, defaults.Server.RateBurst),
		},
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			DataDir: s.configStore.GetString(keyStorageDataDir),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if !settings.Storage.Backend.IsValid() {
		return fmt.Errorf("%w: storage backend %q", domain.ErrInvalidInput, settings.Storage.Backend)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyServerAddr, settings.Server.Addr},
		{keyAllowedOrigins, settings.Server.AllowedOrigins},
		{keyRateLimit, settings.Server.RateLimit},
		{keyRateBurst, settings.Server.RateBurst},
		{keyStorageBackend, settings.Storage.Backend.String()},
		{keyStorageDataDir, settings.Storage.DataDir},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("saving %s: %w", v.key, err)
		}
	}
	return nil
}

// Set validates and persists a single setting from its textual form.
func (s *SettingsService) Set(key, value string) error {
	var stored any

	switch key {
	case keyServerAddr:
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
		stored = value
	case keyAllowedOrigins:
		var origins []string
		for _, o := range strings.Split(value, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		stored = origins
	case keyRateLimit:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", domain.ErrInvalidInput, key)
		}
		stored = n
	case keyRateBurst:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
		}
		stored = n
	case keyStorageBackend:
		backend := domain.StorageBackend(value)
		if !backend.IsValid() {
			return fmt.Errorf("%w: %s must be one of sqlite, memory", domain.ErrInvalidInput, key)
		}
		stored = backend.String()
	case keyStorageDataDir:
		stored = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.configStore.Set(key, stored)
}

// Keys returns the recognised setting keys.
func (s *SettingsService) Keys() []string {
	return []string{
		keyServerAddr,
		keyAllowedOrigins,
		keyRateLimit,
		keyRateBurst,
		keyStorageBackend,
		keyStorageDataDir,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

// getRateLimit keeps an explicit zero, which disables limiting.
func (s *SettingsService) getRateLimit(defaultVal float64) float64 {
	if _, exists := s.configStore.Get(keyRateLimit); !exists {
		return defaultVal
	}
	val := s.configStore.GetFloat(keyRateLimit)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	val := s.configStore.GetString(keyStorageBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.StorageBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
