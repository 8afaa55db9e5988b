package domain

// StorageBackend selects the string store implementation.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite persists records in a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps records in process memory only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageSQLite:
		return "SQLite (persistent)"
	case StorageMemory:
		return "Memory (lost on exit)"
	default:
		return "Unknown"
	}
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Server  ServerSettings
	Storage StorageSettings
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// AllowedOrigins lists CORS origins. "*" allows any origin.
	AllowedOrigins []string

	// RateLimit is the sustained request rate per second. Zero disables limiting.
	RateLimit float64

	// RateBurst is the token bucket size.
	RateBurst int
}

// StorageSettings configures persistence.
type StorageSettings struct {
	Backend StorageBackend

	// DataDir holds the SQLite database. Empty means ~/.strindex/data.
	DataDir string
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Server: ServerSettings{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
			RateLimit:      20,
			RateBurst:      40,
		},
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
	}
}

// AllStorageBackends returns all available storage backends.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{StorageSQLite, StorageMemory}
}
