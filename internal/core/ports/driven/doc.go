// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - StringStore: Persistence of analysed strings (SQLite or memory)
//   - ConfigStore: Application configuration (TOML file or memory)
//   - ConfigWatcher: Change notification for file-backed configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
