// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Analyzer and the query translation functions are pure and safe
// for concurrent use. StringService adds persistence through a
// driven.StringStore.
package services
