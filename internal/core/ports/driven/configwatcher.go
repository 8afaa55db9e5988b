package driven

import "context"

// ConfigWatcher notifies when persisted configuration changes on disk.
type ConfigWatcher interface {
	// Watch reloads the configuration and calls onChange after every
	// change until ctx is cancelled.
	Watch(ctx context.Context, onChange func()) error
}
