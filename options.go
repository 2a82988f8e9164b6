package pqsig

import (
	"cosmossdk.io/log"
)

// suiteConfig holds configuration for the Suite.
type suiteConfig struct {
	backend    Backend
	backendSet bool
	logger     log.Logger
	nodeID     string
	mockOnly   bool
}

// Option configures the Suite.
type Option func(*suiteConfig)

// WithBackend sets the native signature backend.
// Default: DefaultBackend().
func WithBackend(b Backend) Option {
	return func(c *suiteConfig) {
		c.backend = b
		c.backendSet = true
	}
}

// WithLogger sets the logger used for probe, degrade, and operation
// events. Key material is never logged.
// Default: a no-op logger.
func WithLogger(logger log.Logger) Option {
	return func(c *suiteConfig) {
		c.logger = logger
	}
}

// WithNodeID fixes the node identity used to derive mock keypairs.
// Mock keys are reproducible across processes only when the identity is
// pinned, either with this option or the NODE_ID environment variable.
// Default: NODE_ID from the environment, else the process ID.
func WithNodeID(id string) Option {
	return func(c *suiteConfig) {
		c.nodeID = id
	}
}

// WithMockOnly skips the backend probe and starts the Suite in mock mode.
// Intended for tests and air-gapped tooling that must behave identically
// on hosts with and without a native backend.
func WithMockOnly() Option {
	return func(c *suiteConfig) {
		c.mockOnly = true
	}
}
