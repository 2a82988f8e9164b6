package mock

import (
	"os"
	"strconv"
)

// NodeIDEnv is the environment variable consulted for a stable node
// identity when none is configured explicitly.
const NodeIDEnv = "NODE_ID"

// ResolveNodeID picks the identity that seeds deterministic key
// derivation: the explicit value when non-empty, then the NODE_ID
// environment variable, then the PID as a process-local fallback. Keys
// derived from the fallback are reproducible only within one process run.
func ResolveNodeID(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(NodeIDEnv); env != "" {
		return env
	}
	return strconv.Itoa(os.Getpid())
}
