package pqsig

import (
	"errors"
	"fmt"

	"github.com/qrp2p/pqsig-go/mechanism"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidSecurityLevel is returned when an algorithm is requested at
	// a NIST security level its family does not define.
	ErrInvalidSecurityLevel = errors.New("invalid security level")

	// ErrBackendUnavailable records that the native signature backend could
	// not be probed. It is never returned from signing operations; it is
	// observable through Suite.DegradeReason.
	ErrBackendUnavailable = errors.New("signature backend unavailable")

	// ErrBackendFailure records that a native generate, sign, or verify call
	// failed at runtime. Like ErrBackendUnavailable it only surfaces through
	// Suite.DegradeReason.
	ErrBackendFailure = errors.New("signature backend failure")

	// ErrNoMechanism records that none of a scheme's mechanism names is
	// enabled in the backend.
	ErrNoMechanism = errors.New("no enabled mechanism for scheme")

	// ErrNilBackend is returned by New when WithBackend is given a nil
	// backend.
	ErrNilBackend = errors.New("backend must not be nil")
)

// PQSigError is implemented by all typed errors in this package.
type PQSigError interface {
	error
	PQSigError() // marker method
}

// InvalidLevelError reports a security level outside a family's defined
// set. It is returned at construction time and never triggers a backend
// downgrade.
type InvalidLevelError struct {
	Family mechanism.Family
	Level  int
	Valid  []int
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid %s security level: %d (must be one of %v)", e.Family, e.Level, e.Valid)
}

// Is implements errors.Is for sentinel error matching.
func (e *InvalidLevelError) Is(target error) bool {
	return target == ErrInvalidSecurityLevel
}

// PQSigError implements the PQSigError interface.
func (e *InvalidLevelError) PQSigError() {}

// BackendError wraps a runtime failure of the native backend. It becomes
// the degrade reason of the Suite that observed it.
type BackendError struct {
	Op        string // "generate keypair", "sign", "verify"
	Mechanism string
	Err       error
}

func (e *BackendError) Error() string {
	if e.Mechanism != "" {
		return fmt.Sprintf("backend %s failed for %s: %v", e.Op, e.Mechanism, e.Err)
	}
	return fmt.Sprintf("backend %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *BackendError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *BackendError) Is(target error) bool {
	return target == ErrBackendFailure
}

// PQSigError implements the PQSigError interface.
func (e *BackendError) PQSigError() {}
