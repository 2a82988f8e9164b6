package pqsig

import (
	"github.com/qrp2p/pqsig-go/internal/backend"
)

// Backend is the native signature provider behind a Suite. Implementations
// are stateless per call: every operation carries the mechanism name and
// binary-encoded key material, mirroring how liboqs signer objects are
// created and discarded per operation.
//
// A Verify that merely does not match must return (false, nil). A non-nil
// error from any method means the backend itself is broken and triggers
// the Suite-wide downgrade to mock signatures.
type Backend interface {
	// Name identifies the backend in logs and diagnostics.
	Name() string

	// Mechanisms lists the mechanism names the backend has enabled.
	Mechanisms() ([]string, error)

	// GenerateKeyPair creates a fresh keypair for the mechanism.
	GenerateKeyPair(mechanism string) (publicKey, privateKey []byte, err error)

	// Sign signs message with the binary-encoded private key.
	Sign(mechanism string, privateKey, message []byte) ([]byte, error)

	// Verify checks signature over message with the binary-encoded
	// public key.
	Verify(mechanism string, publicKey, message, signature []byte) (bool, error)
}

// DefaultBackend returns the backend compiled into this build: the pure-Go
// circl backend, or the liboqs backend when built with the "liboqs" tag.
func DefaultBackend() Backend {
	return backend.DefaultBackend()
}
