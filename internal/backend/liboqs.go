//go:build liboqs

package backend

import (
	"fmt"

	"github.com/open-quantum-safe/liboqs-go/oqs"
)

// LibOQS drives the native liboqs library through its cgo bindings. It
// exposes every signature mechanism the linked liboqs enables, including
// the SPHINCS+/SLH-DSA family, at the cost of a cgo and shared-library
// dependency.
//
// Mirroring the library's own model, every operation uses a fresh signer
// handle: Init with the secret key for signing, Init without one for
// verification, Clean when done.
type LibOQS struct{}

// NewLibOQS creates the liboqs backend.
func NewLibOQS() *LibOQS { return &LibOQS{} }

// Name identifies the backend in logs and diagnostics.
func (l *LibOQS) Name() string { return "liboqs" }

// Mechanisms lists the signature mechanisms enabled in the linked liboqs.
func (l *LibOQS) Mechanisms() ([]string, error) {
	sigs := oqs.EnabledSigs()
	if len(sigs) == 0 {
		return nil, fmt.Errorf("liboqs reports no enabled signature mechanisms")
	}
	return sigs, nil
}

// GenerateKeyPair creates a fresh keypair for the mechanism.
func (l *LibOQS) GenerateKeyPair(mechanism string) ([]byte, []byte, error) {
	var signer oqs.Signature
	defer signer.Clean()

	if err := signer.Init(mechanism, nil); err != nil {
		return nil, nil, fmt.Errorf("init %s: %w", mechanism, err)
	}
	pub, err := signer.GenerateKeyPair()
	if err != nil {
		return nil, nil, fmt.Errorf("generate %s keypair: %w", mechanism, err)
	}
	return pub, signer.ExportSecretKey(), nil
}

// Sign signs message with the given secret key.
func (l *LibOQS) Sign(mechanism string, privateKey, message []byte) ([]byte, error) {
	var signer oqs.Signature
	defer signer.Clean()

	if err := signer.Init(mechanism, privateKey); err != nil {
		return nil, fmt.Errorf("init %s: %w", mechanism, err)
	}
	sig, err := signer.Sign(message)
	if err != nil {
		return nil, fmt.Errorf("sign with %s: %w", mechanism, err)
	}
	return sig, nil
}

// Verify checks signature over message against the public key.
func (l *LibOQS) Verify(mechanism string, publicKey, message, signature []byte) (bool, error) {
	var verifier oqs.Signature
	defer verifier.Clean()

	if err := verifier.Init(mechanism, nil); err != nil {
		return false, fmt.Errorf("init %s: %w", mechanism, err)
	}
	ok, err := verifier.Verify(message, signature, publicKey)
	if err != nil {
		return false, fmt.Errorf("verify with %s: %w", mechanism, err)
	}
	return ok, nil
}
