package pqsig

import (
	"fmt"

	"cosmossdk.io/log"

	"github.com/qrp2p/pqsig-go/internal/mock"
	"github.com/qrp2p/pqsig-go/mechanism"
)

// KeyPair holds one signing identity. Real mode: binary-encoded keys with
// backend-defined lengths. Mock mode: two distinct 32-byte SHA-256 digests
// derived from the node identity.
type KeyPair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// Algorithm is a digital signature scheme at a fixed security level. The
// five methods are total: when the native backend is unavailable or fails
// mid-operation, the call transparently completes through the
// deterministic mock engine instead of returning an error.
//
// Use Name to tell the modes apart; a degraded instance reports a
// " [Mock]" qualifier.
type Algorithm interface {
	// GenerateKeyPair creates a new keypair.
	GenerateKeyPair() KeyPair

	// Sign signs message with the private key.
	Sign(privateKey, message []byte) []byte

	// Verify reports whether signature is valid for message under the
	// public key.
	Verify(publicKey, message, signature []byte) bool

	// Name returns the human-readable scheme name reflecting the live
	// mode, e.g. "CRYSTALS-Dilithium (Level 3)" or
	// "SPHINCS+ (Level 3) [Mock]".
	Name() string

	// Description returns a static description of the scheme family.
	Description() string
}

// algorithm is the single Algorithm implementation; the Dilithium and
// SPHINCS+ constructors are two parameterizations of it. Every operation
// dispatches in two explicit steps: the real backend if this instance
// resolved a mechanism and the Suite is still Available, then the mock
// engine. The mock engine cannot fail, so no operation ever takes more
// than one fallback step.
type algorithm struct {
	family      mechanism.Family
	level       int
	displayName string
	description string

	mech    string // resolved backend mechanism, "" if resolution failed
	backend Backend
	state   *degradeState
	mock    *mock.Engine
	logger  log.Logger
}

// realAvailable reports whether the real backend path may be taken for
// this instance right now.
func (a *algorithm) realAvailable() bool {
	return a.mech != "" && a.state.Available()
}

// degrade records a runtime backend failure as the Suite-wide degrade
// cause. The caller falls through to the mock path afterwards.
func (a *algorithm) degrade(op string, err error) {
	a.state.MarkUnavailable(&BackendError{Op: op, Mechanism: a.mech, Err: err})
}

func (a *algorithm) GenerateKeyPair() KeyPair {
	if a.realAvailable() {
		pub, priv, err := a.backend.GenerateKeyPair(a.mech)
		if err == nil {
			a.logger.Debug("generated keypair",
				"family", a.family,
				"mechanism", a.mech,
				"public_key_bytes", len(pub),
				"private_key_bytes", len(priv))
			return KeyPair{PublicKey: pub, PrivateKey: priv}
		}
		a.degrade("generate keypair", err)
	}

	pub, priv := a.mock.GenerateKeyPair()
	return KeyPair{PublicKey: pub, PrivateKey: priv}
}

func (a *algorithm) Sign(privateKey, message []byte) []byte {
	if a.realAvailable() {
		sig, err := a.backend.Sign(a.mech, privateKey, message)
		if err == nil {
			a.logger.Debug("created signature",
				"family", a.family,
				"mechanism", a.mech,
				"signature_bytes", len(sig))
			return sig
		}
		a.degrade("sign", err)
	}

	return a.mock.Sign(privateKey, message)
}

func (a *algorithm) Verify(publicKey, message, signature []byte) bool {
	if a.realAvailable() {
		ok, err := a.backend.Verify(a.mech, publicKey, message, signature)
		if err == nil {
			a.logger.Debug("verified signature",
				"family", a.family,
				"mechanism", a.mech,
				"valid", ok)
			return ok
		}
		a.degrade("verify", err)
	}

	return a.mock.Verify(publicKey, message, signature)
}

func (a *algorithm) Name() string {
	if a.realAvailable() {
		return fmt.Sprintf("%s (Level %d)", a.displayName, a.level)
	}
	return fmt.Sprintf("%s (Level %d) [Mock]", a.displayName, a.level)
}

func (a *algorithm) Description() string {
	return a.description
}
