package mock

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"cosmossdk.io/log"

	"github.com/qrp2p/pqsig-go/mechanism"
)

// KeySize is the length of mock public and private keys in bytes.
const KeySize = sha256.Size

// Fixed mock signature lengths per family.
const (
	// DilithiumSignatureSize is the HMAC-SHA-256 output length.
	DilithiumSignatureSize = sha256.Size
	// SphincsSignatureSize is the SHA-384 digest length.
	SphincsSignatureSize = sha512.Size384
)

// Engine derives reproducible keypairs from a node identity and produces
// deterministic signatures for one scheme family. It is a stand-in for
// the real backend, not a secure signature scheme.
type Engine struct {
	family  mechanism.Family
	level   int
	nodeID  string
	sigSize int
	sign    func(privateKey, message []byte) []byte
	reg     *Registry
	logger  log.Logger
}

// NewDilithium returns a mock engine for the Dilithium family.
// Signatures are 32-byte HMAC-SHA-256 tags keyed with the private key.
func NewDilithium(level int, nodeID string, reg *Registry, logger log.Logger) *Engine {
	return newEngine(mechanism.Dilithium, level, nodeID, DilithiumSignatureSize, dilithiumSign, reg, logger)
}

// NewSphincs returns a mock engine for the SPHINCS+ family. Signatures
// are 48-byte SHA-384 digests over private key || message, so the two
// families stay distinguishable by signature shape.
func NewSphincs(level int, nodeID string, reg *Registry, logger log.Logger) *Engine {
	return newEngine(mechanism.Sphincs, level, nodeID, SphincsSignatureSize, sphincsSign, reg, logger)
}

func newEngine(family mechanism.Family, level int, nodeID string, sigSize int, sign func([]byte, []byte) []byte, reg *Registry, logger log.Logger) *Engine {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Engine{
		family:  family,
		level:   level,
		nodeID:  nodeID,
		sigSize: sigSize,
		sign:    sign,
		reg:     reg,
		logger:  logger,
	}
}

func dilithiumSign(privateKey, message []byte) []byte {
	mac := hmac.New(sha256.New, privateKey)
	mac.Write(message)
	return mac.Sum(nil)
}

func sphincsSign(privateKey, message []byte) []byte {
	h := sha512.New384()
	h.Write(privateKey)
	h.Write(message)
	return h.Sum(nil)
}

// GenerateKeyPair derives the keypair for this engine's identity and
// registers it for later verification. The same (family, level, node
// identity) always produces the same pair, within a process and across
// processes sharing the identity.
func (e *Engine) GenerateKeyPair() (publicKey, privateKey []byte) {
	privSeed := fmt.Sprintf("%s-%d-private-%s", e.family, e.level, e.nodeID)
	priv := sha256.Sum256([]byte(privSeed))

	pubSeed := fmt.Sprintf("%s-%d-public-%s", e.family, e.level, hex.EncodeToString(priv[:]))
	pub := sha256.Sum256([]byte(pubSeed))

	e.reg.Put(pub[:], priv[:])
	e.logger.Debug("generated deterministic mock keypair", "family", e.family, "level", e.level)
	return pub[:], priv[:]
}

// Sign produces the deterministic signature for message under privateKey.
// Identical inputs always yield identical output.
func (e *Engine) Sign(privateKey, message []byte) []byte {
	sig := e.sign(privateKey, message)
	e.logger.Debug("created deterministic mock signature", "family", e.family, "bytes", len(sig))
	return sig
}

// Verify checks a mock signature. When the public key is registered, the
// expected signature is recomputed and compared in constant time. For an
// unknown public key only the length is checked; that structural pass is
// not an authenticity guarantee.
func (e *Engine) Verify(publicKey, message, signature []byte) bool {
	priv, found := e.reg.Get(publicKey)
	if !found {
		ok := len(signature) == e.sigSize
		e.logger.Debug("verified mock signature structurally", "family", e.family, "ok", ok)
		return ok
	}

	expected := e.sign(priv, message)
	ok := subtle.ConstantTimeCompare(signature, expected) == 1
	e.logger.Debug("verified mock signature", "family", e.family, "ok", ok)
	return ok
}

// SignatureSize returns the fixed mock signature length for the family.
func (e *Engine) SignatureSize() int { return e.sigSize }
