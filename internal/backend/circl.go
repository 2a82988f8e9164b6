package backend

import (
	"errors"
	"fmt"

	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/dilithium/mode2"
	"github.com/cloudflare/circl/sign/dilithium/mode3"
	"github.com/cloudflare/circl/sign/dilithium/mode5"
	"github.com/cloudflare/circl/sign/mldsa/mldsa44"
	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

// ErrUnknownMechanism is returned when a mechanism name is not supported
// by the backend.
var ErrUnknownMechanism = errors.New("backend: unknown mechanism")

// Circl is the pure-Go signature backend built on cloudflare/circl.
type Circl struct {
	schemes map[string]sign.Scheme
	names   []string
}

// NewCircl creates the circl backend with every supported scheme
// registered under its own name.
func NewCircl() *Circl {
	schemes := []sign.Scheme{
		mldsa44.Scheme(),
		mldsa65.Scheme(),
		mldsa87.Scheme(),
		mode2.Scheme(),
		mode3.Scheme(),
		mode5.Scheme(),
	}

	c := &Circl{
		schemes: make(map[string]sign.Scheme, len(schemes)),
		names:   make([]string, 0, len(schemes)),
	}
	for _, s := range schemes {
		c.schemes[s.Name()] = s
		c.names = append(c.names, s.Name())
	}
	return c
}

// Name identifies the backend in logs and diagnostics.
func (c *Circl) Name() string { return "circl" }

// Mechanisms lists the supported mechanism names. It never fails: the
// scheme set is compiled in.
func (c *Circl) Mechanisms() ([]string, error) {
	return append([]string(nil), c.names...), nil
}

func (c *Circl) scheme(mechanism string) (sign.Scheme, error) {
	s, ok := c.schemes[mechanism]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMechanism, mechanism)
	}
	return s, nil
}

// GenerateKeyPair creates a fresh keypair for the mechanism and returns
// both keys in their binary encoding.
func (c *Circl) GenerateKeyPair(mechanism string) ([]byte, []byte, error) {
	s, err := c.scheme(mechanism)
	if err != nil {
		return nil, nil, err
	}

	pk, sk, err := s.GenerateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("generate %s keypair: %w", mechanism, err)
	}

	pub, err := pk.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("marshal %s public key: %w", mechanism, err)
	}
	priv, err := sk.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("marshal %s private key: %w", mechanism, err)
	}
	return pub, priv, nil
}

// Sign signs message with the binary-encoded private key.
func (c *Circl) Sign(mechanism string, privateKey, message []byte) ([]byte, error) {
	s, err := c.scheme(mechanism)
	if err != nil {
		return nil, err
	}

	sk, err := s.UnmarshalBinaryPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s private key: %w", mechanism, err)
	}
	return s.Sign(sk, message, nil), nil
}

// Verify checks signature over message with the binary-encoded public
// key. A signature that merely does not match yields (false, nil); an
// unusable mechanism or key yields an error.
func (c *Circl) Verify(mechanism string, publicKey, message, signature []byte) (bool, error) {
	s, err := c.scheme(mechanism)
	if err != nil {
		return false, err
	}

	pk, err := s.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return false, fmt.Errorf("unmarshal %s public key: %w", mechanism, err)
	}
	if len(signature) != s.SignatureSize() {
		return false, nil
	}
	return s.Verify(pk, message, signature, nil), nil
}
