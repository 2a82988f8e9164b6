package pqsig

import (
	"errors"
	"strings"
	"testing"

	"github.com/qrp2p/pqsig-go/internal/mock"
)

func TestGenerateKeyPair_BackendFailureFallsBackToMock(t *testing.T) {
	b := newStubBackend()
	b.generateErr = errors.New("entropy source sealed")

	suite, err := New(WithBackend(b), WithNodeID("node-a"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	alg, err := suite.Dilithium(3)
	if err != nil {
		t.Fatalf("Dilithium(3) error = %v", err)
	}

	keys := alg.GenerateKeyPair()
	if len(keys.PublicKey) != mock.KeySize || len(keys.PrivateKey) != mock.KeySize {
		t.Errorf("mock fallback keypair sizes = %d/%d, want %d/%d",
			len(keys.PublicKey), len(keys.PrivateKey), mock.KeySize, mock.KeySize)
	}

	if suite.Available() {
		t.Error("Available() = true after backend generate failure")
	}
	reason := suite.DegradeReason()
	if !errors.Is(reason, ErrBackendFailure) {
		t.Errorf("DegradeReason() = %v, want ErrBackendFailure", reason)
	}
	var backendErr *BackendError
	if !errors.As(reason, &backendErr) {
		t.Fatalf("DegradeReason() = %T, want *BackendError", reason)
	}
	if backendErr.Op != "generate keypair" {
		t.Errorf("BackendError.Op = %q, want %q", backendErr.Op, "generate keypair")
	}
	if backendErr.Mechanism != "ML-DSA-65" {
		t.Errorf("BackendError.Mechanism = %q, want %q", backendErr.Mechanism, "ML-DSA-65")
	}
}

func TestSign_BackendFailureFallsBackToMock(t *testing.T) {
	b := newStubBackend()
	b.signErr = errors.New("signer crashed")

	suite, err := New(WithBackend(b))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	alg, err := suite.Dilithium(3)
	if err != nil {
		t.Fatalf("Dilithium(3) error = %v", err)
	}

	keys := alg.GenerateKeyPair() // real path, succeeds
	if !suite.Available() {
		t.Fatal("suite degraded before the failing call")
	}

	sig := alg.Sign(keys.PrivateKey, []byte("message"))
	if len(sig) != mock.DilithiumSignatureSize {
		t.Errorf("fallback signature length = %d, want %d", len(sig), mock.DilithiumSignatureSize)
	}
	if suite.Available() {
		t.Error("Available() = true after backend sign failure")
	}
	if !strings.HasSuffix(alg.Name(), "[Mock]") {
		t.Errorf("Name() = %q, want mock qualifier after downgrade", alg.Name())
	}
}

func TestVerify_BackendFailureFallsBackToMock(t *testing.T) {
	b := newStubBackend()
	b.verifyErr = errors.New("verifier crashed")

	suite, err := New(WithBackend(b))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	alg, err := suite.Sphincs(3)
	if err != nil {
		t.Fatalf("Sphincs(3) error = %v", err)
	}

	// The mock engine has never seen this public key, so the structural
	// length rule decides the retried verification.
	if !alg.Verify([]byte("unknown"), []byte("m"), make([]byte, mock.SphincsSignatureSize)) {
		t.Error("Verify() = false for correct-length signature after fallback")
	}
	if suite.Available() {
		t.Error("Available() = true after backend verify failure")
	}

	if alg.Verify([]byte("unknown"), []byte("m"), make([]byte, mock.SphincsSignatureSize-1)) {
		t.Error("Verify() = true for wrong-length signature on mock path")
	}
}

func TestVerify_MismatchDoesNotDegrade(t *testing.T) {
	b := newStubBackend()
	b.verifyOK = false

	suite, err := New(WithBackend(b))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	alg, err := suite.Dilithium(2)
	if err != nil {
		t.Fatalf("Dilithium(2) error = %v", err)
	}

	if alg.Verify([]byte("pub"), []byte("msg"), []byte("sig")) {
		t.Error("Verify() = true, stub reports mismatch")
	}
	if !suite.Available() {
		t.Error("Available() = false, a mismatch must not degrade the suite")
	}

	// Mismatches keep using the real path.
	alg.Verify([]byte("pub"), []byte("msg"), []byte("sig"))
	if b.calls != 2 {
		t.Errorf("backend calls = %d, want 2", b.calls)
	}
}

func TestDowngrade_IsSuiteWideAndTerminal(t *testing.T) {
	b := newStubBackend()
	b.generateErr = errors.New("backend broke")

	suite, err := New(WithBackend(b))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	dil, err := suite.Dilithium(3)
	if err != nil {
		t.Fatalf("Dilithium(3) error = %v", err)
	}
	sph, err := suite.Sphincs(1)
	if err != nil {
		t.Fatalf("Sphincs(1) error = %v", err)
	}
	if !strings.HasPrefix(sph.Name(), "SPHINCS+ (Level 1)") || strings.HasSuffix(sph.Name(), "[Mock]") {
		t.Fatalf("Name() = %q before downgrade", sph.Name())
	}

	dil.GenerateKeyPair() // flips the switch

	if want := "SPHINCS+ (Level 1) [Mock]"; sph.Name() != want {
		t.Errorf("Name() = %q after sibling downgrade, want %q", sph.Name(), want)
	}

	// No operation on any instance reaches the backend again.
	before := b.calls
	sph.GenerateKeyPair()
	dil.GenerateKeyPair()
	dil.Sign([]byte("k"), []byte("m"))
	sph.Verify([]byte("p"), []byte("m"), []byte("s"))
	if b.calls != before {
		t.Errorf("backend calls = %d after downgrade, want %d", b.calls, before)
	}
}

func TestDowngrade_KeepsFirstCause(t *testing.T) {
	b := newStubBackend()
	b.generateErr = errors.New("first failure")

	suite, err := New(WithBackend(b))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	alg, err := suite.Dilithium(5)
	if err != nil {
		t.Fatalf("Dilithium(5) error = %v", err)
	}

	alg.GenerateKeyPair()
	first := suite.DegradeReason()
	alg.GenerateKeyPair()
	alg.Sign([]byte("k"), []byte("m"))

	if got := suite.DegradeReason(); !errors.Is(got, ErrBackendFailure) || got != first {
		t.Errorf("DegradeReason() = %v, want first recorded cause %v", got, first)
	}
}

func TestResolutionFailure_DegradesSuite(t *testing.T) {
	b := newStubBackend()
	b.mechanisms = []string{"ML-DSA-44", "ML-DSA-65", "ML-DSA-87"} // no SPHINCS+ variants

	suite, err := New(WithBackend(b))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	dil, err := suite.Dilithium(3)
	if err != nil {
		t.Fatalf("Dilithium(3) error = %v", err)
	}
	if !suite.Available() {
		t.Fatal("suite degraded before resolution failure")
	}

	sph, err := suite.Sphincs(3)
	if err != nil {
		t.Fatalf("Sphincs(3) error = %v, resolution failure must not be a construction error", err)
	}

	if suite.Available() {
		t.Error("Available() = true after unresolvable scheme")
	}
	if reason := suite.DegradeReason(); !errors.Is(reason, ErrNoMechanism) {
		t.Errorf("DegradeReason() = %v, want ErrNoMechanism", reason)
	}
	if !strings.HasSuffix(sph.Name(), "[Mock]") {
		t.Errorf("Name() = %q, want mock qualifier", sph.Name())
	}
	if !strings.HasSuffix(dil.Name(), "[Mock]") {
		t.Errorf("Name() = %q, the downgrade must reach sibling instances", dil.Name())
	}

	// The degraded instances still work end to end.
	keys := sph.GenerateKeyPair()
	msg := []byte("still signing")
	if !sph.Verify(keys.PublicKey, msg, sph.Sign(keys.PrivateKey, msg)) {
		t.Error("mock roundtrip failed after resolution downgrade")
	}
}

func TestMockRegistry_SharedPerFamily(t *testing.T) {
	suite, err := New(WithMockOnly(), WithNodeID("registry-node"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	d3, err := suite.Dilithium(3)
	if err != nil {
		t.Fatalf("Dilithium(3) error = %v", err)
	}
	d5, err := suite.Dilithium(5)
	if err != nil {
		t.Fatalf("Dilithium(5) error = %v", err)
	}

	keys := d3.GenerateKeyPair()
	msg := []byte("cross-instance verify")
	sig := d3.Sign(keys.PrivateKey, msg)

	// Same family registry: the level 5 instance recognizes the level 3
	// public key and verifies against the registered private key.
	if !d5.Verify(keys.PublicKey, msg, sig) {
		t.Error("Verify() = false through sibling instance of the same family")
	}
}

func TestMockSignatureShapes(t *testing.T) {
	suite, err := New(WithMockOnly())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	dil, err := suite.Dilithium(3)
	if err != nil {
		t.Fatalf("Dilithium(3) error = %v", err)
	}
	sph, err := suite.Sphincs(3)
	if err != nil {
		t.Fatalf("Sphincs(3) error = %v", err)
	}

	dilKeys := dil.GenerateKeyPair()
	sphKeys := sph.GenerateKeyPair()
	msg := []byte("shape check")

	if got := len(dil.Sign(dilKeys.PrivateKey, msg)); got != mock.DilithiumSignatureSize {
		t.Errorf("Dilithium mock signature length = %d, want %d", got, mock.DilithiumSignatureSize)
	}
	if got := len(sph.Sign(sphKeys.PrivateKey, msg)); got != mock.SphincsSignatureSize {
		t.Errorf("SPHINCS+ mock signature length = %d, want %d", got, mock.SphincsSignatureSize)
	}
}
