// Package pqsig provides post-quantum digital signatures behind one
// uniform contract: generate a keypair, sign, verify.
//
// Two scheme families are exposed, lattice-based CRYSTALS-Dilithium
// (ML-DSA) and hash-based SPHINCS+ (SLH-DSA), each at fixed NIST security
// levels. When the native backend is unavailable, or fails at runtime,
// the Suite degrades once and permanently to a deterministic mock engine:
// operations keep returning values of the correct shape instead of
// errors, and Name() gains a " [Mock]" qualifier. Mock signatures are
// locally verifiable but carry no post-quantum security.
//
// Basic usage:
//
//	suite, err := pqsig.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	alg, err := suite.Dilithium(pqsig.DefaultLevel)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	keys := alg.GenerateKeyPair()
//	sig := alg.Sign(keys.PrivateKey, []byte("hello"))
//
//	if alg.Verify(keys.PublicKey, []byte("hello"), sig) {
//	    fmt.Println("verified with", alg.Name())
//	}
package pqsig
