// Package mock implements the deterministic substitute signature engine
// used when no real post-quantum backend is available. It keeps the
// public byte contracts of the real schemes (keypair in, signature out,
// boolean verify) while deriving everything from a stable node identity,
// so higher layers keep working, with reproducible results, on hosts
// without a native PQ library.
//
// # Derivation
//
// For a scheme family F at security level L with node identity N:
//
//	private = SHA-256("F-L-private-N")
//	public  = SHA-256("F-L-public-<hex(private)>")
//
// Dilithium-family signatures are HMAC-SHA-256(private, message), 32
// bytes. SPHINCS-family signatures are SHA-384(private || message), 48
// bytes. The differing lengths keep the two families distinguishable.
//
// # Verification
//
// Each engine shares a per-family Registry mapping generated public keys
// to their private keys. Verification recomputes the expected signature
// for registered keys and compares in constant time. For an unregistered
// public key (one generated by a remote node) only the signature length
// is checked. That structural pass is deliberate, it keeps cross-node
// mock traffic flowing, but it authenticates nothing and must never be
// mistaken for a security property.
//
// All types are safe for concurrent use.
package mock
