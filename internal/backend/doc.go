// Package backend implements the native signature backends the suite can
// drive. Each backend exposes the same stateless surface: enumerate the
// mechanism names it supports, then generate, sign, and verify against a
// chosen mechanism using opaque byte keys.
//
// Two implementations exist:
//
//   - Circl: pure Go, built on cloudflare/circl. Always available. Covers
//     the Dilithium family under both FIPS 204 names (ML-DSA-44/65/87) and
//     the legacy round-3 names (Dilithium2/3/5). circl has no SPHINCS+
//     scheme with a stable generic interface, so SPHINCS+ resolution fails
//     on this backend.
//
//   - LibOQS: cgo wrapper over the Open Quantum Safe liboqs library,
//     compiled in with the "liboqs" build tag. Exposes everything the
//     linked liboqs enables, including SPHINCS+/SLH-DSA.
//
// DefaultBackend picks LibOQS when the build tag is set, Circl otherwise.
package backend
