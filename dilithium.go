package pqsig

import (
	"github.com/qrp2p/pqsig-go/internal/mock"
	"github.com/qrp2p/pqsig-go/mechanism"
)

const dilithiumDescription = "CRYSTALS-Dilithium is a lattice-based digital signature scheme. " +
	"It is one of the NIST post-quantum cryptography standards."

// Dilithium returns the CRYSTALS-Dilithium (ML-DSA) signature scheme at
// the given NIST security level: 2, 3, or 5. The level is validated before
// anything else; an invalid level is an error even when the Suite is
// already degraded.
//
// If no Dilithium mechanism is enabled in the backend, the Suite degrades
// and the returned Algorithm runs on the mock engine.
func (s *Suite) Dilithium(level int) (Algorithm, error) {
	if !mechanism.Supported(mechanism.Dilithium, level) {
		return nil, &InvalidLevelError{
			Family: mechanism.Dilithium,
			Level:  level,
			Valid:  mechanism.Levels(mechanism.Dilithium),
		}
	}

	eng := mock.NewDilithium(level, s.nodeID, s.dilithiumKeys, s.logger)
	return s.newAlgorithm(mechanism.Dilithium, level, "CRYSTALS-Dilithium", dilithiumDescription, eng), nil
}
