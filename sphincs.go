package pqsig

import (
	"github.com/qrp2p/pqsig-go/internal/mock"
	"github.com/qrp2p/pqsig-go/mechanism"
)

const sphincsDescription = "SPHINCS+ is a stateless hash-based digital signature scheme. " +
	"Its security relies only on the security of the underlying hash functions."

// Sphincs returns the SPHINCS+ (SLH-DSA) signature scheme at the given
// NIST security level: 1, 3, or 5. The level is validated before anything
// else; an invalid level is an error even when the Suite is already
// degraded.
//
// The default pure-Go backend enables no SPHINCS+ mechanisms, so on that
// backend the first Sphincs construction degrades the Suite and the
// returned Algorithm runs on the mock engine. Build with the "liboqs" tag
// for a real SPHINCS+ path.
func (s *Suite) Sphincs(level int) (Algorithm, error) {
	if !mechanism.Supported(mechanism.Sphincs, level) {
		return nil, &InvalidLevelError{
			Family: mechanism.Sphincs,
			Level:  level,
			Valid:  mechanism.Levels(mechanism.Sphincs),
		}
	}

	eng := mock.NewSphincs(level, s.nodeID, s.sphincsKeys, s.logger)
	return s.newAlgorithm(mechanism.Sphincs, level, "SPHINCS+", sphincsDescription, eng), nil
}
