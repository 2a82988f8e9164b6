package pqsig

import (
	"fmt"
	"sort"

	"cosmossdk.io/log"

	"github.com/qrp2p/pqsig-go/internal/mock"
	"github.com/qrp2p/pqsig-go/mechanism"
)

// DefaultLevel is the NIST security level used when callers have no
// specific requirement. Both families define level 3.
const DefaultLevel = 3

// Suite is the composition root for post-quantum signature algorithms.
// It probes the native backend once at construction and hands out
// Algorithm instances that share one availability switch and one mock key
// registry per family: a backend failure observed by any instance moves
// every instance of the Suite to the mock engine, permanently.
//
// A Suite is safe for concurrent use by multiple goroutines.
type Suite struct {
	backend Backend
	logger  log.Logger
	nodeID  string
	state   *degradeState

	// enabled mechanism names from the probe, sorted; nil when degraded
	// at construction
	mechanisms []string

	dilithiumKeys *mock.Registry
	sphincsKeys   *mock.Registry
}

// New creates a Suite and probes the backend for its enabled mechanisms.
// A failed probe is not an error: the Suite starts degraded and every
// Algorithm it hands out runs on the deterministic mock engine. The only
// construction errors are invalid options.
func New(opts ...Option) (*Suite, error) {
	cfg := suiteConfig{logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.backendSet && cfg.backend == nil {
		return nil, ErrNilBackend
	}
	if cfg.logger == nil {
		cfg.logger = log.NewNopLogger()
	}

	s := &Suite{
		backend:       cfg.backend,
		logger:        cfg.logger,
		nodeID:        mock.ResolveNodeID(cfg.nodeID),
		state:         newDegradeState(cfg.logger),
		dilithiumKeys: mock.NewRegistry(),
		sphincsKeys:   mock.NewRegistry(),
	}

	if cfg.mockOnly {
		s.state.MarkUnavailable(fmt.Errorf("%w: mock-only mode requested", ErrBackendUnavailable))
		return s, nil
	}
	if s.backend == nil {
		s.backend = DefaultBackend()
	}

	names, err := s.backend.Mechanisms()
	if err != nil {
		s.state.MarkUnavailable(fmt.Errorf("%w: probing %s: %v", ErrBackendUnavailable, s.backend.Name(), err))
		return s, nil
	}
	if len(names) == 0 {
		s.state.MarkUnavailable(fmt.Errorf("%w: %s reports no mechanisms", ErrBackendUnavailable, s.backend.Name()))
		return s, nil
	}

	s.mechanisms = append([]string(nil), names...)
	sort.Strings(s.mechanisms)
	s.logger.Debug("probed signature backend", "backend", s.backend.Name(), "mechanisms", len(s.mechanisms))
	return s, nil
}

// newAlgorithm resolves the backend mechanism for (family, level) and
// assembles the two-step dispatcher around it. A failed resolution
// degrades the Suite; construction still succeeds and the instance runs
// on the mock engine.
func (s *Suite) newAlgorithm(family mechanism.Family, level int, displayName, description string, eng *mock.Engine) *algorithm {
	mech := ""
	if s.state.Available() {
		name, ok := mechanism.Resolve(family, level, s.mechanisms)
		if ok {
			mech = name
			s.logger.Debug("resolved mechanism", "family", family, "level", level, "mechanism", mech)
		} else {
			s.state.MarkUnavailable(fmt.Errorf("%w: no %s variant enabled for level %d", ErrNoMechanism, family, level))
		}
	}

	return &algorithm{
		family:      family,
		level:       level,
		displayName: displayName,
		description: description,
		mech:        mech,
		backend:     s.backend,
		state:       s.state,
		mock:        eng,
		logger:      s.logger,
	}
}

// Available reports whether the Suite still uses the native backend.
// Once false it never becomes true again.
func (s *Suite) Available() bool {
	return s.state.Available()
}

// DegradeReason returns the first error that moved the Suite to mock
// mode, or nil while the backend is available.
func (s *Suite) DegradeReason() error {
	return s.state.Cause()
}

// Mechanisms returns the sorted mechanism names the backend probe
// enumerated. It is empty when the Suite was constructed degraded.
func (s *Suite) Mechanisms() []string {
	return append([]string(nil), s.mechanisms...)
}

// NodeID returns the node identity mock keypairs are derived from.
func (s *Suite) NodeID() string {
	return s.nodeID
}

// BackendName returns the name of the configured backend, or "" in
// mock-only mode.
func (s *Suite) BackendName() string {
	if s.backend == nil {
		return ""
	}
	return s.backend.Name()
}
