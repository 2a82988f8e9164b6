package mock

import "sync"

// Registry maps mock public keys to the private keys that produced them,
// scoped to one scheme family. It is populated by keypair generation and
// read by verification; entries live for the lifetime of the registry.
type Registry struct {
	mu   sync.RWMutex
	keys map[string][]byte
}

// NewRegistry creates an empty key registry.
func NewRegistry() *Registry {
	return &Registry{keys: make(map[string][]byte)}
}

// Put records the private key for a public key, overwriting any previous
// entry for the same public key.
func (r *Registry) Put(publicKey, privateKey []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[string(publicKey)] = copyBytes(privateKey)
}

// Get returns a copy of the private key registered for a public key.
func (r *Registry) Get(publicKey []byte) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	priv, ok := r.keys[string(publicKey)]
	if !ok {
		return nil, false
	}
	return copyBytes(priv), true
}

// Len returns the number of registered keypairs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.keys)
}

func copyBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
