//go:build !liboqs

package backend

// DefaultBackend returns the backend compiled into this build. Without
// the liboqs build tag that is the pure-Go circl backend.
func DefaultBackend() *Circl {
	return NewCircl()
}
