//go:build liboqs

package backend

// DefaultBackend returns the backend compiled into this build. With the
// liboqs build tag that is the native liboqs backend.
func DefaultBackend() *LibOQS {
	return NewLibOQS()
}
