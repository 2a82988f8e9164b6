package mock

import (
	"bytes"
	"fmt"
	"sync"
	"testing"
)

func TestRegistry_PutGet(t *testing.T) {
	r := NewRegistry()

	pub := []byte("public-key-bytes")
	priv := []byte("private-key-bytes")
	r.Put(pub, priv)

	got, ok := r.Get(pub)
	if !ok {
		t.Fatal("Get() miss for registered key")
	}
	if !bytes.Equal(got, priv) {
		t.Errorf("Get() = %q, want %q", got, priv)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistry_Miss(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Get([]byte("never registered")); ok {
		t.Error("Get() hit for unregistered key")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	r := NewRegistry()
	pub := []byte("pub")

	r.Put(pub, []byte("first"))
	r.Put(pub, []byte("second"))

	got, _ := r.Get(pub)
	if !bytes.Equal(got, []byte("second")) {
		t.Errorf("Get() after overwrite = %q, want %q", got, "second")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after overwrite", r.Len())
	}
}

func TestRegistry_CopiesKeyMaterial(t *testing.T) {
	r := NewRegistry()

	priv := []byte("sensitive")
	r.Put([]byte("pub"), priv)

	// Mutating the caller's slice must not reach the stored copy.
	priv[0] = 'X'
	got, _ := r.Get([]byte("pub"))
	if got[0] != 's' {
		t.Error("stored private key aliases the caller's slice")
	}

	// Mutating a returned slice must not poison later reads.
	got[0] = 'Y'
	again, _ := r.Get([]byte("pub"))
	if again[0] != 's' {
		t.Error("returned private key aliases the stored copy")
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				pub := fmt.Appendf(nil, "pub-%d-%d", g, i)
				priv := fmt.Appendf(nil, "priv-%d-%d", g, i)
				r.Put(pub, priv)
				got, ok := r.Get(pub)
				if !ok || !bytes.Equal(got, priv) {
					t.Errorf("goroutine %d: lost own write for %s", g, pub)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	if r.Len() != 800 {
		t.Errorf("Len() = %d, want 800", r.Len())
	}
}
