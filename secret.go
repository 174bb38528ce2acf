package chipmunk

// secret wraps a byte slice holding key material. Callers obtain one via
// newSecret, must arrange for Wipe to run on every exit path (defer it
// immediately after construction), and must never let the underlying slice
// escape the key/signing routine that owns it. This is the scoped,
// guaranteed-wipe replacement for the reference implementation's manual
// stack-buffer zeroing (design note D-1).
type secret struct {
	b []byte
}

func newSecret(n int) *secret {
	return &secret{b: make([]byte, n)}
}

func newSecretFrom(b []byte) *secret {
	s := newSecret(len(b))
	copy(s.b, b)
	return s
}

// Wipe overwrites the secret's backing array with zeros. Safe to call more
// than once and on a nil *secret.
func (s *secret) Wipe() {
	if s == nil {
		return
	}
	for i := range s.b {
		s.b[i] = 0
	}
}

// Bytes returns the live backing slice. The caller must not retain it past
// the lifetime of the owning secret.
func (s *secret) Bytes() []byte { return s.b }
