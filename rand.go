package chipmunk

import "crypto/rand"

// randomSeed32 draws 32 fresh bytes from the operating system's CSPRNG. It
// panics on failure: crypto/rand.Read only ever fails when the OS entropy
// source itself is broken, which every caller here would rather crash on
// than silently fall back from.
func randomSeed32() []byte {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(wrapErrorf(RngFailure, err, "reading random seed"))
	}
	return b
}
