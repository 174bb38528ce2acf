package chipmunk

import "crypto/rand"

// PublicKey is a single signer's verification key (§4.5): the matrix seed
// rho together with t, the public commitment A*s1+s2 (not rounded).
type PublicKey struct {
	rho []byte
	t   VecTime
}

// PrivateKey is a single signer's signing key (§4.5). The seed is held in a
// secret; Wipe zeroes it together with s1 and s2. rho, t, tr and
// pk are public and kept in the clear alongside it for convenience. tr binds
// the key to a fixed 32-byte commitment to its own public key (§3's Data
// Model, §6's byte layout), computed once at generation time rather than
// re-derived on every sign.
type PrivateKey struct {
	rho  []byte
	t    VecTime
	s1   VecTime
	s2   VecTime
	seed *secret // K, the seed Sign expands into each masking vector y
	tr   [48]byte
	pk   *PublicKey
}

// Wipe zeroes the private key's secret material. Safe to call more than
// once.
func (sk *PrivateKey) Wipe() {
	if sk == nil {
		return
	}
	sk.seed.Wipe()
	for _, p := range sk.s1 {
		for i := range p.co {
			p.co[i] = 0
		}
	}
	for _, p := range sk.s2 {
		for i := range p.co {
			p.co[i] = 0
		}
	}
}

// Signature is a single-signer signature (§4.5): the sparse challenge c, the
// bounded response z, and the hint vector that lets Verify recover w1
// without transmitting w in full.
type Signature struct {
	c    PolyTime
	z    VecTime
	hint [][]bool
}

const decomposeAlpha = 2 * gamma2

// GenerateKeyPair produces a fresh single-signer key pair (§4.5's KeyGen).
func GenerateKeyPair() (*PublicKey, *PrivateKey, error) {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return nil, nil, wrapErrorf(RngFailure, err, "reading key generation seed")
	}

	expanded := make([]byte, 32+64+32)
	if err := xofSqueeze(expanded, domainSigCommitment+"/keygen", seed); err != nil {
		return nil, nil, err
	}
	rho := expanded[:32]
	rhoPrime := expanded[32:96]
	kSeed := expanded[96:128]

	a, err := expandMatrix(rho)
	if err != nil {
		return nil, nil, err
	}

	s1 := make(VecTime, lDim)
	for i := range s1 {
		p, err := polyUniformFromXOF(sigRing, domainSigCommitment+"/s1", 2*etaSig+1, rhoPrime, []byte{byte(i)})
		if err != nil {
			return nil, nil, err
		}
		s1[i] = p.ShiftDown(etaSig)
	}
	s2 := make(VecTime, kDim)
	for i := range s2 {
		p, err := polyUniformFromXOF(sigRing, domainSigCommitment+"/s2", 2*etaSig+1, rhoPrime, []byte{byte(lDim + i)})
		if err != nil {
			return nil, nil, err
		}
		s2[i] = p.ShiftDown(etaSig)
	}

	t := a.MulVec(s1.NTT()).InvNTT().Add(s2)

	pk := &PublicKey{rho: append([]byte(nil), rho...), t: t}
	var tr [48]byte
	trHash := sum256(domainPrivateKeyHash, pk.Bytes())
	copy(tr[:32], trHash[:])
	sk := &PrivateKey{
		rho:  append([]byte(nil), rho...),
		t:    t,
		s1:   s1,
		s2:   s2,
		seed: newSecretFrom(kSeed),
		tr:   tr,
		pk:   pk,
	}
	fp := sum256("chipmunk/log-fingerprint", pk.Bytes())
	log.Logf("chipmunk: generated key pair, public key fingerprint %x", fp[:8])
	return pk, sk, nil
}

// Sign produces a Signature over msg under sk (§4.5). It internally retries
// with a fresh masking vector y whenever the response z or the low bits of
// w - c*s2 would leak information about s1/s2, exactly as the
// rejection-sampling loop in the reference algorithm does.
func Sign(sk *PrivateKey, msg []byte) (*Signature, error) {
	a, err := expandMatrix(sk.rho)
	if err != nil {
		return nil, err
	}
	s1NTT := sk.s1.NTT()
	s2 := sk.s2

	for attempt := 0; attempt < 1000; attempt++ {
		y := make(VecTime, lDim)
		for i := range y {
			nonce := []byte{byte(attempt), byte(attempt >> 8), byte(i)}
			p, err := polyUniformFromXOF(sigRing, domainSigCommitment+"/y", 2*gamma1+1, sk.seed.Bytes(), nonce)
			if err != nil {
				return nil, err
			}
			y[i] = p.ShiftDown(gamma1)
		}

		w := a.MulVec(y.NTT()).InvNTT()
		w1 := highBits(w)

		c, err := deriveChallenge(nil, msg, w1)
		if err != nil {
			return nil, err
		}
		cNTT := c.NTT()

		z := make(VecTime, lDim)
		for i := range z {
			cs1 := cNTT.Mul(s1NTT[i]).InvNTT()
			z[i] = y[i].Add(cs1)
		}
		if z.InfinityNorm() >= gamma1-betaSig {
			log.Logf("chipmunk: sign attempt %d rejected, response z out of bounds", attempt)
			continue // rejection sampling: response leaks bound information
		}

		cs2 := make(VecTime, kDim)
		for i := range cs2 {
			cs2[i] = cNTT.Mul(s2[i].NTT()).InvNTT()
		}
		r0 := w.Sub(cs2)
		var r0Low int32
		for _, p := range r0 {
			for _, c := range p.co {
				_, lo := decompose(c)
				if lo < 0 {
					lo = -lo
				}
				if lo > r0Low {
					r0Low = lo
				}
			}
		}
		if r0Low >= gamma2-betaSig {
			log.Logf("chipmunk: sign attempt %d rejected, low bits r0 out of bounds", attempt)
			continue
		}

		hint := makeHintVec(cs2, r0)
		return &Signature{c: c, z: z, hint: hint}, nil
	}
	return nil, errorf(InternalInvariantViolation, "Sign: rejection sampling did not converge")
}

// Verify checks sig against msg under pk (§4.5). It reports VerificationFailed
// rather than a bare bool so callers can distinguish "signature rejected"
// from "malformed input" without parsing an error string.
func Verify(pk *PublicKey, msg []byte, sig *Signature) error {
	if sig.z.InfinityNorm() >= gamma1-betaSig {
		return errorf(VerificationFailed, "response z out of bounds")
	}
	a, err := expandMatrix(pk.rho)
	if err != nil {
		return err
	}
	cNTT := sig.c.NTT()
	az := a.MulVec(sig.z.NTT()).InvNTT()
	ct := make(VecTime, kDim)
	for i := range ct {
		ct[i] = cNTT.Mul(pk.t[i].NTT()).InvNTT()
	}
	wPrime := az.Sub(ct)
	w1 := useHintVec(sig.hint, wPrime)

	c2, err := deriveChallenge(nil, msg, w1)
	if err != nil {
		return err
	}
	if !polyEqual(sig.c, c2) {
		return errorf(VerificationFailed, "challenge mismatch")
	}
	return nil
}

func polyEqual(a, b PolyTime) bool {
	for i := range a.co {
		if a.co[i] != b.co[i] {
			return false
		}
	}
	return true
}

// deriveChallenge resolves open question O-2: the challenge is hashed from
// the actual commitment w1, never a placeholder constant.
func deriveChallenge(signerSeed []byte, msg []byte, w1 VecTime) (PolyTime, error) {
	buf := make([]byte, 0, len(msg)+kDim*nSig*4)
	for _, p := range w1 {
		for _, c := range p.Coeffs() {
			buf = append(buf, byte(c), byte(c>>8), byte(c>>16), byte(c>>24))
		}
	}
	parts := [][]byte{msg, buf}
	if signerSeed != nil {
		parts = append(parts, signerSeed)
	}
	return polySparseTernaryFromXOF(sigRing, domainSigChallenge, tauSig, []byte{}, parts...)
}

func decompose(a int32) (int32, int32) {
	a = sigRing.canonical(a)
	a0 := a % decomposeAlpha
	if a0 > decomposeAlpha/2 {
		a0 -= decomposeAlpha
	}
	if a-a0 == qSig-1 {
		return 0, a0 - 1
	}
	return (a - a0) / decomposeAlpha, a0
}

func highBits(v VecTime) VecTime {
	out := newVecTime(len(v))
	for i, p := range v {
		for j, c := range p.co {
			hi, _ := decompose(c)
			out[i].co[j] = hi
		}
	}
	return out
}

func makeHintVec(z, r VecTime) [][]bool {
	hint := make([][]bool, len(z))
	for i := range z {
		hint[i] = make([]bool, nSig)
		for j := range z[i].co {
			r1, _ := decompose(r[i].co[j])
			sum, _ := decompose(sigRing.barrett(int64(r[i].co[j]) + int64(z[i].co[j])))
			hint[i][j] = r1 != sum
		}
	}
	return hint
}

func useHintVec(hint [][]bool, r VecTime) VecTime {
	m := (qSig - 1) / decomposeAlpha
	out := newVecTime(len(r))
	for i := range r {
		for j, c := range r[i].co {
			r1, r0 := decompose(c)
			if !hint[i][j] {
				out[i].co[j] = r1
				continue
			}
			if r0 > 0 {
				out[i].co[j] = (r1 + 1) % m
			} else {
				out[i].co[j] = (r1 - 1 + m) % m
			}
		}
	}
	return out
}
