package chipmunk

// hotsA is the fixed public vector shared by every HOTS key pair (§4.6): a
// length-gammaHots vector of NTT-domain polynomials over the HOTS ring,
// derived once from a domain-separated constant seed so that it never needs
// to be transmitted or regenerated per key.
var hotsA = mustExpandHOTSPublic()

func mustExpandHOTSPublic() []PolyNTT {
	a := make([]PolyNTT, gammaHots)
	for i := range a {
		p, err := polyUniformFromXOF(hotsRing, domainHOTSPublicKey, qHots, []byte("chipmunk-hots-public-vector"), []byte{byte(i)})
		if err != nil {
			panic(err) // deterministic, seed-free expansion; cannot fail at runtime
		}
		a[i] = p.NTT()
	}
	return a
}

// HOTSPublicKey is a homomorphic one-time verification key (§4.6): the
// aggregated commitment pk = sum_i a[i]*s1_i, published alongside w = sum_i
// a[i]*s0_i. w is not secret — the one-time signature reveals it on first
// use regardless — and publishing it at key-generation time lets every
// participant in a multi-signature group derive the shared challenge
// without an interactive commit round (§4.8, §4.9).
type HOTSPublicKey struct {
	pk PolyTime
	w  PolyTime
}

// HOTSPrivateKey holds the gammaHots (s0, s1) polynomial pairs (§4.6). Every
// key pair is used to sign exactly once; HOTSSign does not attempt to
// detect reuse, the caller owns that invariant.
type HOTSPrivateKey struct {
	s0 []PolyTime
	s1 []PolyTime
}

// Wipe zeroes both secret polynomial sets.
func (sk *HOTSPrivateKey) Wipe() {
	if sk == nil {
		return
	}
	for _, p := range sk.s0 {
		for i := range p.co {
			p.co[i] = 0
		}
	}
	for _, p := range sk.s1 {
		for i := range p.co {
			p.co[i] = 0
		}
	}
}

// HOTSSignature is a homomorphic one-time signature (§4.6): the commitment w
// and the response vector z. h is never stored; both signer and verifier
// recompute it from (msg, w).
type HOTSSignature struct {
	w PolyTime
	z []PolyTime
}

// hotsZBound is the deterministic bound every well-formed response vector
// satisfies: s0_i is sampled within +-phiHots, s1_i within
// +-phiHots*alphaHHots, and h has exactly alphaHHots nonzero +-1
// coefficients, so |s0_i + h*s1_i| never exceeds
// phiHots + alphaHHots*phiHots*alphaHHots (§4.6's "Phi and Phi*alpha_H
// bounds").
const hotsZBound = phiHots + alphaHHots*phiHots*alphaHHots

// HOTSGenerateKeyPair samples a fresh one-time HOTS key pair (§4.6).
func HOTSGenerateKeyPair() (*HOTSPublicKey, *HOTSPrivateKey, error) {
	seed := make([]byte, 32)
	if err := xofSqueeze(seed, domainHOTSPublicKey+"/keygen-seed", randomSeed32()); err != nil {
		return nil, nil, err
	}

	s0 := make([]PolyTime, gammaHots)
	s1 := make([]PolyTime, gammaHots)
	for i := 0; i < gammaHots; i++ {
		p0, err := polyUniformFromXOF(hotsRing, domainHOTSUniform+"/s0", 2*phiHots+1, seed, []byte{byte(i)})
		if err != nil {
			return nil, nil, err
		}
		s0[i] = p0.ShiftDown(phiHots)

		p1, err := polyUniformFromXOF(hotsRing, domainHOTSUniform+"/s1", 2*phiHots*alphaHHots+1, seed, []byte{byte(gammaHots + i)})
		if err != nil {
			return nil, nil, err
		}
		s1[i] = p1.ShiftDown(phiHots * alphaHHots)
	}

	pk := aggregateHOTS(s1)
	w := aggregateHOTS(s0)
	return &HOTSPublicKey{pk: pk, w: w}, &HOTSPrivateKey{s0: s0, s1: s1}, nil
}

// aggregateHOTS computes sum_i a[i]*s_i for a length-gammaHots vector s.
func aggregateHOTS(s []PolyTime) PolyTime {
	acc := newPolyNTT(hotsRing)
	for i, p := range s {
		acc = acc.Add(hotsA[i].Mul(p.NTT()))
	}
	return acc.InvNTT()
}

// hotsChallenge derives h from the message and commitment (§4.6): a sparse
// ternary polynomial with exactly alphaHHots nonzero +-1 coefficients.
func hotsChallenge(msg []byte, w PolyTime) (PolyTime, error) {
	wBytes := make([]byte, 0, nHots*4)
	for _, c := range w.Coeffs() {
		wBytes = append(wBytes, byte(c), byte(c>>8), byte(c>>16), byte(c>>24))
	}
	return polySparseTernaryFromXOF(hotsRing, domainHOTSChallenge, alphaHHots, []byte{}, msg, wBytes)
}

// HOTSSign produces a one-time signature over msg under sk (§4.6). Unlike
// the single-signer scheme, this never rejects and retries: the Phi/alphaH
// bounds guarantee the response is always within range by construction.
func HOTSSign(sk *HOTSPrivateKey, msg []byte) (*HOTSSignature, error) {
	w := aggregateHOTS(sk.s0)
	h, err := hotsChallenge(msg, w)
	if err != nil {
		return nil, err
	}
	hNTT := h.NTT()

	z := make([]PolyTime, gammaHots)
	for i := range z {
		hs1 := hNTT.Mul(sk.s1[i].NTT()).InvNTT()
		z[i] = sk.s0[i].Add(hs1)
	}
	return &HOTSSignature{w: w, z: z}, nil
}

// HOTSVerify checks sig against msg under pk (§4.6), resolving open question
// O-3 by checking the full aggregated relation sum_i a[i]*z_i == w + h*pk
// rather than any shortcut heuristic.
func HOTSVerify(pk *HOTSPublicKey, msg []byte, sig *HOTSSignature) error {
	return hotsVerifyBounded(pk, msg, sig, hotsZBound)
}

// hotsVerifyBounded is HOTSVerify generalized over the response bound: a
// multi-signer aggregate's z is a sum of randomizer-scaled contributions, so
// its bound scales with the group size (§4.9, via VerifyMulti). bound is an
// int64 because that scaled figure can exceed int32's range for larger
// groups, even though any individual coefficient never does.
func hotsVerifyBounded(pk *HOTSPublicKey, msg []byte, sig *HOTSSignature, bound int64) error {
	for _, p := range sig.z {
		if int64(p.InfinityNorm()) > bound {
			return errorf(VerificationFailed, "HOTS response out of bounds")
		}
	}
	h, err := hotsChallenge(msg, sig.w)
	if err != nil {
		return err
	}
	hNTT := h.NTT()

	lhs := newPolyNTT(hotsRing)
	for i, p := range sig.z {
		lhs = lhs.Add(hotsA[i].Mul(p.NTT()))
	}
	rhs := hNTT.Mul(pk.pk.NTT()).Add(sig.w.NTT())

	if !polyEqualNTT(lhs, rhs) {
		return errorf(VerificationFailed, "HOTS aggregated verification equation failed")
	}
	return nil
}

func polyEqualNTT(a, b PolyNTT) bool {
	for i := range a.co {
		if a.co[i] != b.co[i] {
			return false
		}
	}
	return true
}
