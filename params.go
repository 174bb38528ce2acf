package chipmunk

// Concrete parameter values for the two rings in play (§2, §4.1). The
// single-signer ring and the HOTS ring are never interchangeable: they
// differ in modulus, dimension, and even in which multiplication strategy
// their NTT uses (§4.3), which is why they are built from two independent
// *ring values rather than a single parameterized one.
const (
	// qSig is the single-signer ring's modulus. It coincides with the
	// modulus used by several NIST PQC lattice signature submissions that
	// share this ring dimension, which is also where omegaSig below comes
	// from: it is the standard primitive 512th root of unity for this
	// modulus, not a value invented for this package.
	qSig int32 = 8380417
	nSig int   = 256

	// omegaSig is a primitive 2*nSig-th root of unity mod qSig.
	omegaSig int32 = 1753

	tauSig = 39      // Hamming weight of the sparse challenge polynomial
	gamma1 = 1 << 17 // bound on the masking vector y
	gamma2 = (qSig - 1) / 88
	etaSig = 2 // bound on the secret key coefficients

	kDim = 4 // number of rows in the public matrix / length of s2
	lDim = 4 // number of columns in the public matrix / length of s1

	// betaSig bounds tau*etaSig, the maximum coefficient-wise contribution the
	// challenge polynomial can make to c*s1 or c*s2 (§4.5's rejection bound).
	betaSig = tauSig * etaSig

	qHots int32 = 3168257
	nHots int   = 512

	// omegaHots is a primitive 2*nHots-th root of unity mod qHots:
	// 202470^((qHots-1)/(2*nHots)) mod qHots, where 202470 (the constant
	// named in the reference header) generates the whole multiplicative
	// group mod qHots rather than being a 2*nHots-th root itself.
	omegaHots int32 = 1481323

	// gammaHots is the number of (s0, s1) polynomial pairs making up a HOTS
	// key (§4.6). The reference header defining this constant was not part
	// of the retrieval pack; the value is a documented decision, see
	// DESIGN.md.
	gammaHots = 8
	// phiHots bounds the uniform sampling of s0_i; s1_i is sampled within
	// +-phiHots*alphaHHots (§4.6). Both must stay small enough that
	// hotsZBound — the deterministic bound on a well-formed response,
	// amplified further by however many group members a multi-signature
	// aggregate sums over — never approaches qHots/2, or the response's
	// centered representation wraps and the bound check it exists to
	// enforce becomes meaningless. See DESIGN.md for the sizing rationale.
	phiHots = 1 << 3
	// alphaHHots is the Hamming weight of the sparse ternary HOTS challenge.
	alphaHHots = 8
)

var (
	sigRing  = newRing(qSig, nSig, omegaSig, true)
	hotsRing = newRing(qHots, nHots, omegaHots, false)
)
