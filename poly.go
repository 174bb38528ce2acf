package chipmunk

// PolyTime is a ring element in coefficient ("time domain") representation.
type PolyTime struct {
	r  *ring
	co []int32
}

// PolyNTT is a ring element in NTT ("frequency domain") representation.
// PolyTime and PolyNTT are deliberately distinct types with no implicit
// conversion between them (design note D-3): the only way to get from one to
// the other is through NTT/InvNTT, so a coefficient array can never be fed
// into a pointwise multiply, nor an NTT-domain array into a norm check, by
// accident.
type PolyNTT struct {
	r  *ring
	co []int32
}

func newPolyTime(r *ring) PolyTime { return PolyTime{r: r, co: make([]int32, r.n)} }
func newPolyNTT(r *ring) PolyNTT   { return PolyNTT{r: r, co: make([]int32, r.n)} }

func (p PolyTime) Ring() *ring     { return p.r }
func (p PolyNTT) Ring() *ring      { return p.r }
func (p PolyTime) Coeffs() []int32 { return p.co }
func (p PolyNTT) Coeffs() []int32  { return p.co }

func sameRing(a, b *ring) {
	if a != b {
		panic("chipmunk: polynomial operation across mismatched rings")
	}
}

// NTT transforms p into the NTT domain. p is left unmodified.
func (p PolyTime) NTT() PolyNTT {
	out := newPolyNTT(p.r)
	copy(out.co, p.co)
	p.r.forwardNTT(out.co)
	return out
}

// InvNTT transforms p back into the time domain. p is left unmodified.
func (p PolyNTT) InvNTT() PolyTime {
	out := newPolyTime(p.r)
	copy(out.co, p.co)
	p.r.inverseNTT(out.co)
	return out
}

// Add returns p+q, coefficient-wise, centered mod q.
func (p PolyTime) Add(q PolyTime) PolyTime {
	sameRing(p.r, q.r)
	out := newPolyTime(p.r)
	for i := range out.co {
		out.co[i] = p.r.center(p.r.barrett(int64(p.co[i]) + int64(q.co[i])))
	}
	return out
}

// Sub returns p-q, coefficient-wise, centered mod q.
func (p PolyTime) Sub(q PolyTime) PolyTime {
	sameRing(p.r, q.r)
	out := newPolyTime(p.r)
	for i := range out.co {
		out.co[i] = p.r.center(p.r.barrett(int64(p.co[i]) - int64(q.co[i]) + int64(p.r.q)))
	}
	return out
}

// Add returns p+q, coefficient-wise, in NTT domain.
func (p PolyNTT) Add(q PolyNTT) PolyNTT {
	sameRing(p.r, q.r)
	out := newPolyNTT(p.r)
	for i := range out.co {
		out.co[i] = p.r.barrett(int64(p.co[i]) + int64(q.co[i]))
	}
	return out
}

// Sub returns p-q, coefficient-wise, in NTT domain.
func (p PolyNTT) Sub(q PolyNTT) PolyNTT {
	sameRing(p.r, q.r)
	out := newPolyNTT(p.r)
	for i := range out.co {
		out.co[i] = p.r.barrett(int64(p.co[i]) - int64(q.co[i]) + int64(p.r.q))
	}
	return out
}

// Mul multiplies p and q pointwise in the NTT domain (§4.3), which is
// equivalent to a negacyclic convolution of the underlying time-domain
// polynomials.
func (p PolyNTT) Mul(q PolyNTT) PolyNTT {
	sameRing(p.r, q.r)
	out := newPolyNTT(p.r)
	p.r.pointwiseMul(out.co, p.co, q.co)
	return out
}

// InfinityNorm returns the maximum absolute value among p's centered
// coefficients, used by every bound check in §4.5/§4.6 (gamma1, gamma2,
// phiHots, etc).
func (p PolyTime) InfinityNorm() int32 {
	var max int32
	for _, c := range p.co {
		v := c
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return max
}

// Clone returns an independent copy of p.
func (p PolyTime) Clone() PolyTime {
	out := newPolyTime(p.r)
	copy(out.co, p.co)
	return out
}

func (p PolyNTT) Clone() PolyNTT {
	out := newPolyNTT(p.r)
	copy(out.co, p.co)
	return out
}

// ShiftDown subtracts shift from every coefficient, centered mod q. Used to
// turn a [0, 2*bound] uniform sample into a [-bound, bound] one.
func (p PolyTime) ShiftDown(shift int32) PolyTime {
	out := newPolyTime(p.r)
	for i, c := range p.co {
		out.co[i] = p.r.center(p.r.barrett(int64(c) - int64(shift) + int64(p.r.q)))
	}
	return out
}

// polyUniformFromXOF samples a time-domain polynomial with coefficients
// uniform in [0, bound) (then centered), using rejection sampling over
// little-endian byte groups drawn from an XOF seeded by domain, seed, and
// nonce (§4.4). nonce distinguishes this call from every other polynomial
// sampled from the same seed (a coordinate index, a retry counter, or both
// packed into a few bytes) — the caller owns picking one that never repeats
// for a given seed. The byte-group width is derived from bound itself (the
// smallest number of bytes that can hold a mask covering it), so callers are
// never constrained to a fixed bound ceiling the way a hardcoded 3-byte group
// would impose.
func polyUniformFromXOF(r *ring, domain string, bound int32, seed []byte, nonce []byte) (PolyTime, error) {
	out := newPolyTime(r)
	mask := uint32(1)
	for mask < uint32(bound) {
		mask = mask<<1 | 1
	}
	nbytes := 1
	for (uint32(1)<<(uint(nbytes)*8))-1 < mask {
		nbytes++
	}
	buf := make([]byte, nbytes)
	ctr := 0
	for i := 0; i < r.n; {
		if err := xofSqueeze(buf, domain, seed, nonce, []byte{byte(ctr), byte(ctr >> 8)}); err != nil {
			return PolyTime{}, err
		}
		ctr++
		var v uint32
		for j := 0; j < nbytes; j++ {
			v |= uint32(buf[j]) << uint(8*j)
		}
		v &= mask
		if v < uint32(bound) {
			out.co[i] = r.center(int32(v))
			i++
		}
	}
	return out, nil
}

// polyDenseTernaryFromXOF samples a time-domain polynomial by consuming the
// XOF output stream two bits per coefficient (§4.8): 00 and 11 both rebalance
// to zero, 01 maps to +1, 10 maps to -1. Unlike polySparseTernaryFromXOF this
// has no fixed Hamming weight — each coefficient is independently nonzero
// with probability one half, and the caller recovers the realized weight
// from the result itself (via polyWeight) rather than assuming one.
func polyDenseTernaryFromXOF(r *ring, domain string, seed []byte, parts ...[]byte) (PolyTime, error) {
	out := newPolyTime(r)
	buf := make([]byte, (r.n+3)/4)
	args := append(append([][]byte{}, parts...), seed)
	if err := xofSqueeze(buf, domain, args...); err != nil {
		return PolyTime{}, err
	}
	for i := 0; i < r.n; i++ {
		bits := (buf[i/4] >> uint((i%4)*2)) & 0x3
		switch bits {
		case 0b01:
			out.co[i] = 1
		case 0b10:
			out.co[i] = r.center(r.q - 1)
		default:
			out.co[i] = 0
		}
	}
	return out, nil
}

// polyWeight returns the number of nonzero coefficients in p.
func polyWeight(p PolyTime) int {
	w := 0
	for _, c := range p.co {
		if c != 0 {
			w++
		}
	}
	return w
}

// polySparseTernaryFromXOF samples a time-domain polynomial with exactly
// weight coefficients set to +-1 and the rest zero, via Fisher-Yates driven
// by an XOF byte stream (§4.4, the H(m) challenge construction).
func polySparseTernaryFromXOF(r *ring, domain string, weight int, seed []byte, parts ...[]byte) (PolyTime, error) {
	out := newPolyTime(r)
	indices := make([]byte, weight)
	signs := make([]byte, weight)
	args := append(append([][]byte{}, parts...), seed)
	if err := xofSqueeze(indices, domain+"/idx", args...); err != nil {
		return PolyTime{}, err
	}
	if err := xofSqueeze(signs, domain+"/sign", args...); err != nil {
		return PolyTime{}, err
	}
	for k, i := 0, r.n-weight; i < r.n; k, i = k+1, i+1 {
		j := int(indices[k]) % (i + 1)
		out.co[i] = out.co[j]
		if signs[k]&1 == 1 {
			out.co[j] = 1
		} else {
			out.co[j] = r.center(r.q - 1)
		}
	}
	return out, nil
}
