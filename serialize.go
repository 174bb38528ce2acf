package chipmunk

import "encoding/binary"

// Byte layouts (§6). Every polynomial is encoded coefficient-by-coefficient
// as a little-endian int32, in centered representation; every vector is the
// concatenation of its polynomials in index order. None of these layouts is
// self-describing (no embedded ring tag or length prefix) — callers must
// already know which ring and which structure they are decoding, exactly as
// the reference implementation's flat C structs do.

// polyToBytes appends p's encoding to dst and returns the result.
func polyToBytes(dst []byte, p PolyTime) []byte {
	for _, c := range p.co {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(c))
		dst = append(dst, buf[:]...)
	}
	return dst
}

// polyFromBytes decodes len(r.n) coefficients from the front of src,
// returning the polynomial and the unconsumed remainder.
func polyFromBytes(r *ring, src []byte) (PolyTime, []byte, error) {
	if len(src) < r.n*4 {
		return PolyTime{}, nil, errorf(BufferTooSmall, "polyFromBytes: need %d bytes, have %d", r.n*4, len(src))
	}
	p := newPolyTime(r)
	for i := range p.co {
		v := binary.LittleEndian.Uint32(src[i*4 : i*4+4])
		p.co[i] = r.center(r.canonical(int32(v)))
	}
	return p, src[r.n*4:], nil
}

// Bytes encodes pk as rho (32 bytes) followed by t's kDim
// polynomials (§6).
func (pk *PublicKey) Bytes() []byte {
	out := make([]byte, 0, 32+kDim*nSig*4)
	out = append(out, pk.rho...)
	for _, p := range pk.t {
		out = polyToBytes(out, p)
	}
	return out
}

// PublicKeyFromBytes decodes a PublicKey previously produced by Bytes.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) < 32 {
		return nil, errorf(BufferTooSmall, "PublicKeyFromBytes: need at least 32 bytes, have %d", len(b))
	}
	rho := append([]byte(nil), b[:32]...)
	rest := b[32:]
	t := make(VecTime, kDim)
	var err error
	for i := range t {
		t[i], rest, err = polyFromBytes(sigRing, rest)
		if err != nil {
			return nil, err
		}
	}
	return &PublicKey{rho: rho, t: t}, nil
}

// Bytes encodes sig as c (nSig*4 bytes), z (lDim*nSig*4 bytes), and the hint
// bitmap (kDim*nSig bytes, one byte per bit for simplicity) (§6).
func (sig *Signature) Bytes() []byte {
	out := make([]byte, 0, nSig*4+lDim*nSig*4+kDim*nSig)
	out = polyToBytes(out, sig.c)
	for _, p := range sig.z {
		out = polyToBytes(out, p)
	}
	for _, row := range sig.hint {
		for _, b := range row {
			if b {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}
	return out
}

// SignatureFromBytes decodes a Signature previously produced by Bytes.
func SignatureFromBytes(b []byte) (*Signature, error) {
	c, rest, err := polyFromBytes(sigRing, b)
	if err != nil {
		return nil, err
	}
	z := make(VecTime, lDim)
	for i := range z {
		z[i], rest, err = polyFromBytes(sigRing, rest)
		if err != nil {
			return nil, err
		}
	}
	if len(rest) < kDim*nSig {
		return nil, errorf(BufferTooSmall, "SignatureFromBytes: hint truncated")
	}
	hint := make([][]bool, kDim)
	for i := range hint {
		hint[i] = make([]bool, nSig)
		for j := range hint[i] {
			hint[i][j] = rest[0] != 0
			rest = rest[1:]
		}
	}
	return &Signature{c: c, z: z, hint: hint}, nil
}

// Bytes encodes sk as s1, s2, the 32-byte key seed, the 48-byte public-key
// commitment tr, and finally the embedded public key, in that order (§6).
func (sk *PrivateKey) Bytes() []byte {
	out := make([]byte, 0, lDim*nSig*4+kDim*nSig*4+32+48+32+kDim*nSig*4)
	for _, p := range sk.s1 {
		out = polyToBytes(out, p)
	}
	for _, p := range sk.s2 {
		out = polyToBytes(out, p)
	}
	out = append(out, sk.seed.Bytes()...)
	out = append(out, sk.tr[:]...)
	out = append(out, sk.pk.Bytes()...)
	return out
}

// PrivateKeyFromBytes decodes a PrivateKey previously produced by Bytes.
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	s1 := make(VecTime, lDim)
	rest := b
	var err error
	for i := range s1 {
		s1[i], rest, err = polyFromBytes(sigRing, rest)
		if err != nil {
			return nil, err
		}
	}
	s2 := make(VecTime, kDim)
	for i := range s2 {
		s2[i], rest, err = polyFromBytes(sigRing, rest)
		if err != nil {
			return nil, err
		}
	}
	if len(rest) < 32+48 {
		return nil, errorf(BufferTooSmall, "PrivateKeyFromBytes: seed/tr truncated")
	}
	seed := append([]byte(nil), rest[:32]...)
	rest = rest[32:]
	var tr [48]byte
	copy(tr[:], rest[:48])
	rest = rest[48:]

	pk, err := PublicKeyFromBytes(rest)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		rho:  pk.rho,
		t:    pk.t,
		s1:   s1,
		s2:   s2,
		seed: newSecretFrom(seed),
		tr:   tr,
		pk:   pk,
	}, nil
}

// Bytes encodes a HOTS public key as pk followed by w (§6).
func (pk *HOTSPublicKey) Bytes() []byte {
	out := polyToBytes(nil, pk.pk)
	return polyToBytes(out, pk.w)
}

// HOTSPublicKeyFromBytes decodes a HOTSPublicKey previously produced by
// Bytes.
func HOTSPublicKeyFromBytes(b []byte) (*HOTSPublicKey, error) {
	p, rest, err := polyFromBytes(hotsRing, b)
	if err != nil {
		return nil, err
	}
	w, _, err := polyFromBytes(hotsRing, rest)
	if err != nil {
		return nil, err
	}
	return &HOTSPublicKey{pk: p, w: w}, nil
}

// Bytes encodes a HOTS signature as w followed by the gammaHots polynomials
// of z (§6).
func (sig *HOTSSignature) Bytes() []byte {
	out := polyToBytes(nil, sig.w)
	for _, p := range sig.z {
		out = polyToBytes(out, p)
	}
	return out
}

// HOTSSignatureFromBytes decodes a HOTSSignature previously produced by
// Bytes.
func HOTSSignatureFromBytes(b []byte) (*HOTSSignature, error) {
	w, rest, err := polyFromBytes(hotsRing, b)
	if err != nil {
		return nil, err
	}
	z := make([]PolyTime, gammaHots)
	for i := range z {
		z[i], rest, err = polyFromBytes(hotsRing, rest)
		if err != nil {
			return nil, err
		}
	}
	return &HOTSSignature{w: w, z: z}, nil
}
