package chipmunk

// VecTime is a fixed-length vector of time-domain polynomials over the
// single-signer ring (§4.5). VecNTT is its NTT-domain counterpart.
type VecTime []PolyTime
type VecNTT []PolyNTT

func newVecTime(n int) VecTime {
	v := make(VecTime, n)
	for i := range v {
		v[i] = newPolyTime(sigRing)
	}
	return v
}

func newVecNTT(n int) VecNTT {
	v := make(VecNTT, n)
	for i := range v {
		v[i] = newPolyNTT(sigRing)
	}
	return v
}

func (v VecTime) NTT() VecNTT {
	out := make(VecNTT, len(v))
	for i, p := range v {
		out[i] = p.NTT()
	}
	return out
}

func (v VecNTT) InvNTT() VecTime {
	out := make(VecTime, len(v))
	for i, p := range v {
		out[i] = p.InvNTT()
	}
	return out
}

func (v VecTime) Add(w VecTime) VecTime {
	if len(v) != len(w) {
		panic("chipmunk: vector length mismatch")
	}
	out := make(VecTime, len(v))
	for i := range v {
		out[i] = v[i].Add(w[i])
	}
	return out
}

func (v VecTime) Sub(w VecTime) VecTime {
	if len(v) != len(w) {
		panic("chipmunk: vector length mismatch")
	}
	out := make(VecTime, len(v))
	for i := range v {
		out[i] = v[i].Sub(w[i])
	}
	return out
}

func (v VecNTT) Add(w VecNTT) VecNTT {
	if len(v) != len(w) {
		panic("chipmunk: vector length mismatch")
	}
	out := make(VecNTT, len(v))
	for i := range v {
		out[i] = v[i].Add(w[i])
	}
	return out
}

// InfinityNorm returns the largest per-coefficient absolute value across the
// whole vector.
func (v VecTime) InfinityNorm() int32 {
	var max int32
	for _, p := range v {
		if n := p.InfinityNorm(); n > max {
			max = n
		}
	}
	return max
}

// matrix is a kDim x lDim matrix of NTT-domain polynomials, expanded
// deterministically from a public seed (§4.5's "A = Expand(rho)").
type matrix [][]PolyNTT

// expandMatrix deterministically derives A from a public seed rho, one
// polynomial at a time via rejection sampling over the full modulus range
// (§4.4, §4.5).
func expandMatrix(rho []byte) (matrix, error) {
	a := make(matrix, kDim)
	for i := 0; i < kDim; i++ {
		a[i] = make([]PolyNTT, lDim)
		for j := 0; j < lDim; j++ {
			p, err := polyUniformFromXOF(sigRing, domainSigCommitment+"/matrix", qSig, rho, []byte{byte(i), byte(j)})
			if err != nil {
				return nil, err
			}
			a[i][j] = p.NTT()
		}
	}
	return a, nil
}

// MulVec computes A*s for a kDim x lDim matrix A and a length-lDim NTT
// vector s, returning a length-kDim NTT vector.
func (a matrix) MulVec(s VecNTT) VecNTT {
	if len(s) != lDim {
		panic("chipmunk: matrix-vector dimension mismatch")
	}
	out := make(VecNTT, kDim)
	for i := 0; i < kDim; i++ {
		acc := newPolyNTT(sigRing)
		for j := 0; j < lDim; j++ {
			acc = acc.Add(a[i][j].Mul(s[j]))
		}
		out[i] = acc
	}
	return out
}
