package chipmunk

// hvcMatrixLeft and hvcMatrixRight are the two fixed public NTT-domain
// polynomials behind the HVC two-to-one compression function (§4.7). This
// resolves open question O-4: the reference implementation's compression
// step was found to silently add a placeholder value instead of applying
// the left/right linear maps, which breaks binding. Here the compression is
// an explicit linear map over the HOTS ring, ML*left + MR*right, with ML and
// MR sampled once from domain-separated constant seeds so every tree built
// by every caller uses the identical public parameters. The inputs are
// multiplied as they are; they are not first decomposed into small-norm
// pieces.
var (
	hvcMatrixLeft  = mustExpandHVCMatrix(domainHVCMatrixLeft)
	hvcMatrixRight = mustExpandHVCMatrix(domainHVCMatrixRight)
)

func mustExpandHVCMatrix(domain string) PolyNTT {
	p, err := polyUniformFromXOF(hotsRing, domain, qHots, []byte("chipmunk-hvc-matrix"), []byte{0})
	if err != nil {
		panic(err)
	}
	return p.NTT()
}

// hvcCompress is the HVC tree's two-to-one node function (§4.7): both
// children live in the HOTS ring (a leaf is a HOTS public key, an internal
// node is the output of a previous compression), so the whole tree is built
// from one consistent ring throughout.
func hvcCompress(left, right PolyTime) PolyTime {
	l := hvcMatrixLeft.Mul(left.NTT())
	r := hvcMatrixRight.Mul(right.NTT())
	return l.Add(r).InvNTT()
}

// hvcPadLeaf is the fixed padding leaf used when a leaf set's size is not a
// power of two (§4.7).
var hvcPadLeaf = newPolyTime(hotsRing)
