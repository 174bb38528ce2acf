package chipmunk

// scaleHOTSPrivateKey multiplies every secret polynomial by rho in the NTT
// domain, producing the key a signer actually signs with once its
// randomizer has been derived (§4.8, §4.9). The result is an independent
// key: it does not alias sk's backing arrays, so wiping it does not wipe sk.
func scaleHOTSPrivateKey(sk *HOTSPrivateKey, rho PolyTime) *HOTSPrivateKey {
	rhoNTT := rho.NTT()
	out := &HOTSPrivateKey{
		s0: make([]PolyTime, gammaHots),
		s1: make([]PolyTime, gammaHots),
	}
	for i := range out.s0 {
		out.s0[i] = rhoNTT.Mul(sk.s0[i].NTT()).InvNTT()
		out.s1[i] = rhoNTT.Mul(sk.s1[i].NTT()).InvNTT()
	}
	return out
}

// scaleHOTSPublicKey multiplies both of pk's published polynomials by rho
// (§4.9), matching the corresponding private-key scaling homomorphically:
// the public key of a scaled secret is the scaled public key.
func scaleHOTSPublicKey(pk *HOTSPublicKey, rho PolyTime) *HOTSPublicKey {
	rhoNTT := rho.NTT()
	return &HOTSPublicKey{
		pk: rhoNTT.Mul(pk.pk.NTT()).InvNTT(),
		w:  rhoNTT.Mul(pk.w.NTT()).InvNTT(),
	}
}

// AggregateHOTSSignatures sums a set of individual (already randomizer-
// scaled) signatures coefficient-wise, producing the multi-signature's
// combined (w, z) (§4.9). The sum verifies only if every input signature
// used the same challenge h. HOTSSign derives h from (msg, w) of each
// signature, so signatures made independently by HOTSSign under different
// keys carry different challenges even over the same msg.
func AggregateHOTSSignatures(sigs []*HOTSSignature) (*HOTSSignature, error) {
	if len(sigs) == 0 {
		return nil, errorf(InvalidArgument, "AggregateHOTSSignatures: no signatures")
	}
	w := newPolyTime(hotsRing)
	z := make([]PolyTime, gammaHots)
	for i := range z {
		z[i] = newPolyTime(hotsRing)
	}
	for _, sig := range sigs {
		w = w.Add(sig.w)
		for i := range z {
			z[i] = z[i].Add(sig.z[i])
		}
	}
	return &HOTSSignature{w: w, z: z}, nil
}

// AggregateHOTSPublicKeys sums a set of already randomizer-scaled public
// keys, producing the multi-signature's combined verification key (§4.9).
func AggregateHOTSPublicKeys(pks []*HOTSPublicKey) (*HOTSPublicKey, error) {
	if len(pks) == 0 {
		return nil, errorf(InvalidArgument, "AggregateHOTSPublicKeys: no public keys")
	}
	accPK := newPolyNTT(hotsRing)
	accW := newPolyNTT(hotsRing)
	for _, pk := range pks {
		accPK = accPK.Add(pk.pk.NTT())
		accW = accW.Add(pk.w.NTT())
	}
	return &HOTSPublicKey{pk: accPK.InvNTT(), w: accW.InvNTT()}, nil
}
