package chipmunk

// GroupRandomizerSeed concatenates every participating signer's leaf-root
// HVC polynomial — their HOTS public key's pk component — in participant
// order (§4.8). This is the byte buffer every randomizer in the group is
// derived from; it is recomputable by anyone from the public key list
// alone, which is what keeps the protocol single-round.
func GroupRandomizerSeed(pubKeys []*HOTSPublicKey) []byte {
	buf := make([]byte, 0, len(pubKeys)*nHots*4)
	for _, pk := range pubKeys {
		buf = polyToBytes(buf, pk.pk)
	}
	return buf
}

// DeriveRandomizer computes signer index's randomizer rho_j from the
// concatenated vector of every participating signer's leaf-root HVC
// polynomial (§4.8). Binding the randomizer to every participant's key —
// rather than to that signer's key alone — is what keeps the aggregate
// immune to rogue-key substitution: a signer cannot choose their own key
// after seeing everyone else's randomizer, because every randomizer already
// depends on the whole set.
func DeriveRandomizer(groupSeed []byte, index int) (PolyTime, error) {
	idx := []byte{byte(index), byte(index >> 8)}
	masked := make([]byte, len(groupSeed))
	if err := maskBytes(masked, groupSeed, domainRandomizerMask, idx); err != nil {
		return PolyTime{}, err
	}
	return polyDenseTernaryFromXOF(hotsRing, domainRandomizer, masked, idx)
}
