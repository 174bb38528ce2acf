package chipmunk

import "testing"

func generateHOTSGroup(t *testing.T, n int) ([]*HOTSPublicKey, []*HOTSPrivateKey) {
	t.Helper()
	pubs := make([]*HOTSPublicKey, n)
	privs := make([]*HOTSPrivateKey, n)
	for i := 0; i < n; i++ {
		pk, sk, err := HOTSGenerateKeyPair()
		if err != nil {
			t.Fatalf("HOTSGenerateKeyPair(%d): %v", i, err)
		}
		pubs[i] = pk
		privs[i] = sk
	}
	return pubs, privs
}

func TestMultiSignatureRoundTrip(t *testing.T) {
	pubs, privs := generateHOTSGroup(t, 3)
	defer func() {
		for _, sk := range privs {
			sk.Wipe()
		}
	}()

	msg := []byte("aggregate signature over three signers")
	shares := make([]*MultiSignatureShare, len(privs))
	for i, sk := range privs {
		share, err := CreateIndividual(sk, msg, pubs, i)
		if err != nil {
			t.Fatalf("CreateIndividual(%d): %v", i, err)
		}
		shares[i] = share
	}

	aggSig, _, err := Aggregate(pubs, shares)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if err := VerifyMulti(pubs, msg, aggSig); err != nil {
		t.Fatalf("VerifyMulti: %v", err)
	}
}

func TestMultiSignatureRejectsTamperedMessage(t *testing.T) {
	pubs, privs := generateHOTSGroup(t, 2)
	defer func() {
		for _, sk := range privs {
			sk.Wipe()
		}
	}()

	msg := []byte("original group message")
	shares := make([]*MultiSignatureShare, len(privs))
	for i, sk := range privs {
		share, err := CreateIndividual(sk, msg, pubs, i)
		if err != nil {
			t.Fatalf("CreateIndividual(%d): %v", i, err)
		}
		shares[i] = share
	}
	aggSig, _, err := Aggregate(pubs, shares)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if err := VerifyMulti(pubs, []byte("tampered group message"), aggSig); err == nil {
		t.Fatal("VerifyMulti accepted a tampered message")
	}
}

func TestMultiSignatureRejectsMissingShare(t *testing.T) {
	pubs, privs := generateHOTSGroup(t, 3)
	defer func() {
		for _, sk := range privs {
			sk.Wipe()
		}
	}()

	msg := []byte("one signer drops out")
	shares := make([]*MultiSignatureShare, 0, 2)
	for i := 0; i < 2; i++ {
		share, err := CreateIndividual(privs[i], msg, pubs, i)
		if err != nil {
			t.Fatalf("CreateIndividual(%d): %v", i, err)
		}
		shares = append(shares, share)
	}
	// Aggregating fewer shares than public keys must be rejected up front:
	// it can never produce a signature that verifies against the full group.
	if _, _, err := Aggregate(pubs, shares); err == nil {
		t.Fatal("Aggregate accepted a mismatched share count")
	}
}

func TestBatchVerifyAcceptsValidBatch(t *testing.T) {
	pubsA, privsA := generateHOTSGroup(t, 2)
	pubsB, privsB := generateHOTSGroup(t, 3)
	defer func() {
		for _, sk := range append(privsA, privsB...) {
			sk.Wipe()
		}
	}()

	sign := func(pubs []*HOTSPublicKey, privs []*HOTSPrivateKey, msg []byte) *HOTSSignature {
		shares := make([]*MultiSignatureShare, len(privs))
		for i, sk := range privs {
			share, err := CreateIndividual(sk, msg, pubs, i)
			if err != nil {
				t.Fatalf("CreateIndividual: %v", err)
			}
			shares[i] = share
		}
		sig, _, err := Aggregate(pubs, shares)
		if err != nil {
			t.Fatalf("Aggregate: %v", err)
		}
		return sig
	}

	msgA := []byte("valid batch item A")
	msgB := []byte("valid batch item B")
	items := []BatchItem{
		{PubKeys: pubsA, Msg: msgA, Sig: sign(pubsA, privsA, msgA)},
		{PubKeys: pubsB, Msg: msgB, Sig: sign(pubsB, privsB, msgB)},
	}
	if err := BatchVerify(items); err != nil {
		t.Fatalf("BatchVerify rejected a fully valid batch: %v", err)
	}
}

func TestBatchVerifyReportsFailingItem(t *testing.T) {
	pubsA, privsA := generateHOTSGroup(t, 2)
	pubsB, privsB := generateHOTSGroup(t, 2)
	defer func() {
		for _, sk := range append(privsA, privsB...) {
			sk.Wipe()
		}
	}()

	sign := func(pubs []*HOTSPublicKey, privs []*HOTSPrivateKey, msg []byte) *HOTSSignature {
		shares := make([]*MultiSignatureShare, len(privs))
		for i, sk := range privs {
			share, err := CreateIndividual(sk, msg, pubs, i)
			if err != nil {
				t.Fatalf("CreateIndividual: %v", err)
			}
			shares[i] = share
		}
		sig, _, err := Aggregate(pubs, shares)
		if err != nil {
			t.Fatalf("Aggregate: %v", err)
		}
		return sig
	}

	msgA := []byte("group A message")
	msgB := []byte("group B message")
	sigA := sign(pubsA, privsA, msgA)
	sigB := sign(pubsB, privsB, msgB)

	items := []BatchItem{
		{PubKeys: pubsA, Msg: msgA, Sig: sigA},       // valid
		{PubKeys: pubsB, Msg: []byte("wrong"), Sig: sigB}, // invalid
	}
	err := BatchVerify(items)
	if err == nil {
		t.Fatal("BatchVerify did not report the failing item")
	}
}
