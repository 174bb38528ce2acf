package chipmunk

import "testing"

func TestDeriveRandomizerIsDeterministic(t *testing.T) {
	pubs, privs := generateHOTSGroup(t, 3)
	defer func() {
		for _, sk := range privs {
			sk.Wipe()
		}
	}()

	seed := GroupRandomizerSeed(pubs)
	r1, err := DeriveRandomizer(seed, 1)
	if err != nil {
		t.Fatalf("DeriveRandomizer: %v", err)
	}
	r2, err := DeriveRandomizer(seed, 1)
	if err != nil {
		t.Fatalf("DeriveRandomizer: %v", err)
	}
	if !polyEqual(r1, r2) {
		t.Fatal("DeriveRandomizer is not deterministic for the same group seed and index")
	}
}

func TestDeriveRandomizerDependsOnWholeGroup(t *testing.T) {
	pubsA, privsA := generateHOTSGroup(t, 2)
	pubsB, privsB := generateHOTSGroup(t, 2)
	defer func() {
		for _, sk := range append(privsA, privsB...) {
			sk.Wipe()
		}
	}()

	// Same signer 0, different co-signer set: the randomizer must change,
	// since binding it to every participant's key is what defeats rogue-key
	// substitution (§4.8).
	mixed := []*HOTSPublicKey{pubsA[0], pubsB[1]}
	rA, err := DeriveRandomizer(GroupRandomizerSeed(pubsA), 0)
	if err != nil {
		t.Fatalf("DeriveRandomizer: %v", err)
	}
	rMixed, err := DeriveRandomizer(GroupRandomizerSeed(mixed), 0)
	if err != nil {
		t.Fatalf("DeriveRandomizer: %v", err)
	}
	if polyEqual(rA, rMixed) {
		t.Fatal("randomizer for signer 0 did not change when the co-signer set changed")
	}
}
