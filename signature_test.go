package chipmunk

import "testing"

func TestSignVerifyRoundTrip(t *testing.T) {
	pk, sk, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	defer sk.Wipe()

	msg := []byte("chipmunk single-signer round trip")
	sig, err := Sign(sk, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := Verify(pk, msg, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	pk, sk, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	defer sk.Wipe()

	sig, err := Sign(sk, []byte("original message"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := Verify(pk, []byte("tampered message"), sig); err == nil {
		t.Fatal("Verify accepted a tampered message")
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	_, sk1, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	defer sk1.Wipe()
	pk2, sk2, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	defer sk2.Wipe()

	msg := []byte("signed by key 1")
	sig, err := Sign(sk1, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := Verify(pk2, msg, sig); err == nil {
		t.Fatal("Verify accepted a signature under the wrong public key")
	}
}

func TestPublicKeyRoundTripBytes(t *testing.T) {
	pk, sk, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	defer sk.Wipe()

	b := pk.Bytes()
	pk2, err := PublicKeyFromBytes(b)
	if err != nil {
		t.Fatalf("PublicKeyFromBytes: %v", err)
	}

	msg := []byte("encoded public key still verifies")
	sig, err := Sign(sk, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if err := Verify(pk2, msg, sig); err != nil {
		t.Fatalf("Verify with decoded public key: %v", err)
	}
}

func TestPrivateKeyRoundTripBytes(t *testing.T) {
	pk, sk, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	defer sk.Wipe()

	b := sk.Bytes()
	sk2, err := PrivateKeyFromBytes(b)
	if err != nil {
		t.Fatalf("PrivateKeyFromBytes: %v", err)
	}
	defer sk2.Wipe()

	if sk2.tr != sk.tr {
		t.Fatalf("decoded private key tr mismatch")
	}

	msg := []byte("decoded private key still signs")
	sig, err := Sign(sk2, msg)
	if err != nil {
		t.Fatalf("Sign with decoded private key: %v", err)
	}
	if err := Verify(pk, msg, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestSignatureRoundTripBytes(t *testing.T) {
	pk, sk, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	defer sk.Wipe()

	msg := []byte("encoded signature still verifies")
	sig, err := Sign(sk, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	b := sig.Bytes()
	sig2, err := SignatureFromBytes(b)
	if err != nil {
		t.Fatalf("SignatureFromBytes: %v", err)
	}
	if err := Verify(pk, msg, sig2); err != nil {
		t.Fatalf("Verify with decoded signature: %v", err)
	}
}
