package chipmunk

import "testing"

func TestPolyUniformFromXOFRespectsBound(t *testing.T) {
	const bound = int32(17)
	p, err := polyUniformFromXOF(hotsRing, "test/uniform", bound, []byte("seed"), []byte{0})
	if err != nil {
		t.Fatalf("polyUniformFromXOF: %v", err)
	}
	for i, c := range p.co {
		v := hotsRing.canonical(c)
		if v >= bound {
			t.Fatalf("coefficient %d = %d exceeds bound %d", i, v, bound)
		}
	}
}

func TestPolyUniformFromXOFIsDeterministic(t *testing.T) {
	p1, err := polyUniformFromXOF(sigRing, "test/uniform", qSig, []byte("seed-a"), []byte{3})
	if err != nil {
		t.Fatalf("polyUniformFromXOF: %v", err)
	}
	p2, err := polyUniformFromXOF(sigRing, "test/uniform", qSig, []byte("seed-a"), []byte{3})
	if err != nil {
		t.Fatalf("polyUniformFromXOF: %v", err)
	}
	for i := range p1.co {
		if p1.co[i] != p2.co[i] {
			t.Fatalf("same seed/nonce produced different output at %d", i)
		}
	}
}

func TestPolySparseTernaryWeight(t *testing.T) {
	const weight = 39
	p, err := polySparseTernaryFromXOF(sigRing, "test/sparse", weight, []byte{}, []byte("msg"))
	if err != nil {
		t.Fatalf("polySparseTernaryFromXOF: %v", err)
	}
	nonzero := 0
	for _, c := range p.co {
		switch c {
		case 0:
		case 1, -1:
			nonzero++
		default:
			t.Fatalf("unexpected coefficient %d, want 0, 1, or -1", c)
		}
	}
	if nonzero != weight {
		t.Fatalf("got %d nonzero coefficients, want %d", nonzero, weight)
	}
}

func TestPolyDenseTernaryFromXOFIsTernaryAndDense(t *testing.T) {
	p, err := polyDenseTernaryFromXOF(hotsRing, "test/dense", []byte("group-seed"), []byte{0})
	if err != nil {
		t.Fatalf("polyDenseTernaryFromXOF: %v", err)
	}
	nonzero := 0
	for i, c := range p.co {
		switch c {
		case 0:
		case 1, -1:
			nonzero++
		default:
			t.Fatalf("coefficient %d = %d, want 0, 1, or -1", i, c)
		}
	}
	// Each coefficient is independently nonzero with probability one half
	// (§4.8); a weight this far from N/2 would indicate the two-bits-per-
	// coefficient table isn't being consumed as specified.
	if nonzero < hotsRing.n/8 || nonzero > hotsRing.n*7/8 {
		t.Fatalf("weight %d implausible for a dense ~50%% density sample over %d coefficients", nonzero, hotsRing.n)
	}
}

func TestPolyDenseTernaryFromXOFIsDeterministic(t *testing.T) {
	p1, err := polyDenseTernaryFromXOF(hotsRing, "test/dense", []byte("seed"), []byte{1})
	if err != nil {
		t.Fatalf("polyDenseTernaryFromXOF: %v", err)
	}
	p2, err := polyDenseTernaryFromXOF(hotsRing, "test/dense", []byte("seed"), []byte{1})
	if err != nil {
		t.Fatalf("polyDenseTernaryFromXOF: %v", err)
	}
	for i := range p1.co {
		if p1.co[i] != p2.co[i] {
			t.Fatalf("same seed/nonce produced different output at %d", i)
		}
	}
}

func TestShiftDownCentersRange(t *testing.T) {
	const bound = int32(5)
	p, err := polyUniformFromXOF(sigRing, "test/shift", 2*bound+1, []byte("seed"), []byte{9})
	if err != nil {
		t.Fatalf("polyUniformFromXOF: %v", err)
	}
	shifted := p.ShiftDown(bound)
	for i, c := range shifted.co {
		if c < -bound || c > bound {
			t.Fatalf("coefficient %d = %d outside [-%d, %d]", i, c, bound, bound)
		}
	}
}
