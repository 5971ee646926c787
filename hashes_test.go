package poseidonbn254

import (
	"errors"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Digests published for the circom-compatible reference implementation.
func TestHashGoldenVectors(t *testing.T) {
	zero := fr.Element{}

	h2, err := Hash2(zero, zero)
	if err != nil {
		t.Fatal(err)
	}
	want2 := mustElement(t, "14744269619966411208579211824598458697587494354926760081771325075741142829156")
	if !h2.Equal(&want2) {
		t.Errorf("Hash2(0,0): expected %s, got %s", want2.String(), h2.String())
	}

	h3, err := Hash3(zero, zero, zero)
	if err != nil {
		t.Fatal(err)
	}
	want3 := mustElement(t, "0x0bc188d27dcceadc1dcfb6af0a7af08fe2864eecec96c5ae7cee6db31ba599aa")
	if !h3.Equal(&want3) {
		t.Errorf("Hash3(0,0,0): expected %s, got %s", want3.String(), h3.String())
	}

	one := mustElement(t, "1")
	two := mustElement(t, "2")
	h12, err := Hash2(one, two)
	if err != nil {
		t.Fatal(err)
	}
	want12 := mustElement(t, "7853200120776062878684798364095072458815029376092732009249414926327459813530")
	if !h12.Equal(&want12) {
		t.Errorf("Hash2(1,2): expected %s, got %s", want12.String(), h12.String())
	}
}

func TestHashOrderSensitivity(t *testing.T) {
	one := mustElement(t, "1")
	two := mustElement(t, "2")

	h12, err := Hash2(one, two)
	if err != nil {
		t.Fatal(err)
	}
	h21, err := Hash2(two, one)
	if err != nil {
		t.Fatal(err)
	}
	if h12.Equal(&h21) {
		t.Fatal("Hash2 must not be commutative over its inputs")
	}

	want21 := mustElement(t, "9708419728795563670286566418307042748092204899363634976546883453490873071450")
	if !h21.Equal(&want21) {
		t.Errorf("Hash2(2,1): expected %s, got %s", want21.String(), h21.String())
	}
}

func TestHashArityMismatch(t *testing.T) {
	var e fr.Element
	if _, err := Hash(e); !errors.Is(err, ErrUnsupportedWidth) {
		t.Errorf("1 input: expected ErrUnsupportedWidth, got %v", err)
	}
	if _, err := Hash(e, e, e, e); !errors.Is(err, ErrUnsupportedWidth) {
		t.Errorf("4 inputs: expected ErrUnsupportedWidth, got %v", err)
	}
}

func TestHashChain(t *testing.T) {
	empty, err := HashChain(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !empty.IsZero() {
		t.Errorf("empty chain: expected 0, got %s", empty.String())
	}

	// A single-element chain is one permutation of [0, 0, x].
	seven := mustElement(t, "7")
	single, err := HashChain([]fr.Element{seven})
	if err != nil {
		t.Fatal(err)
	}
	state, err := Permute([]fr.Element{{}, {}, seven})
	if err != nil {
		t.Fatal(err)
	}
	if !single.Equal(&state[0]) {
		t.Errorf("single-element chain: expected %s, got %s", state[0].String(), single.String())
	}
	wantSingle := mustElement(t, "279607406330385469699708956735380224008485527346210613759547827362749687966")
	if !single.Equal(&wantSingle) {
		t.Errorf("chain([7]): expected %s, got %s", wantSingle.String(), single.String())
	}

	inputs := []fr.Element{
		mustElement(t, "1"),
		mustElement(t, "2"),
		mustElement(t, "3"),
	}
	chained, err := HashChain(inputs)
	if err != nil {
		t.Fatal(err)
	}
	wantChain := mustElement(t, "20127075603631019434055928315203707068407414306847615530687456290565086592967")
	if !chained.Equal(&wantChain) {
		t.Errorf("chain([1,2,3]): expected %s, got %s", wantChain.String(), chained.String())
	}

	reversed := []fr.Element{inputs[2], inputs[1], inputs[0]}
	chainedRev, err := HashChain(reversed)
	if err != nil {
		t.Fatal(err)
	}
	wantRev := mustElement(t, "15870151730705862065060613453771889038891643811197289667729206139066976223509")
	if !chainedRev.Equal(&wantRev) {
		t.Errorf("chain([3,2,1]): expected %s, got %s", wantRev.String(), chainedRev.String())
	}
	if chained.Equal(&chainedRev) {
		t.Fatal("chain must be order sensitive")
	}
}
