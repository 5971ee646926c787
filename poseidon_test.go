package poseidonbn254

import (
	"errors"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func mustElement(t *testing.T, s string) fr.Element {
	t.Helper()
	var e fr.Element
	if _, err := e.SetString(s); err != nil {
		t.Fatalf("parse element: %v", err)
	}
	return e
}

// Full-state permutation outputs from the reference implementation, for the
// circom t=3 and t=4 parameter sets.
func TestPermutationReferenceVectors(t *testing.T) {
	in3 := []fr.Element{
		mustElement(t, "0"),
		mustElement(t, "1"),
		mustElement(t, "2"),
	}
	want3 := []fr.Element{
		mustElement(t, "0x115cc0f5e7d690413df64c6b9662e9cf2a3617f2743245519e19607a4417189a"),
		mustElement(t, "0x0fca49b798923ab0239de1c9e7a4a9a2210312b6a2f616d18b5a87f9b628ae29"),
		mustElement(t, "0x0e7ae82e40091e63cbd4f16a6d16310b3729d4b6e138fcf54110e2867045a30c"),
	}
	out3, err := Permute(in3)
	if err != nil {
		t.Fatal(err)
	}
	for i := range want3 {
		if !out3[i].Equal(&want3[i]) {
			t.Errorf("t=3 position %d: expected %s, got %s", i, want3[i].String(), out3[i].String())
		}
	}

	in4 := []fr.Element{
		mustElement(t, "0"),
		mustElement(t, "1"),
		mustElement(t, "2"),
		mustElement(t, "3"),
	}
	want4 := []fr.Element{
		mustElement(t, "0x0e7732d89e6939c0ff03d5e58dab6302f3230e269dc5b968f725df34ab36d732"),
		mustElement(t, "0x07b0b86b41ec7fdfe6c17ee6ccdddce4e47e748e493e542f9a435b0dde022a0d"),
		mustElement(t, "0x04362e50fcc8be421898d47ace20eab18b0a6efab0e12ade49f2df609fec4209"),
		mustElement(t, "0x1a779bd9781d3a8354eae5ed74e7fa44fa0e458e45a1407524bddf3b9f2bf2d7"),
	}
	out4, err := Permute(in4)
	if err != nil {
		t.Fatal(err)
	}
	for i := range want4 {
		if !out4[i].Equal(&want4[i]) {
			t.Errorf("t=4 position %d: expected %s, got %s", i, want4[i].String(), out4[i].String())
		}
	}
}

func TestConsistentPermutation(t *testing.T) {
	const testRuns = 5
	const width = 3

	randomState := func() []fr.Element {
		state := make([]fr.Element, width)
		for i := range state {
			if _, err := state[i].SetRandom(); err != nil {
				t.Fatalf("random element: %v", err)
			}
		}
		return state
	}
	equalStates := func(a, b []fr.Element) bool {
		for i := range a {
			if !a[i].Equal(&b[i]) {
				return false
			}
		}
		return true
	}

	for run := 0; run < testRuns; run++ {
		input1 := randomState()
		input2 := randomState()
		for equalStates(input1, input2) {
			input2 = randomState()
		}

		perm1, err := Permute(input1)
		if err != nil {
			t.Fatal(err)
		}
		perm2, err := Permute(input1)
		if err != nil {
			t.Fatal(err)
		}
		perm3, err := Permute(input2)
		if err != nil {
			t.Fatal(err)
		}

		if !equalStates(perm1, perm2) {
			t.Fatal("permutation is not deterministic")
		}
		if equalStates(perm1, perm3) {
			t.Fatal("distinct inputs permuted to the same state")
		}
	}
}

func TestPermuteUnsupportedWidth(t *testing.T) {
	for _, width := range []int{0, 1, 2, 5, 8} {
		if _, err := Permute(make([]fr.Element, width)); !errors.Is(err, ErrUnsupportedWidth) {
			t.Errorf("width %d: expected ErrUnsupportedWidth, got %v", width, err)
		}
	}
}

func TestPermuteDoesNotMutateInput(t *testing.T) {
	in := []fr.Element{
		mustElement(t, "11"),
		mustElement(t, "22"),
		mustElement(t, "33"),
	}
	saved := make([]fr.Element, len(in))
	copy(saved, in)

	if _, err := Permute(in); err != nil {
		t.Fatal(err)
	}
	for i := range in {
		if !in[i].Equal(&saved[i]) {
			t.Fatalf("input position %d mutated", i)
		}
	}
}

// Every state word must stay a canonical representative (< p) through the
// permutation.
func TestStateWordsCanonical(t *testing.T) {
	for _, width := range []int{3, 4} {
		state := make([]fr.Element, width)
		for i := range state {
			if _, err := state[i].SetRandom(); err != nil {
				t.Fatal(err)
			}
		}
		out, err := Permute(state)
		if err != nil {
			t.Fatal(err)
		}
		for i := range out {
			v := out[i].BigInt(new(big.Int))
			if v.Sign() < 0 || v.Cmp(fr.Modulus()) >= 0 {
				t.Fatalf("t=%d position %d: non-canonical value %s", width, i, v.String())
			}
		}
	}
}

func BenchmarkPermutationT3(b *testing.B) {
	state := make([]fr.Element, 3)
	state[1].SetUint64(1)
	state[2].SetUint64(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Permute(state); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHash2(b *testing.B) {
	var x, y fr.Element
	x.SetUint64(54939530)
	y.SetUint64(190384929)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Hash2(x, y); err != nil {
			b.Fatal(err)
		}
	}
}
