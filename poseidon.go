// Package poseidonbn254 implements the circom-compatible Poseidon hash over
// the BN254 scalar field, bit-identical to the circuit reference
// implementation, plus the commitment helper for the guessing-game protocol.
package poseidonbn254

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/zkguess/poseidon-bn254/internal/params"
)

// ErrUnsupportedWidth is returned when no parameter set exists for the
// requested state size (equivalently, for the given number of hash inputs).
var ErrUnsupportedWidth = errors.New("poseidonbn254: no parameter set for state size")

// permutation implements the Poseidon permutation for one state size.
type permutation struct {
	params *params.Parameters
}

// newPermutation binds a permutation to the parameter set for state size t.
func newPermutation(t int) (*permutation, error) {
	p, ok := params.AllParameters[t]
	if !ok {
		return nil, fmt.Errorf("%w (t=%d)", ErrUnsupportedWidth, t)
	}
	if p.StateSize != t {
		return nil, fmt.Errorf("poseidonbn254: inconsistent parameter set for t=%d (state size %d)", t, p.StateSize)
	}
	if err := params.Validate(p); err != nil {
		return nil, err
	}
	return &permutation{params: p}, nil
}

// Hash absorbs the inputs into a fresh state and returns the squeezed
// digest. The capacity element (position 0) is zero, the k inputs occupy
// positions 1..k, and the digest is position 0 after the permutation;
// a parameter set with state size k+1 must exist.
func Hash(inputs ...fr.Element) (fr.Element, error) {
	t := len(inputs) + 1
	perm, err := newPermutation(t)
	if err != nil {
		return fr.Element{}, err
	}

	state := make([]fr.Element, t)
	copy(state[1:], inputs)

	perm.permute(state)
	return state[0], nil
}

// Permute applies the Poseidon permutation to a full state vector and
// returns the resulting state. The state length selects the parameter set.
func Permute(state []fr.Element) ([]fr.Element, error) {
	perm, err := newPermutation(len(state))
	if err != nil {
		return nil, err
	}
	out := make([]fr.Element, len(state))
	copy(out, state)
	perm.permute(out)
	return out, nil
}

// permute mutates the state in place. The schedule is FullRounds/2 full
// rounds, PartialRounds partial rounds, FullRounds/2 full rounds; every
// round adds its constant row, applies the s-box, and multiplies the state
// by the mixing matrix.
func (p *permutation) permute(state []fr.Element) {
	rF := p.params.FullRounds / 2
	pEnd := rF + p.params.PartialRounds

	for r := 0; r < rF; r++ {
		addRoundConstants(state, p.params.ArcRow(r))
		fullSBox(state)
		p.mixLayer(state)
	}
	for r := rF; r < pEnd; r++ {
		addRoundConstants(state, p.params.ArcRow(r))
		sbox(&state[0])
		p.mixLayer(state)
	}
	for r := pEnd; r < p.params.Rounds; r++ {
		addRoundConstants(state, p.params.ArcRow(r))
		fullSBox(state)
		p.mixLayer(state)
	}
}

// mixLayer replaces the state with MDS * state.
func (p *permutation) mixLayer(state []fr.Element) {
	t := p.params.StateSize
	newState := make([]fr.Element, t)
	for i := 0; i < t; i++ {
		var sum fr.Element
		row := p.params.MDSRow(i)
		for j := 0; j < t; j++ {
			var prod fr.Element
			prod.Mul(&row[j], &state[j])
			sum.Add(&sum, &prod)
		}
		newState[i] = sum
	}
	copy(state, newState)
}

func addRoundConstants(state, rc []fr.Element) {
	for i := range state {
		state[i].Add(&state[i], &rc[i])
	}
}

func fullSBox(state []fr.Element) {
	for i := range state {
		sbox(&state[i])
	}
}

// sbox raises x to the fifth power: two squarings and a multiply.
func sbox(x *fr.Element) {
	var x2, x4 fr.Element
	x2.Square(x)
	x4.Square(&x2)
	x.Mul(&x4, x)
}
