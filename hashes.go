package poseidonbn254

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Hash2 hashes two field elements with the t=3 parameter set.
func Hash2(a, b fr.Element) (fr.Element, error) {
	return Hash(a, b)
}

// Hash3 hashes three field elements with the t=4 parameter set.
func Hash3(a, b, c fr.Element) (fr.Element, error) {
	return Hash(a, b, c)
}

// HashChain folds a list of field elements through the t=3 permutation.
// Each step places the previous output in position 1 and the next input in
// position 2, with a fresh zero capacity element, then permutes. An empty
// list hashes to zero (the fold's initial value).
func HashChain(inputs []fr.Element) (fr.Element, error) {
	perm, err := newPermutation(3)
	if err != nil {
		return fr.Element{}, err
	}

	state := make([]fr.Element, 3)
	for _, in := range inputs {
		state[1] = state[0]
		state[0].SetZero()
		state[2] = in
		perm.permute(state)
	}
	return state[0], nil
}
