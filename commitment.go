package poseidonbn254

import (
	"errors"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrParse is returned when a textual input cannot be decoded as a field
// element.
var ErrParse = errors.New("poseidonbn254: string is not a field element")

// FieldFromHex decodes a hexadecimal string, with or without a 0x prefix,
// into a field element. Any integer value is accepted and reduced modulo
// the field order; only malformed text is an error.
func FieldFromHex(s string) (fr.Element, error) {
	var e fr.Element

	trimmed := strings.TrimPrefix(s, "0x")
	if trimmed == s {
		trimmed = strings.TrimPrefix(s, "0X")
	}
	n, ok := new(big.Int).SetString(trimmed, 16)
	if !ok || n.Sign() < 0 {
		return e, ErrParse
	}
	e.SetBigInt(n)
	return e, nil
}

// Commit recomputes the guessing-game commitment for a guess, the player
// address, and the commitment randomness, both given as hexadecimal
// strings. The commitment is Hash3(guess, address, randomness); the input
// order is fixed by the on-chain verifier.
func Commit(guess uint16, address, randomness string) (fr.Element, error) {
	addr, err := FieldFromHex(address)
	if err != nil {
		return fr.Element{}, err
	}
	r, err := FieldFromHex(randomness)
	if err != nil {
		return fr.Element{}, err
	}

	var g fr.Element
	g.SetUint64(uint64(guess))
	return Hash3(g, addr, r)
}
