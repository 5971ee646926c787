// Command hash2 hashes two field elements given in decimal.
//
//	hash2 -a 54939530 -b 190384929
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	poseidonbn254 "github.com/zkguess/poseidon-bn254"
)

func main() {
	a := flag.String("a", "", "first input (in decimal)")
	b := flag.String("b", "", "second input (in decimal)")
	flag.Parse()

	var inputA, inputB fr.Element
	if _, err := inputA.SetString(*a); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse the first input: %v\n", err)
		os.Exit(1)
	}
	if _, err := inputB.SetString(*b); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse the second input: %v\n", err)
		os.Exit(1)
	}

	hash, err := poseidonbn254.Hash2(inputA, inputB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash the inputs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("input_a: %s\n", inputA.String())
	fmt.Printf("input_b: %s\n", inputB.String())
	fmt.Printf("hash: %s\n", hash.String())
}
