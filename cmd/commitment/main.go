// Command commitment recomputes a guessing-game commitment from a guess,
// a randomness value, and a player address, for comparison against the
// on-chain value.
//
//	commitment -guess 5 -rand 0xa -address 0x70997970c51812dc3a010c7d01b50e0d17dc79c8
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	poseidonbn254 "github.com/zkguess/poseidon-bn254"
)

func main() {
	guess := flag.Uint("guess", 0, "the guess")
	rand := flag.String("rand", "", "randomness as a hex string")
	address := flag.String("address", "", "player address as a hex string")
	flag.Parse()

	commitment, err := poseidonbn254.Commit(uint16(*guess), *address, *rand)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse the inputs: %v\n", err)
		os.Exit(1)
	}

	var v big.Int
	commitment.BigInt(&v)

	fmt.Printf("guess: %d\n", *guess)
	fmt.Printf("address: %s\n", *address)
	fmt.Printf("rand: %s\n", *rand)
	fmt.Printf("commitment: 0x%s\n", v.Text(16))
}
