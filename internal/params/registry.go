// Package params carries the precomputed Poseidon parameter sets for the
// BN254 scalar field. The tables are circom-compatible: they were produced
// by the grain-based generator from the Poseidon reference implementation
// and must never be edited by hand, or every digest derived from them
// changes.
package params

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// AllParameters indexes the compiled-in parameter sets by state size.
// Hashing k field elements uses the set with state size k+1. Adding a
// state size means adding a generated table here; the permutation needs
// no code change.
var AllParameters = map[int]*Parameters{
	3: mustParameters(circomT3),
	4: mustParameters(circomT4),
}

// tableData is the raw generator output before parsing into field elements.
type tableData struct {
	stateSize     int
	fullRounds    int
	partialRounds int
	arc           []string
	mds           []string
}

// mustParameters turns a generated table into a Parameters value. The
// tables are compiled-in trusted data, so any malformation is fatal.
func mustParameters(d *tableData) *Parameters {
	p := &Parameters{
		StateSize:     d.stateSize,
		SBoxDegree:    5,
		FullRounds:    d.fullRounds,
		PartialRounds: d.partialRounds,
		Rounds:        d.fullRounds + d.partialRounds,
		Arc:           mustElements(d.arc),
		MDS:           mustElements(d.mds),
	}
	if err := Validate(p); err != nil {
		panic(err)
	}
	return p
}

func mustElements(hexes []string) []fr.Element {
	out := make([]fr.Element, len(hexes))
	for i, s := range hexes {
		if _, err := out[i].SetString(s); err != nil {
			panic(fmt.Sprintf("params: bad table entry %q: %v", s, err))
		}
	}
	return out
}
