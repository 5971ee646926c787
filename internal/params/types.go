package params

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Parameters bundles all constants the permutation needs for one state size.
type Parameters struct {
	StateSize     int
	SBoxDegree    int
	FullRounds    int
	PartialRounds int
	Rounds        int

	// Arc holds the additive round constants, one row of StateSize per
	// round, flattened row-major. MDS is the StateSize x StateSize mixing
	// matrix, also row-major.
	Arc []fr.Element
	MDS []fr.Element
}

// ArcRow returns the round-constant row for round r. An out-of-range r
// means the round schedule disagrees with the generated table, which is a
// build defect, so it panics rather than returning an error.
func (p *Parameters) ArcRow(r int) []fr.Element {
	if r < 0 || r >= p.Rounds {
		panic(fmt.Sprintf("params: round %d outside constant table (%d rounds)", r, p.Rounds))
	}
	return p.Arc[r*p.StateSize : (r+1)*p.StateSize]
}

// MDSRow returns row i of the mixing matrix.
func (p *Parameters) MDSRow(i int) []fr.Element {
	return p.MDS[i*p.StateSize : (i+1)*p.StateSize]
}
