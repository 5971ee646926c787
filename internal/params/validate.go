package params

import "fmt"

// Validate checks basic shape and sizes of a parameter set. The values
// themselves come from the offline generator and are trusted; only the
// dimensions are verified.
func Validate(p *Parameters) error {
	if p.SBoxDegree != 5 {
		return fmt.Errorf("params: unsupported s-box degree %d", p.SBoxDegree)
	}
	if p.FullRounds%2 != 0 {
		return fmt.Errorf("params: full rounds must be even, got %d", p.FullRounds)
	}
	if p.Rounds != p.FullRounds+p.PartialRounds {
		return fmt.Errorf("params: round count %d does not equal %d full + %d partial",
			p.Rounds, p.FullRounds, p.PartialRounds)
	}
	t := p.StateSize
	if t < 2 {
		return fmt.Errorf("params: state size %d too small", t)
	}
	if len(p.Arc) != p.Rounds*t {
		return fmt.Errorf("params: round-constant table length mismatch (have %d, want %d)",
			len(p.Arc), p.Rounds*t)
	}
	if len(p.MDS) != t*t {
		return fmt.Errorf("params: mixing matrix length mismatch (have %d, want %d)",
			len(p.MDS), t*t)
	}
	return nil
}
