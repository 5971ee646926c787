package params

import (
	"strings"
	"testing"
)

func TestShippedParameterSets(t *testing.T) {
	cases := []struct {
		stateSize     int
		partialRounds int
	}{
		{stateSize: 3, partialRounds: 57},
		{stateSize: 4, partialRounds: 56},
	}

	for _, tc := range cases {
		p, ok := AllParameters[tc.stateSize]
		if !ok {
			t.Fatalf("missing parameter set for t=%d", tc.stateSize)
		}
		if p.StateSize != tc.stateSize {
			t.Errorf("t=%d: state size %d", tc.stateSize, p.StateSize)
		}
		if p.FullRounds != 8 {
			t.Errorf("t=%d: full rounds %d, want 8", tc.stateSize, p.FullRounds)
		}
		if p.PartialRounds != tc.partialRounds {
			t.Errorf("t=%d: partial rounds %d, want %d", tc.stateSize, p.PartialRounds, tc.partialRounds)
		}
		if p.Rounds != 8+tc.partialRounds {
			t.Errorf("t=%d: rounds %d, want %d", tc.stateSize, p.Rounds, 8+tc.partialRounds)
		}
		if p.SBoxDegree != 5 {
			t.Errorf("t=%d: s-box degree %d, want 5", tc.stateSize, p.SBoxDegree)
		}
		if err := Validate(p); err != nil {
			t.Errorf("t=%d: %v", tc.stateSize, err)
		}
	}
}

// The round schedule must consume every constant row exactly once, so the
// table row count is the round count.
func TestConstantTableMatchesRoundCount(t *testing.T) {
	for stateSize, p := range AllParameters {
		rows := 0
		for r := 0; r < p.Rounds; r++ {
			row := p.ArcRow(r)
			if len(row) != p.StateSize {
				t.Fatalf("t=%d round %d: row width %d", stateSize, r, len(row))
			}
			rows++
		}
		if rows != p.Rounds {
			t.Errorf("t=%d: visited %d rows, want %d", stateSize, rows, p.Rounds)
		}
		if len(p.Arc) != p.Rounds*p.StateSize {
			t.Errorf("t=%d: table holds %d entries, want %d", stateSize, len(p.Arc), p.Rounds*p.StateSize)
		}
	}
}

func TestArcRowOutOfRangePanics(t *testing.T) {
	p := AllParameters[3]
	for _, r := range []int{-1, p.Rounds, p.Rounds + 7} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ArcRow(%d) did not panic", r)
				}
			}()
			p.ArcRow(r)
		}()
	}
}

func TestValidateShapeErrors(t *testing.T) {
	good := AllParameters[3]

	cases := []struct {
		name    string
		mutate  func(p *Parameters)
		wantMsg string
	}{
		{
			name:    "truncated constant table",
			mutate:  func(p *Parameters) { p.Arc = p.Arc[:len(p.Arc)-1] },
			wantMsg: "round-constant table",
		},
		{
			name:    "wrong matrix size",
			mutate:  func(p *Parameters) { p.MDS = p.MDS[:4] },
			wantMsg: "mixing matrix",
		},
		{
			name:    "odd full rounds",
			mutate:  func(p *Parameters) { p.FullRounds = 7 },
			wantMsg: "full rounds",
		},
		{
			name:    "inconsistent round total",
			mutate:  func(p *Parameters) { p.Rounds = p.Rounds + 1 },
			wantMsg: "round count",
		},
		{
			name:    "unsupported s-box degree",
			mutate:  func(p *Parameters) { p.SBoxDegree = 3 },
			wantMsg: "s-box degree",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bad := *good
			tc.mutate(&bad)
			err := Validate(&bad)
			if err == nil {
				t.Fatal("expected a shape error")
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.wantMsg)
			}
		})
	}
}
