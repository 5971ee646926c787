package poseidonbn254

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Commitments recorded from the reference binary for the guessing game.
func TestKnownCommitments(t *testing.T) {
	cases := []struct {
		name     string
		guess    uint16
		address  string
		rand     string
		expected string
	}{
		{
			name:     "guess 5",
			guess:    5,
			address:  "0x70997970c51812dc3a010c7d01b50e0d17dc79c8",
			rand:     "0xa",
			expected: "0x2346b3b208c9e65959af9824ccab4da69ae27d222204fcf0ace7f725e02e512d",
		},
		{
			name:     "guess 6",
			guess:    6,
			address:  "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC",
			rand:     "0xa",
			expected: "0x1cb75e97aa2b617f4d0c6bf6c99606af77cc899ee8c3e765e48af3b4a4f9cf67",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Commit(tc.guess, tc.address, tc.rand)
			require.NoError(t, err)

			want, err := FieldFromHex(tc.expected)
			require.NoError(t, err)
			require.True(t, got.Equal(&want), "expected %s, got %s", want.String(), got.String())
		})
	}
}

func TestFieldFromHex(t *testing.T) {
	ten, err := FieldFromHex("0xa")
	require.NoError(t, err)
	require.Equal(t, "10", ten.String())

	// The 0x prefix is optional and case-insensitive.
	bare, err := FieldFromHex("a")
	require.NoError(t, err)
	require.True(t, bare.Equal(&ten))
	upper, err := FieldFromHex("0XA")
	require.NoError(t, err)
	require.True(t, upper.Equal(&ten))

	// Out-of-range integers reduce modulo the field order.
	wrapped, err := FieldFromHex("0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000002")
	require.NoError(t, err)
	require.Equal(t, "1", wrapped.String())
	modulus, err := FieldFromHex("0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001")
	require.NoError(t, err)
	require.True(t, modulus.IsZero())
}

func TestFieldFromHexMalformed(t *testing.T) {
	for _, s := range []string{"", "0x", "zz", "0xzz", "12 34", "-a", "0x-1"} {
		_, err := FieldFromHex(s)
		require.ErrorIs(t, err, ErrParse, "input %q", s)
	}
}

func TestCommitRejectsMalformedInput(t *testing.T) {
	_, err := Commit(5, "not-an-address", "0xa")
	require.ErrorIs(t, err, ErrParse)

	_, err = Commit(5, "0x70997970c51812dc3a010c7d01b50e0d17dc79c8", "xyz")
	require.ErrorIs(t, err, ErrParse)
}
