package ppe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommitmentKeysMarshalRoundTrip(t *testing.T) {
	rng := newDetRNG(20)
	ck, err := RandCommitmentKeys(rng)
	require.NoError(t, err)

	data := ck.Marshal()
	got, err := UnmarshalCommitmentKeys(data)
	require.NoError(t, err)
	require.True(t, ck.Equal(got))
}

func TestUnmarshalCommitmentKeysRejectsBadLength(t *testing.T) {
	_, err := UnmarshalCommitmentKeys([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestEquationMarshalRoundTrip(t *testing.T) {
	rng := newDetRNG(22)
	eq, _, _ := buildEquation(t, rng)

	data := eq.Marshal()
	got, err := UnmarshalEquation(data, eq.TT)
	require.NoError(t, err)
	require.Equal(t, eq.A, got.A)
	require.Equal(t, eq.B, got.B)
	require.Equal(t, eq.Gamma, got.Gamma)
}

func TestProofSystemMarshalRoundTrip(t *testing.T) {
	rng := newDetRNG(21)
	ck, err := RandCommitmentKeys(rng)
	require.NoError(t, err)
	eq, x, y := buildEquation(t, rng)
	ps, err := Setup(rng, ck, eq, x, y)
	require.NoError(t, err)

	data := ps.Marshal()
	got, err := UnmarshalProofSystem(data, eq)
	require.NoError(t, err)
	require.NoError(t, got.Verify())
	require.Equal(t, ps.C, got.C)
	require.Equal(t, ps.D, got.D)
	require.Equal(t, ps.Proof, got.Proof)
}
