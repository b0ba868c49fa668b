package ppe

import (
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/require"
)

func TestRandCommitmentKeysSpanRequirement(t *testing.T) {
	rng := newDetRNG(30)
	ck, err := RandCommitmentKeys(rng)
	require.NoError(t, err)

	// u2 and v2 must be nonzero scalar multiples of u1 and v1: in
	// particular neither can be the identity, or SXDH binding collapses.
	var zeroG1 bls12381.G1Affine
	var zeroG2 bls12381.G2Affine
	require.False(t, ck.U2.X1.Equal(&zeroG1))
	require.False(t, ck.V2.Y1.Equal(&zeroG2))
}

func TestCommitG1VecMatchesPerElementCommit(t *testing.T) {
	rng := newDetRNG(31)
	ck, err := RandCommitmentKeys(rng)
	require.NoError(t, err)

	_, _, g1, _ := bls12381.Generators()
	xs := []bls12381.G1Affine{g1Scale(g1, big2(3)), g1Scale(g1, big2(5))}

	cs, r, err := ck.CommitG1Vec(rng, xs)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	require.Len(t, r, 2)

	for i, x := range xs {
		want := Iota1(x).Add(ck.U1.ScalarMul(r[i][0])).Add(ck.U2.ScalarMul(r[i][1]))
		require.Equal(t, want, cs[i])
	}
}

func TestCommitG2VecMatchesPerElementCommit(t *testing.T) {
	rng := newDetRNG(32)
	ck, err := RandCommitmentKeys(rng)
	require.NoError(t, err)

	_, _, _, g2 := bls12381.Generators()
	ys := []bls12381.G2Affine{g2Scale(g2, big2(7))}

	ds, s, err := ck.CommitG2Vec(rng, ys)
	require.NoError(t, err)
	require.Len(t, ds, 1)

	want := Iota2(ys[0]).Add(ck.V1.ScalarMul(s[0][0])).Add(ck.V2.ScalarMul(s[0][1]))
	require.Equal(t, want, ds[0])
}

func TestCommitG1AndCommitG2AreIndependentlyRandomized(t *testing.T) {
	rng := newDetRNG(33)
	ck, err := RandCommitmentKeys(rng)
	require.NoError(t, err)

	_, _, g1, g2 := bls12381.Generators()

	c1, _, err := ck.CommitG1(rng, g1)
	require.NoError(t, err)
	c2, _, err := ck.CommitG1(rng, g1)
	require.NoError(t, err)
	require.NotEqual(t, c1, c2, "two commitments to the same value must differ")

	d1, _, err := ck.CommitG2(rng, g2)
	require.NoError(t, err)
	d2, _, err := ck.CommitG2(rng, g2)
	require.NoError(t, err)
	require.NotEqual(t, d1, d2, "two commitments to the same value must differ")
	require.NotEqual(t, B1{}, c1)
	require.NotEqual(t, B2{}, d1)
}

func big2(v int64) *Scalar {
	return newScalar(v)
}

func newScalar(v int64) *Scalar {
	s := new(Scalar)
	s.SetInt64(v)
	return s
}
