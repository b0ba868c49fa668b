package ppe

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/require"
)

// buildEquation constructs a satisfiable equation
//
//	e(A1,Y1) * e(X1,B1) * e(X1,Y1)^gamma11 = tT
//
// together with witnesses X1, Y1 for it, so tests can exercise Setup
// against a realistic single-witness-pair PPE.
func buildEquation(t *testing.T, rng *detRNG) (*Equation, []bls12381.G1Affine, []bls12381.G2Affine) {
	t.Helper()
	_, _, g1, g2 := bls12381.Generators()

	xScalar, err := RandomNonzeroScalar(rng)
	require.NoError(t, err)
	yScalar, err := RandomNonzeroScalar(rng)
	require.NoError(t, err)
	aScalar, err := RandomNonzeroScalar(rng)
	require.NoError(t, err)
	bScalar, err := RandomNonzeroScalar(rng)
	require.NoError(t, err)
	gamma, err := RandomScalar(rng)
	require.NoError(t, err)

	x := g1Scale(g1, xScalar)
	y := g2Scale(g2, yScalar)
	a := g1Scale(g1, aScalar)
	b := g2Scale(g2, bScalar)

	tT := F(Iota1(a), Iota2(y)).
		Add(F(Iota1(x), Iota2(b))).
		Add(F(Iota1(x), Iota2(y)).ScalarMul(gamma)).
		M[1][1]

	eq, err := NewEquation(
		[]bls12381.G1Affine{a},
		[]bls12381.G2Affine{b},
		[][]*big.Int{{gamma}},
		tT,
	)
	require.NoError(t, err)

	return eq, []bls12381.G1Affine{x}, []bls12381.G2Affine{y}
}

func TestSetupProducesVerifyingProof(t *testing.T) {
	rng := newDetRNG(10)
	ck, err := RandCommitmentKeys(rng)
	require.NoError(t, err)

	eq, x, y := buildEquation(t, rng)

	ps, err := Setup(rng, ck, eq, x, y)
	require.NoError(t, err)
	require.NoError(t, ps.Verify())
}

func TestSetupRejectsWitnessShapeMismatch(t *testing.T) {
	rng := newDetRNG(11)
	ck, err := RandCommitmentKeys(rng)
	require.NoError(t, err)
	eq, x, y := buildEquation(t, rng)

	_, err = Setup(rng, ck, eq, append(x, x[0]), y)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Setup(rng, ck, eq, x, append(y, y[0]))
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestTamperedCommitmentFailsVerification(t *testing.T) {
	rng := newDetRNG(12)
	ck, err := RandCommitmentKeys(rng)
	require.NoError(t, err)
	eq, x, y := buildEquation(t, rng)

	ps, err := Setup(rng, ck, eq, x, y)
	require.NoError(t, err)

	extraScalar, err := RandomNonzeroScalar(rng)
	require.NoError(t, err)
	_, _, g1, _ := bls12381.Generators()
	ps.C[0] = ps.C[0].Add(Iota1(g1Scale(g1, extraScalar)))

	require.ErrorIs(t, ps.Verify(), ErrVerificationFailed)
}

func TestRandomizePreservesVerificationAndChangesEncoding(t *testing.T) {
	rng := newDetRNG(13)
	ck, err := RandCommitmentKeys(rng)
	require.NoError(t, err)
	eq, x, y := buildEquation(t, rng)

	ps, err := Setup(rng, ck, eq, x, y)
	require.NoError(t, err)

	rps, err := ps.Randomize(rng)
	require.NoError(t, err)
	require.NoError(t, rps.Verify())

	require.NotEqual(t, ps.C[0], rps.C[0], "rerandomized commitment should differ from the original")
	require.NotEqual(t, ps.Proof.Pi, rps.Proof.Pi, "rerandomized proof should differ from the original")
}

func TestAddComposesTwoVerifyingProofSystems(t *testing.T) {
	rng := newDetRNG(14)
	ck, err := RandCommitmentKeys(rng)
	require.NoError(t, err)

	eq1, x1, y1 := buildEquation(t, rng)
	eq2, x2, y2 := buildEquation(t, rng)

	ps1, err := Setup(rng, ck, eq1, x1, y1)
	require.NoError(t, err)
	ps2, err := Setup(rng, ck, eq2, x2, y2)
	require.NoError(t, err)

	composed, err := ps1.Add(ps2)
	require.NoError(t, err)
	require.NoError(t, composed.Verify())
	require.Equal(t, eq1.M()+eq2.M(), composed.Eq.M())
	require.Equal(t, eq1.N()+eq2.N(), composed.Eq.N())
}

func TestAddRejectsDifferentCommitmentKeys(t *testing.T) {
	rng := newDetRNG(15)
	ck1, err := RandCommitmentKeys(rng)
	require.NoError(t, err)
	ck2, err := RandCommitmentKeys(rng)
	require.NoError(t, err)

	eq1, x1, y1 := buildEquation(t, rng)
	eq2, x2, y2 := buildEquation(t, rng)

	ps1, err := Setup(rng, ck1, eq1, x1, y1)
	require.NoError(t, err)
	ps2, err := Setup(rng, ck2, eq2, x2, y2)
	require.NoError(t, err)

	_, err = ps1.Add(ps2)
	require.ErrorIs(t, err, ErrDifferentKeys)
}
