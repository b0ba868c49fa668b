package ppe

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/stretchr/testify/require"
)

func randG1(t *testing.T, rng *detRNG) bls12381.G1Affine {
	t.Helper()
	_, _, g1, _ := bls12381.Generators()
	s, err := RandomScalar(rng)
	require.NoError(t, err)
	return g1Scale(g1, s)
}

func randG2(t *testing.T, rng *detRNG) bls12381.G2Affine {
	t.Helper()
	_, _, _, g2 := bls12381.Generators()
	s, err := RandomScalar(rng)
	require.NoError(t, err)
	return g2Scale(g2, s)
}

func TestFIsBilinearInFirstArgument(t *testing.T) {
	rng := newDetRNG(1)
	x1 := Iota1(randG1(t, rng))
	x2 := Iota1(randG1(t, rng))
	y := Iota2(randG2(t, rng))

	lhs := F(x1.Add(x2), y)
	rhs := F(x1, y).Add(F(x2, y))
	require.True(t, lhs.Equal(rhs), "F must be additive in its first argument")
}

func TestFIsBilinearInSecondArgument(t *testing.T) {
	rng := newDetRNG(2)
	x := Iota1(randG1(t, rng))
	y1 := Iota2(randG2(t, rng))
	y2 := Iota2(randG2(t, rng))

	lhs := F(x, y1.Add(y2))
	rhs := F(x, y1).Add(F(x, y2))
	require.True(t, lhs.Equal(rhs), "F must be additive in its second argument")
}

func TestIotaInjectionLandsInCornerSlot(t *testing.T) {
	rng := newDetRNG(3)
	x := randG1(t, rng)
	y := randG2(t, rng)

	bt := F(Iota1(x), Iota2(y))
	one := bls12381.GT{}
	one.SetOne()

	require.True(t, bt.M[0][0].Equal(&one))
	require.True(t, bt.M[0][1].Equal(&one))
	require.True(t, bt.M[1][0].Equal(&one))

	want, err := bls12381.Pair([]bls12381.G1Affine{x}, []bls12381.G2Affine{y})
	require.NoError(t, err)
	require.True(t, bt.M[1][1].Equal(&want))
}

func TestFVecMatchesRepeatedF(t *testing.T) {
	rng := newDetRNG(4)
	n := 5
	xs := make([]B1, n)
	ys := make([]B2, n)
	for i := 0; i < n; i++ {
		xs[i] = Iota1(randG1(t, rng))
		ys[i] = Iota2(randG2(t, rng))
	}

	sum := ZeroBT()
	for i := 0; i < n; i++ {
		sum = sum.Add(F(xs[i], ys[i]))
	}

	require.True(t, FVec(xs, ys).Equal(sum))
}

func TestBTScalarMulMatchesRepeatedAdd(t *testing.T) {
	rng := newDetRNG(5)
	x := Iota1(randG1(t, rng))
	y := Iota2(randG2(t, rng))
	bt := F(x, y)

	tripled := bt.Add(bt).Add(bt)
	require.True(t, bt.ScalarMul(big.NewInt(3)).Equal(tripled))
}
