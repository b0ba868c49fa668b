package ppe

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// B1 is the module G1^2 used to commit G1 elements under SXDH. The zero
// value of bls12381.G1Affine is the point at infinity, the identity of
// G1's additive group.
type B1 struct {
	X0, X1 bls12381.G1Affine
}

// B2 is the symmetric module G2^2.
type B2 struct {
	Y0, Y1 bls12381.G2Affine
}

// BT is the module GT^(2x2). Its group law is written additively in this
// package to match spec notation, but every "Add" below is a componentwise
// GT.Mul, every "zero" is componentwise GT.One(), and scalar action is
// componentwise GT.Exp: GT's own group operation is multiplicative.
type BT struct {
	M [2][2]bls12381.GT
}

// Iota1 is the canonical injection G1 -> B1, iota1(X) = (0, X).
func Iota1(x bls12381.G1Affine) B1 {
	return B1{X1: x}
}

// Iota2 is the canonical injection G2 -> B2, iota2(Y) = (0, Y).
func Iota2(y bls12381.G2Affine) B2 {
	return B2{Y1: y}
}

func g1Add(a, b bls12381.G1Affine) bls12381.G1Affine {
	var aj, bj bls12381.G1Jac
	aj.FromAffine(&a)
	bj.FromAffine(&b)
	aj.AddAssign(&bj)
	var out bls12381.G1Affine
	out.FromJacobian(&aj)
	return out
}

func g1Neg(a bls12381.G1Affine) bls12381.G1Affine {
	var aj bls12381.G1Jac
	aj.FromAffine(&a)
	aj.Neg(&aj)
	var out bls12381.G1Affine
	out.FromJacobian(&aj)
	return out
}

func g1Scale(a bls12381.G1Affine, s *big.Int) bls12381.G1Affine {
	var aj bls12381.G1Jac
	aj.FromAffine(&a)
	aj.ScalarMultiplication(&aj, new(big.Int).Mod(s, Order))
	var out bls12381.G1Affine
	out.FromJacobian(&aj)
	return out
}

func g2Add(a, b bls12381.G2Affine) bls12381.G2Affine {
	var aj, bj bls12381.G2Jac
	aj.FromAffine(&a)
	bj.FromAffine(&b)
	aj.AddAssign(&bj)
	var out bls12381.G2Affine
	out.FromJacobian(&aj)
	return out
}

func g2Neg(a bls12381.G2Affine) bls12381.G2Affine {
	var aj bls12381.G2Jac
	aj.FromAffine(&a)
	aj.Neg(&aj)
	var out bls12381.G2Affine
	out.FromJacobian(&aj)
	return out
}

func g2Scale(a bls12381.G2Affine, s *big.Int) bls12381.G2Affine {
	var aj bls12381.G2Jac
	aj.FromAffine(&a)
	aj.ScalarMultiplication(&aj, new(big.Int).Mod(s, Order))
	var out bls12381.G2Affine
	out.FromJacobian(&aj)
	return out
}

// Add returns b1 + o, componentwise in G1.
func (b1 B1) Add(o B1) B1 {
	return B1{X0: g1Add(b1.X0, o.X0), X1: g1Add(b1.X1, o.X1)}
}

// Neg returns -b1, componentwise in G1.
func (b1 B1) Neg() B1 {
	return B1{X0: g1Neg(b1.X0), X1: g1Neg(b1.X1)}
}

// ScalarMul returns s*b1, componentwise in G1.
func (b1 B1) ScalarMul(s *big.Int) B1 {
	return B1{X0: g1Scale(b1.X0, s), X1: g1Scale(b1.X1, s)}
}

// Add returns b2 + o, componentwise in G2.
func (b2 B2) Add(o B2) B2 {
	return B2{Y0: g2Add(b2.Y0, o.Y0), Y1: g2Add(b2.Y1, o.Y1)}
}

// Neg returns -b2, componentwise in G2.
func (b2 B2) Neg() B2 {
	return B2{Y0: g2Neg(b2.Y0), Y1: g2Neg(b2.Y1)}
}

// ScalarMul returns s*b2, componentwise in G2.
func (b2 B2) ScalarMul(s *big.Int) B2 {
	return B2{Y0: g2Scale(b2.Y0, s), Y1: g2Scale(b2.Y1, s)}
}

// ZeroBT is the identity of BT: every entry is GT's multiplicative one.
func ZeroBT() BT {
	var z BT
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			z.M[k][l].SetOne()
		}
	}
	return z
}

// Add returns bt + o: componentwise GT multiplication.
func (bt BT) Add(o BT) BT {
	var out BT
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			out.M[k][l].Mul(&bt.M[k][l], &o.M[k][l])
		}
	}
	return out
}

// Neg returns -bt: componentwise GT inversion.
func (bt BT) Neg() BT {
	var out BT
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			out.M[k][l].Inverse(&bt.M[k][l])
		}
	}
	return out
}

// ScalarMul returns s*bt: componentwise GT exponentiation.
func (bt BT) ScalarMul(s *big.Int) BT {
	var out BT
	e := new(big.Int).Mod(s, Order)
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			out.M[k][l].Exp(bt.M[k][l], e)
		}
	}
	return out
}

// Equal reports whether bt and o are identical in every GT slot.
func (bt BT) Equal(o BT) bool {
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			if !bt.M[k][l].Equal(&o.M[k][l]) {
				return false
			}
		}
	}
	return true
}

// embedTarget places tT at BT's (1,1) slot (the "(2,2)" corner in spec's
// 1-indexed notation) with GT.One() elsewhere, per spec section 4.4.
func embedTarget(tT bls12381.GT) BT {
	z := ZeroBT()
	z.M[1][1] = tT
	return z
}

// F is the B-pairing B1 x B2 -> BT, F(x,y)_kl = e(x_k, y_l).
func F(x B1, y B2) BT {
	xs := [2]bls12381.G1Affine{x.X0, x.X1}
	ys := [2]bls12381.G2Affine{y.Y0, y.Y1}
	var out BT
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			gt, err := bls12381.Pair([]bls12381.G1Affine{xs[k]}, []bls12381.G2Affine{ys[l]})
			if err != nil {
				// Pairing only fails on malformed curve points, which never
				// occur for values produced by this package's own arithmetic.
				panic("ppe: pairing failed on well-formed point: " + err.Error())
			}
			out.M[k][l] = gt
		}
	}
	return out
}

// FVec is the derived sum F_vec(X,Y) = sum_i F(X_i, Y_i), computed as
// four batched multi-pairings (one per (k,l) slot) rather than len(X)
// individual F calls.
func FVec(x []B1, y []B2) BT {
	if len(x) != len(y) {
		panic("ppe: FVec called with mismatched vector lengths")
	}
	var out BT
	for k := 0; k < 2; k++ {
		for l := 0; l < 2; l++ {
			g1s := make([]bls12381.G1Affine, len(x))
			g2s := make([]bls12381.G2Affine, len(y))
			for i := range x {
				g1s[i] = component1(x[i], k)
				g2s[i] = component2(y[i], l)
			}
			if len(g1s) == 0 {
				out.M[k][l].SetOne()
				continue
			}
			gt, err := bls12381.Pair(g1s, g2s)
			if err != nil {
				panic("ppe: pairing failed on well-formed points: " + err.Error())
			}
			out.M[k][l] = gt
		}
	}
	return out
}

// FMat is the derived F_mat(X, M, Y) = sum_ij M_ij * F(X_i, Y_j).
func FMat(x []B1, mat [][]*big.Int, y []B2) BT {
	out := ZeroBT()
	for i := range x {
		for j := range y {
			if mat[i][j].Sign() == 0 {
				continue
			}
			out = out.Add(F(x[i], y[j]).ScalarMul(mat[i][j]))
		}
	}
	return out
}

func component1(b B1, k int) bls12381.G1Affine {
	if k == 0 {
		return b.X0
	}
	return b.X1
}

func component2(b B2, l int) bls12381.G2Affine {
	if l == 0 {
		return b.Y0
	}
	return b.Y1
}
