package ppe

import (
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// CommitmentKeys holds the public commitment key pair (u1,u2,v1,v2) for
// one SXDH instance: u1,u2 in B1 commit G1 elements, v1,v2 in B2 commit
// G2 elements. The key is generated once per proof system and never
// rotates (see DESIGN.md): u2 and v2 are scalar multiples of u1 and v1
// by secret, discarded scalars t and s, which is what makes the
// resulting commitments perfectly binding under SXDH.
type CommitmentKeys struct {
	U1, U2 B1
	V1, V2 B2
}

// RandCommitmentKeys draws a fresh commitment key. It takes the fixed
// generators g1, g2 of G1 and G2, samples four nonzero scalars alpha, t,
// beta, s, then sets
//
//	u1 = (g1, alpha*g1), u2 = t*u1
//	v1 = (g2, beta*g2),  v2 = s*v1
//
// alpha, t, beta and s are discarded after this call: nothing in
// CommitmentKeys lets a holder recover them.
func RandCommitmentKeys(rng io.Reader) (*CommitmentKeys, error) {
	_, _, g1Gen, g2Gen := bls12381.Generators()

	alpha, err := RandomNonzeroScalar(rng)
	if err != nil {
		return nil, err
	}
	t, err := RandomNonzeroScalar(rng)
	if err != nil {
		return nil, err
	}
	beta, err := RandomNonzeroScalar(rng)
	if err != nil {
		return nil, err
	}
	s, err := RandomNonzeroScalar(rng)
	if err != nil {
		return nil, err
	}

	u1 := B1{X0: g1Gen, X1: g1Scale(g1Gen, alpha)}
	u2 := u1.ScalarMul(t)

	v1 := B2{Y0: g2Gen, Y1: g2Scale(g2Gen, beta)}
	v2 := v1.ScalarMul(s)

	return &CommitmentKeys{U1: u1, U2: u2, V1: v1, V2: v2}, nil
}

// CommitG1 commits a single G1 witness X using fresh randomness (r0,r1),
// returning Com_u(X;r) = iota1(X) + r0*u1 + r1*u2 and the randomness used.
func (ck *CommitmentKeys) CommitG1(rng io.Reader, x bls12381.G1Affine) (B1, [2]*Scalar, error) {
	r0, err := RandomScalar(rng)
	if err != nil {
		return B1{}, [2]*Scalar{}, err
	}
	r1, err := RandomScalar(rng)
	if err != nil {
		return B1{}, [2]*Scalar{}, err
	}
	c := Iota1(x).Add(ck.U1.ScalarMul(r0)).Add(ck.U2.ScalarMul(r1))
	return c, [2]*Scalar{r0, r1}, nil
}

// CommitG2 commits a single G2 witness Y using fresh randomness (r0,r1).
func (ck *CommitmentKeys) CommitG2(rng io.Reader, y bls12381.G2Affine) (B2, [2]*Scalar, error) {
	r0, err := RandomScalar(rng)
	if err != nil {
		return B2{}, [2]*Scalar{}, err
	}
	r1, err := RandomScalar(rng)
	if err != nil {
		return B2{}, [2]*Scalar{}, err
	}
	d := Iota2(y).Add(ck.V1.ScalarMul(r0)).Add(ck.V2.ScalarMul(r1))
	return d, [2]*Scalar{r0, r1}, nil
}

// CommitG1Vec commits a slice of G1 witnesses, each with independently
// sampled randomness, returning the commitments and the m x 2 randomness
// matrix R used (R[i] = (R[i][0], R[i][1])).
func (ck *CommitmentKeys) CommitG1Vec(rng io.Reader, xs []bls12381.G1Affine) ([]B1, [][]*Scalar, error) {
	r, err := randomMatrix(rng, len(xs), 2)
	if err != nil {
		return nil, nil, err
	}
	cs := make([]B1, len(xs))
	for i, x := range xs {
		cs[i] = Iota1(x).Add(ck.U1.ScalarMul(r[i][0])).Add(ck.U2.ScalarMul(r[i][1]))
	}
	return cs, r, nil
}

// CommitG2Vec commits a slice of G2 witnesses, each with independently
// sampled randomness, returning the commitments and the n x 2 randomness
// matrix S used.
func (ck *CommitmentKeys) CommitG2Vec(rng io.Reader, ys []bls12381.G2Affine) ([]B2, [][]*Scalar, error) {
	s, err := randomMatrix(rng, len(ys), 2)
	if err != nil {
		return nil, nil, err
	}
	ds := make([]B2, len(ys))
	for j, y := range ys {
		ds[j] = Iota2(y).Add(ck.V1.ScalarMul(s[j][0])).Add(ck.V2.ScalarMul(s[j][1]))
	}
	return ds, s, nil
}

// Equal reports whether ck and o are the same commitment key, by value.
func (ck *CommitmentKeys) Equal(o *CommitmentKeys) bool {
	return ck.U1 == o.U1 && ck.U2 == o.U2 && ck.V1 == o.V1 && ck.V2 == o.V2
}
