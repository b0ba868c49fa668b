package ppe

import (
	"fmt"
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// ProofSystem bundles one equation, its commitments to a witness and the
// proof that the witness satisfies it. It is the unit of work for every
// operation this package exposes: Setup produces one from a witness,
// Randomize and Add produce new ones from existing ones. A ProofSystem
// never holds the witness (X,Y) or the randomness (R,S,T) used to build
// it — only c, d and (pi,theta) survive construction, which is what
// makes Randomize's output independent of how the input was built.
type ProofSystem struct {
	CK    *CommitmentKeys
	Eq    *Equation
	C     []B1
	D     []B2
	Proof Proof
}

// Setup commits to witnesses x (for the equation's G1 side) and y (for
// its G2 side) under ck and produces a proof that they satisfy eq. x
// must have length eq.M(), y must have length eq.N().
func Setup(rng io.Reader, ck *CommitmentKeys, eq *Equation, x []bls12381.G1Affine, y []bls12381.G2Affine) (*ProofSystem, error) {
	if len(x) != eq.M() {
		return nil, fmt.Errorf("ppe: got %d G1 witnesses, want %d: %w", len(x), eq.M(), ErrShapeMismatch)
	}
	if len(y) != eq.N() {
		return nil, fmt.Errorf("ppe: got %d G2 witnesses, want %d: %w", len(y), eq.N(), ErrShapeMismatch)
	}

	c0 := make([]B1, len(x))
	for i, xi := range x {
		c0[i] = Iota1(xi)
	}
	d0 := make([]B2, len(y))
	for j, yj := range y {
		d0[j] = Iota2(yj)
	}

	r, err := randomMatrix(rng, len(x), 2)
	if err != nil {
		return nil, err
	}
	s, err := randomMatrix(rng, len(y), 2)
	if err != nil {
		return nil, err
	}
	t, err := randomMatrix(rng, 2, 2)
	if err != nil {
		return nil, err
	}

	c, d, proof := updateProof(eq, ck, c0, d0, zeroProof(), r, s, t)
	logger.Debug().Int("m", eq.M()).Int("n", eq.N()).Msg("ppe: proof system set up")
	return &ProofSystem{CK: ck, Eq: eq, C: c, D: d, Proof: proof}, nil
}

// Randomize produces a fresh ProofSystem for the same equation and
// commitment key, whose commitments and proof are statistically
// independent of ps's (perfect witness indistinguishability under SXDH):
// the only randomness it consumes is newly sampled here, never anything
// retained from ps's own construction.
func (ps *ProofSystem) Randomize(rng io.Reader) (*ProofSystem, error) {
	dR, err := randomMatrix(rng, len(ps.C), 2)
	if err != nil {
		return nil, err
	}
	dS, err := randomMatrix(rng, len(ps.D), 2)
	if err != nil {
		return nil, err
	}
	dT, err := randomMatrix(rng, 2, 2)
	if err != nil {
		return nil, err
	}
	c, d, proof := updateProof(ps.Eq, ps.CK, ps.C, ps.D, ps.Proof, dR, dS, dT)
	logger.Debug().Msg("ppe: proof system rerandomized")
	return &ProofSystem{CK: ps.CK, Eq: ps.Eq, C: c, D: d, Proof: proof}, nil
}

// Verify checks that ps's proof satisfies its equation under its
// commitment key.
func (ps *ProofSystem) Verify() error {
	return ps.Eq.Verify(ps.CK, ps.C, ps.D, &ps.Proof)
}

// Add composes ps with other into a proof system for the block-diagonal
// equation formed by concatenating both equations' A, B and commitment
// vectors, summing the coefficient matrices on the diagonal (zero
// elsewhere) and multiplying the two targets. Both proof systems must
// share a commitment key; the result verifies iff both inputs do.
func (ps *ProofSystem) Add(other *ProofSystem) (*ProofSystem, error) {
	if !ps.CK.Equal(other.CK) {
		return nil, ErrDifferentKeys
	}

	m1, n1 := ps.Eq.M(), ps.Eq.N()
	m2, n2 := other.Eq.M(), other.Eq.N()

	a := append(append([]bls12381.G1Affine{}, ps.Eq.A...), other.Eq.A...)
	b := append(append([]bls12381.G2Affine{}, ps.Eq.B...), other.Eq.B...)

	gamma := make([][]*Scalar, m1+m2)
	for i := range gamma {
		gamma[i] = make([]*Scalar, n1+n2)
		for j := range gamma[i] {
			gamma[i][j] = zeroScalar()
		}
	}
	for i := 0; i < m1; i++ {
		copy(gamma[i][:n1], ps.Eq.Gamma[i])
	}
	for i := 0; i < m2; i++ {
		copy(gamma[m1+i][n1:], other.Eq.Gamma[i])
	}

	var tT bls12381.GT
	tT.Mul(&ps.Eq.TT, &other.Eq.TT)

	eq, err := NewEquation(a, b, gamma, tT)
	if err != nil {
		return nil, err
	}

	c := append(append([]B1{}, ps.C...), other.C...)
	d := append(append([]B2{}, ps.D...), other.D...)

	proof := Proof{
		Pi:    [2]B2{ps.Proof.Pi[0].Add(other.Proof.Pi[0]), ps.Proof.Pi[1].Add(other.Proof.Pi[1])},
		Theta: [2]B1{ps.Proof.Theta[0].Add(other.Proof.Theta[0]), ps.Proof.Theta[1].Add(other.Proof.Theta[1])},
	}

	return &ProofSystem{CK: ps.CK, Eq: eq, C: c, D: d, Proof: proof}, nil
}

func zeroScalar() *Scalar {
	return new(Scalar)
}
