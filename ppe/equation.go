package ppe

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Equation is a pairing-product equation
//
//	prod_j e(Aj,Yj) * prod_i e(Xi,Bi) * prod_ij e(Xi,Yj)^Gamma_ij = TT
//
// over public constants A (in G1, length n, paired against the G2
// witnesses Y), B (in G2, length m, paired against the G1 witnesses X),
// and the m x n coefficient matrix Gamma. TT is the public target in GT.
type Equation struct {
	A     []bls12381.G1Affine
	B     []bls12381.G2Affine
	Gamma [][]*Scalar
	TT    bls12381.GT
}

// NewEquation validates shapes and returns an Equation: len(A) must equal
// the witness count n, len(B) must equal the witness count m, and Gamma
// must be exactly m x n.
func NewEquation(a []bls12381.G1Affine, b []bls12381.G2Affine, gamma [][]*Scalar, tT bls12381.GT) (*Equation, error) {
	m := len(b)
	n := len(a)
	if len(gamma) != m {
		return nil, fmt.Errorf("ppe: gamma has %d rows, want %d: %w", len(gamma), m, ErrShapeMismatch)
	}
	for i, row := range gamma {
		if len(row) != n {
			return nil, fmt.Errorf("ppe: gamma row %d has %d entries, want %d: %w", i, len(row), n, ErrShapeMismatch)
		}
	}
	return &Equation{A: a, B: b, Gamma: gamma, TT: tT}, nil
}

// M returns the number of G1 witnesses the equation expects.
func (e *Equation) M() int { return len(e.B) }

// N returns the number of G2 witnesses the equation expects.
func (e *Equation) N() int { return len(e.A) }

// iotaA returns iota1(A), the injection of the public A vector into B1.
func (e *Equation) iotaA() []B1 {
	out := make([]B1, len(e.A))
	for i, a := range e.A {
		out[i] = Iota1(a)
	}
	return out
}

// iotaB returns iota2(B), the injection of the public B vector into B2.
func (e *Equation) iotaB() []B2 {
	out := make([]B2, len(e.B))
	for i, b := range e.B {
		out[i] = Iota2(b)
	}
	return out
}

// Verify checks the prover's verification identity
//
//	F_vec(iota1(A),d) + F_vec(c,iota2(B)) + F_mat(c,Gamma,d)
//	  == embed(TT) + F_vec(u,pi) + F_vec(theta,v)
//
// against commitments c (to the G1 witnesses), d (to the G2 witnesses)
// and a proof (pi,theta) produced under commitment key ck. Callers that
// only hold (ck, c, d, proof) — without assembling a ProofSystem — can
// call this directly; ProofSystem.Verify is a thin wrapper around it.
func (e *Equation) Verify(ck *CommitmentKeys, c []B1, d []B2, proof *Proof) error {
	if len(c) != e.M() {
		return fmt.Errorf("ppe: got %d G1 commitments, want %d: %w", len(c), e.M(), ErrShapeMismatch)
	}
	if len(d) != e.N() {
		return fmt.Errorf("ppe: got %d G2 commitments, want %d: %w", len(d), e.N(), ErrShapeMismatch)
	}

	lhs := FVec(e.iotaA(), d).Add(FVec(c, e.iotaB())).Add(FMat(c, e.Gamma, d))

	u := defaultPool.getB1Slice(2)
	u = append(u, ck.U1, ck.U2)
	v := defaultPool.getB2Slice(2)
	v = append(v, ck.V1, ck.V2)
	rhs := embedTarget(e.TT).Add(FVec(u, proof.Pi[:])).Add(FVec(proof.Theta[:], v))
	defaultPool.putB1Slice(u)
	defaultPool.putB2Slice(v)

	if !lhs.Equal(rhs) {
		logger.Warn().Int("m", e.M()).Int("n", e.N()).Msg("ppe: verification identity did not hold")
		return ErrVerificationFailed
	}
	return nil
}
