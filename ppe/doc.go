// Package ppe implements the SXDH instantiation of Groth-Sahai
// non-interactive witness-indistinguishable proofs for pairing-product
// equations (PPE) over the BLS12-381 curve.
//
// A prover holding secret group elements X1..Xm in G1 and Y1..Yn in G2
// commits to them and produces a short proof that they satisfy
//
//	prod_j e(Aj,Yj) * prod_i e(Xi,Bi) * prod_ij e(Xi,Yj)^gamma_ij = tT
//
// where A, B, gamma and tT are public. The package additionally supports
// rerandomizing a proof system (producing an independently distributed
// proof of the same statement) and composing two proof systems under one
// commitment key into a proof system for the concatenated equation.
//
// The underlying pairing, curve and RNG are supplied by
// github.com/consensys/gnark-crypto's bls12-381 implementation and the
// standard library crypto/rand; this package is otherwise a pure,
// synchronous algebra library with no I/O and no persisted state.
package ppe
