package ppe

import (
	"encoding/binary"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Compressed point sizes for BLS12-381, used when slicing serialized
// keys and proofs.
const (
	g1Size = 48
	g2Size = 96
)

// Marshal encodes a commitment key as u1 || u2 || v1 || v2, each a B1/B2
// pair of compressed points.
func (ck *CommitmentKeys) Marshal() []byte {
	out := make([]byte, 0, 2*(2*g1Size+2*g2Size))
	out = appendB1(out, ck.U1)
	out = appendB1(out, ck.U2)
	out = appendB2(out, ck.V1)
	out = appendB2(out, ck.V2)
	return out
}

// UnmarshalCommitmentKeys decodes a commitment key produced by Marshal.
func UnmarshalCommitmentKeys(data []byte) (*CommitmentKeys, error) {
	want := 2*(2*g1Size) + 2*(2*g2Size)
	if len(data) != want {
		return nil, fmt.Errorf("ppe: commitment key needs %d bytes, got %d: %w", want, len(data), ErrInvalidEncoding)
	}
	off := 0
	u1, off, err := readB1(data, off)
	if err != nil {
		return nil, err
	}
	u2, off, err := readB1(data, off)
	if err != nil {
		return nil, err
	}
	v1, off, err := readB2(data, off)
	if err != nil {
		return nil, err
	}
	v2, _, err := readB2(data, off)
	if err != nil {
		return nil, err
	}
	return &CommitmentKeys{U1: u1, U2: u2, V1: v1, V2: v2}, nil
}

// Marshal encodes a proof as pi0 || pi1 || theta0 || theta1.
func (p *Proof) Marshal() []byte {
	out := make([]byte, 0, 2*g2Size*2+2*g1Size*2)
	out = appendB2(out, p.Pi[0])
	out = appendB2(out, p.Pi[1])
	out = appendB1(out, p.Theta[0])
	out = appendB1(out, p.Theta[1])
	return out
}

// UnmarshalProof decodes a proof produced by Marshal.
func UnmarshalProof(data []byte) (*Proof, error) {
	want := 2*(2*g2Size) + 2*(2*g1Size)
	if len(data) != want {
		return nil, fmt.Errorf("ppe: proof needs %d bytes, got %d: %w", want, len(data), ErrInvalidEncoding)
	}
	off := 0
	pi0, off, err := readB2(data, off)
	if err != nil {
		return nil, err
	}
	pi1, off, err := readB2(data, off)
	if err != nil {
		return nil, err
	}
	theta0, off, err := readB1(data, off)
	if err != nil {
		return nil, err
	}
	theta1, _, err := readB1(data, off)
	if err != nil {
		return nil, err
	}
	return &Proof{Pi: [2]B2{pi0, pi1}, Theta: [2]B1{theta0, theta1}}, nil
}

// Marshal encodes a proof system as its commitment key, its G1 and G2
// commitments and its proof. The equation is not included: it is public
// material the verifier already has out of band. Each commitment vector
// is preceded by a 4-byte big-endian count followed by that many
// fixed-size entries; the key and the proof are fixed-size and carry no
// prefix.
func (ps *ProofSystem) Marshal() []byte {
	var out []byte
	out = append(out, ps.CK.Marshal()...)
	out = appendUint32(out, uint32(len(ps.C)))
	for _, c := range ps.C {
		out = appendB1(out, c)
	}
	out = appendUint32(out, uint32(len(ps.D)))
	for _, d := range ps.D {
		out = appendB2(out, d)
	}
	out = append(out, ps.Proof.Marshal()...)
	return out
}

// UnmarshalProofSystem decodes the commitment-key/commitments/proof part
// of a proof system produced by Marshal. eq must be supplied by the
// caller out of band, matching the data's commitment counts.
func UnmarshalProofSystem(data []byte, eq *Equation) (*ProofSystem, error) {
	ckLen := 2*(2*g1Size) + 2*(2*g2Size)
	if len(data) < ckLen+4 {
		return nil, fmt.Errorf("ppe: truncated proof system: %w", ErrInvalidEncoding)
	}
	ck, err := UnmarshalCommitmentKeys(data[:ckLen])
	if err != nil {
		return nil, err
	}
	off := ckLen

	mCount := int(binary.BigEndian.Uint32(data[off : off+4]))
	off += 4
	c := make([]B1, mCount)
	for i := range c {
		c[i], off, err = readB1(data, off)
		if err != nil {
			return nil, err
		}
	}

	if off+4 > len(data) {
		return nil, fmt.Errorf("ppe: truncated proof system: %w", ErrInvalidEncoding)
	}
	nCount := int(binary.BigEndian.Uint32(data[off : off+4]))
	off += 4
	d := make([]B2, nCount)
	for j := range d {
		d[j], off, err = readB2(data, off)
		if err != nil {
			return nil, err
		}
	}

	proof, err := UnmarshalProof(data[off:])
	if err != nil {
		return nil, err
	}

	return &ProofSystem{CK: ck, Eq: eq, C: c, D: d, Proof: *proof}, nil
}

func appendUint32(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}

func appendB1(dst []byte, b B1) []byte {
	x0 := b.X0.Bytes()
	x1 := b.X1.Bytes()
	dst = append(dst, x0[:]...)
	dst = append(dst, x1[:]...)
	return dst
}

func appendB2(dst []byte, b B2) []byte {
	y0 := b.Y0.Bytes()
	y1 := b.Y1.Bytes()
	dst = append(dst, y0[:]...)
	dst = append(dst, y1[:]...)
	return dst
}

func readB1(data []byte, off int) (B1, int, error) {
	if off+2*g1Size > len(data) {
		return B1{}, off, fmt.Errorf("ppe: truncated B1 element: %w", ErrInvalidEncoding)
	}
	var x0, x1 bls12381.G1Affine
	if err := x0.Unmarshal(data[off : off+g1Size]); err != nil {
		return B1{}, off, fmt.Errorf("ppe: decoding B1.X0: %w", ErrInvalidEncoding)
	}
	off += g1Size
	if err := x1.Unmarshal(data[off : off+g1Size]); err != nil {
		return B1{}, off, fmt.Errorf("ppe: decoding B1.X1: %w", ErrInvalidEncoding)
	}
	off += g1Size
	return B1{X0: x0, X1: x1}, off, nil
}

func readB2(data []byte, off int) (B2, int, error) {
	if off+2*g2Size > len(data) {
		return B2{}, off, fmt.Errorf("ppe: truncated B2 element: %w", ErrInvalidEncoding)
	}
	var y0, y1 bls12381.G2Affine
	if err := y0.Unmarshal(data[off : off+g2Size]); err != nil {
		return B2{}, off, fmt.Errorf("ppe: decoding B2.Y0: %w", ErrInvalidEncoding)
	}
	off += g2Size
	if err := y1.Unmarshal(data[off : off+g2Size]); err != nil {
		return B2{}, off, fmt.Errorf("ppe: decoding B2.Y1: %w", ErrInvalidEncoding)
	}
	off += g2Size
	return B2{Y0: y0, Y1: y1}, off, nil
}

// marshalScalar length-prefixes a scalar with a single length byte
// (scalars here are reduced mod Order, so at most 32 bytes) followed by the big-endian
// magnitude.
func marshalScalar(dst []byte, s *big.Int) []byte {
	b := s.Bytes()
	dst = append(dst, byte(len(b)))
	return append(dst, b...)
}

func readScalar(data []byte, off int) (*big.Int, int, error) {
	if off >= len(data) {
		return nil, off, fmt.Errorf("ppe: truncated scalar length: %w", ErrInvalidEncoding)
	}
	n := int(data[off])
	off++
	if off+n > len(data) {
		return nil, off, fmt.Errorf("ppe: truncated scalar: %w", ErrInvalidEncoding)
	}
	return new(big.Int).SetBytes(data[off : off+n]), off + n, nil
}

// Marshal encodes the equation's public shape: A, B and Gamma,
// length-prefixed. The target tT is not included, since a verifier must
// already be told tT out of band to know what statement it is checking;
// UnmarshalEquation takes it as a parameter.
func (e *Equation) Marshal() []byte {
	var out []byte
	out = appendUint32(out, uint32(len(e.A)))
	for _, a := range e.A {
		ab := a.Bytes()
		out = append(out, ab[:]...)
	}
	out = appendUint32(out, uint32(len(e.B)))
	for _, b := range e.B {
		bb := b.Bytes()
		out = append(out, bb[:]...)
	}
	for _, row := range e.Gamma {
		for _, g := range row {
			out = marshalScalar(out, g)
		}
	}
	return out
}

// UnmarshalEquation decodes an equation produced by Marshal, pairing it
// with the target tT supplied out of band.
func UnmarshalEquation(data []byte, tT bls12381.GT) (*Equation, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("ppe: truncated equation: %w", ErrInvalidEncoding)
	}
	off := 0
	n := int(binary.BigEndian.Uint32(data[off : off+4]))
	off += 4
	a := make([]bls12381.G1Affine, n)
	for i := range a {
		if off+g1Size > len(data) {
			return nil, fmt.Errorf("ppe: truncated equation A: %w", ErrInvalidEncoding)
		}
		if err := a[i].Unmarshal(data[off : off+g1Size]); err != nil {
			return nil, fmt.Errorf("ppe: decoding equation A[%d]: %w", i, ErrInvalidEncoding)
		}
		off += g1Size
	}

	if off+4 > len(data) {
		return nil, fmt.Errorf("ppe: truncated equation: %w", ErrInvalidEncoding)
	}
	m := int(binary.BigEndian.Uint32(data[off : off+4]))
	off += 4
	b := make([]bls12381.G2Affine, m)
	for i := range b {
		if off+g2Size > len(data) {
			return nil, fmt.Errorf("ppe: truncated equation B: %w", ErrInvalidEncoding)
		}
		if err := b[i].Unmarshal(data[off : off+g2Size]); err != nil {
			return nil, fmt.Errorf("ppe: decoding equation B[%d]: %w", i, ErrInvalidEncoding)
		}
		off += g2Size
	}

	gamma := make([][]*big.Int, m)
	var err error
	for i := range gamma {
		gamma[i] = make([]*big.Int, n)
		for j := range gamma[i] {
			gamma[i][j], off, err = readScalar(data, off)
			if err != nil {
				return nil, err
			}
		}
	}

	return NewEquation(a, b, gamma, tT)
}
