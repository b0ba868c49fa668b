package ppe

import (
	"fmt"
	"io"
	"math/big"
)

// RandomScalar draws a uniform element of Z_Order, including zero.
// Commitment randomness R, S and the randomization matrix T are sampled
// this way: zero is a valid outcome for all of them (see DESIGN.md).
func RandomScalar(rng io.Reader) (*big.Int, error) {
	return constantTimeRandom(rng, Order)
}

// RandomNonzeroScalar draws a uniform element of Z_Order \ {0}. Only the
// commitment-key setup scalars (alpha, t, beta, s) require this.
func RandomNonzeroScalar(rng io.Reader) (*big.Int, error) {
	for {
		s, err := constantTimeRandom(rng, Order)
		if err != nil {
			return nil, err
		}
		if s.Sign() != 0 {
			return s, nil
		}
	}
}

// constantTimeRandom draws a uniform value in [0, max) using rejection
// sampling with a masked top byte, avoiding modulo bias instead of
// reducing a wide hash mod max.
func constantTimeRandom(rng io.Reader, max *big.Int) (*big.Int, error) {
	byteLen := (max.BitLen() + 7) / 8

	bits := max.BitLen() % 8
	mask := byte(0xFF)
	if bits > 0 {
		mask = byte((1 << bits) - 1)
	}

	buf := make([]byte, byteLen)
	result := new(big.Int)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, fmt.Errorf("ppe: failed to read randomness: %w", err)
		}
		buf[0] &= mask
		result.SetBytes(buf)
		if result.Cmp(max) < 0 {
			return result, nil
		}
	}
}

func modAdd(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Add(a, b), Order)
}

func modSub(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Sub(a, b), Order)
}

func modMul(a, b *big.Int) *big.Int {
	return new(big.Int).Mod(new(big.Int).Mul(a, b), Order)
}

// randomMatrix fills an r x c matrix with fresh uniform scalars (zero
// included) for commitment randomness R, S and randomization matrices T.
func randomMatrix(rng io.Reader, rows, cols int) ([][]*big.Int, error) {
	m := make([][]*big.Int, rows)
	for i := range m {
		m[i] = make([]*big.Int, cols)
		for j := range m[i] {
			s, err := RandomScalar(rng)
			if err != nil {
				return nil, err
			}
			m[i][j] = s
		}
	}
	return m, nil
}
