package ppe

import (
	"crypto/sha256"
	"encoding/binary"
	"io"
)

// detRNG is a deterministic io.Reader for tests: it expands a seed with
// a counter-mode SHA-256 stream, unbounded in length so it can feed any
// number of scalar draws.
type detRNG struct {
	seed    [32]byte
	counter uint64
	buf     []byte
}

func newDetRNG(seed byte) *detRNG {
	var s [32]byte
	s[0] = seed
	return &detRNG{seed: s}
}

func (r *detRNG) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.buf) == 0 {
			var ctr [8]byte
			binary.BigEndian.PutUint64(ctr[:], r.counter)
			r.counter++
			h := sha256.Sum256(append(append([]byte{}, r.seed[:]...), ctr[:]...))
			r.buf = h[:]
		}
		c := copy(p[n:], r.buf)
		r.buf = r.buf[c:]
		n += c
	}
	return n, nil
}

var _ io.Reader = (*detRNG)(nil)
