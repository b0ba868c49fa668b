package ppe

import (
	"math/big"
	"sync"
)

// objectPool recycles small scratch slices. Equation.Verify borrows a B1
// and a B2 slice from it on every call to hold the commitment key's u
// and v pairs; the scalar-slice and byte-buffer pools are provided but
// no function in this package uses them. Pooling matters because a verifier checking many proofs against
// the same equation shape otherwise re-allocates identically-shaped
// slices on every call.
type objectPool struct {
	b1SlicePool     sync.Pool
	b2SlicePool     sync.Pool
	scalarSlicePool sync.Pool
	bufferPool      sync.Pool
}

func newObjectPool() *objectPool {
	return &objectPool{
		b1SlicePool: sync.Pool{
			New: func() interface{} { return make([]B1, 0, 8) },
		},
		b2SlicePool: sync.Pool{
			New: func() interface{} { return make([]B2, 0, 8) },
		},
		scalarSlicePool: sync.Pool{
			New: func() interface{} { return make([]*big.Int, 0, 8) },
		},
		bufferPool: sync.Pool{
			New: func() interface{} { return make([]byte, 0, 1024) },
		},
	}
}

var defaultPool = newObjectPool()

func (p *objectPool) getB1Slice(capacity int) []B1 {
	s := p.b1SlicePool.Get().([]B1)
	if cap(s) < capacity {
		return make([]B1, 0, capacity)
	}
	return s[:0]
}

func (p *objectPool) putB1Slice(s []B1) {
	if s != nil {
		p.b1SlicePool.Put(s) //nolint:staticcheck // slice header copy is intentional
	}
}

func (p *objectPool) getB2Slice(capacity int) []B2 {
	s := p.b2SlicePool.Get().([]B2)
	if cap(s) < capacity {
		return make([]B2, 0, capacity)
	}
	return s[:0]
}

func (p *objectPool) putB2Slice(s []B2) {
	if s != nil {
		p.b2SlicePool.Put(s)
	}
}

func (p *objectPool) getScalarSlice(capacity int) []*big.Int {
	s := p.scalarSlicePool.Get().([]*big.Int)
	if cap(s) < capacity {
		return make([]*big.Int, 0, capacity)
	}
	return s[:0]
}

func (p *objectPool) putScalarSlice(s []*big.Int) {
	if s != nil {
		p.scalarSlicePool.Put(s)
	}
}

func (p *objectPool) getBuffer(capacity int) []byte {
	b := p.bufferPool.Get().([]byte)
	if cap(b) < capacity {
		return make([]byte, 0, capacity)
	}
	return b[:0]
}

func (p *objectPool) putBuffer(b []byte) {
	if b != nil {
		p.bufferPool.Put(b)
	}
}
