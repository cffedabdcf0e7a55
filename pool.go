// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"encoding/binary"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// DefaultPoolFalsePositiveRate is the admission filter's target error
const DefaultPoolFalsePositiveRate = 0.01

// Pool canonicalizes equal constant vectors so that a producer decoding
// many copies of the same constant can share one immutable instance.
// A vector is interned the second time it is offered; a bloom filter
// remembers first sightings so one-off vectors never occupy the pool.
//
// Unlike vectors, a Pool is mutable; it is safe for concurrent use.
type Pool[T Lane] struct {
	mu       sync.Mutex
	seen     *bloom.BloomFilter
	interned map[uint64][]Vector[T]
	stats    PoolStats
}

// PoolStats counts Intern outcomes
type PoolStats struct {
	// vectors returned from the pool
	Hits uint64
	// vectors added to the pool
	Interned uint64
	// first sightings, recorded only in the admission filter
	Admitted uint64
}

// NewPool sizes the admission filter for expectedDistinct vectors
func NewPool[T Lane](expectedDistinct uint) *Pool[T] {
	if expectedDistinct == 0 {
		expectedDistinct = 1
	}
	return &Pool[T]{
		seen:     bloom.NewWithEstimates(expectedDistinct, DefaultPoolFalsePositiveRate),
		interned: map[uint64][]Vector[T]{},
	}
}

// Intern returns the pooled vector equal to v if there is one,
// otherwise v itself
func (p *Pool[T]) Intern(v Vector[T]) Vector[T] {
	h := v.Hash()
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], h)

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.interned[h] {
		if c.Equal(v) {
			p.stats.Hits++
			return c
		}
	}
	if p.seen.TestAndAdd(key[:]) {
		p.interned[h] = append(p.interned[h], v)
		p.stats.Interned++
		return v
	}
	p.stats.Admitted++
	return v
}

// Len reports the number of interned vectors
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.interned {
		n += len(b)
	}
	return n
}

func (p *Pool[T]) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}
