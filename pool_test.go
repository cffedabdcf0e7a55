// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package vec

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolInternsOnSecondSighting(t *testing.T) {
	p := NewPool[int32](100)
	first := NewI32([]int32{1, 2, 3})
	second := NewI32([]int32{1, 2, 3})
	third := NewI32([]int32{1, 2, 3})

	got := p.Intern(first)
	assert.Same(t, &first.lanes[0], &got.lanes[0])
	assert.Equal(t, 0, p.Len())

	got = p.Intern(second)
	assert.Same(t, &second.lanes[0], &got.lanes[0])
	assert.Equal(t, 1, p.Len())

	got = p.Intern(third)
	assert.Same(t, &second.lanes[0], &got.lanes[0])
	assert.Equal(t, PoolStats{Hits: 1, Interned: 1, Admitted: 1}, p.Stats())
}

func TestPoolDistinguishesKinds(t *testing.T) {
	p := NewPool[int8](10)
	i1 := NewI1([]int8{1, 0})
	i8 := NewI8([]int8{1, 0})
	p.Intern(i1)
	p.Intern(i1)
	got := p.Intern(i8)
	assert.Equal(t, I8, got.ElementType())
}

func TestPoolConcurrent(t *testing.T) {
	p := NewPool[int64](0)
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed))
			for i := 0; i < 500; i++ {
				v := NewI64([]int64{int64(r.Intn(16))})
				got := p.Intern(v)
				assert.True(t, got.Equal(v))
			}
		}(int64(g))
	}
	wg.Wait()
	assert.LessOrEqual(t, p.Len(), 16)
}
