// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strconv"
	"testing"
)

func TestLayoutLRU(t *testing.T) {
	c := newLayoutCache()
	put := func(i int) {
		c.Put(layoutKey{str: strconv.Itoa(i)}, layoutVal{})
	}
	get := func(i int) bool {
		_, ok := c.Get(layoutKey{str: strconv.Itoa(i)})
		return ok
	}
	testLRU(t, c.max, put, get)
}

func TestEvictCallback(t *testing.T) {
	var evicted []int
	c := &lru[int, int]{max: 2, evict: func(v int) { evicted = append(evicted, v) }}
	c.Put(1, 10)
	c.Put(2, 20)
	c.Get(1)
	c.Put(3, 30)
	if len(evicted) != 1 || evicted[0] != 20 {
		t.Fatalf("evicted %v, want [20]", evicted)
	}
	c.Put(3, 31)
	if c.Len() != 2 {
		t.Fatalf("replacing a key changed the size to %d", c.Len())
	}
}

func testLRU(t *testing.T, maxSize int, put func(i int), get func(i int) bool) {
	for i := 0; i < maxSize; i++ {
		put(i)
	}
	for i := 0; i < maxSize; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	put(maxSize)
	for i := 1; i < maxSize+1; i++ {
		if !get(i) {
			t.Fatalf("key %d was evicted", i)
		}
	}
	if i := 0; get(i) {
		t.Fatalf("key %d was not evicted", i)
	}
}
