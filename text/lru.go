// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	xfont "golang.org/x/image/font"

	"awkit.org/f32"
	"awkit.org/font"
)

// lru is a bounded map evicting the least recently used entry.
type lru[K comparable, V any] struct {
	m          map[K]*lruElem[K, V]
	head, tail *lruElem[K, V]
	max        int
	evict      func(V)
}

type lruElem[K comparable, V any] struct {
	next, prev *lruElem[K, V]
	key        K
	val        V
}

type layoutKey struct {
	size   float32
	bounds f32.Size
	str    string
	font   font.Font
}

type layoutVal struct {
	lines []Line
	size  f32.Size
}

type faceKey struct {
	face int
	size float32
}

const (
	maxLayouts = 1000
	maxFaces   = 32
)

func newLayoutCache() *lru[layoutKey, layoutVal] {
	return &lru[layoutKey, layoutVal]{max: maxLayouts}
}

func newFaceCache() *lru[faceKey, xfont.Face] {
	return &lru[faceKey, xfont.Face]{
		max: maxFaces,
		evict: func(f xfont.Face) {
			f.Close()
		},
	}
}

func (l *lru[K, V]) Get(k K) (V, bool) {
	if e, ok := l.m[k]; ok {
		l.remove(e)
		l.insert(e)
		return e.val, true
	}
	var zero V
	return zero, false
}

func (l *lru[K, V]) Put(k K, v V) {
	if l.m == nil {
		l.m = make(map[K]*lruElem[K, V])
		l.head = new(lruElem[K, V])
		l.tail = new(lruElem[K, V])
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	if old, ok := l.m[k]; ok {
		l.remove(old)
	}
	e := &lruElem[K, V]{key: k, val: v}
	l.m[k] = e
	l.insert(e)
	if len(l.m) > l.max {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
		if l.evict != nil {
			l.evict(oldest.val)
		}
	}
}

func (l *lru[K, V]) Len() int {
	return len(l.m)
}

func (l *lru[K, V]) remove(e *lruElem[K, V]) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (l *lru[K, V]) insert(e *lruElem[K, V]) {
	e.next = l.head
	e.prev = l.head.prev
	e.prev.next = e
	e.next.prev = e
}
