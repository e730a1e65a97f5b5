// Package lrmap is a read-optimized key-value map built on the leftright
// concurrency primitive: a single Writer, any number of wait-free Readers,
// all pointing at two copies of an ordinary Go map.
package lrmap

import "github.com/nanjiek/leftright-kv/leftright"

// New constructs a map over key type K and value type V, returning a
// ReaderFactory that can mint any number of Readers from any goroutine, and
// the single Writer that owns the map's mutations.
func New[K comparable, V any]() (*ReaderFactory[K, V], *Writer[K, V]) {
	rf, w := leftright.Create(func() map[K]V { return make(map[K]V) })
	return &ReaderFactory[K, V]{inner: rf}, &Writer[K, V]{inner: w}
}

// ReaderFactory mints Readers bound to this map.
type ReaderFactory[K comparable, V any] struct {
	inner *leftright.ReaderFactory[map[K]V]
}

// CreateReader returns a new Reader. See leftright.ReaderFactory.CreateReader
// for the registration and lifetime contract a returned Reader inherits.
func (f *ReaderFactory[K, V]) CreateReader() *Reader[K, V] {
	return &Reader[K, V]{inner: f.inner.CreateReader()}
}

// ReaderCount reports how many Readers this factory has ever registered.
// See leftright.ReaderFactory.ReaderCount.
func (f *ReaderFactory[K, V]) ReaderCount() int {
	return f.inner.ReaderCount()
}
