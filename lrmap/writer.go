package lrmap

import "github.com/nanjiek/leftright-kv/leftright"

// Writer is the single mutator of a Map. It is not safe for concurrent use
// and must be owned by one goroutine (leftright.Writer's contract).
//
// Reads through a Writer always see every prior write on that same Writer,
// including writes not yet Refreshed — composite read-modify-write
// sequences are therefore correct without any extra synchronization.
type Writer[K comparable, V any] struct {
	inner *leftright.Writer[map[K]V]
}

// Put inserts or overwrites key's value, returning the previous value if
// any key was present for.
func (w *Writer[K, V]) Put(key K, value V) Optional[V] {
	return leftright.Write[map[K]V, Optional[V]](w.inner, putOp[K, V]{key: key, value: value})
}

// PutIfAbsent inserts value for key only if key is not already present,
// returning the existing value if it was.
func (w *Writer[K, V]) PutIfAbsent(key K, value V) Optional[V] {
	return leftright.Write[map[K]V, Optional[V]](w.inner, putIfAbsentOp[K, V]{key: key, value: value})
}

// Remove deletes key, returning its previous value if any.
func (w *Writer[K, V]) Remove(key K) Optional[V] {
	return leftright.Write[map[K]V, Optional[V]](w.inner, removeOp[K, V]{key: key})
}

// RemoveIfEqualFunc removes key only if it is present and matches reports
// true for its current value, returning whether it was removed.
func (w *Writer[K, V]) RemoveIfEqualFunc(key K, matches func(V) bool) bool {
	return leftright.Write[map[K]V, bool](w.inner, removeIfEqualOp[K, V]{key: key, matches: matches})
}

// Clear removes every entry.
func (w *Writer[K, V]) Clear() {
	leftright.Write[map[K]V, struct{}](w.inner, clearOp[K, V]{})
}

// Refresh publishes every write since the last Refresh to all Readers.
func (w *Writer[K, V]) Refresh() {
	w.inner.Refresh()
}

// Release calls Refresh; pair with defer for the scoped-release idiom:
//
//	w := writer
//	defer w.Release()
//	w.Put(k, v)
func (w *Writer[K, V]) Release() {
	w.inner.Release()
}

// Get returns the value for key and whether it was present, including
// writes made through this Writer that have not yet been Refreshed.
func (w *Writer[K, V]) Get(key K) (V, bool) {
	res := leftright.Read(w.inner, func(m map[K]V) Optional[V] {
		v, ok := m[key]
		return Optional[V]{Value: v, Ok: ok}
	})
	return res.Value, res.Ok
}

// GetOrDefault returns the value for key, or def if key is absent.
func (w *Writer[K, V]) GetOrDefault(key K, def V) V {
	if v, ok := w.Get(key); ok {
		return v
	}
	return def
}

// ContainsKey reports whether key is present.
func (w *Writer[K, V]) ContainsKey(key K) bool {
	return leftright.Read(w.inner, func(m map[K]V) bool {
		_, ok := m[key]
		return ok
	})
}

// ContainsValueFunc reports whether any value satisfies matches. See
// Reader.ContainsValueFunc.
func (w *Writer[K, V]) ContainsValueFunc(matches func(V) bool) bool {
	return leftright.Read(w.inner, func(m map[K]V) bool {
		for _, v := range m {
			if matches(v) {
				return true
			}
		}
		return false
	})
}

// Size returns the current number of entries, including unrefreshed
// writes made through this Writer.
func (w *Writer[K, V]) Size() int {
	return leftright.Read(w.inner, func(m map[K]V) int { return len(m) })
}

// IsEmpty reports whether the map has no entries.
func (w *Writer[K, V]) IsEmpty() bool {
	return w.Size() == 0
}

// ForEach visits every (key, value) pair, including unrefreshed writes.
func (w *Writer[K, V]) ForEach(action func(K, V)) {
	leftright.Read(w.inner, func(m map[K]V) struct{} {
		for k, v := range m {
			action(k, v)
		}
		return struct{}{}
	})
}

// RemoveIfEqual removes key only if its current value equals value, using
// ==. It requires V to support ==; use (*Writer[K, V]).RemoveIfEqualFunc
// for value types that don't.
func RemoveIfEqual[K comparable, V comparable](w *Writer[K, V], key K, value V) bool {
	return w.RemoveIfEqualFunc(key, func(v V) bool { return v == value })
}

var _ valueContainer[struct{}] = (*Writer[int, struct{}])(nil)
var _ valueContainer[struct{}] = (*Reader[int, struct{}])(nil)
