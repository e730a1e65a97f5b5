package lrmap

import "github.com/nanjiek/leftright-kv/leftright"

// Reader is a wait-free read handle into a Map. Like leftright.Reader, it
// must be used by only one goroutine at a time; see Pool for a
// sync.Pool-backed way to get that for free instead of by caller
// discipline.
type Reader[K comparable, V any] struct {
	inner *leftright.Reader[map[K]V]
}

// Get returns the value for key and whether it was present.
func (r *Reader[K, V]) Get(key K) (V, bool) {
	res := leftright.PerformRead(r.inner, func(m map[K]V) Optional[V] {
		v, ok := m[key]
		return Optional[V]{Value: v, Ok: ok}
	})
	return res.Value, res.Ok
}

// GetOrDefault returns the value for key, or def if key is absent.
func (r *Reader[K, V]) GetOrDefault(key K, def V) V {
	if v, ok := r.Get(key); ok {
		return v
	}
	return def
}

// ContainsKey reports whether key is present.
func (r *Reader[K, V]) ContainsKey(key K) bool {
	return leftright.PerformRead(r.inner, func(m map[K]V) bool {
		_, ok := m[key]
		return ok
	})
}

// ContainsValueFunc reports whether any value in the map satisfies matches.
// It is the equality-free generalization of "containsValue": see the
// package-level ContainsValue for the comparable-V convenience.
func (r *Reader[K, V]) ContainsValueFunc(matches func(V) bool) bool {
	return leftright.PerformRead(r.inner, func(m map[K]V) bool {
		for _, v := range m {
			if matches(v) {
				return true
			}
		}
		return false
	})
}

// Size returns the number of entries currently visible to this reader.
func (r *Reader[K, V]) Size() int {
	return leftright.PerformRead(r.inner, func(m map[K]V) int { return len(m) })
}

// IsEmpty reports whether the map currently visible to this reader has no
// entries.
func (r *Reader[K, V]) IsEmpty() bool {
	return r.Size() == 0
}

// ForEach visits every (key, value) pair present in the observed copy, in
// unspecified order (inherited from Go's own unspecified map iteration
// order). action must not mutate the map or call back into this Reader or
// its Writer.
func (r *Reader[K, V]) ForEach(action func(K, V)) {
	leftright.PerformRead(r.inner, func(m map[K]V) struct{} {
		for k, v := range m {
			action(k, v)
		}
		return struct{}{}
	})
}
