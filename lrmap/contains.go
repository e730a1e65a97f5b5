package lrmap

// valueContainer is satisfied by both *Reader[K, V] and *Writer[K, V] for
// any K, since ContainsValueFunc's signature does not mention K.
type valueContainer[V any] interface {
	ContainsValueFunc(matches func(V) bool) bool
}

// ContainsValue reports whether value is present, using == for the
// comparison, against either a Reader or a Writer. It requires V to
// support ==; use ContainsValueFunc directly for value types that don't.
func ContainsValue[V comparable](c valueContainer[V], value V) bool {
	return c.ContainsValueFunc(func(v V) bool { return v == value })
}
